// Package catalog holds deletion-safety guidance for every resource kind
// the scanner detects. The risk taxonomy is tied to data-loss potential
// and blast radius, deliberately not to cost: an empty container is low
// risk no matter what it bills, anything holding persisted state is
// medium, and cross-premises connectivity is high because of how long it
// takes to re-provision. This classification is fixed per type and must
// not be re-derived from the cost estimate.
package catalog

import (
	"strings"

	"github.com/thefrederiksen/azprune/types"
)

// Guidance describes one resource type: what it is, why the scanner
// flagged it, and what deleting it would mean. Every entry has all fields
// populated.
type Guidance struct {
	FriendlyName      string `json:"friendly_name"`
	RiskLevel         string `json:"risk_level"`
	Description       string `json:"description"`
	WhyOrphaned       string `json:"why_orphaned"`
	SafeToDelete      string `json:"safe_to_delete"`
	CheckBeforeDelete string `json:"check_before_delete"`
	DeletionImpact    string `json:"deletion_impact"`
	RecoveryInfo      string `json:"recovery_info"`
}

// Lookup returns the guidance for an Azure resource type string, matched
// case-insensitively. Unknown types get a default record with medium risk
// and a friendly name derived from the last path segment of the type.
func Lookup(resourceType string) Guidance {
	if g, ok := guidance[strings.ToLower(resourceType)]; ok {
		return g
	}
	return Guidance{
		FriendlyName:      fallbackFriendlyName(resourceType),
		RiskLevel:         types.RiskMedium,
		Description:       "Azure resource.",
		WhyOrphaned:       "Detected as potentially unused.",
		SafeToDelete:      "Verify before deleting.",
		CheckBeforeDelete: "Review resource details and check with team.",
		DeletionImpact:    "Unknown - verify with Azure documentation.",
		RecoveryInfo:      "Varies by resource type.",
	}
}

// RiskLevel returns just the risk level for a resource type.
func RiskLevel(resourceType string) string {
	return Lookup(resourceType).RiskLevel
}

// Badge returns the display badge for a risk level.
func Badge(riskLevel string) string {
	switch riskLevel {
	case types.RiskLow:
		return "[OK]"
	case types.RiskHigh:
		return "[WARN]"
	default:
		return "[CHECK]"
	}
}

func fallbackFriendlyName(resourceType string) string {
	segments := strings.Split(resourceType, "/")
	return titleCase(segments[len(segments)-1])
}

// titleCase uppercases the first letter of each word-like run.
func titleCase(s string) string {
	out := []rune(s)
	prevLetter := false
	for i, r := range out {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if isLetter && !prevLetter {
			if r >= 'a' && r <= 'z' {
				out[i] = r - 'a' + 'A'
			}
		} else if isLetter && r >= 'A' && r <= 'Z' {
			out[i] = r - 'A' + 'a'
		}
		prevLetter = isLetter
	}
	return string(out)
}
