// Package export writes scan results to files for spreadsheets and
// automation.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thefrederiksen/azprune/catalog"
	"github.com/thefrederiksen/azprune/types"
)

// PortalURL builds the Azure Portal deep link for a resource.
func PortalURL(resourceID, tenantID string) string {
	if resourceID == "" || tenantID == "" {
		return ""
	}
	return fmt.Sprintf("https://portal.azure.com/#@%s/resource%s", tenantID, resourceID)
}

var csvColumns = []string{
	"Name", "Type", "Risk Level", "Safe to Delete", "Resource Group",
	"Location", "Cost/Month", "Details", "Resource ID", "Portal URL",
}

// ToCSV writes records to a timestamped CSV file in outputDir and
// returns the file path. The subscription name becomes part of the
// filename so scans of different subscriptions sit side by side.
func ToCSV(records []types.Record, outputDir, subscriptionName, tenantID string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_150405")
	filename := fmt.Sprintf("scan_%s_%s.csv", timestamp, sanitizeName(subscriptionName))
	path := filepath.Join(outputDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvColumns); err != nil {
		return "", err
	}

	for _, r := range records {
		guidance := catalog.Lookup(r.Type)
		row := []string{
			r.Name,
			r.TypeDisplay,
			strings.ToUpper(r.RiskLevel),
			guidance.SafeToDelete,
			r.ResourceGroup,
			r.Location,
			r.CostDisplay,
			r.Details,
			r.ID,
			PortalURL(r.ID, tenantID),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("writing csv: %w", err)
	}
	return path, nil
}

// ToJSON writes records as a JSON array to the given writer-path. Used
// by scripts that post-process scan output.
func ToJSON(records []types.Record, path string) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding records: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}

// sanitizeName makes a subscription name filesystem-safe: alphanumerics
// and dashes survive, spaces become dashes, everything else becomes an
// underscore. Long names are truncated.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, c := range name {
		switch {
		case c == ' ':
			b.WriteByte('-')
		case c == '-' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			b.WriteRune(c)
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if len(s) > 50 {
		s = s[:50]
	}
	return s
}
