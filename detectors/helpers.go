package detectors

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

var (
	nicTrailingDigits = regexp.MustCompile(`^(.+?)(\d+)$`)
	diskGuidPattern   = regexp.MustCompile(`(?i)^(.+?)_(Os|Data)Disk_\d+_`)
	diskDashPattern   = regexp.MustCompile(`(?i)^(.+?)-(os|data)disk`)
)

// vmNameFromNIC guesses the original VM name from a NIC name. Azure and
// the portal commonly name NICs {vm}123, {vm}-nic or {vm}VMNic.
func vmNameFromNIC(nicName string) string {
	for _, suffix := range []string{"-nic", "VMNic", "_nic", "nic"} {
		if strings.HasSuffix(strings.ToLower(nicName), strings.ToLower(suffix)) {
			return nicName[:len(nicName)-len(suffix)]
		}
	}
	if m := nicTrailingDigits.FindStringSubmatch(nicName); m != nil && len(m[1]) > 3 {
		return m[1]
	}
	return ""
}

// vmNameFromDisk guesses the original VM name from a managed disk name,
// e.g. {vm}_OsDisk_1_{guid} or {vm}-osdisk.
func vmNameFromDisk(diskName string) string {
	if m := diskGuidPattern.FindStringSubmatch(diskName); m != nil {
		return m[1]
	}
	if m := diskDashPattern.FindStringSubmatch(diskName); m != nil {
		return m[1]
	}
	return ""
}

// formatAge renders an ISO creation timestamp as a rough age ("3 months
// ago"). Unparseable or empty input yields "" and the fragment is dropped.
func formatAge(timeCreated string) string {
	if timeCreated == "" {
		return ""
	}
	created, err := time.Parse(time.RFC3339, timeCreated)
	if err != nil {
		return ""
	}

	days := int(time.Since(created).Hours() / 24)
	switch {
	case days < 1:
		return "today"
	case days == 1:
		return "1 day ago"
	case days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days < 365:
		return fmt.Sprintf("%d %s ago", days/30, plural(days/30, "month"))
	default:
		return fmt.Sprintf("%d %s ago", days/365, plural(days/365, "year"))
	}
}

// daysExpired renders how long ago a certificate expired, "" when the
// timestamp is missing, unparseable, or in the future.
func daysExpired(expiration string) string {
	if expiration == "" {
		return ""
	}
	expired, err := time.Parse(time.RFC3339, expiration)
	if err != nil {
		return ""
	}
	days := int(time.Since(expired).Hours() / 24)
	if days < 0 {
		return ""
	}
	return fmt.Sprintf("Expired %d days ago", days)
}

func plural(n int, unit string) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}
