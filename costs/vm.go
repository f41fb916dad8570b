package costs

import "strings"

// Deallocated VMs stop charging compute but their disks keep billing.
// Approximate monthly disk cost by VM size; this is the residual cost of
// leaving a stopped VM around, not the running cost.
var stoppedVMDiskCosts = map[string]float64{
	// B-series (burstable), typically small disks
	"standard_b1s":  5.0,
	"standard_b1ms": 5.0,
	"standard_b2s":  10.0,
	"standard_b2ms": 10.0,
	"standard_b4ms": 20.0,
	// D-series
	"standard_d2s_v3": 15.0,
	"standard_d4s_v3": 30.0,
	"standard_d2_v3":  15.0,
	"standard_d4_v3":  30.0,
	"standard_ds1_v2": 10.0,
	"standard_ds2_v2": 15.0,
}

const stoppedVMDefaultCost = 10.0

// StoppedVM estimates the monthly disk cost of a deallocated VM by size.
// Tries an exact match, then a substring match, then falls back to a
// conservative default.
func StoppedVM(vmSize string) float64 {
	sizeLower := strings.ToLower(vmSize)

	if cost, ok := stoppedVMDiskCosts[sizeLower]; ok {
		return cost
	}
	for key, cost := range stoppedVMDiskCosts {
		if strings.Contains(sizeLower, key) {
			return cost
		}
	}
	return stoppedVMDefaultCost
}
