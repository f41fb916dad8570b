package orchestrator

import (
	"time"

	"github.com/thefrederiksen/azprune/types"
)

// State is the lifecycle state of a scan.
type State string

const (
	StateIdle      State = "idle"
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateCancelled State = "cancelled"
	StateFailed    State = "failed"
)

// DetectorError records a single detector failure inside an otherwise
// successful scan.
type DetectorError struct {
	Detector string `json:"detector"`
	Error    string `json:"error"`
}

// Result contains the outcome of one scan.
type Result struct {
	StartTime      time.Time       `json:"start_time"`
	EndTime        time.Time       `json:"end_time"`
	Duration       time.Duration   `json:"duration"`
	State          State           `json:"state"`
	Records        []types.Record  `json:"records"`
	DetectorErrors []DetectorError `json:"detector_errors,omitempty"`
	DetectorsRun   int             `json:"detectors_run"`
	TotalWaste     float64         `json:"total_waste"`
}
