package telemetry

import (
	"go.opentelemetry.io/otel/metric"
)

// ScanMetrics holds the scan-level metrics exposed in watch mode.
type ScanMetrics struct {
	ScansCompleted   metric.Int64Counter
	ScansFailed      metric.Int64Counter
	DetectorFailures metric.Int64Counter
	OrphansFound     metric.Int64Counter
	WasteFound       metric.Float64Counter

	ScanDuration metric.Float64Histogram
}

// InitScanMetrics registers all scan metrics on the given meter.
func InitScanMetrics(meter metric.Meter) (*ScanMetrics, error) {
	m := &ScanMetrics{}
	var err error

	m.ScansCompleted, err = meter.Int64Counter(
		"azprune.scans.completed.total",
		metric.WithDescription("Total number of completed scans"),
		metric.WithUnit("scans"),
	)
	if err != nil {
		return nil, err
	}

	m.ScansFailed, err = meter.Int64Counter(
		"azprune.scans.failed.total",
		metric.WithDescription("Total number of scans that ended in failure"),
		metric.WithUnit("scans"),
	)
	if err != nil {
		return nil, err
	}

	m.DetectorFailures, err = meter.Int64Counter(
		"azprune.detector.failures.total",
		metric.WithDescription("Total number of individual detector query failures"),
		metric.WithUnit("failures"),
	)
	if err != nil {
		return nil, err
	}

	m.OrphansFound, err = meter.Int64Counter(
		"azprune.orphans.found.total",
		metric.WithDescription("Total number of orphaned resources found across scans"),
		metric.WithUnit("resources"),
	)
	if err != nil {
		return nil, err
	}

	m.WasteFound, err = meter.Float64Counter(
		"azprune.waste.found.total",
		metric.WithDescription("Total estimated monthly waste found across scans"),
		metric.WithUnit("USD"),
	)
	if err != nil {
		return nil, err
	}

	m.ScanDuration, err = meter.Float64Histogram(
		"azprune.scan.duration",
		metric.WithDescription("Scan duration"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return m, nil
}
