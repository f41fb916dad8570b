// Package orchestrator runs the detector registry against a subscription
// and aggregates the findings. Detectors run sequentially; one failing
// detector does not abort the scan, and cancellation is honored between
// detectors so a partial result is always coherent.
package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/thefrederiksen/azprune/detectors"
	"github.com/thefrederiksen/azprune/telemetry"
	"github.com/thefrederiksen/azprune/types"
)

// DefaultFailFastThreshold is how many detectors may fail in a row, before
// any has succeeded, until the scan is declared dead. It catches broken
// credentials and unreachable endpoints without waiting out all 22 queries.
const DefaultFailFastThreshold = 5

// Options tunes a Scanner. The zero value is usable.
type Options struct {
	// FailFastThreshold overrides DefaultFailFastThreshold when > 0.
	FailFastThreshold int
	// OnProgress receives human-readable progress messages.
	OnProgress func(msg string)
	// OnPartial receives the accumulated records after every detector
	// that found something, so callers can render results while the
	// scan is still running.
	OnPartial func(records []types.Record)
	// Metrics, when set, receives scan counters.
	Metrics *telemetry.ScanMetrics
}

// Scanner runs scans and keeps the most recent result.
type Scanner struct {
	query    detectors.QueryFunc
	registry []detectors.Detector
	opts     Options
	logger   *telemetry.Logger

	mu     sync.Mutex
	state  State
	result *Result
}

// NewScanner creates a scanner over the full detector registry.
func NewScanner(query detectors.QueryFunc, opts Options) *Scanner {
	if opts.FailFastThreshold <= 0 {
		opts.FailFastThreshold = DefaultFailFastThreshold
	}
	return &Scanner{
		query:    query,
		registry: detectors.Registry(),
		opts:     opts,
		logger:   telemetry.NewLogger("orchestrator"),
		state:    StateIdle,
	}
}

// WithRegistry replaces the detector registry, used by tests and by the
// explain command to scan a single kind.
func (s *Scanner) WithRegistry(registry []detectors.Detector) *Scanner {
	s.registry = registry
	return s
}

// State returns the current scan state.
func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Result returns the most recent scan result, nil before the first scan.
func (s *Scanner) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Scan runs every detector once and returns the aggregate. A new scan
// replaces the previous result entirely. Scan returns an error only when
// the scan as a whole is declared failed; individual detector errors are
// collected in the result.
func (s *Scanner) Scan(ctx context.Context) (*Result, error) {
	s.setState(StateRunning)

	result := &Result{
		StartTime: time.Now(),
		State:     StateRunning,
		Records:   []types.Record{},
	}

	s.logger.WithContext(ctx).Info().
		Int("detectors", len(s.registry)).
		Msg("starting scan")

	consecutiveFailures := 0
	anySucceeded := false

	for _, d := range s.registry {
		if ctx.Err() != nil {
			s.logger.WithContext(ctx).Warn().
				Str("detector", d.Name).
				Msg("scan cancelled")
			return s.finish(result, StateCancelled), nil
		}

		s.progress(fmt.Sprintf("Scanning %s...", d.Name))

		records, err := d.Detect(ctx, s.query)
		result.DetectorsRun++
		if err != nil {
			result.DetectorErrors = append(result.DetectorErrors, DetectorError{
				Detector: d.Name,
				Error:    err.Error(),
			})
			s.logger.WithContext(ctx).Error().
				Err(err).
				Str("detector", d.Name).
				Msg("detector failed")
			if s.opts.Metrics != nil {
				s.opts.Metrics.DetectorFailures.Add(ctx, 1)
			}

			if !anySucceeded {
				consecutiveFailures++
				if consecutiveFailures >= s.opts.FailFastThreshold {
					err := fmt.Errorf("%d detectors failed in a row, aborting scan: %s",
						consecutiveFailures, result.DetectorErrors[0].Error)
					if s.opts.Metrics != nil {
						s.opts.Metrics.ScansFailed.Add(ctx, 1)
					}
					return s.finish(result, StateFailed), err
				}
			}
			continue
		}

		anySucceeded = true
		if len(records) > 0 {
			result.Records = append(result.Records, records...)
			s.partial(result.Records)
		}
	}

	result.TotalWaste = types.TotalCost(result.Records)
	s.progress(fmt.Sprintf("Scan complete. Found %d orphaned resources.", len(result.Records)))

	if s.opts.Metrics != nil {
		s.opts.Metrics.ScansCompleted.Add(ctx, 1)
		s.opts.Metrics.OrphansFound.Add(ctx, int64(len(result.Records)))
		s.opts.Metrics.WasteFound.Add(ctx, result.TotalWaste)
	}

	finished := s.finish(result, StateCompleted)

	s.logger.WithContext(ctx).Info().
		Int("records", len(result.Records)).
		Int("detector_errors", len(result.DetectorErrors)).
		Float64("total_waste", result.TotalWaste).
		Dur("duration", result.Duration).
		Msg("scan complete")

	return finished, nil
}

func (s *Scanner) finish(result *Result, state State) *Result {
	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)
	result.State = state
	if result.TotalWaste == 0 {
		result.TotalWaste = types.TotalCost(result.Records)
	}

	s.mu.Lock()
	s.state = state
	s.result = result
	s.mu.Unlock()

	return result
}

func (s *Scanner) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Scanner) progress(msg string) {
	if s.opts.OnProgress != nil {
		s.opts.OnProgress(msg)
	}
}

func (s *Scanner) partial(records []types.Record) {
	if s.opts.OnPartial != nil {
		s.opts.OnPartial(records)
	}
}
