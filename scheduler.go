package painter

import (
	"context"
	"fmt"
	"image"
	"io"
	"net/netip"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// State tracks the lifecycle of one paint run.
type State int

const (
	Idle State = iota
	Running
	Done
	Cancelled
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Done:
		return "done"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// PaintJob is the full configuration of one paint run. It is built by the
// caller, threaded through every component call and never read from
// shared state.
type PaintJob struct {
	Image  *image.NRGBA
	Origin image.Point
	Canvas Canvas

	// Protocol encodes pixels into destination addresses. Defaults to
	// ProtocolV1 when nil.
	Protocol Protocol

	// Policy decides how unrepresentable colors are handled. With
	// StrictColors the first UnsupportedColorError aborts the run.
	Policy ColorPolicy

	// Delay is the minimum interval between successive pixels. Zero
	// means no explicit wait.
	Delay time.Duration

	Reverse bool
	DryRun  bool
}

// PixelFailure records one pixel the run could not paint.
type PixelFailure struct {
	Coord image.Point
	Err   error
}

// Summary is the outcome of one paint run. Per-pixel skips and failures
// never fail the run itself; they are surfaced here for the caller.
type Summary struct {
	RunID         uuid.UUID
	State         State
	Total         int
	Painted       int
	SkippedBounds int
	SkippedColor  int
	Failed        int
	Elapsed       time.Duration

	// Targets holds the encoded destination of every pixel a dry run
	// would have transmitted. Empty on live runs.
	Targets []netip.Addr

	// Failures holds the per-pixel errors recorded during the run.
	Failures []PixelFailure
}

func (s Summary) String() string {
	return fmt.Sprintf("run %s %s: %d/%d painted, %d skipped by bounds, %d skipped by color policy, %d failed",
		s.RunID, s.State, s.Painted, s.Total, s.SkippedBounds, s.SkippedColor, s.Failed)
}

// Scheduler runs one PaintJob to completion: it consumes the pixel
// stream one pixel per step, paces emission by the job delay and
// delegates delivery to the Transmitter. A single sequential loop is
// deliberate; the delay exists to protect a shared external resource and
// concurrent sends would defeat it.
type Scheduler struct {
	job   PaintJob
	tx    Transmitter
	state State
	runID uuid.UUID

	// Progress receives the per-pixel counter line. Defaults to
	// io.Discard.
	Progress io.Writer
}

// NewScheduler returns an idle scheduler for the given job.
func NewScheduler(job PaintJob, tx Transmitter) *Scheduler {
	if job.Protocol == nil {
		job.Protocol = ProtocolV1{}
	}
	return &Scheduler{
		job:      job,
		tx:       tx,
		state:    Idle,
		runID:    uuid.New(),
		Progress: io.Discard,
	}
}

// RunID identifies this run in progress output and the summary.
func (s *Scheduler) RunID() uuid.UUID {
	return s.runID
}

// State returns the scheduler's current lifecycle state.
func (s *Scheduler) State() State {
	return s.state
}

// Run executes the job until the pixel stream is exhausted or ctx is
// cancelled. Cancellation is cooperative, checked once per pixel
// boundary; pixels already sent stay sent. The returned error is non-nil
// only when the run could not proceed at all, or when the strict color
// policy aborted it; per-pixel failures are reported through the summary
// alone.
func (s *Scheduler) Run(ctx context.Context) (Summary, error) {
	if s.state != Idle {
		return Summary{}, errors.Errorf("scheduler already ran (state %s)", s.state)
	}
	if s.job.Image == nil {
		return Summary{}, errors.New("paint job has no image")
	}
	if !s.job.DryRun && s.tx == nil {
		return Summary{}, errors.New("paint job has no transmitter")
	}

	src := NewPixelSource(s.job.Image, s.job.Origin, s.job.Canvas, s.job.Reverse)
	summary := Summary{
		RunID: s.runID,
		Total: src.Len(),
	}

	s.state = Running
	fmt.Fprintf(s.Progress, "run %s\n", s.runID)
	start := time.Now()

	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	step := 0
	for {
		select {
		case <-ctx.Done():
			s.state = Cancelled
			summary.State = Cancelled
			summary.SkippedBounds += src.SkippedBounds()
			summary.Elapsed = time.Since(start)
			return summary, nil
		default:
		}

		px, ok := src.Next()
		if !ok {
			break
		}

		addr, err := s.job.Protocol.Encode(s.job.Canvas, px.Coord, px.Color)
		if err != nil {
			var colorErr *UnsupportedColorError
			var boundsErr *BoundsError
			switch {
			case errors.As(err, &colorErr):
				if s.job.Policy == StrictColors {
					s.state = Done
					summary.State = Done
					summary.SkippedColor++
					summary.SkippedBounds += src.SkippedBounds()
					summary.Elapsed = time.Since(start)
					return summary, errors.Wrap(err, "strict color policy aborted the run")
				}
				summary.SkippedColor++
			case errors.As(err, &boundsErr):
				summary.SkippedBounds++
			default:
				summary.Failed++
				summary.Failures = append(summary.Failures, PixelFailure{Coord: px.Coord, Err: err})
			}
			continue
		}

		if s.job.DryRun {
			summary.Targets = append(summary.Targets, addr)
			summary.Painted++
		} else if err := s.tx.Transmit(ctx, addr); err != nil {
			summary.Failed++
			summary.Failures = append(summary.Failures, PixelFailure{Coord: px.Coord, Err: err})
		} else {
			summary.Painted++
		}

		step++
		fmt.Fprintf(s.Progress, "\rDrawn pixels: %d/%d", step, summary.Total)

		if s.job.Delay > 0 {
			timer.Reset(s.job.Delay)
			select {
			case <-ctx.Done():
				if !timer.Stop() {
					<-timer.C
				}
				s.state = Cancelled
				summary.State = Cancelled
				summary.SkippedBounds += src.SkippedBounds()
				summary.Elapsed = time.Since(start)
				return summary, nil
			case <-timer.C:
			}
		}
	}

	s.state = Done
	summary.State = Done
	summary.SkippedBounds += src.SkippedBounds()
	summary.Elapsed = time.Since(start)
	return summary, nil
}
