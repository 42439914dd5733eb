// Package tileerr implements the §7 error model: typed error kinds for
// each pipeline stage, and the per-tile error aggregation policy — up to
// ten per-tile failures are reported verbatim, the rest are only counted,
// so one systematically bad LOD doesn't flood the log with repeats of the
// same underlying fault.
package tileerr

import "fmt"

// Kind classifies which stage produced an error, so the orchestrator can
// decide whether it is fatal (ingestion, projection) or recoverable
// (a single tile's encode failure, a contour-fill failure for one layer).
type Kind int

const (
	KindIngest Kind = iota
	KindContour
	KindMount
	KindProject
	KindClip
	KindSimplify
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindIngest:
		return "ingest"
	case KindContour:
		return "contour"
	case KindMount:
		return "mount"
	case KindProject:
		return "project"
	case KindClip:
		return "clip"
	case KindSimplify:
		return "simplify"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error wraps an underlying error with the stage that produced it and,
// for tile-scoped errors, the tile coordinates.
type Error struct {
	Kind     Kind
	LOD      int
	Col, Row int
	Err      error
}

func (e *Error) Error() string {
	if e.Kind == KindEncode || e.Kind == KindClip || e.Kind == KindSimplify {
		return fmt.Sprintf("%s: tile %d/%d/%d: %v", e.Kind, e.LOD, e.Col, e.Row, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// maxReported is how many per-tile errors are kept verbatim; the rest
// only increment Aggregator's count.
const maxReported = 10

// Aggregator collects per-tile errors across a single pipeline run: the
// first maxReported are kept, the remainder are only counted, per §7.
type Aggregator struct {
	reported []*Error
	total    int
}

// Add records one tile error.
func (a *Aggregator) Add(err *Error) {
	a.total++
	if len(a.reported) < maxReported {
		a.reported = append(a.reported, err)
	}
}

// Reported returns the verbatim errors kept so far.
func (a *Aggregator) Reported() []*Error { return a.reported }

// Total returns how many tile errors were recorded, including ones not
// kept verbatim.
func (a *Aggregator) Total() int { return a.total }

// Err returns a single summarizing error if any tile failed, or nil.
func (a *Aggregator) Err() error {
	if a.total == 0 {
		return nil
	}
	dropped := a.total - len(a.reported)
	if dropped <= 0 {
		return fmt.Errorf("%d tile(s) failed: %v", a.total, a.reported)
	}
	return fmt.Errorf("%d tile(s) failed (showing first %d): %v, plus %d more", a.total, len(a.reported), a.reported, dropped)
}
