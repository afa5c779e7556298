package domain

import (
	"time"

	"github.com/google/uuid"
)

// TestStatus represents the outcome of a single executed case.
type TestStatus int

const (
	StatusPass TestStatus = iota
	StatusFail
)

func (s TestStatus) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	default:
		return "UNKNOWN"
	}
}

// TestRecord captures the outcome of one case. Records are immutable once
// appended; their order is the order the cases ran in.
type TestRecord struct {
	Name       string
	Status     TestStatus
	ErrMessage string
}

// RunReport represents a complete verification run.
type RunReport struct {
	RunID      uuid.UUID
	Title      string
	StartedAt  time.Time
	FinishedAt time.Time
	Records    []TestRecord
}

func (r *RunReport) Total() int { return len(r.Records) }

func (r *RunReport) Passed() int {
	n := 0
	for _, rec := range r.Records {
		if rec.Status == StatusPass {
			n++
		}
	}
	return n
}

func (r *RunReport) Failed() int { return r.Total() - r.Passed() }

// PassRate returns the share of passing cases as a percentage. An empty run
// reports 0.
func (r *RunReport) PassRate() float64 {
	if r.Total() == 0 {
		return 0
	}
	return float64(r.Passed()) / float64(r.Total()) * 100
}

func (r *RunReport) Duration() time.Duration { return r.FinishedAt.Sub(r.StartedAt) }
