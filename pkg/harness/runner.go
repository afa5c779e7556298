package harness

import (
	"fmt"
	"time"

	"github.com/fin-tools/descuento/pkg/models/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const reportTitle = "INFORME DE PRUEBAS UNITARIAS - PROGRAMA DESCUENTOS"

// Case is one independent verification scenario. Run returns nil when the
// scenario holds and a descriptive error when it does not.
type Case struct {
	Name string
	Run  func() error
}

// Collector accumulates case outcomes in execution order. It replaces the
// usual package-level result singleton with an explicit object the runner
// owns and hands to the reporter.
type Collector struct {
	records []domain.TestRecord
}

func (c *Collector) Add(name string, status domain.TestStatus, errMsg string) {
	c.records = append(c.records, domain.TestRecord{
		Name:       name,
		Status:     status,
		ErrMessage: errMsg,
	})
}

// Records returns a copy so callers cannot mutate collected outcomes.
func (c *Collector) Records() []domain.TestRecord {
	out := make([]domain.TestRecord, len(c.records))
	copy(out, c.records)
	return out
}

// Runner executes a battery of cases and assembles the run report.
type Runner struct {
	logger zerolog.Logger
	now    func() time.Time
}

func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{
		logger: logger,
		now:    time.Now,
	}
}

// Run executes every case in order, regardless of earlier failures, and
// returns the report of the whole battery. The report is assembled only
// after the last case has finished.
func (r *Runner) Run(cases []Case) *domain.RunReport {
	collector := &Collector{}
	started := r.now()

	for _, c := range cases {
		if err := r.runCase(c); err != nil {
			collector.Add(c.Name, domain.StatusFail, err.Error())
			r.logger.Warn().Str("case", c.Name).Err(err).Msg("case failed")
			continue
		}
		collector.Add(c.Name, domain.StatusPass, "")
		r.logger.Debug().Str("case", c.Name).Msg("case passed")
	}

	report := &domain.RunReport{
		RunID:      uuid.New(),
		Title:      reportTitle,
		StartedAt:  started,
		FinishedAt: r.now(),
		Records:    collector.Records(),
	}

	r.logger.Info().
		Str("run_id", report.RunID.String()).
		Int("total", report.Total()).
		Int("passed", report.Passed()).
		Int("failed", report.Failed()).
		Dur("duration", report.Duration()).
		Msg("battery finished")

	return report
}

// runCase isolates a single case: a panic becomes an error so the rest of
// the battery still runs and gets recorded.
func (r *Runner) runCase(c Case) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic: %v", rec)
		}
	}()
	return c.Run()
}
