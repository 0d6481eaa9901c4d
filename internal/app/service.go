// Package service runs the pay-equity audit: partition, rank,
// classify, and reassemble in original roster order.
package service

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/syamvenkatasai/payequity/internal/domain/bias"
	"github.com/syamvenkatasai/payequity/internal/domain/cohort"
	"github.com/syamvenkatasai/payequity/internal/domain/model"
	"github.com/syamvenkatasai/payequity/internal/domain/ranking"
	"github.com/syamvenkatasai/payequity/pkg/logger"
	"github.com/syamvenkatasai/payequity/pkg/metrics"
)

// Service evaluates rosters. Cohorts are independent of one another,
// so they fan out to a bounded worker pool; the merge back into input
// order is keyed by each row's original index and is deterministic
// regardless of completion order.
type Service struct {
	workerCount int
	logger      logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithWorkerCount sets the number of cohort evaluation workers.
func WithWorkerCount(count int) Option {
	return func(s *Service) {
		if count > 0 {
			s.workerCount = count
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		workerCount: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("audit")
	}
	return s
}

// Run audits one employee population under the given threshold and
// returns the same rows in input order, each carrying its finding
// string (empty when none). Every input row appears exactly once in
// the output, including rows in cohorts too small to analyze and rows
// whose compensation could not be read.
func (s *Service) Run(ctx context.Context, rows []model.Employee, threshold float64) ([]model.Employee, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("%w: threshold %v", ErrInvalidThreshold, threshold)
	}
	runID := uuid.NewString()
	start := time.Now()

	out := make([]model.Employee, len(rows))
	for i, row := range rows {
		row.Findings = ""
		out[i] = row
	}

	cohorts := cohort.Partition(rows)
	s.logger.Info(ctx, "partitioned roster",
		logger.String("runID", runID),
		logger.Int("rows", len(rows)),
		logger.Int("cohorts", len(cohorts)),
		logger.Float64("threshold", threshold),
	)
	metrics.UpdateWorkerCount(s.workerCount)

	classifier := bias.New(threshold)
	jobs := make(chan cohort.Cohort)
	var wg sync.WaitGroup
	for w := 0; w < s.workerCount; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				s.evaluate(ctx, classifier, c, out)
			}
		}()
	}

	var err error
feed:
	for _, c := range cohorts {
		if ctx.Err() != nil {
			err = fmt.Errorf("audit canceled: %w", ctx.Err())
			break
		}
		select {
		case <-ctx.Done():
			err = fmt.Errorf("audit canceled: %w", ctx.Err())
			break feed
		case jobs <- c:
		}
	}
	close(jobs)
	wg.Wait()
	if err != nil {
		return nil, err
	}

	metrics.RecordAuditDuration(time.Since(start).Seconds())
	s.logger.Info(ctx, "audit complete",
		logger.String("runID", runID),
		logger.Int("rows", len(out)),
		logger.Any("elapsed", time.Since(start)),
	)
	return out, nil
}

// evaluate ranks and classifies one cohort, writing each member's
// finding back into the output slice at its original row index. Row
// indexes are unique across cohorts, so workers write to disjoint
// elements and no locking is needed.
func (s *Service) evaluate(ctx context.Context, classifier bias.Classifier, c cohort.Cohort, out []model.Employee) {
	start := time.Now()
	ranked := ranking.Rank(c)
	metrics.RecordCohort(ranked.Analyzable())
	if !ranked.Analyzable() {
		return
	}

	outcomes := classifier.EvaluateCohort(ranked)
	for i, outcome := range outcomes {
		member := ranked.Members[i]
		row := member.Employee
		row.Findings = outcome.String()
		out[row.Row] = row

		for _, f := range outcome.Findings {
			metrics.RecordFinding(string(f.Attribute))
			s.logger.Debug(ctx, "finding emitted",
				logger.String("cohort", c.Key.String()),
				logger.String("employee", row.Number),
				logger.String("attribute", string(f.Attribute)),
				logger.String("cited", f.CitedEmployee),
			)
		}
	}
	metrics.RecordCohortLatency(time.Since(start).Seconds())
}
