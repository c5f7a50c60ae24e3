package service

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// PeriodCreator is the slice of the period usecase the cron needs.
// Creation is idempotent by label: an existing period is left alone.
type PeriodCreator interface {
	EnsurePeriod(ctx context.Context, label string, start, end, deadline time.Time) (created bool, err error)
}

// PeriodCronService creates the upcoming quarter's duty period ahead
// of time so physicians can start declaring availability.
type PeriodCronService struct {
	log     *logrus.Logger
	creator PeriodCreator
	spec    string
	cron    *cron.Cron
}

func NewPeriodCronService(log *logrus.Logger, creator PeriodCreator, spec string) *PeriodCronService {
	return &PeriodCronService{
		log:     log,
		creator: creator,
		spec:    spec,
		cron:    cron.New(),
	}
}

// Start registers and launches the cron job. The returned error only
// reflects an invalid cron spec.
func (s *PeriodCronService) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return fmt.Errorf("failed to register period cron: %w", err)
	}
	s.cron.Start()
	s.log.Infof("Period cron started with spec %q", s.spec)
	return nil
}

// Stop halts the scheduler and waits for a running job to finish.
func (s *PeriodCronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *PeriodCronService) run() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	label, start, end := NextQuarter(time.Now())
	// Availability closes two weeks before the quarter starts.
	deadline := start.AddDate(0, 0, -14)

	created, err := s.creator.EnsurePeriod(ctx, label, start, end, deadline)
	if err != nil {
		s.log.Warnf("Failed to ensure period %s: %+v", label, err)
		return
	}
	if created {
		s.log.Infof("Created duty period %s (%s - %s)", label, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
}

// NextQuarter returns the label and date range of the quarter after
// the one containing now, e.g. ("2026-Q2", Apr 1, Jun 30).
func NextQuarter(now time.Time) (string, time.Time, time.Time) {
	quarter := (int(now.Month())-1)/3 + 1
	year := now.Year()

	quarter++
	if quarter > 4 {
		quarter = 1
		year++
	}

	startMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, startMonth, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 3, -1)
	label := fmt.Sprintf("%d-Q%d", year, quarter)

	return label, start, end
}
