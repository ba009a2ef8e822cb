// Package scheduler requests exports on cron schedules read from a YAML file.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/carson-networks/fieldops-server/internal/service"
)

// Schedule is one entry of the schedules file.
type Schedule struct {
	Name        string `yaml:"name"`
	Cron        string `yaml:"cron"`
	Kind        string `yaml:"kind"`
	Format      string `yaml:"format"`
	Destination string `yaml:"destination"`
}

type schedulesFile struct {
	Schedules []Schedule `yaml:"schedules"`
}

// Load reads the schedules file. A missing file means no schedules.
func Load(path string) ([]Schedule, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var parsed schedulesFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, s := range parsed.Schedules {
		if s.Name == "" {
			parsed.Schedules[i].Name = fmt.Sprintf("%s-%d", s.Kind, i)
		}
		if s.Cron == "" || s.Kind == "" {
			return nil, fmt.Errorf("schedule %q: cron and kind are required", parsed.Schedules[i].Name)
		}
	}
	return parsed.Schedules, nil
}

type exportRequester interface {
	RequestExport(ctx context.Context, req service.ExportRequest) (*service.Export, error)
}

type Scheduler struct {
	cron    *cron.Cron
	exports exportRequester
	logger  *logrus.Logger
}

// New registers every schedule. Cron expressions use the standard five fields
// plus descriptors such as @daily.
func New(schedules []Schedule, exports exportRequester, logger *logrus.Logger) (*Scheduler, error) {
	s := &Scheduler{
		cron:    cron.New(cron.WithLogger(cronLogger{logger})),
		exports: exports,
		logger:  logger,
	}

	for _, schedule := range schedules {
		if _, err := s.cron.AddFunc(schedule.Cron, s.job(schedule)); err != nil {
			return nil, fmt.Errorf("schedule %q: %w", schedule.Name, err)
		}
	}
	return s, nil
}

func (s *Scheduler) job(schedule Schedule) func() {
	return func() {
		s.run(context.Background(), schedule)
	}
}

func (s *Scheduler) run(ctx context.Context, schedule Schedule) {
	log := s.logger.WithFields(logrus.Fields{
		"schedule": schedule.Name,
		"kind":     schedule.Kind,
	})

	exp, err := s.exports.RequestExport(ctx, service.ExportRequest{
		Kind:        schedule.Kind,
		Format:      schedule.Format,
		Destination: schedule.Destination,
		Trigger:     service.TriggerSchedule,
	})
	if err != nil {
		log.WithError(err).Error("Scheduler.run.requestExport error")
		return
	}
	log.WithField("exportId", exp.ID.String()).Info("Scheduler.run.queued")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops the cron loop and waits for running jobs, or for ctx.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// Len is the number of registered schedules.
func (s *Scheduler) Len() int {
	return len(s.cron.Entries())
}

type cronLogger struct {
	logger *logrus.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.WithFields(fields(keysAndValues)).Debug("Scheduler.cron." + msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.WithError(err).WithFields(fields(keysAndValues)).Error("Scheduler.cron." + msg)
}

func fields(keysAndValues []interface{}) logrus.Fields {
	out := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		out[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}
	return out
}
