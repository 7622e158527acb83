// internal/store/janitor.go
package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var ErrEmptyCronExpr = errors.New("cron expression is required")

// Janitor sweeps idle proposal sessions out of a Store on a cron cadence.
// Abandoned editing sessions are the only thing that grows without bound in
// this service, so the janitor owns its scheduler outright.
type Janitor struct {
	store     *Store
	maxIdle   time.Duration
	scheduler gocron.Scheduler
	stopOnce  sync.Once
	stopErr   error
}

// NewJanitor builds a janitor that prunes sessions idle longer than maxIdle
// on the given cron cadence. Call Start to begin sweeping.
func NewJanitor(s *Store, cronExpr string, maxIdle time.Duration) (*Janitor, error) {
	if strings.TrimSpace(cronExpr) == "" {
		return nil, ErrEmptyCronExpr
	}

	sched, err := gocron.NewScheduler(
		gocron.WithGlobalJobOptions(
			gocron.WithEventListeners(
				gocron.AfterJobRunsWithPanic(func(jobID uuid.UUID, jobName string, recoverData any) {
					log.Error().
						Str("job_id", jobID.String()).
						Interface("panic", recoverData).
						Msg("Session sweep panicked")
				}),
			),
		),
	)
	if err != nil {
		return nil, err
	}

	j := &Janitor{store: s, maxIdle: maxIdle, scheduler: sched}
	if _, err := sched.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(j.sweep),
		gocron.WithName("session-janitor"),
	); err != nil {
		sched.Shutdown()
		return nil, err
	}

	log.Info().Str("cron", cronExpr).Dur("max_idle", maxIdle).Msg("Session janitor registered")
	return j, nil
}

func (j *Janitor) sweep() {
	pruned := j.store.PruneIdle(j.maxIdle)
	log.Debug().Int("pruned", pruned).Int("remaining", j.store.Count()).Msg("Session sweep completed")
}

// Start begins running sweeps on the configured cadence.
func (j *Janitor) Start() {
	log.Info().Msg("Session janitor starting")
	j.scheduler.Start()
}

// Stop shuts the janitor down. In-flight sweeps finish first.
func (j *Janitor) Stop() error {
	j.stopOnce.Do(func() {
		log.Info().Msg("Session janitor stopping")
		j.stopErr = j.scheduler.Shutdown()
	})
	return j.stopErr
}
