package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the pipeline on a cron spec.
type Scheduler struct {
	cron     *cron.Cron
	pipeline *Pipeline
}

func New(spec string, p *Pipeline) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{cron: c, pipeline: p}
	if _, err := c.AddFunc(spec, func() { s.RunOnce() }); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	// Delay the first run so server startup is not competing with a
	// full fetch cycle.
	const startupDelay = 15 * time.Second
	time.AfterFunc(startupDelay, func() { go s.RunOnce() })
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce triggers a single full pipeline run; also used by the
// manual refresh endpoint and the one-shot commands.
func (s *Scheduler) RunOnce() {
	s.pipeline.RunOnce(context.Background())
}
