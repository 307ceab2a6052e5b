package horserace

import (
	"context"
	"time"

	"voicebank/service"
)

// Scheduler fires RunDueRaces once per wall-clock minute. The service
// decides whether the minute is a race start, so a restart mid-minute never
// double-runs a race in this process.
type Scheduler struct {
	raceService service.RaceService
	runner      service.GuildRaceRunner
}

func NewScheduler(raceService service.RaceService, runner service.GuildRaceRunner) *Scheduler {
	return &Scheduler{
		raceService: raceService,
		runner:      runner,
	}
}

// Start runs the scheduling loop until ctx is cancelled
func (s *Scheduler) Start(ctx context.Context) {
	go s.loop(ctx)
}

func (s *Scheduler) loop(ctx context.Context) {
	ticker := time.NewTicker(15 * time.Second)
	defer ticker.Stop()

	lastMinute := -1
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.Minute() == lastMinute {
				continue
			}
			lastMinute = now.Minute()
			go s.raceService.RunDueRaces(ctx, now, s.runner)
		}
	}
}
