package chainwatcher

import (
	"time"

	"github.com/robfig/cron/v3"
)

var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// cronIntervalMs estimates a 6-field cron schedule's minimum firing
// interval by measuring the gap between its next two occurrences after now,
// used to derive recommended_past_blocks (§4.6) when a network leaves
// max_past_blocks unset.
func cronIntervalMs(schedule string) (uint64, error) {
	sched, err := cronParser.Parse(schedule)
	if err != nil {
		return 0, err
	}
	now := time.Now()
	first := sched.Next(now)
	second := sched.Next(first)
	return uint64(second.Sub(first).Milliseconds()), nil
}
