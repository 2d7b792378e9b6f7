// Package generator synthesizes the demo's business events by composing
// the randomization primitives in internal/utils with faker-backed value
// generators. Every generator captures an immutable configuration at
// construction and validates it eagerly; generation itself never fails on
// configuration.
package generator

import (
	"time"

	"github.com/retaildemo/eventgen/internal/config"
	"github.com/retaildemo/eventgen/internal/utils"
)

// Timing bundles the emission-timing behavior every event stream shares:
// cadence, timestamp jitter, duplicate emission and timestamp formatting.
// Event generators hold one by value instead of inheriting it.
type Timing struct {
	Interval       time.Duration
	MaxDelay       time.Duration
	DuplicateRatio float64
	Format         string
}

// NewTiming builds a Timing from a stream's configuration.
func NewTiming(cfg config.StreamConfig) Timing {
	return Timing{
		Interval:       cfg.Interval,
		MaxDelay:       cfg.MaxDelay,
		DuplicateRatio: cfg.DuplicateRatio,
		Format:         config.TimestampFormat,
	}
}

// Now returns the current time shifted by a random offset in [0, MaxDelay].
func (t Timing) Now(rng *utils.Random) time.Time {
	return rng.Jitter(time.Now(), t.MaxDelay)
}

// ShouldDuplicate decides whether the event just emitted should be
// published a second time.
func (t Timing) ShouldDuplicate(rng *utils.Random) bool {
	return rng.Probability(t.DuplicateRatio)
}

// FormatTimestamp renders a timestamp the way the event payloads carry it.
func (t Timing) FormatTimestamp(ts time.Time) string {
	return ts.Format(t.Format)
}
