package bot

import (
	"math/rand"
	"time"
)

// Tuning holds the thresholds that separate the difficulty tiers.
type Tuning struct {
	// PickupGain is the minimum deadwood-point improvement required to
	// take the discard instead of a blind deck draw.
	PickupGain int
	// FirstDropFloor drops on the first turn when deadwood is at or
	// above it and the hand has no pure sequence. Zero disables drops.
	FirstDropFloor int
	// PoolPressureMargin lowers the drop bar when a full loss would
	// cross the pool limit (hard tier only).
	PoolPressureMargin int
	// ThinkMin/ThinkMax bound the presentation delay.
	ThinkMin time.Duration
	ThinkMax time.Duration
}

var easyTuning = Tuning{
	PickupGain:     5,
	FirstDropFloor: 0,
	ThinkMin:       400 * time.Millisecond,
	ThinkMax:       1500 * time.Millisecond,
}

var mediumTuning = Tuning{
	PickupGain:     2,
	FirstDropFloor: 60,
	ThinkMin:       700 * time.Millisecond,
	ThinkMax:       2200 * time.Millisecond,
}

var hardTuning = Tuning{
	PickupGain:         1,
	FirstDropFloor:     55,
	PoolPressureMargin: 10,
	ThinkMin:           900 * time.Millisecond,
	ThinkMax:           2800 * time.Millisecond,
}

// thinkingTime picks a presentation delay inside the tier's band.
func thinkingTime(t Tuning) time.Duration {
	if t.ThinkMax <= t.ThinkMin {
		return t.ThinkMin
	}
	return t.ThinkMin + time.Duration(rand.Int63n(int64(t.ThinkMax-t.ThinkMin)))
}
