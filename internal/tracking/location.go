package tracking

import (
	"context"
	"time"
)

// Fix is one GPS reading. SpeedMs and AccuracyM are negative when the
// sensor did not report them.
type Fix struct {
	Latitude  float64
	Longitude float64
	Timestamp time.Time
	SpeedMs   float64
	AccuracyM float64
}

// SubscribeOptions tunes a location stream.
type SubscribeOptions struct {
	// MinDistanceMeters suppresses fixes closer than this to the last
	// delivered one, where the source supports it.
	MinDistanceMeters float64
	// Interval is the minimum time between fixes.
	Interval time.Duration
}

// Subscription is a handle on a running location stream.
type Subscription interface {
	Unsubscribe()
}

// Source delivers GPS fixes. The engine does not care whether they come
// from real hardware or a replayed trace.
type Source interface {
	// HasPermission reports whether location access is already granted.
	HasPermission(ctx context.Context) bool

	// RequestPermission prompts for location access where the platform
	// supports prompting.
	RequestPermission(ctx context.Context) (bool, error)

	Subscribe(ctx context.Context, opts SubscribeOptions, handler func(Fix)) (Subscription, error)
}
