// Package tracking turns a stream of GPS fixes into odometer kilometers.
// A state machine filters noise (bad accuracy, impossible jumps, parking
// lot drift) so only plausible driving distance reaches the vehicle.
package tracking

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/repository"
)

// State is the trip recorder's current mode.
type State string

const (
	// StateIdle means no trip is in progress.
	StateIdle State = "idle"
	// StateDetecting means the stream is live but driving has not started.
	StateDetecting State = "detecting"
	// StateRecording means distance is being accumulated.
	StateRecording State = "recording"
	// StatePaused means the vehicle has been stationary past the timeout.
	StatePaused State = "paused"
)

// SessionStatus marks a trip session as running or finished.
type SessionStatus string

const (
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// Settings are the noise-filtering thresholds.
type Settings struct {
	Enabled           bool
	MinSpeedKmh       float64
	MaxAccuracyMeters float64
	MinDistanceMeters float64
	StationaryTimeout time.Duration
}

// DefaultSettings returns the thresholds tuned for city driving.
func DefaultSettings() Settings {
	return Settings{
		Enabled:           false,
		MinSpeedKmh:       10,
		MaxAccuracyMeters: 50,
		MinDistanceMeters: 20,
		StationaryTimeout: 2 * time.Minute,
	}
}

// SettingsUpdate is a partial update of the thresholds; nil fields are
// untouched.
type SettingsUpdate struct {
	Enabled           *bool
	MinSpeedKmh       *float64
	MaxAccuracyMeters *float64
	MinDistanceMeters *float64
	StationaryTimeout *time.Duration
}

// Session is one trip from start to stop.
type Session struct {
	ID         string
	VehicleID  string
	StartTime  time.Time
	EndTime    time.Time
	Points     []Fix
	DistanceKm float64
	Status     SessionStatus
}

// Listener observes state transitions and distance growth. Listeners are
// invoked synchronously and must not call back into the engine.
type Listener func(state State, sessionKm float64)

// Engine is the trip recorder. All mutable state is guarded by one mutex;
// fixes, timer expiry and API calls may arrive on different goroutines.
type Engine struct {
	repo   *repository.Repository
	store  kvstore.Store
	source Source

	mu              sync.Mutex
	state           State
	settings        Settings
	session         *Session
	lastFix         *Fix
	sessionKm       float64
	sub             Subscription
	stationaryTimer *time.Timer
	listeners       map[int]Listener
	nextListenerID  int

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

// NewEngine creates an idle engine over the given fix source and storage.
func NewEngine(repo *repository.Repository, store kvstore.Store, source Source) *Engine {
	return &Engine{
		repo:      repo,
		store:     store,
		source:    source,
		state:     StateIdle,
		settings:  DefaultSettings(),
		listeners: make(map[int]Listener),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// State returns the current mode.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// SessionKm returns the distance accumulated by the running session.
func (e *Engine) SessionKm() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.sessionKm
}

// Settings returns a copy of the active thresholds.
func (e *Engine) Settings() Settings {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.settings
}

// UpdateSettings applies a partial threshold update.
func (e *Engine) UpdateSettings(update SettingsUpdate) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if update.Enabled != nil {
		e.settings.Enabled = *update.Enabled
	}
	if update.MinSpeedKmh != nil {
		e.settings.MinSpeedKmh = *update.MinSpeedKmh
	}
	if update.MaxAccuracyMeters != nil {
		e.settings.MaxAccuracyMeters = *update.MaxAccuracyMeters
	}
	if update.MinDistanceMeters != nil {
		e.settings.MinDistanceMeters = *update.MinDistanceMeters
	}
	if update.StationaryTimeout != nil {
		e.settings.StationaryTimeout = *update.StationaryTimeout
	}
}

// AddListener registers a listener and returns its removal func.
func (e *Engine) AddListener(l Listener) func() {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.nextListenerID
	e.nextListenerID++
	e.listeners[id] = l
	return func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		delete(e.listeners, id)
	}
}

func (e *Engine) notifyLocked() {
	for _, l := range e.listeners {
		l(e.state, e.sessionKm)
	}
}

func (e *Engine) setStateLocked(s State) {
	e.state = s
	e.notifyLocked()
}

// Start opens a trip session for the selected vehicle and begins consuming
// fixes. Returns false without error when a trip is already in progress or
// no vehicle is selected.
func (e *Engine) Start(ctx context.Context) (bool, error) {
	e.mu.Lock()
	if e.state != StateIdle {
		e.mu.Unlock()
		return false, nil
	}
	e.mu.Unlock()

	vehicle, ok := e.repo.SelectedVehicle(ctx)
	if !ok {
		return false, nil
	}

	if !e.source.HasPermission(ctx) {
		granted, err := e.source.RequestPermission(ctx)
		if err != nil {
			return false, err
		}
		if !granted {
			logging.Warn("location permission denied, tracking not started")
			return false, nil
		}
	}

	e.mu.Lock()
	// The lock was dropped for the vehicle and permission lookups; a
	// concurrent Start may have won the race in the meantime.
	if e.state != StateIdle {
		e.mu.Unlock()
		return false, nil
	}
	e.session = &Session{
		ID:        "trip_" + e.newID(),
		VehicleID: vehicle.ID,
		StartTime: e.now(),
		Status:    SessionActive,
	}
	e.sessionKm = 0
	e.lastFix = nil
	e.setStateLocked(StateDetecting)
	opts := SubscribeOptions{
		MinDistanceMeters: e.settings.MinDistanceMeters,
		Interval:          3 * time.Second,
	}
	e.mu.Unlock()

	sub, err := e.source.Subscribe(ctx, opts, func(fix Fix) {
		e.handleFix(fix)
	})
	if err != nil {
		logging.Error("failed to start location stream", "error", err)
		e.mu.Lock()
		e.session = nil
		e.setStateLocked(StateIdle)
		e.mu.Unlock()
		return false, err
	}

	e.mu.Lock()
	e.sub = sub
	e.mu.Unlock()
	return true, nil
}

// handleFix advances the state machine with one GPS reading.
func (e *Engine) handleFix(fix Fix) {
	e.mu.Lock()
	defer e.mu.Unlock()

	speedKmh := SpeedToKmh(fix.SpeedMs)
	drivingNow := isDriving(speedKmh, e.settings.MinSpeedKmh)

	switch e.state {
	case StateDetecting:
		if drivingNow {
			e.setStateLocked(StateRecording)
			e.lastFix = &fix
			if e.session != nil {
				e.session.Points = append(e.session.Points, fix)
			}
			e.clearStationaryTimerLocked()
		}

	case StateRecording:
		if validFix(fix, e.lastFix, e.settings) {
			if e.lastFix != nil {
				distanceKm := HaversineKm(e.lastFix.Latitude, e.lastFix.Longitude, fix.Latitude, fix.Longitude)
				if distanceKm >= e.settings.MinDistanceMeters/1000 {
					e.sessionKm += distanceKm
					if e.session != nil {
						e.session.DistanceKm += distanceKm
						e.session.Points = append(e.session.Points, fix)
					}
					e.notifyLocked()
				}
			}
			// The reference point always advances past a valid fix, even
			// one below the distance floor, so drift cannot pile up into
			// a phantom segment.
			e.lastFix = &fix
		}

		if drivingNow {
			e.clearStationaryTimerLocked()
		} else {
			e.startStationaryTimerLocked()
		}

	case StatePaused:
		if drivingNow {
			e.setStateLocked(StateRecording)
			e.lastFix = &fix
			e.clearStationaryTimerLocked()
		}
	}
}

// startStationaryTimerLocked arms the pause timer if it is not already
// running. The timer keeps its original deadline across slow fixes.
func (e *Engine) startStationaryTimerLocked() {
	if e.stationaryTimer != nil {
		return
	}
	e.stationaryTimer = time.AfterFunc(e.settings.StationaryTimeout, func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.stationaryTimer = nil
		if e.state == StateRecording {
			e.setStateLocked(StatePaused)
		}
	})
}

func (e *Engine) clearStationaryTimerLocked() {
	if e.stationaryTimer != nil {
		e.stationaryTimer.Stop()
		e.stationaryTimer = nil
	}
}

// Stop ends the trip, folds the session distance into the persistent
// counter and merges the counter into the vehicle odometer. Returns the
// session distance in km. Safe to call when idle.
func (e *Engine) Stop(ctx context.Context) float64 {
	e.mu.Lock()
	e.clearStationaryTimerLocked()
	if e.sub != nil {
		e.sub.Unsubscribe()
		e.sub = nil
	}
	sessionKm := e.sessionKm
	if e.session != nil {
		e.session.EndTime = e.now()
		e.session.Status = SessionCompleted
		e.session = nil
	}
	e.sessionKm = 0
	e.lastFix = nil
	e.setStateLocked(StateIdle)
	e.mu.Unlock()

	if sessionKm > 0 {
		e.AddAccumulatedKm(ctx, sessionKm)
		e.SyncAccumulatedKm(ctx)
	}

	return sessionKm
}

// TrackingEnabled reports the persisted auto-tracking switch.
func (e *Engine) TrackingEnabled(ctx context.Context) bool {
	raw, ok, err := e.store.Get(ctx, kvstore.KeyTrackingEnabled)
	return err == nil && ok && raw == "true"
}

// SetTrackingEnabled persists the auto-tracking switch.
func (e *Engine) SetTrackingEnabled(ctx context.Context, enabled bool) {
	value := "false"
	if enabled {
		value = "true"
	}
	if err := e.store.Set(ctx, kvstore.KeyTrackingEnabled, value); err != nil {
		logging.Error("failed to write tracking switch", "error", err)
	}
}

// AccumulatedKm returns the persistent distance counter: trip distance
// that has not yet been merged into a vehicle odometer.
func (e *Engine) AccumulatedKm(ctx context.Context) float64 {
	raw, ok, err := e.store.Get(ctx, kvstore.KeyAccumulatedKm)
	if err != nil || !ok {
		return 0
	}
	km, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return km
}

// AddAccumulatedKm grows the persistent counter and returns the new total.
func (e *Engine) AddAccumulatedKm(ctx context.Context, km float64) float64 {
	total := e.AccumulatedKm(ctx) + km
	if err := e.store.Set(ctx, kvstore.KeyAccumulatedKm, strconv.FormatFloat(total, 'f', -1, 64)); err != nil {
		logging.Error("failed to write accumulated km", "error", err)
		return 0
	}
	return total
}

// ResetAccumulatedKm zeroes the persistent counter.
func (e *Engine) ResetAccumulatedKm(ctx context.Context) {
	if err := e.store.Set(ctx, kvstore.KeyAccumulatedKm, "0"); err != nil {
		logging.Error("failed to reset accumulated km", "error", err)
	}
}

// SyncAccumulatedKm merges the persistent counter into the selected
// vehicle's odometer, rounding to whole km, and resets the counter. When
// no vehicle is selected the counter is left intact so a later sync can
// retry. Returns the resulting odometer reading and whether a vehicle was
// found.
func (e *Engine) SyncAccumulatedKm(ctx context.Context) (int, bool) {
	vehicle, ok := e.repo.SelectedVehicle(ctx)
	if !ok {
		return 0, false
	}

	accumulated := e.AccumulatedKm(ctx)
	if accumulated <= 0 {
		return vehicle.CurrentKm, true
	}

	newKm := vehicle.CurrentKm + int(accumulated+0.5)
	e.repo.UpdateVehicleKm(ctx, vehicle.ID, newKm)
	e.ResetAccumulatedKm(ctx)

	logging.Info("accumulated km merged into odometer",
		"vehicleId", vehicle.ID, "accumulatedKm", accumulated, "newKm", newKm)
	return newKm, true
}
