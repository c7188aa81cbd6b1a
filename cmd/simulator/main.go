package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"auto-pana/garaje/internal/catalog"
	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
	"auto-pana/garaje/internal/models"
	"auto-pana/garaje/internal/repository"
	"auto-pana/garaje/internal/tracking"
)

const earthRadiusKm = 6371

// replaySource emits synthetic fixes heading north from Caracas at a
// constant speed, one per tick.
type replaySource struct {
	speedKmh float64
	tick     time.Duration
}

type replaySub struct {
	cancel context.CancelFunc
}

func (s *replaySub) Unsubscribe() { s.cancel() }

func (s *replaySource) HasPermission(ctx context.Context) bool { return true }

func (s *replaySource) RequestPermission(ctx context.Context) (bool, error) { return true, nil }

func (s *replaySource) Subscribe(ctx context.Context, opts tracking.SubscribeOptions, handler func(tracking.Fix)) (tracking.Subscription, error) {
	ctx, cancel := context.WithCancel(ctx)

	go func() {
		ticker := time.NewTicker(s.tick)
		defer ticker.Stop()

		start := time.Now()
		baseLat, baseLon := 10.4806, -66.9036
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				elapsed := now.Sub(start).Seconds()
				travelledKm := s.speedKmh * elapsed / 3600
				handler(tracking.Fix{
					Latitude:  baseLat + travelledKm/(earthRadiusKm*math.Pi/180),
					Longitude: baseLon,
					Timestamp: now,
					SpeedMs:   s.speedKmh / 3.6,
					AccuracyM: 8,
				})
			}
		}
	}()

	return &replaySub{cancel: cancel}, nil
}

func main() {
	speed := flag.Float64("speed", 60, "simulated speed in km/h")
	duration := flag.Duration("duration", 10*time.Second, "how long to drive")
	tick := flag.Duration("tick", 500*time.Millisecond, "time between GPS fixes")
	startKm := flag.Int("km", 45000, "starting odometer reading")
	flag.Parse()

	if err := logging.Init("development"); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logging.Close()

	ctx := context.Background()
	store := kvstore.NewMemStore()
	repo := repository.New(store, catalog.New())

	vehicle := repo.AddVehicle(ctx, models.NewVehicle{
		Name:      "Carro de Prueba",
		Brand:     "Toyota",
		Model:     "Corolla",
		BrandSlug: "toyota",
		ModelSlug: "corolla",
		FuelType:  models.FuelGasolina,
		CurrentKm: *startKm,
	})

	engine := tracking.NewEngine(repo, store, &replaySource{speedKmh: *speed, tick: *tick})
	engine.SetTrackingEnabled(ctx, true)

	remove := engine.AddListener(func(state tracking.State, km float64) {
		fmt.Printf("state=%s distance=%.3f km\n", state, km)
	})
	defer remove()

	started, err := engine.Start(ctx)
	if err != nil || !started {
		fmt.Fprintf(os.Stderr, "failed to start tracking: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("driving at %.0f km/h for %s...\n", *speed, *duration)
	time.Sleep(*duration)

	sessionKm := engine.Stop(ctx)

	updated, _ := repo.SelectedVehicle(ctx)
	fmt.Printf("\ntrip finished: %.3f km\n", sessionKm)
	fmt.Printf("odometer: %d km -> %d km\n", vehicle.CurrentKm, updated.CurrentKm)
}
