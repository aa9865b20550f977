package killfeed

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/worldpvp/internal/config"
	"github.com/udisondev/worldpvp/internal/game/worldpvp"
	"github.com/udisondev/worldpvp/internal/metrics"
	"github.com/udisondev/worldpvp/internal/model"
)

// Handler processes one kill. *worldpvp.Manager satisfies it.
type Handler interface {
	HandlePlayerKill(rng worldpvp.Rand, attacker, victim *model.Player, group *model.Group) (worldpvp.Result, error)
}

// Observer is called by the worker after every successfully handled event.
// Calls come from multiple goroutines.
type Observer func(workerID int, ev KillEvent, res worldpvp.Result)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithObserver attaches a per-event observer.
func WithObserver(o Observer) Option {
	return func(d *Dispatcher) {
		d.observer = o
	}
}

// Dispatcher distributes kill events across a fixed worker pool.
// Every worker owns its random generator: no generator is shared between goroutines.
type Dispatcher struct {
	workers  int
	seed     uint64
	handler  Handler
	observer Observer

	processed atomic.Int64
	failed    atomic.Int64
}

// NewDispatcher creates a dispatcher. Seed 0 picks a random base seed.
func NewDispatcher(cfg config.Workers, handler Handler, opts ...Option) *Dispatcher {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	workers := max(cfg.Count, 1)

	d := &Dispatcher{
		workers: workers,
		seed:    seed,
		handler: handler,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Seed returns the base seed (for reproducing a run).
func (d *Dispatcher) Seed() uint64 {
	return d.seed
}

// Workers returns the pool size.
func (d *Dispatcher) Workers() int {
	return d.workers
}

// Processed returns the number of successfully handled events.
func (d *Dispatcher) Processed() int64 {
	return d.processed.Load()
}

// Failed returns the number of events rejected by the handler.
func (d *Dispatcher) Failed() int64 {
	return d.failed.Load()
}

// Run consumes events until the channel is closed (returns nil) or ctx is
// cancelled (returns ctx.Err()). Handler errors are logged and never stop the pool.
func (d *Dispatcher) Run(ctx context.Context, events <-chan KillEvent) error {
	g, gctx := errgroup.WithContext(ctx)

	for i := range d.workers {
		g.Go(func() error {
			return d.work(gctx, i, events)
		})
	}

	slog.Info("kill dispatcher started", "workers", d.workers, "seed", d.seed)
	return g.Wait()
}

func (d *Dispatcher) work(ctx context.Context, workerID int, events <-chan KillEvent) error {
	rng := worldpvp.NewRand(d.seed, uint64(workerID))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			d.handle(rng, workerID, ev)
		}
	}
}

func (d *Dispatcher) handle(rng worldpvp.Rand, workerID int, ev KillEvent) {
	res, err := d.handler.HandlePlayerKill(rng, ev.Attacker, ev.Victim, ev.Group)
	if err != nil {
		d.failed.Add(1)
		metrics.HandlerErrorsTotal.Inc()
		slog.Warn("kill event rejected",
			"eventID", ev.ID,
			"worker", workerID,
			"error", err)
		return
	}

	d.processed.Add(1)
	if d.observer != nil {
		d.observer(workerID, ev, res)
	}
}
