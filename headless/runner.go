package headless

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"musou/utils"
	"musou/world"
)

// Runner drives a simulation without a window, one tick per TickRate period.
type Runner struct {
	sim   *world.Simulation
	pilot Pilot
	// MaxTicks stops the run after that many ticks. Zero runs until game over.
	MaxTicks int64
}

func NewRunner(sim *world.Simulation, pilot Pilot) *Runner {
	return &Runner{
		sim:   sim,
		pilot: pilot,
	}
}

func (r *Runner) step() (world.Outcome, bool) {
	frame := r.sim.Frame()
	out := r.sim.Step(r.pilot.Next(&frame))
	done := out.GameOver || (r.MaxTicks > 0 && r.sim.Tick() >= r.MaxTicks)
	return out, done
}

// Run paces the simulation until game over, MaxTicks or ctx is done. It
// returns ctx.Err() in the last case.
func (r *Runner) Run(ctx context.Context) (world.Outcome, error) {
	rate := r.sim.Config().TickRate
	if rate <= 0 {
		return world.Outcome{}, fmt.Errorf("invalid tick rate %d", rate)
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	var out world.Outcome
	for {
		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-ticker.C:
			var done bool
			if out, done = r.step(); done {
				return out, nil
			}
		}
	}
}

// RunTicks steps as fast as possible, at most n ticks.
func (r *Runner) RunTicks(n int) world.Outcome {
	var out world.Outcome
	for i := 0; i < n; i++ {
		var done bool
		if out, done = r.step(); done {
			break
		}
	}
	return out
}

// Run is the headless entry point. args[1], if present, is the config path.
func Run(args []string) error {
	log.SetFlags(log.LstdFlags | log.Llongfile)
	path := "config.toml"
	if len(args) > 1 {
		path = args[1]
	}
	cfg, err := utils.ReadTOML(path)
	if err != nil {
		return err
	}
	worldConfig := cfg.World()
	sim := world.NewSimulation(worldConfig)
	runner := NewRunner(sim, NewRandomPilot(worldConfig.Seed))
	log.Printf("running headless at %d ticks/s", worldConfig.TickRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	if err != nil {
		log.Printf("terminating: %v", err)
	}
	log.Printf("tick %d, game over: %v, score %d", out.Tick, out.GameOver, sim.Score())
	return nil
}
