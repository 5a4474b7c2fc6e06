package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/meghashyamc/orbit2d/config"
	"github.com/meghashyamc/orbit2d/game"
	"github.com/meghashyamc/orbit2d/logger"
	"github.com/meghashyamc/orbit2d/loop"
	"github.com/meghashyamc/orbit2d/physics"
	"github.com/meghashyamc/orbit2d/terminal"
	"github.com/meghashyamc/orbit2d/viewport"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	if err := run(cfg, log); err != nil {
		log.Error("error running simulation", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log logger.Logger) error {
	sim, err := newSimulation(cfg, log)
	if err != nil {
		return err
	}
	driver := loop.NewDriver(sim, log, loop.WithStatsEvery(cfg.GetLogEvery()))

	mode := cfg.GetRenderMode()
	switch mode {
	case config.RenderWindow:
		return game.NewGame(cfg, sim, driver, log).Run()

	case config.RenderTerminal, config.RenderHeadless:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if mode == config.RenderHeadless {
			return driver.Run(ctx, loop.NewLogHost(log, cfg.GetMaxFrames(), cfg.GetLogEvery()))
		}

		view := viewport.Default(0, 0)
		view.Extent = cfg.GetViewExtent()
		host, err := terminal.NewHost(view, log)
		if err != nil {
			return err
		}
		defer host.Close()
		return driver.Run(ctx, host)
	}

	return fmt.Errorf("unknown render mode %q", mode)
}

func newSimulation(cfg *config.Config, log logger.Logger) (*physics.Simulation, error) {
	star, err := cfg.GetStar()
	if err != nil {
		return nil, err
	}
	bodies, err := cfg.GetBodies()
	if err != nil {
		return nil, err
	}

	sim, err := physics.NewSimulation(star, bodies, cfg.GetTimestepConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create simulation: %w", err)
	}

	log.Info("simulation initialized",
		"star", star.Name,
		"bodies", sim.Len(),
		"timestep", sim.Timestep(),
		"energy", sim.Energy(),
	)
	for i := 0; i < sim.Len(); i++ {
		log.Debug("body", "index", i, "body", sim.Body(i).String())
	}
	return sim, nil
}
