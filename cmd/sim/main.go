package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/osse101/Dreadlight_Go/internal/bootstrap"
	"github.com/osse101/Dreadlight_Go/internal/config"
	"github.com/osse101/Dreadlight_Go/internal/logger"
	"github.com/osse101/Dreadlight_Go/internal/scenario"
	"github.com/osse101/Dreadlight_Go/internal/scheduler"
	"github.com/osse101/Dreadlight_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	scenarioPath := flag.String("scenario", "", "run a scenario script and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, *scenarioPath)
	stop()
	if err != nil {
		logger.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, scenarioPath string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if scenarioPath == "" {
		scenarioPath = cfg.ScenarioPath
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		logger.Warn("Environment validation failed", "error", err)
	}
	for _, w := range warnings {
		logger.Warn("Environment warning", "warning", w)
	}

	bus, err := bootstrap.InitializeEventSystem()
	if err != nil {
		return err
	}
	game, err := bootstrap.BuildGame(cfg, bus)
	if err != nil {
		return err
	}
	game.Loop.Start()

	if scenarioPath != "" {
		defer bootstrap.GracefulShutdown(context.Background(), bootstrap.ShutdownComponents{Loop: game.Loop})
		return runScenario(ctx, game, scenarioPath)
	}
	return serve(ctx, cfg, game)
}

func runScenario(ctx context.Context, game *bootstrap.Game, path string) error {
	s, err := scenario.LoadFile(path)
	if err != nil {
		return err
	}
	provider, err := game.ScenarioProvider()
	if err != nil {
		return err
	}

	result, err := scenario.NewEngine().Execute(ctx, *s, provider)
	if err != nil {
		return err
	}
	steps, passedSteps, checks, passedChecks := result.Tally()
	logger.Info("Scenario finished",
		"scenario_id", result.ScenarioID,
		"success", result.Success,
		"steps", fmt.Sprintf("%d/%d", passedSteps, steps),
		"assertions", fmt.Sprintf("%d/%d", passedChecks, checks))

	if err := result.Err(); err != nil {
		if data, jerr := result.JSON(); jerr == nil {
			fmt.Fprintln(os.Stderr, string(data))
		}
		return err
	}
	return nil
}

func serve(ctx context.Context, cfg *config.Config, game *bootstrap.Game) error {
	sched := scheduler.New(game.Loop)
	sched.Schedule(cfg.TickInterval(), scheduler.NewTickJob(game.Inventory, game.Character))

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
	}, game.Handlers())

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
			Server:    srv,
			Scheduler: sched,
			Loop:      game.Loop,
		})
		return nil
	})

	return g.Wait()
}
