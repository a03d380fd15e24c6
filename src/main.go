package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/xyproto/randomstring"
	"golang.org/x/sync/errgroup"

	"fleetvator/src/config"
	"fleetvator/src/console"
	"fleetvator/src/logger"
	"fleetvator/src/orchestrator"
	"fleetvator/src/status"
	"fleetvator/src/timer"
	"fleetvator/src/traffic"
	"fleetvator/src/types"
)

const runNameLen = 6

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	envPath := flag.String("env", config.DefaultEnvFile, "Path to a .env file with overrides")
	name := flag.String("name", randomstring.EnglishFrequencyString(runNameLen), "Run name, also the log file name")
	logLevel := flag.String("log-level", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	interactive := flag.Bool("interactive", false, "Read hall requests from the keyboard")
	flag.Parse()

	if err := run(*configPath, *envPath, *name, *logLevel, *interactive); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, envPath, name, logLevel string, interactive bool) error {
	cfg, err := config.Load(configPath, envPath)
	if err != nil {
		return err
	}
	level, err := logger.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log, logFile, err := logger.Init(name, level)
	if err != nil {
		return err
	}
	defer logFile.Close()

	log.Info().
		Int("elevators", cfg.Elevators.NumElevators).
		Int("floors", cfg.Elevators.NumFloors).
		Dur("moveTime", cfg.Elevators.MoveDuration).
		Dur("stopTime", cfg.Elevators.DwellDuration).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := timer.NewRealClock()
	fleet, err := orchestrator.New(cfg.Elevators, clock, log)
	if err != nil {
		return err
	}
	submit := func(floor int, dir types.Direction) error {
		_, err := fleet.AddRequest(floor, dir)
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fleet.Run(ctx)
	})
	g.Go(func() error {
		status.NewReporter(fleet.StatusSnapshot, log).Run(ctx, clock, cfg.Status.Interval)
		return nil
	})
	if cfg.Requests.Random {
		g.Go(func() error {
			traffic.NewSeededGenerator(cfg.Elevators.NumFloors, log).Run(ctx, clock, cfg.Requests.Interval, submit)
			return nil
		})
	}
	if interactive {
		g.Go(func() error {
			err := console.Run(ctx, submit, log)
			stop()
			return err
		})
	}

	err = g.Wait()
	log.Info().Msg("Shutting down")
	return err
}
