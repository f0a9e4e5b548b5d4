package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/config"
	redisarchive "euchre/internal/ports/redis"

	"go.uber.org/zap"
)

type simulateOptions struct {
	config  string
	seed    int64
	level   bot.BotLevel
	redis   string
	verbose bool
}

func parseSimulateFlags(args []string) (simulateOptions, error) {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	path := fs.String("config", "", "launch configuration (JSON)")
	seed := fs.Int64("seed", 0, "seed for the undealt cards, 0 picks one from the clock")
	level := fs.String("level", "advanced", "bot level used for card play")
	redisAddr := fs.String("redis", "", "redis address for archiving the hand")
	verbose := fs.Bool("verbose", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return simulateOptions{}, err
	}
	if *path == "" {
		return simulateOptions{}, errors.New("-config is required")
	}
	lvl, err := bot.ParseBotLevel(*level)
	if err != nil {
		return simulateOptions{}, fmt.Errorf("-level: %w", err)
	}
	opts := simulateOptions{config: *path, seed: *seed, level: lvl, redis: *redisAddr, verbose: *verbose}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

// simulateHand plays the configured hand to the end.
func simulateHand(svc *app.Service, sim config.Simulation, level bot.BotLevel, view *renderer) (app.HandRecord, error) {
	h, events, err := svc.StartSimulation(sim, level)
	if err != nil {
		return app.HandRecord{}, err
	}
	view.render(events)
	events, err = svc.Run(h)
	if err != nil {
		return app.HandRecord{}, err
	}
	view.render(events)
	return svc.Record(h)
}

func runSimulate(args []string) error {
	opts, err := parseSimulateFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sim, err := config.LoadSimulation(opts.config)
	if err != nil {
		logger.Error("bad launch configuration", zap.String("path", opts.config), zap.Error(err))
		return err
	}

	svc := app.NewService(rand.New(rand.NewSource(opts.seed)))
	record, err := simulateHand(svc, sim, opts.level, newRenderer(sim.Seat))
	if err != nil {
		return err
	}
	logger.Info("simulation finished",
		zap.Int64("seed", opts.seed),
		zap.Stringer("seat", sim.Seat),
		zap.Stringer("bid", record.Bid),
		zap.Int("tricks", record.Tally.Team(sim.Seat)),
	)

	if opts.redis != "" {
		ctx := context.Background()
		archive, err := redisarchive.NewHandArchive(ctx, opts.redis, logger)
		if err != nil {
			return err
		}
		if err := archive.SaveHand(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
