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
	"euchre/internal/domain"
	"euchre/internal/ports"
	redisarchive "euchre/internal/ports/redis"

	"go.uber.org/zap"
)

type playOptions struct {
	hands   int
	seed    int64
	dealer  domain.Position
	level   bot.BotLevel
	human   *domain.Position
	redis   string
	verbose bool
}

func parsePlayFlags(args []string) (playOptions, error) {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	hands := fs.Int("hands", 1, "number of hands to play")
	seed := fs.Int64("seed", 0, "shuffle seed, 0 picks one from the clock")
	dealer := fs.String("dealer", "south", "first dealer")
	level := fs.String("level", "advanced", "bot level: passive, basic or advanced")
	human := fs.String("human", "", "seat to play yourself, empty for an all-bot table")
	redisAddr := fs.String("redis", "", "redis address for archiving hands")
	verbose := fs.Bool("verbose", false, "development logging")
	if err := fs.Parse(args); err != nil {
		return playOptions{}, err
	}

	opts := playOptions{hands: *hands, seed: *seed, redis: *redisAddr, verbose: *verbose}
	if opts.hands <= 0 {
		return playOptions{}, fmt.Errorf("-hands must be positive, got %d", opts.hands)
	}
	var err error
	if opts.dealer, err = domain.ParsePosition(*dealer); err != nil {
		return playOptions{}, fmt.Errorf("-dealer: %w", err)
	}
	if opts.level, err = bot.ParseBotLevel(*level); err != nil {
		return playOptions{}, fmt.Errorf("-level: %w", err)
	}
	if *human != "" {
		seat, err := domain.ParsePosition(*human)
		if err != nil {
			return playOptions{}, fmt.Errorf("-human: %w", err)
		}
		opts.human = &seat
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

// table plays consecutive hands with the dealer moving clockwise.
type table struct {
	svc     *app.Service
	level   bot.BotLevel
	human   *domain.Position
	prompt  prompter
	archive ports.HandArchive
	logger  *zap.Logger
	view    *renderer

	dealer domain.Position
	played int
	totals app.Tally
}

func (t *table) brains() ([4]bot.Brain, error) {
	var brains [4]bot.Brain
	for _, seat := range domain.Positions {
		if t.human != nil && *t.human == seat {
			brains[seat] = newHumanBrain(t.prompt, t.logger)
			continue
		}
		b, err := bot.NewBrain(t.level)
		if err != nil {
			return brains, err
		}
		brains[seat] = b
	}
	return brains, nil
}

// playHand deals and plays one hand, rendering events as they happen.
func (t *table) playHand(ctx context.Context) (app.HandRecord, error) {
	brains, err := t.brains()
	if err != nil {
		return app.HandRecord{}, err
	}
	h, events, err := t.svc.StartHand(t.dealer, brains)
	if err != nil {
		return app.HandRecord{}, err
	}
	t.view.render(events)

	for !h.Done() {
		events, err := t.svc.Advance(h)
		if err != nil {
			return app.HandRecord{}, err
		}
		t.view.render(events)
	}

	record, err := t.svc.Record(h)
	if err != nil {
		return app.HandRecord{}, err
	}
	for i, n := range record.Tally {
		t.totals[i] += n
	}
	t.played++
	t.logger.Info("hand finished",
		zap.String("hand_id", record.ID),
		zap.Stringer("dealer", record.Dealer),
		zap.Stringer("bid", record.Bid),
		zap.Int("tricks_west_east", record.Tally.Team(domain.West)),
		zap.Int("tricks_north_south", record.Tally.Team(domain.North)),
	)

	if t.archive != nil {
		if err := t.archive.SaveHand(ctx, record); err != nil {
			t.logger.Warn("failed to archive hand", zap.String("hand_id", record.ID), zap.Error(err))
		}
	}
	t.dealer = t.dealer.Next()
	return record, nil
}

func runPlay(args []string) error {
	opts, err := parsePlayFlags(args)
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

	ctx := context.Background()
	t := &table{
		svc:    app.NewService(rand.New(rand.NewSource(opts.seed))),
		level:  opts.level,
		human:  opts.human,
		prompt: ptermPrompter{},
		logger: logger,
		dealer: opts.dealer,
	}
	if opts.human != nil {
		t.view = newRenderer(*opts.human)
	} else {
		t.view = newRenderer(domain.Positions[:]...)
	}
	if opts.redis != "" {
		archive, err := redisarchive.NewHandArchive(ctx, opts.redis, logger)
		if err != nil {
			return err
		}
		t.archive = archive
	}

	banner()
	logger.Info("table ready",
		zap.Int64("seed", opts.seed),
		zap.Stringer("level", opts.level),
		zap.Int("hands", opts.hands),
	)
	for i := 0; i < opts.hands; i++ {
		if _, err := t.playHand(ctx); err != nil {
			logger.Error("hand failed", zap.Int("hand", i+1), zap.Error(err))
			return err
		}
	}
	renderTotals(t.played, t.totals)
	return nil
}
