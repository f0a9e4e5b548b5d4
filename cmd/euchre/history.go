package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strconv"

	"euchre/internal/app"
	"euchre/internal/domain"
	"euchre/internal/ports"
	redisarchive "euchre/internal/ports/redis"

	"github.com/pterm/pterm"
)

type historyOptions struct {
	redis string
	count int64
}

func parseHistoryFlags(args []string) (historyOptions, error) {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	redisAddr := fs.String("redis", "localhost:6379", "redis address of the hand archive")
	count := fs.Int64("n", 10, "number of hands to show")
	if err := fs.Parse(args); err != nil {
		return historyOptions{}, err
	}
	if *count <= 0 {
		return historyOptions{}, fmt.Errorf("-n must be positive, got %d", *count)
	}
	return historyOptions{redis: *redisAddr, count: *count}, nil
}

// historyRows lists archived hands, newest last.
func historyRows(records []app.HandRecord) [][]string {
	rows := [][]string{{"Hand", "Ended", "Dealer", "Turned up", "Bid", "West/East", "North/South"}}
	for _, rec := range records {
		rows = append(rows, []string{
			rec.ID,
			rec.EndedAt.Format("2006-01-02 15:04"),
			rec.Dealer.String(),
			rec.Candidate.Display(),
			rec.Bid.String(),
			strconv.Itoa(rec.Tally.Team(domain.West)),
			strconv.Itoa(rec.Tally.Team(domain.North)),
		})
	}
	return rows
}

func showHistory(ctx context.Context, history ports.HandHistory, n int64) error {
	records, err := history.RecentHands(ctx, n)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		pterm.Info.Println("no archived hands")
		return nil
	}
	pterm.DefaultSection.Printfln("Last %d hands", len(records))
	return pterm.DefaultTable.WithHasHeader().WithData(historyRows(records)).Render()
}

func runHistory(args []string) error {
	opts, err := parseHistoryFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	logger, err := newLogger(false)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx := context.Background()
	archive, err := redisarchive.NewHandArchive(ctx, opts.redis, logger)
	if err != nil {
		return err
	}
	return showHistory(ctx, archive, opts.count)
}
