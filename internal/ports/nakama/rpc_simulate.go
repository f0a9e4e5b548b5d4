package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/config"

	"github.com/heroiclabs/nakama-common/runtime"
)

// simulateRequest is the simulate_hand payload: a launch configuration and
// the level of every strategy that is not scripted by it.
type simulateRequest struct {
	Config map[string]any `mapstructure:"config"`
	Level  string         `mapstructure:"level"`
	Seed   *int64         `mapstructure:"seed"`
}

// simulateHand plays one hand from a simulate_hand payload.
func simulateHand(payload string) (app.HandRecord, error) {
	var request simulateRequest
	if err := decodeMessage([]byte(payload), &request); err != nil {
		return app.HandRecord{}, fmt.Errorf("invalid payload: %w", err)
	}

	sim, err := config.ParseSimulation(request.Config)
	if err != nil {
		return app.HandRecord{}, err
	}

	level := bot.BotLevelAdvanced
	if request.Level != "" {
		if level, err = bot.ParseBotLevel(request.Level); err != nil {
			return app.HandRecord{}, err
		}
	}

	seed := time.Now().UnixNano()
	if request.Seed != nil {
		seed = *request.Seed
	}
	service := app.NewService(rand.New(rand.NewSource(seed)))

	hand, _, err := service.StartSimulation(sim, level)
	if err != nil {
		return app.HandRecord{}, err
	}
	if _, err := service.Run(hand); err != nil {
		return app.HandRecord{}, err
	}
	return service.Record(hand)
}

func rpcSimulateHand(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	record, err := simulateHand(payload)
	if err != nil {
		logger.Warn("rpcSimulateHand [User:%s]: %v", userID, err)
		return "", runtime.NewError(err.Error(), 3) // INVALID_ARGUMENT
	}

	if config.GetGameConfig().ArchiveHands {
		if err := NewStorageArchive(nk).SaveHand(ctx, record); err != nil {
			logger.Error("rpcSimulateHand [User:%s]: %v", userID, err)
		}
	}

	b, err := json.Marshal(record)
	if err != nil {
		return "", err
	}
	logger.Info("rpcSimulateHand [User:%s]: Hand %s: %s, tally %v", userID, record.ID, record.Bid, record.Tally)
	return string(b), nil
}
