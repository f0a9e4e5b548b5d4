package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"euchre/internal/bot"

	"github.com/heroiclabs/nakama-common/api"
	"github.com/heroiclabs/nakama-common/runtime"
)

// QuickMatchResponse is the payload returned to clients when requesting a lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// quickMatchQuery finds euchre lobbies with at least one free seat.
var quickMatchQuery = fmt.Sprintf("+label.%s:>=1 +label.%s:%s +label.%s:%s",
	MatchLabelKey_OpenSeats, MatchLabelKey_Game, gameName, MatchLabelKey_Phase, phaseLobby)

type matchFinder interface {
	MatchList(ctx context.Context, limit int, authoritative bool, label string, minSize, maxSize *int, query string) ([]*api.Match, error)
	MatchCreate(ctx context.Context, module string, params map[string]interface{}) (string, error)
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	resp, err := quickMatch(ctx, logger, nk, payload)
	if err != nil {
		return "", err
	}
	b, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// quickMatch joins the first open lobby, or creates one. The optional
// payload holds match params and only applies to a created match.
func quickMatch(ctx context.Context, logger runtime.Logger, nk matchFinder, payload string) (QuickMatchResponse, error) {
	userID, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var params matchParams
	if err := decodeMessage([]byte(payload), &params); err != nil {
		return QuickMatchResponse{}, runtime.NewError(err.Error(), 3)
	}
	if params.BotLevel != "" {
		if _, err := bot.ParseBotLevel(params.BotLevel); err != nil {
			return QuickMatchResponse{}, runtime.NewError(err.Error(), 3)
		}
	}

	minSize, maxSize := 1, 3
	matches, err := nk.MatchList(ctx, 10, true, "", &minSize, &maxSize, quickMatchQuery)
	if err != nil {
		logger.Error("rpcQuickMatch [User:%s]: MatchList error: %v", userID, err)
		return QuickMatchResponse{}, err
	}
	if len(matches) > 0 {
		logger.Info("rpcQuickMatch [User:%s]: Found existing match %s", userID, matches[0].MatchId)
		return QuickMatchResponse{MatchID: matches[0].MatchId}, nil
	}

	create := map[string]interface{}{}
	if params.BotLevel != "" {
		create["bot_level"] = params.BotLevel
	}
	if params.BotsEnabled != nil {
		create["bots_enabled"] = *params.BotsEnabled
	}
	// Seat and owner assignment happens in MatchJoin.
	matchID, err := nk.MatchCreate(ctx, MatchNameEuchre, create)
	if err != nil {
		logger.Error("rpcQuickMatch [User:%s]: MatchCreate error: %v", userID, err)
		return QuickMatchResponse{}, err
	}
	logger.Info("rpcQuickMatch [User:%s]: Created new match %s", userID, matchID)
	return QuickMatchResponse{MatchID: matchID, IsNew: true}, nil
}
