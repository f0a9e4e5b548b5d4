package nakama

import (
	"math"
	"math/rand"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/domain"
	"euchre/internal/ports"

	"github.com/heroiclabs/nakama-common/runtime"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
// Seat index i is domain.Position(i).
type MatchState struct {
	Seats       [4]string                   `json:"seats"`      // User IDs, empty string means seat is empty
	OwnerSeat   int                         `json:"owner_seat"` // Seat index of the match owner
	Dealer      domain.Position             `json:"dealer"`     // Dealer of the next or current hand
	HandsPlayed int                         `json:"hands_played"`
	Tick        int64                       `json:"tick"`
	Presences   map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	App         *app.Service                `json:"-"`
	Hand        *app.HandState              `json:"-"` // Current hand (nil in lobby)
	Remote      [4]*remoteBrain             `json:"-"` // Human seats of the current hand
	Archive     ports.HandArchive           `json:"-"`

	BotsEnabled          bool                  `json:"bots_enabled"`
	BotLevel             bot.BotLevel          `json:"bot_level"`
	BotMinDelay          int64                 `json:"bot_min_delay"`       // Ticks a bot waits at least
	BotMaxDelay          int64                 `json:"bot_max_delay"`       // Ticks a bot waits at most
	BotAutoFillDelay     int64                 `json:"bot_auto_fill_delay"` // Ticks before a solo human gets bots
	TurnDuration         int64                 `json:"turn_duration"`       // Ticks a human has to answer
	BotWaitUntil         int64                 `json:"bot_wait_until"`
	TurnDeadline         int64                 `json:"turn_deadline"`
	LastSinglePlayerTick int64                 `json:"last_single_player_tick"`
	Bots                 map[string]*bot.Agent `json:"-"`

	rng *rand.Rand
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// seatOf returns the seat held by userID.
func (ms *MatchState) seatOf(userID string) (domain.Position, bool) {
	for i, seatUserId := range ms.Seats {
		if seatUserId != "" && seatUserId == userID {
			return domain.Position(i), true
		}
	}
	return 0, false
}

func (ms *MatchState) inHand() bool {
	return ms.Hand != nil && !ms.Hand.Done()
}

// displayName resolves a seat's occupant to a name for clients.
func (ms *MatchState) displayName(userID string) string {
	if p, ok := ms.Presences[userID]; ok && p.GetUsername() != "" {
		return p.GetUsername()
	}
	if agent, ok := ms.Bots[userID]; ok && agent.Name != "" {
		return agent.Name
	}
	if name := bot.GetBotDisplayName(userID); name != "" {
		return name
	}
	return userID
}

// botDelay picks a delay in [BotMinDelay, BotMaxDelay] ticks.
func (ms *MatchState) botDelay() int64 {
	span := ms.BotMaxDelay - ms.BotMinDelay
	if span <= 0 || ms.rng == nil {
		return ms.BotMinDelay
	}
	return ms.BotMinDelay + ms.rng.Int63n(span+1)
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func secondsToTicks(seconds float64) int64 {
	if seconds <= 0 {
		return 0
	}
	return int64(math.Ceil(seconds * matchTickRate))
}
