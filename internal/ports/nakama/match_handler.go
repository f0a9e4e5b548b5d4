package nakama

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/config"
	"euchre/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// matchParams are the optional MatchCreate params.
type matchParams struct {
	BotLevel    string `mapstructure:"bot_level"`
	BotsEnabled *bool  `mapstructure:"bots_enabled"`
}

type matchHandler struct{}

func newMatchHandler() *matchHandler {
	return &matchHandler{}
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	cfg := config.GetGameConfig()
	level, err := bot.ParseBotLevel(cfg.BotLevel)
	if err != nil {
		logger.Warn("MatchInit: %v, using %s bots", err, bot.BotLevelAdvanced)
		level = bot.BotLevelAdvanced
	}

	state := &MatchState{
		OwnerSeat:        -1,
		Dealer:           domain.South,
		Presences:        make(map[string]runtime.Presence),
		App:              app.NewService(nil),
		Bots:             make(map[string]*bot.Agent),
		BotsEnabled:      true,
		BotLevel:         level,
		BotMinDelay:      secondsToTicks(cfg.BotMinDelaySeconds),
		BotMaxDelay:      secondsToTicks(cfg.BotMaxDelaySeconds),
		BotAutoFillDelay: secondsToTicks(float64(cfg.BotAutoFillDelaySeconds)),
		TurnDuration:     secondsToTicks(float64(cfg.TurnDurationSeconds)),
		rng:              rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	if cfg.ArchiveHands {
		state.Archive = NewStorageArchive(nk)
	}

	applyEnv(ctx, state, logger)
	applyParams(params, state, logger)

	label, err := matchLabel(state)
	if err != nil {
		logger.Error("MatchInit: Failed to marshal label: %v", err)
		return nil, 0, ""
	}
	return state, matchTickRate, label
}

// applyEnv reads the runtime env overrides for bot and turn timing.
func applyEnv(ctx context.Context, state *MatchState, logger runtime.Logger) {
	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	if val, ok := env["euchre_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	seconds := func(key string, dst *int64) {
		val, ok := env[key]
		if !ok {
			return
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			logger.Warn("MatchInit: Ignoring %s=%q: %v", key, val, err)
			return
		}
		*dst = secondsToTicks(f)
	}
	seconds("euchre_bot_min_delay_sec", &state.BotMinDelay)
	seconds("euchre_bot_max_delay_sec", &state.BotMaxDelay)
	seconds("euchre_bot_auto_fill_delay_sec", &state.BotAutoFillDelay)
	seconds("euchre_turn_duration_sec", &state.TurnDuration)

	if state.BotMaxDelay < state.BotMinDelay {
		state.BotMaxDelay = state.BotMinDelay
	}
}

func applyParams(params map[string]interface{}, state *MatchState, logger runtime.Logger) {
	if len(params) == 0 {
		return
	}
	var p matchParams
	if err := config.Decode(params, &p); err != nil {
		logger.Warn("MatchInit: Ignoring match params: %v", err)
		return
	}
	if p.BotsEnabled != nil {
		state.BotsEnabled = *p.BotsEnabled
	}
	if p.BotLevel != "" {
		level, err := bot.ParseBotLevel(p.BotLevel)
		if err != nil {
			logger.Warn("MatchInit: %v", err)
			return
		}
		state.BotLevel = level
	}
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Allow join if there is an empty seat OR a bot to replace (if no hand is running)
	if matchState.GetOpenSeatsCount() <= 0 {
		hasBot := false
		if matchState.Hand == nil {
			for _, seat := range matchState.Seats {
				if isBotUserId(seat) {
					hasBot = true
					break
				}
			}
		}
		if !hasBot {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p

		if seat, seated := matchState.seatOf(p.GetUserId()); seated {
			mh.sendHandSnapshot(matchState, dispatcher, logger, seat)
			continue
		}

		// Assign seat: lowest empty seat first, then bots (lobby only)
		seat, assigned := domain.LowestAvailableSeat(&matchState.Seats)
		if assigned {
			matchState.Seats[seat] = p.GetUserId()
		} else if matchState.Hand == nil {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					delete(matchState.Bots, seatUserId)
					matchState.Seats[i] = p.GetUserId()
					seat, assigned = domain.Position(i), true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
			continue
		}
		logger.Debug("MatchJoin: User %s seated at %s.", p.GetUserId(), seat)
		mh.sendHandSnapshot(matchState, dispatcher, logger, seat)
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

// MatchLeave is called when one or more players leave the match.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if seat, seated := matchState.seatOf(p.GetUserId()); seated {
			// A seat emptied mid-hand keeps its remote brain; its turns time out.
			matchState.Seats[seat] = ""
			logger.Debug("MatchLeave: User %s left, seat %s freed.", p.GetUserId(), seat)
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartHand:
			mh.handleStartHand(matchState, dispatcher, logger, msg)
		case OpDecision:
			mh.handleDecision(matchState, dispatcher, logger, msg)
		case OpDiscard:
			mh.handleCard(matchState, dispatcher, logger, msg, app.DecisionDiscard)
		case OpPlayCard:
			mh.handleCard(matchState, dispatcher, logger, msg, app.DecisionPlayCard)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}
	mh.processTurns(ctx, matchState, dispatcher, logger)

	return matchState
}

// processBots fills a lobby with bots once a single human has waited long enough.
func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Hand != nil {
		return
	}
	if state.GetHumanPlayerCount() != 1 {
		state.LastSinglePlayerTick = 0
		return
	}
	if state.LastSinglePlayerTick == 0 {
		state.LastSinglePlayerTick = state.Tick
		logger.Debug("processBots: Single player detected, starting auto-fill timer.")
	}
	if state.Tick-state.LastSinglePlayerTick < state.BotAutoFillDelay {
		return
	}

	added := false
	for i, seat := range state.Seats {
		if seat != "" {
			continue
		}
		agent := bot.NewAgent(bot.GetBotIdentity(i), state.BotLevel)
		state.Seats[i] = agent.ID
		state.Bots[agent.ID] = agent
		logger.Info("processBots: Added %s bot %s (%s) to seat %d", agent.Level, agent.Name, agent.ID, i)
		added = true
	}
	if added {
		mh.updateLabel(state, dispatcher, logger)
		mh.broadcastMatchState(state, dispatcher, logger)
	}
	state.LastSinglePlayerTick = 0
}

// agentFor returns the agent seated as userID, creating it on first use.
func (mh *matchHandler) agentFor(state *MatchState, userID string) *bot.Agent {
	if agent, ok := state.Bots[userID]; ok {
		return agent
	}
	identity, ok := bot.GetBotConfig(userID)
	if !ok {
		identity = bot.BotIdentity{UserID: userID}
	}
	agent := bot.NewAgent(identity, state.BotLevel)
	state.Bots[userID] = agent
	return agent
}

func (mh *matchHandler) handleStartHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat, seated := state.seatOf(senderID)

	logger.Info("StartHand: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, seat, state.OwnerSeat, state.GetOccupiedSeatCount())

	request := startHandRequest{}
	if err := decodeMessage(msg.GetData(), &request); err != nil {
		logger.Warn("StartHand: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	if !seated || int(seat) != state.OwnerSeat {
		logger.Warn("StartHand: User %s tried to start a hand but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, "only the table owner can start a hand")
		return
	}
	if state.Hand != nil {
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, "a hand is already in progress")
		return
	}
	if occupied := state.GetOccupiedSeatCount(); occupied < app.SeatsToStartHand {
		logger.Warn("StartHand: Cannot start with %d players. Need %d.", occupied, app.SeatsToStartHand)
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, fmt.Sprintf("need %d seated players", app.SeatsToStartHand))
		return
	}
	if request.Dealer != nil && state.HandsPlayed == 0 {
		state.Dealer = *request.Dealer
	}

	mh.startHand(state, dispatcher, logger)
}

func (mh *matchHandler) startHand(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	var brains [4]bot.Brain
	state.Remote = [4]*remoteBrain{}
	for i, userID := range state.Seats {
		if isBotUserId(userID) {
			brains[i] = mh.agentFor(state, userID).Strategy
			continue
		}
		remote := &remoteBrain{}
		state.Remote[i] = remote
		brains[i] = remote
	}

	hand, events, err := state.App.StartHand(state.Dealer, brains)
	if err != nil {
		logger.Error("StartHand: Failed to start hand: %v", err)
		return
	}
	state.Hand = hand
	state.BotWaitUntil, state.TurnDeadline = 0, 0

	mh.updateLabel(state, dispatcher, logger)
	for _, ev := range events {
		mh.broadcastEvent(state, dispatcher, logger, ev)
	}
	logger.Info("StartHand: Hand %d started, dealer %s turned up %s.", state.HandsPlayed+1, state.Dealer, hand.Candidate().Code())
}

func (mh *matchHandler) handleDecision(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	seat, ok := state.seatOf(senderID)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, errNotSeated.Error())
		return
	}

	request := decisionRequest{}
	if err := decodeMessage(msg.GetData(), &request); err != nil {
		logger.Warn("handleDecision: Invalid request from %s: %v", senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	if request.Decision == app.DecisionDiscard || request.Decision == app.DecisionPlayCard {
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, errWrongDecision.Error())
		return
	}

	a := answer{decision: request.Decision, accept: request.Accept}
	if request.Decision == app.DecisionCallTrump && request.Accept {
		if request.Suit == nil {
			mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, errSuitRequired.Error())
			return
		}
		a.suit = *request.Suit
	}
	mh.submitAnswer(state, dispatcher, logger, senderID, seat, a)
}

func (mh *matchHandler) handleCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData, decision app.Decision) {
	senderID := msg.GetUserId()
	seat, ok := state.seatOf(senderID)
	if !ok {
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, errNotSeated.Error())
		return
	}

	request := cardRequest{}
	if err := decodeMessage(msg.GetData(), &request); err != nil {
		logger.Warn("handleCard: Invalid %s request from %s: %v", decision, senderID, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}
	mh.submitAnswer(state, dispatcher, logger, senderID, seat, answer{decision: decision, card: request.Card})
}

func (mh *matchHandler) submitAnswer(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, senderID string, seat domain.Position, a answer) {
	if err := validateAnswer(state.Hand, seat, a); err != nil {
		logger.Warn("submitAnswer: User %s (seat %s) %s rejected: %v", senderID, seat, a.decision, err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, err.Error())
		return
	}
	remote := state.Remote[seat]
	if remote == nil {
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, errNotYourTurn.Error())
		return
	}
	if remote.pending != nil {
		mh.sendError(state, dispatcher, logger, senderID, errCodeConflict, errAlreadyAnswered.Error())
		return
	}
	remote.submit(a)
}

// processTurns advances the hand while the polled seat can answer now:
// a bot whose delay has passed, or a human who answered or ran out of time.
func (mh *matchHandler) processTurns(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	for state.inHand() {
		seat, decision, _ := state.Hand.Pending()

		if remote := state.Remote[seat]; remote != nil {
			if !remote.ready() {
				if state.TurnDeadline == 0 {
					state.TurnDeadline = state.Tick + state.TurnDuration
					mh.sendTurn(state, dispatcher, logger, seat, decision, true)
				}
				if state.Tick < state.TurnDeadline {
					return
				}
				logger.Info("processTurns: Seat %s timed out on %s, using default.", seat, decision)
				remote.expire()
			}
		} else {
			if state.BotWaitUntil == 0 {
				state.BotWaitUntil = state.Tick + state.botDelay()
				mh.sendTurn(state, dispatcher, logger, seat, decision, false)
			}
			if state.Tick < state.BotWaitUntil {
				return
			}
		}

		state.BotWaitUntil, state.TurnDeadline = 0, 0
		events, err := state.App.Advance(state.Hand)
		if err != nil {
			logger.Error("processTurns: Failed to advance hand: %v", err)
			return
		}
		for _, ev := range events {
			mh.broadcastEvent(state, dispatcher, logger, ev)
		}
	}

	if state.Hand != nil && state.Hand.Done() {
		mh.finishHand(ctx, state, dispatcher, logger)
	}
}

func (mh *matchHandler) finishHand(ctx context.Context, state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	record, err := state.App.Record(state.Hand)
	if err != nil {
		logger.Error("finishHand: Failed to build hand record: %v", err)
	} else {
		logger.Info("finishHand: Hand %s ended: %s, tally %v", record.ID, record.Bid, record.Tally)
		if state.Archive != nil {
			if err := state.Archive.SaveHand(ctx, record); err != nil {
				logger.Error("finishHand: Failed to archive hand %s: %v", record.ID, err)
			}
		}
	}

	state.HandsPlayed++
	state.Dealer = state.Dealer.Next()
	state.Hand = nil
	state.Remote = [4]*remoteBrain{}
	state.BotWaitUntil, state.TurnDeadline = 0, 0

	mh.updateLabel(state, dispatcher, logger)
	mh.broadcastMatchState(state, dispatcher, logger)
}

func (mh *matchHandler) sendTurn(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat domain.Position, decision app.Decision, human bool) {
	payload := map[string]any{
		"seat":     seat.String(),
		"user_id":  state.Seats[seat],
		"decision": string(decision),
		"round":    state.Hand.Bidding().Round(),
		"trick":    state.Hand.TrickNumber(),
	}
	if forbidden, ok := state.Hand.Bidding().Forbidden(); ok {
		payload["forbidden_suit"] = forbidden.String()
	}
	// answer_op tells clients which op code answers this turn.
	switch {
	case decision.IsYesNo(), decision == app.DecisionCallTrump:
		payload["answer_op"] = OpDecision
	case decision == app.DecisionDiscard:
		payload["answer_op"] = OpDiscard
	default:
		payload["answer_op"] = OpPlayCard
	}
	if human {
		payload["seconds"] = float64(state.TurnDuration) / matchTickRate
	}
	mh.broadcast(dispatcher, logger, OpTurn, payload, nil)
}

// sendHandSnapshot gives a (re)seated human their current cards.
func (mh *matchHandler) sendHandSnapshot(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, seat domain.Position) {
	if !state.inHand() {
		return
	}
	presence, ok := state.Presences[state.Seats[seat]]
	if !ok {
		return
	}
	mh.broadcast(dispatcher, logger, OpHandDealt, map[string]any{
		"seat": seat.String(),
		"hand": cardsValue(state.Hand.Hand(seat)),
	}, []runtime.Presence{presence})
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	seats := make([]any, len(state.Seats))
	players := make([]any, 0, len(state.Seats))
	for i, userId := range state.Seats {
		seats[i] = userId
		if userId == "" {
			continue
		}
		cardsRemaining := 0
		if state.Hand != nil {
			cardsRemaining = len(state.Hand.Hand(domain.Position(i)))
		}
		players = append(players, map[string]any{
			"user_id":         userId,
			"seat":            domain.Position(i).String(),
			"seat_index":      i,
			"display_name":    state.displayName(userId),
			"is_bot":          isBotUserId(userId),
			"is_owner":        i == state.OwnerSeat,
			"cards_remaining": cardsRemaining,
		})
	}

	phase := phaseLobby
	if state.Hand != nil {
		phase = phasePlaying
	}
	mh.broadcast(dispatcher, logger, OpMatchState, map[string]any{
		"seats":        seats,
		"owner_seat":   state.OwnerSeat,
		"dealer":       state.Dealer.String(),
		"hands_played": state.HandsPlayed,
		"phase":        phase,
		"tick":         state.Tick,
		"players":      players,
	}, nil)
}

// broadcastEvent handles the conversion and dispatching of app events to Nakama.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, payload, ok := eventMessage(ev)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, seat := range ev.Recipients {
			if p, ok := state.Presences[state.Seats[seat]]; ok {
				recipients = append(recipients, p)
			}
		}

		// Private events for bots or disconnected seats go nowhere.
		if len(recipients) == 0 {
			return
		}
	}

	mh.broadcast(dispatcher, logger, opCode, payload, recipients)
}

func (mh *matchHandler) broadcast(dispatcher runtime.MatchDispatcher, logger runtime.Logger, opCode int64, payload map[string]any, recipients []runtime.Presence) {
	data, err := encodeMessage(payload)
	if err != nil {
		logger.Error("Failed to marshal message %d: %v", opCode, err)
		return
	}
	if err := dispatcher.BroadcastMessage(opCode, data, recipients, nil, true); err != nil {
		logger.Error("Failed to broadcast message %d: %v", opCode, err)
	}
}

// sendError sends a game_error message to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}
	mh.broadcast(dispatcher, logger, OpGameError, map[string]any{
		"code":    code,
		"message": message,
	}, []runtime.Presence{presence})
}

func matchLabel(state *MatchState) (string, error) {
	phase := phaseLobby
	if state.Hand != nil {
		phase = phasePlaying
	}
	data, err := encodeMessage(map[string]any{
		MatchLabelKey_OpenSeats: state.GetOpenSeatsCount(),
		MatchLabelKey_Game:      gameName,
		MatchLabelKey_Phase:     phase,
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := matchLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: Failed to marshal: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated with %d grace seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
