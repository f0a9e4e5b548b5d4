package nakama

import (
	"context"
	"encoding/json"
	"math/rand"
	"testing"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/domain"

	"github.com/heroiclabs/nakama-common/runtime"
)

// noopLogger implements runtime.Logger for tests that only need to satisfy the interface.
type noopLogger struct{}

func (noopLogger) Debug(string, ...interface{}) {}
func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}
func (noopLogger) WithField(string, interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) WithFields(map[string]interface{}) runtime.Logger {
	return noopLogger{}
}
func (noopLogger) Fields() map[string]interface{} {
	return nil
}

type sentMessage struct {
	opCode     int64
	data       []byte
	recipients []runtime.Presence
}

// mockDispatcher records match dispatcher calls for assertions.
type mockDispatcher struct {
	messages     []sentMessage
	labelUpdates int
	lastLabel    string
}

func (md *mockDispatcher) BroadcastMessage(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	md.messages = append(md.messages, sentMessage{opCode: opCode, data: append([]byte(nil), data...), recipients: presences})
	return nil
}

func (md *mockDispatcher) BroadcastMessageDeferred(opCode int64, data []byte, presences []runtime.Presence, sender runtime.Presence, reliable bool) error {
	return nil
}

func (md *mockDispatcher) MatchKick(presences []runtime.Presence) error {
	return nil
}

func (md *mockDispatcher) MatchLabelUpdate(label string) error {
	md.labelUpdates++
	md.lastLabel = label
	return nil
}

func (md *mockDispatcher) byOp(opCode int64) []sentMessage {
	var out []sentMessage
	for _, m := range md.messages {
		if m.opCode == opCode {
			out = append(out, m)
		}
	}
	return out
}

// mockPresence is a connected user.
type mockPresence struct {
	userID   string
	username string
}

func (p mockPresence) GetHidden() bool                   { return false }
func (p mockPresence) GetPersistence() bool              { return false }
func (p mockPresence) GetUsername() string               { return p.username }
func (p mockPresence) GetStatus() string                 { return "" }
func (p mockPresence) GetReason() runtime.PresenceReason { return 0 }
func (p mockPresence) GetUserId() string                 { return p.userID }
func (p mockPresence) GetSessionId() string              { return "session-" + p.userID }
func (p mockPresence) GetNodeId() string                 { return "node-1" }

// mockMatchData is a client message.
type mockMatchData struct {
	mockPresence
	opCode int64
	data   []byte
}

func (m mockMatchData) GetOpCode() int64      { return m.opCode }
func (m mockMatchData) GetData() []byte       { return m.data }
func (m mockMatchData) GetReliable() bool     { return true }
func (m mockMatchData) GetReceiveTime() int64 { return 0 }

type mockArchive struct {
	records []app.HandRecord
}

func (m *mockArchive) SaveHand(ctx context.Context, record app.HandRecord) error {
	m.records = append(m.records, record)
	return nil
}

func init() {
	if err := bot.LoadIdentities("testdata/bot_identities.json"); err != nil {
		panic("Failed to load bot identities for tests: " + err.Error())
	}
}

func newTestState(seats [4]string, presences ...mockPresence) *MatchState {
	state := &MatchState{
		Seats:        seats,
		OwnerSeat:    findFirstHumanSeat(seats[:]),
		Dealer:       domain.South,
		Presences:    make(map[string]runtime.Presence),
		App:          app.NewService(rand.New(rand.NewSource(3))),
		Bots:         make(map[string]*bot.Agent),
		BotsEnabled:  true,
		BotLevel:     bot.BotLevelBasic,
		TurnDuration: 2,
		rng:          rand.New(rand.NewSource(1)),
	}
	for _, p := range presences {
		state.Presences[p.userID] = p
	}
	return state
}

func message(p mockPresence, opCode int64, body string) runtime.MatchData {
	return mockMatchData{mockPresence: p, opCode: opCode, data: []byte(body)}
}

func decodeJSON(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Failed to decode %s: %v", data, err)
	}
	return out
}

func botSeats(human string) [4]string {
	return [4]string{
		human,
		bot.GetBotIdentity(1).UserID,
		bot.GetBotIdentity(2).UserID,
		bot.GetBotIdentity(3).UserID,
	}
}

func TestFindFirstHumanSeat(t *testing.T) {
	bot1 := bot.GetBotIdentity(0).UserID
	bot2 := bot.GetBotIdentity(1).UserID

	tests := []struct {
		name  string
		seats []string
		want  int
	}{
		{name: "FirstHumanAfterBot", seats: []string{bot1, "user-1", "", ""}, want: 1},
		{name: "AllBots", seats: []string{bot1, bot2, "", ""}, want: -1},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: -1},
		{name: "FirstHumanIsSeatZero", seats: []string{"user-1", bot1, "user-2", ""}, want: 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := findFirstHumanSeat(test.seats); got != test.want {
				t.Fatalf("findFirstHumanSeat() = %d, want %d", got, test.want)
			}
		})
	}
}

func TestShouldTerminateNoHumans(t *testing.T) {
	seats := botSeats(bot.GetBotIdentity(0).UserID)

	tests := []struct {
		name  string
		seats []string
		want  bool
	}{
		{name: "BotsOnly", seats: seats[:], want: true},
		{name: "BotsAndEmpty", seats: []string{seats[0], "", seats[2], ""}, want: true},
		{name: "HumansPresent", seats: []string{seats[0], "user-1", "", ""}, want: false},
		{name: "AllEmpty", seats: []string{"", "", "", ""}, want: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := shouldTerminateNoHumans(test.seats); got != test.want {
				t.Fatalf("shouldTerminateNoHumans() = %t, want %t", got, test.want)
			}
		})
	}
}

func TestMatchLabel(t *testing.T) {
	state := newTestState([4]string{"user-1", "", "", ""})

	label, err := matchLabel(state)
	if err != nil {
		t.Fatalf("matchLabel() error: %v", err)
	}
	var got struct {
		Open  int    `json:"open"`
		Game  string `json:"game"`
		Phase string `json:"phase"`
	}
	if err := json.Unmarshal([]byte(label), &got); err != nil {
		t.Fatalf("Failed to decode label %s: %v", label, err)
	}
	if got.Open != 3 || got.Game != "euchre" || got.Phase != "lobby" {
		t.Fatalf("Unexpected label %+v", got)
	}

	state.Seats = botSeats("user-1")
	state.Hand, _, _ = state.App.StartHand(domain.South, [4]bot.Brain{bot.PassiveBrain{}, bot.PassiveBrain{}, bot.PassiveBrain{}, bot.PassiveBrain{}})
	label, _ = matchLabel(state)
	if err := json.Unmarshal([]byte(label), &got); err != nil {
		t.Fatalf("Failed to decode label %s: %v", label, err)
	}
	if got.Open != 0 || got.Phase != "playing" {
		t.Fatalf("Unexpected label while playing %+v", got)
	}
}

func TestProcessBots_FillsSoloLobby(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{"user-1", "", "", ""})
	state.BotAutoFillDelay = 2
	state.LastSinglePlayerTick = 8
	state.Tick = 10

	handler.processBots(state, dispatcher, noopLogger{})

	if state.GetOpenSeatsCount() != 0 {
		t.Fatalf("Expected a full table after auto-fill, got %d open seats", state.GetOpenSeatsCount())
	}
	for i := 1; i < 4; i++ {
		if !isBotUserId(state.Seats[i]) {
			t.Fatalf("Seat %d = %q, want a bot", i, state.Seats[i])
		}
		if _, ok := state.Bots[state.Seats[i]]; !ok {
			t.Fatalf("Expected an agent for seat %d", i)
		}
	}
	if state.LastSinglePlayerTick != 0 {
		t.Fatalf("Expected auto-fill timer reset, got %d", state.LastSinglePlayerTick)
	}
	if len(dispatcher.byOp(OpMatchState)) == 0 || dispatcher.labelUpdates == 0 {
		t.Fatalf("Expected match state broadcast and label update after auto-fill")
	}
}

func TestProcessBots_WaitsForDelay(t *testing.T) {
	handler := newMatchHandler()
	state := newTestState([4]string{"user-1", "", "", ""})
	state.BotAutoFillDelay = 5
	state.Tick = 3

	handler.processBots(state, &mockDispatcher{}, noopLogger{})
	if state.LastSinglePlayerTick != 3 {
		t.Fatalf("Expected timer to start at tick 3, got %d", state.LastSinglePlayerTick)
	}
	state.Tick = 7
	handler.processBots(state, &mockDispatcher{}, noopLogger{})
	if state.GetOpenSeatsCount() != 3 {
		t.Fatalf("Expected no bots before the delay, got %d open seats", state.GetOpenSeatsCount())
	}
}

func TestMatchJoinAndLeave(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	state := newTestState([4]string{})
	alice := mockPresence{userID: "user-1", username: "alice"}
	bob := mockPresence{userID: "user-2", username: "bob"}

	result := handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.Presence{alice, bob})
	state = result.(*MatchState)

	if state.Seats[0] != "user-1" || state.Seats[1] != "user-2" {
		t.Fatalf("Unexpected seats %v", state.Seats)
	}
	if state.OwnerSeat != 0 {
		t.Fatalf("OwnerSeat = %d, want 0", state.OwnerSeat)
	}
	snapshots := dispatcher.byOp(OpMatchState)
	if len(snapshots) != 1 {
		t.Fatalf("Expected one match state broadcast, got %d", len(snapshots))
	}
	snapshot := decodeJSON(t, snapshots[0].data)
	players, _ := snapshot["players"].([]any)
	if len(players) != 2 {
		t.Fatalf("Expected 2 players in snapshot, got %v", snapshot["players"])
	}
	if name := players[0].(map[string]any)["display_name"]; name != "alice" {
		t.Fatalf("display_name = %v, want alice", name)
	}

	result = handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.Presence{alice})
	state = result.(*MatchState)
	if state.Seats[0] != "" || state.OwnerSeat != 1 {
		t.Fatalf("Expected seat 0 freed and owner moved to 1, got seats %v owner %d", state.Seats, state.OwnerSeat)
	}

	if result := handler.MatchLeave(context.Background(), noopLogger{}, nil, nil, dispatcher, 3, state, []runtime.Presence{bob}); result != nil {
		t.Fatalf("Expected match to terminate without humans")
	}
}

func TestMatchJoinAttempt(t *testing.T) {
	handler := newMatchHandler()
	full := newTestState([4]string{"user-1", "user-2", "user-3", "user-4"})
	if _, ok, _ := handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, nil, 1, full, mockPresence{userID: "user-5"}, nil); ok {
		t.Fatalf("Expected full table of humans to reject joins")
	}

	withBots := newTestState(botSeats("user-1"))
	if _, ok, _ := handler.MatchJoinAttempt(context.Background(), noopLogger{}, nil, nil, nil, 1, withBots, mockPresence{userID: "user-5"}, nil); !ok {
		t.Fatalf("Expected a lobby with bots to accept joins")
	}
}

func TestMatchJoinReplacesBotInLobby(t *testing.T) {
	handler := newMatchHandler()
	state := newTestState(botSeats("user-1"))
	replaced := state.Seats[1]
	state.Bots[replaced] = bot.NewAgent(bot.GetBotIdentity(1), bot.BotLevelBasic)

	handler.MatchJoin(context.Background(), noopLogger{}, nil, nil, &mockDispatcher{}, 1, state, []runtime.Presence{mockPresence{userID: "user-2"}})

	if state.Seats[1] != "user-2" {
		t.Fatalf("Expected user-2 to replace the bot in seat 1, got %v", state.Seats)
	}
	if _, ok := state.Bots[replaced]; ok {
		t.Fatalf("Expected replaced bot agent to be removed")
	}
}

func TestStartHand_RequiresOwnerAndFullTable(t *testing.T) {
	handler := newMatchHandler()
	alice := mockPresence{userID: "user-1"}
	bob := mockPresence{userID: "user-2"}

	state := newTestState([4]string{"user-1", "user-2", "", ""}, alice, bob)
	dispatcher := &mockDispatcher{}
	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{
		message(bob, OpStartHand, ""),
		message(alice, OpStartHand, "{}"),
	})

	if state.Hand != nil {
		t.Fatalf("Expected no hand with empty seats")
	}
	errs := dispatcher.byOp(OpGameError)
	if len(errs) != 2 {
		t.Fatalf("Expected 2 game errors, got %d", len(errs))
	}
	if code := decodeJSON(t, errs[0].data)["code"]; code != float64(errCodeForbidden) {
		t.Fatalf("Expected forbidden for non-owner, got %v", code)
	}
	if code := decodeJSON(t, errs[1].data)["code"]; code != float64(errCodeConflict) {
		t.Fatalf("Expected conflict for short table, got %v", code)
	}
}

func TestHumanSeat_AnswersAndTimeouts(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	alice := mockPresence{userID: "user-1", username: "alice"}
	archive := &mockArchive{}

	state := newTestState(botSeats("user-1"), alice)
	state.Archive = archive

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{
		message(alice, OpStartHand, `{"dealer": "south"}`),
	})
	if state.Hand == nil {
		t.Fatalf("Expected a hand to start")
	}
	if len(dispatcher.byOp(OpHandDealt)) != 1 {
		t.Fatalf("Expected the private deal to reach only the human, got %d", len(dispatcher.byOp(OpHandDealt)))
	}
	seat, decision, _ := state.Hand.Pending()
	if seat != domain.West || decision != app.DecisionOrderUp {
		t.Fatalf("Pending = %s %s, want west order_up", seat, decision)
	}
	turns := dispatcher.byOp(OpTurn)
	if len(turns) == 0 || decodeJSON(t, turns[len(turns)-1].data)["seat"] != "west" {
		t.Fatalf("Expected a turn message for west")
	}

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 2, state, []runtime.MatchData{
		message(alice, OpDecision, `{"decision": "call_trump", "accept": true, "suit": "hearts"}`),
		message(alice, OpPlayCard, `{"card": "JH"}`),
	})
	if got := len(dispatcher.byOp(OpGameError)); got != 2 {
		t.Fatalf("Expected 2 rejected answers, got %d", got)
	}
	if len(state.Hand.Actions()) != 0 {
		t.Fatalf("Rejected answers must not reach the hand")
	}

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 3, state, []runtime.MatchData{
		message(alice, OpDecision, `{"decision": "order_up", "accept": false}`),
	})
	actions := state.Hand.Actions()
	if len(actions) == 0 {
		t.Fatalf("Expected the answer to be applied")
	}
	if actions[0].Seat != domain.West || actions[0].Decision != app.DecisionOrderUp || actions[0].Accepted {
		t.Fatalf("First action = %+v, want west declining", actions[0])
	}

	// Alice stops answering; every later poll of west times out.
	for tick := int64(4); tick < 500 && state.HandsPlayed == 0; tick++ {
		handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, tick, state, nil)
	}

	if state.HandsPlayed != 1 || state.Hand != nil {
		t.Fatalf("Expected the hand to finish, hands played %d", state.HandsPlayed)
	}
	if state.Dealer != domain.West {
		t.Fatalf("Dealer = %s, want west after rotation", state.Dealer)
	}
	if len(archive.records) != 1 {
		t.Fatalf("Expected the finished hand to be archived, got %d", len(archive.records))
	}
	if len(dispatcher.byOp(OpHandEnded)) != 1 {
		t.Fatalf("Expected one hand_ended message")
	}
}

func TestSubmitAnswer_NotSeated(t *testing.T) {
	handler := newMatchHandler()
	dispatcher := &mockDispatcher{}
	stranger := mockPresence{userID: "user-9"}
	state := newTestState(botSeats("user-1"), stranger)

	handler.MatchLoop(context.Background(), noopLogger{}, nil, nil, dispatcher, 1, state, []runtime.MatchData{
		message(stranger, OpPlayCard, `{"card": "AS"}`),
	})

	errs := dispatcher.byOp(OpGameError)
	if len(errs) != 1 {
		t.Fatalf("Expected 1 game error, got %d", len(errs))
	}
	if msg := decodeJSON(t, errs[0].data)["message"]; msg != errNotSeated.Error() {
		t.Fatalf("message = %v, want %q", msg, errNotSeated.Error())
	}
	if errs[0].recipients[0].GetUserId() != "user-9" {
		t.Fatalf("Expected error to go to the sender only")
	}
}
