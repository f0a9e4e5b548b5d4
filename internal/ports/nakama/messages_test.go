package nakama

import (
	"testing"

	"euchre/internal/app"
	"euchre/internal/domain"
)

func TestDecodeMessage(t *testing.T) {
	var decision decisionRequest
	if err := decodeMessage([]byte(`{"decision":"call_trump","accept":true,"suit":"hearts"}`), &decision); err != nil {
		t.Fatalf("decodeMessage() error: %v", err)
	}
	if decision.Decision != app.DecisionCallTrump || !decision.Accept || decision.Suit == nil || *decision.Suit != domain.Hearts {
		t.Fatalf("Unexpected decision %+v", decision)
	}

	var card cardRequest
	if err := decodeMessage([]byte(`{"card":"10d"}`), &card); err != nil {
		t.Fatalf("decodeMessage() error: %v", err)
	}
	if card.Card != domain.MustParseCard("TD") {
		t.Fatalf("card = %s, want TD", card.Card.Code())
	}

	var start startHandRequest
	if err := decodeMessage(nil, &start); err != nil || start.Dealer != nil {
		t.Fatalf("Expected an empty body to decode, got %+v, %v", start, err)
	}
}

func TestDecodeMessage_Rejects(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"NotJSON", `card=AS`},
		{"UnknownField", `{"card":"AS","cards":["KS"]}`},
		{"BadCard", `{"card":"1S"}`},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var card cardRequest
			if err := decodeMessage([]byte(test.body), &card); err == nil {
				t.Fatalf("Expected %s to be rejected", test.body)
			}
		})
	}
}

func TestEventMessage_TrickWon(t *testing.T) {
	ev := app.Event{
		Kind: app.EventTrickWon,
		Payload: app.TrickWonPayload{
			Winner: domain.West,
			Trick:  2,
			Plays: []domain.Play{
				{Seat: domain.South, Card: domain.MustParseCard("9H")},
				{Seat: domain.West, Card: domain.MustParseCard("JD")},
			},
			Tally: app.Tally{2, 0, 0, 0},
		},
	}

	opCode, payload, ok := eventMessage(ev)
	if !ok || opCode != OpTrickWon {
		t.Fatalf("eventMessage() = %d %t, want %d", opCode, ok, OpTrickWon)
	}
	data, err := encodeMessage(payload)
	if err != nil {
		t.Fatalf("encodeMessage() error: %v", err)
	}

	got := decodeJSON(t, data)
	if got["winner"] != "west" || got["trick"] != float64(2) {
		t.Fatalf("Unexpected trick_won %v", got)
	}
	plays := got["plays"].([]any)
	if second := plays[1].(map[string]any); second["card"] != "JD" || second["seat"] != "west" {
		t.Fatalf("Unexpected second play %v", second)
	}
	if tally := got["tally"].([]any); tally[0] != float64(2) {
		t.Fatalf("Unexpected tally %v", tally)
	}
}

func TestEventMessage_BidAction(t *testing.T) {
	suit := domain.Clubs
	_, payload, ok := eventMessage(app.Event{
		Kind: app.EventBidAction,
		Payload: app.BidActionPayload{
			Action: app.Action{Seat: domain.North, Decision: app.DecisionCallTrump, Accepted: true, Suit: &suit},
			Round:  2,
		},
	})
	if !ok {
		t.Fatalf("Expected bid_action to map")
	}
	data, err := encodeMessage(payload)
	if err != nil {
		t.Fatalf("encodeMessage() error: %v", err)
	}
	got := decodeJSON(t, data)
	if got["suit"] != "clubs" || got["decision"] != "call_trump" || got["round"] != float64(2) {
		t.Fatalf("Unexpected bid_action %v", got)
	}
	if _, ok := got["card"]; ok {
		t.Fatalf("Expected no card on a call")
	}
}

func TestEventMessage_Unknown(t *testing.T) {
	if _, _, ok := eventMessage(app.Event{Kind: "mystery", Payload: 42}); ok {
		t.Fatalf("Expected unknown payloads to be skipped")
	}
}

func TestBidValue(t *testing.T) {
	if v := bidValue(domain.NoBid()); len(v) != 1 || v["kind"] != "no_one_called" {
		t.Fatalf("Unexpected no-bid value %v", v)
	}
	v := bidValue(domain.DefendedAloneBy(domain.Hearts, domain.East, domain.South))
	if v["defender"] != "south" || v["caller"] != "east" || v["trump"] != "hearts" {
		t.Fatalf("Unexpected defended value %v", v)
	}
}
