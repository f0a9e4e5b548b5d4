package nakama

import (
	"bytes"
	"fmt"

	"euchre/internal/app"
	"euchre/internal/config"
	"euchre/internal/domain"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// decisionRequest answers a yes/no poll or names trump (op 2).
type decisionRequest struct {
	Decision app.Decision `mapstructure:"decision"`
	Accept   bool         `mapstructure:"accept"`
	Suit     *domain.Suit `mapstructure:"suit"`
}

// cardRequest carries the card of a discard (op 3) or a play (op 4).
type cardRequest struct {
	Card domain.Card `mapstructure:"card"`
}

// startHandRequest is the optional body of op 1.
type startHandRequest struct {
	Dealer *domain.Position `mapstructure:"dealer"`
}

// encodeMessage serializes payload as a protobuf Struct in JSON form.
func encodeMessage(payload map[string]any) ([]byte, error) {
	s, err := structpb.NewStruct(payload)
	if err != nil {
		return nil, fmt.Errorf("build message: %w", err)
	}
	return protojson.Marshal(s)
}

// decodeMessage parses a JSON object into out. An empty body decodes as {}.
func decodeMessage(data []byte, out any) error {
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	s := &structpb.Struct{}
	if err := protojson.Unmarshal(data, s); err != nil {
		return fmt.Errorf("parse message: %w", err)
	}
	return config.Decode(s.AsMap(), out)
}

func cardsValue(cards []domain.Card) []any {
	out := make([]any, len(cards))
	for i, c := range cards {
		out[i] = c.Code()
	}
	return out
}

func tallyValue(t app.Tally) []any {
	out := make([]any, len(t))
	for i, n := range t {
		out[i] = n
	}
	return out
}

func bidValue(b domain.BidResult) map[string]any {
	v := map[string]any{"kind": b.Kind.String()}
	if !b.HasTrump() {
		return v
	}
	v["trump"] = b.Trump.String()
	v["caller"] = b.Caller.String()
	if b.Kind == domain.DefendedAlone {
		v["defender"] = b.Defender.String()
	}
	return v
}

func actionValue(a app.Action, round int) map[string]any {
	v := map[string]any{
		"seat":     a.Seat.String(),
		"decision": string(a.Decision),
		"accepted": a.Accepted,
		"round":    round,
	}
	if a.Suit != nil {
		v["suit"] = a.Suit.String()
	}
	if a.Card != nil {
		v["card"] = a.Card.Code()
	}
	return v
}

// eventMessage maps an app event to its op code and wire payload.
func eventMessage(ev app.Event) (int64, map[string]any, bool) {
	switch p := ev.Payload.(type) {
	case app.HandStartedPayload:
		return OpHandStarted, map[string]any{
			"dealer":     p.Dealer.String(),
			"candidate":  p.Candidate.Code(),
			"first_seat": p.FirstSeat.String(),
		}, true
	case app.HandDealtPayload:
		return OpHandDealt, map[string]any{
			"seat": p.Seat.String(),
			"hand": cardsValue(p.Hand),
		}, true
	case app.BidActionPayload:
		return OpBidAction, actionValue(p.Action, p.Round), true
	case app.DiscardMadePayload:
		return OpDiscardMade, map[string]any{
			"seat": p.Seat.String(),
			"card": p.Card.Code(),
		}, true
	case app.TrumpDecidedPayload:
		return OpTrumpDecided, map[string]any{
			"bid":    bidValue(p.Bid),
			"leader": p.Leader.String(),
		}, true
	case app.HandPassedPayload:
		return OpHandPassed, map[string]any{
			"dealer":    p.Dealer.String(),
			"candidate": p.Candidate.Code(),
		}, true
	case app.CardPlayedPayload:
		return OpCardPlayed, map[string]any{
			"seat":  p.Seat.String(),
			"card":  p.Card.Code(),
			"trick": p.Trick,
		}, true
	case app.TrickWonPayload:
		plays := make([]any, len(p.Plays))
		for i, play := range p.Plays {
			plays[i] = map[string]any{"seat": play.Seat.String(), "card": play.Card.Code()}
		}
		return OpTrickWon, map[string]any{
			"winner": p.Winner.String(),
			"trick":  p.Trick,
			"plays":  plays,
			"tally":  tallyValue(p.Tally),
		}, true
	case app.HandEndedPayload:
		return OpHandEnded, map[string]any{
			"bid":   bidValue(p.Bid),
			"tally": tallyValue(p.Tally),
		}, true
	}
	return 0, nil, false
}
