package bot

import (
	"euchre/internal/domain"
)

// SplitBrain sends bidding decisions to Bidder and the discard and card
// play to Player.
type SplitBrain struct {
	Bidder Brain
	Player Brain
}

var _ Brain = SplitBrain{}

func (s SplitBrain) ShouldOrderUp(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	return s.Bidder.ShouldOrderUp(seat, hand, dealer, candidate)
}

func (s SplitBrain) ShouldOrderUpAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	return s.Bidder.ShouldOrderUpAlone(seat, hand, dealer, candidate)
}

func (s SplitBrain) ShouldDefendAloneOrdered(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card, caller domain.Position) bool {
	return s.Bidder.ShouldDefendAloneOrdered(seat, hand, dealer, candidate, caller)
}

func (s SplitBrain) CallTrump(seat domain.Position, hand []domain.Card, dealer domain.Position, turnedDown domain.Card) (domain.Suit, bool) {
	return s.Bidder.CallTrump(seat, hand, dealer, turnedDown)
}

func (s SplitBrain) ShouldCallAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit) bool {
	return s.Bidder.ShouldCallAlone(seat, hand, dealer, trump)
}

func (s SplitBrain) ShouldDefendAloneCalled(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit, caller domain.Position) bool {
	return s.Bidder.ShouldDefendAloneCalled(seat, hand, dealer, trump, caller)
}

func (s SplitBrain) ChooseDiscard(seat domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	return s.Player.ChooseDiscard(seat, hand, trump)
}

func (s SplitBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	return s.Player.PlayCard(seat, hand, bid, trick)
}
