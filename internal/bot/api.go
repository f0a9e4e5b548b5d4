package bot

import (
	"euchre/internal/domain"
)

// Brain is the interface that all seat strategies must implement. The
// engine polls exactly one method per step and never calls concurrently.
// Hands passed in are copies; implementations may keep them.
type Brain interface {
	// ShouldOrderUp is asked in round one with the turned up candidate.
	ShouldOrderUp(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool
	// ShouldOrderUpAlone is asked of the seat that just ordered up.
	ShouldOrderUpAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool
	// ShouldDefendAloneOrdered is asked of opponents of a lone round one caller.
	ShouldDefendAloneOrdered(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card, caller domain.Position) bool
	// CallTrump is asked in round two. The returned suit must differ from turnedDown's.
	CallTrump(seat domain.Position, hand []domain.Card, dealer domain.Position, turnedDown domain.Card) (domain.Suit, bool)
	// ShouldCallAlone is asked of the seat that named trump in round two.
	ShouldCallAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit) bool
	// ShouldDefendAloneCalled is asked of opponents of a lone round two caller.
	ShouldDefendAloneCalled(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit, caller domain.Position) bool
	// ChooseDiscard returns one card of the dealer's six card hand.
	ChooseDiscard(seat domain.Position, hand []domain.Card, trump domain.Suit) domain.Card
	// PlayCard returns one card of hand for the trick in progress.
	PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card
}
