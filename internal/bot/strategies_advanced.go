package bot

import (
	"euchre/internal/bot/brain"
	botinternal "euchre/internal/bot/internal"
	"euchre/internal/domain"
)

// AdvancedBrain weighs trump strength by seat, goes alone when few unseen
// cards can beat its hand, discards to create voids and plays for its team.
type AdvancedBrain struct {
	PassiveBrain
	Tuning *AdvancedTuning

	// cards seen during play of the current hand
	memory *brain.GameMemory
}

var _ Brain = (*AdvancedBrain)(nil)

func (b *AdvancedBrain) tuning() *AdvancedTuning {
	if b.Tuning != nil {
		return b.Tuning
	}
	return &DefaultTuning
}

// effectiveTrump adjusts raw trump length for who picks up the candidate.
func (b *AdvancedBrain) effectiveTrump(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit) int {
	t := b.tuning()
	n := botinternal.TrumpCount(hand, trump)
	switch {
	case seat == dealer:
		n += t.DealerBonus
	case seat.Partner() == dealer:
		n += t.PartnerDealerBonus
	default:
		n -= t.OpponentDealerPenalty
	}
	return n
}

func (b *AdvancedBrain) ShouldOrderUp(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	t := b.tuning()
	trump := candidate.Suit
	n := b.effectiveTrump(seat, hand, dealer, trump)
	if n >= t.OrderUpThreshold {
		return true
	}
	return n >= t.BowerOrderUpThreshold && botinternal.ProfileHand(hand, trump).HasBower()
}

// ShouldOrderUpAlone simulates the pickup when dealing, then counts beaters.
func (b *AdvancedBrain) ShouldOrderUpAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	trump := candidate.Suit
	playing, seen := hand, []domain.Card{candidate}
	if seat == dealer {
		full := append(append([]domain.Card(nil), hand...), candidate)
		discard := b.ChooseDiscard(seat, full, trump)
		playing, _ = domain.RemoveCard(full, discard)
		seen = []domain.Card{discard}
	}
	return b.alone(playing, trump, seen)
}

func (b *AdvancedBrain) ShouldDefendAloneOrdered(_ domain.Position, hand []domain.Card, _ domain.Position, candidate domain.Card, _ domain.Position) bool {
	return b.defend(hand, candidate.Suit)
}

// CallTrump names the strongest allowed suit. Seat position is ignored in
// round two since nobody picks up.
func (b *AdvancedBrain) CallTrump(_ domain.Position, hand []domain.Card, _ domain.Position, turnedDown domain.Card) (domain.Suit, bool) {
	t := b.tuning()
	suit, p := botinternal.BestTrumpSuit(hand, turnedDown.Suit)
	if p.TrumpCount >= t.CallThreshold || (p.TrumpCount >= t.BowerCallThreshold && p.HasBower()) {
		return suit, true
	}
	return 0, false
}

func (b *AdvancedBrain) ShouldCallAlone(_ domain.Position, hand []domain.Card, _ domain.Position, trump domain.Suit) bool {
	return b.alone(hand, trump, nil)
}

func (b *AdvancedBrain) ShouldDefendAloneCalled(_ domain.Position, hand []domain.Card, _ domain.Position, trump domain.Suit, _ domain.Position) bool {
	return b.defend(hand, trump)
}

func (b *AdvancedBrain) alone(hand []domain.Card, trump domain.Suit, seen []domain.Card) bool {
	return botinternal.Beaters(hand, trump, seen) <= b.tuning().AloneBeaterThreshold
}

func (b *AdvancedBrain) defend(hand []domain.Card, trump domain.Suit) bool {
	p := botinternal.ProfileHand(hand, trump)
	return p.HasRight && p.TrumpCount >= b.tuning().DefendTrumpThreshold
}

// ChooseDiscard prefers a low plain singleton that is not an ace, then any
// low plain card, then the lowest card.
func (b *AdvancedBrain) ChooseDiscard(_ domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	return botinternal.DiscardCandidate(hand, trump)
}

// PlayCard leads its best trump as caller, otherwise an off suit card no
// unseen card can beat, otherwise trump for a calling partner, otherwise its
// lowest plain card. Following, it ducks under a winning partner and wins as
// cheaply as it can.
func (b *AdvancedBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	b.observe(hand, trick)
	card := b.choose(seat, hand, bid, trick)
	b.memory.MarkPlayed([]domain.Card{card})
	return card
}

// observe records the cards visible at this turn. A full hand means a new
// hand has started.
func (b *AdvancedBrain) observe(hand []domain.Card, trick domain.Trick) {
	if b.memory == nil {
		b.memory = brain.NewMemory()
	}
	if len(hand) == domain.HandSize {
		b.memory.Reset()
	}
	b.memory.MarkMine(hand)
	b.memory.MarkPlayed(trick.Cards())
}

func (b *AdvancedBrain) choose(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	trump := bid.Trump
	if trick.Empty() {
		return b.lead(seat, hand, bid)
	}

	legal := botinternal.Playable(hand, trump, trick)
	top, _ := trick.Winner(trump)
	if top.Seat == seat.Partner() {
		return botinternal.Lowest(legal, trump)
	}
	if win := botinternal.Winning(legal, trump, trick); len(win) > 0 {
		return botinternal.Lowest(win, trump)
	}
	return botinternal.Lowest(legal, trump)
}

func (b *AdvancedBrain) lead(seat domain.Position, hand []domain.Card, bid domain.BidResult) domain.Card {
	trump := bid.Trump
	trumps := domain.CardsOfSuit(hand, trump, trump)
	if seat == bid.Caller && len(trumps) > 0 {
		return botinternal.Highest(trumps, trump)
	}
	for _, c := range hand {
		if !c.IsTrump(trump) && b.memory.IsBoss(c, trump) {
			return c
		}
	}
	if seat.Partner() == bid.Caller && len(trumps) > 0 {
		return botinternal.Highest(trumps, trump)
	}
	if len(trumps) < len(hand) {
		var plain []domain.Card
		for _, c := range hand {
			if !c.IsTrump(trump) {
				plain = append(plain, c)
			}
		}
		return botinternal.Lowest(plain, trump)
	}
	return botinternal.Lowest(hand, trump)
}
