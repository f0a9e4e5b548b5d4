package bot

import (
	botinternal "euchre/internal/bot/internal"
	"euchre/internal/domain"
)

const (
	basicOrderUpThreshold       = 4
	basicDealerOrderUpThreshold = 3
	basicCallThreshold          = 4
)

// BasicBrain bids on trump length alone and plays a simple high/low game.
// It never goes or defends alone.
type BasicBrain struct {
	PassiveBrain
}

var _ Brain = (*BasicBrain)(nil)

// ShouldOrderUp orders with four trump, or three when its team deals.
func (b *BasicBrain) ShouldOrderUp(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	n := botinternal.TrumpCount(hand, candidate.Suit)
	if seat == dealer || seat.Partner() == dealer {
		return n >= basicDealerOrderUpThreshold
	}
	return n >= basicOrderUpThreshold
}

// CallTrump names the longest allowed suit holding at least four trump.
func (b *BasicBrain) CallTrump(_ domain.Position, hand []domain.Card, _ domain.Position, turnedDown domain.Card) (domain.Suit, bool) {
	suit, profile := botinternal.BestTrumpSuit(hand, turnedDown.Suit)
	if profile.TrumpCount >= basicCallThreshold {
		return suit, true
	}
	return 0, false
}

// ChooseDiscard sheds the lowest plain card, else the lowest trump.
func (b *BasicBrain) ChooseDiscard(_ domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	var plain []domain.Card
	for _, c := range hand {
		if !c.IsTrump(trump) {
			plain = append(plain, c)
		}
	}
	if len(plain) > 0 {
		return botinternal.Lowest(plain, trump)
	}
	return botinternal.Lowest(hand, trump)
}

// PlayCard leads its highest card. Following, it plays high when that
// wins and low otherwise. Void, it trumps in unless the partner is winning.
func (b *BasicBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	trump := bid.Trump
	if trick.Empty() {
		return botinternal.Highest(hand, trump)
	}

	lead, _ := trick.LeadCard()
	follow := domain.CardsOfSuit(hand, lead.EffectiveSuit(trump), trump)
	if len(follow) > 0 {
		high := botinternal.Highest(follow, trump)
		if len(botinternal.Winning([]domain.Card{high}, trump, trick)) > 0 {
			return high
		}
		return botinternal.Lowest(follow, trump)
	}

	top, _ := trick.Winner(trump)
	if top.Seat != seat.Partner() {
		if trumps := domain.CardsOfSuit(hand, trump, trump); len(trumps) > 0 {
			if win := botinternal.Winning(trumps, trump, trick); len(win) > 0 {
				return botinternal.Lowest(win, trump)
			}
		}
	}
	return botinternal.Lowest(hand, trump)
}
