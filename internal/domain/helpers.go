package domain

import "sort"

// RemoveCard returns hand without the first copy of card.
func RemoveCard(hand []Card, card Card) ([]Card, bool) {
	for i, c := range hand {
		if c == card {
			out := make([]Card, 0, len(hand)-1)
			out = append(out, hand[:i]...)
			return append(out, hand[i+1:]...), true
		}
	}
	return hand, false
}

// ContainsCard reports whether card is in hand.
func ContainsCard(hand []Card, card Card) bool {
	for _, c := range hand {
		if c == card {
			return true
		}
	}
	return false
}

// CardsOfSuit returns the cards of hand whose effective suit under trump is suit.
func CardsOfSuit(hand []Card, suit, trump Suit) []Card {
	var out []Card
	for _, c := range hand {
		if c.EffectiveSuit(trump) == suit {
			out = append(out, c)
		}
	}
	return out
}

// LegalCards returns the cards of hand that may be played to trick: the
// cards following the lead's effective suit, or the whole hand when void.
func LegalCards(hand []Card, trump Suit, trick Trick) []Card {
	lead, ok := trick.LeadCard()
	if !ok {
		return hand
	}
	follow := CardsOfSuit(hand, lead.EffectiveSuit(trump), trump)
	if len(follow) == 0 {
		return hand
	}
	return follow
}

// PlayValue orders cards for choosing high or low plays: every trump card
// outranks every plain card, and plain cards compare by printed rank.
func PlayValue(c Card, trump Suit) int {
	if c.IsTrump(trump) {
		return 10 + int(c.RankWithBowers(trump))
	}
	return int(c.Rank)
}

// SortHand groups a hand by effective suit with trump last, each group ascending.
func SortHand(cards []Card, trump Suit) {
	sort.SliceStable(cards, func(i, j int) bool {
		si, sj := cards[i].EffectiveSuit(trump), cards[j].EffectiveSuit(trump)
		ti, tj := si == trump, sj == trump
		if ti != tj {
			return tj
		}
		if si != sj {
			return si < sj
		}
		return PlayValue(cards[i], trump) < PlayValue(cards[j], trump)
	})
}

// LowestAvailableSeat returns the first empty seat in rotation order.
func LowestAvailableSeat(seats *[4]string) (Position, bool) {
	for i, userID := range seats {
		if userID == "" {
			return Position(i), true
		}
	}
	return 0, false
}
