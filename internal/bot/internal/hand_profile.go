package internal

import "euchre/internal/domain"

// HandProfile summarizes a hand from the point of view of one trump suit.
type HandProfile struct {
	Trump        domain.Suit
	TrumpCount   int
	HasRight     bool
	HasLeft      bool
	TrumpAces    int
	OffAces      int
	SuitCounts   [4]int // by effective suit
	VoidSuits    int    // plain suits with no cards
	Singletons   int    // plain suits with exactly one card
	TotalCards   int
	HighestTrump domain.RankWithBowers
}

// HasBower reports whether either bower is held.
func (p HandProfile) HasBower() bool {
	return p.HasRight || p.HasLeft
}

// ProfileHand analyzes hand as if trump were already named.
func ProfileHand(hand []domain.Card, trump domain.Suit) HandProfile {
	profile := HandProfile{Trump: trump, TotalCards: len(hand), HighestTrump: -1}
	for _, c := range hand {
		suit := c.EffectiveSuit(trump)
		profile.SuitCounts[suit]++
		if suit != trump {
			if c.Rank == domain.Ace {
				profile.OffAces++
			}
			continue
		}
		profile.TrumpCount++
		switch {
		case c.IsRightBower(trump):
			profile.HasRight = true
		case c.IsLeftBower(trump):
			profile.HasLeft = true
		case c.Rank == domain.Ace:
			profile.TrumpAces++
		}
		if r := c.RankWithBowers(trump); r > profile.HighestTrump {
			profile.HighestTrump = r
		}
	}
	for _, s := range domain.Suits {
		if s == trump {
			continue
		}
		switch profile.SuitCounts[s] {
		case 0:
			profile.VoidSuits++
		case 1:
			profile.Singletons++
		}
	}
	return profile
}

// TrumpCount counts cards that rank as trump, the left bower included.
func TrumpCount(hand []domain.Card, trump domain.Suit) int {
	n := 0
	for _, c := range hand {
		if c.IsTrump(trump) {
			n++
		}
	}
	return n
}

// BestTrumpSuit returns the suit, other than excluded, that would give the
// hand the most trump. Ties prefer a suit with a bower.
func BestTrumpSuit(hand []domain.Card, excluded domain.Suit) (domain.Suit, HandProfile) {
	var best HandProfile
	bestSuit := excluded
	found := false
	for _, s := range domain.Suits {
		if s == excluded {
			continue
		}
		p := ProfileHand(hand, s)
		if !found || p.TrumpCount > best.TrumpCount ||
			(p.TrumpCount == best.TrumpCount && p.HighestTrump > best.HighestTrump) {
			best, bestSuit, found = p, s, true
		}
	}
	return bestSuit, best
}
