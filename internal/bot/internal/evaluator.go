package internal

import (
	"sort"

	"euchre/internal/bot/brain"
	"euchre/internal/domain"
)

// Beaters counts, over every effective suit held, the unseen cards that
// outrank the best card held in that suit. A card k places below the top of
// its suit contributes up to k beaters, so weaker holdings weigh more.
// Cards in seen are treated as out of play.
func Beaters(hand []domain.Card, trump domain.Suit, seen []domain.Card) int {
	mem := brain.NewMemory()
	mem.MarkMine(hand)
	mem.MarkExposed(seen)

	best := map[domain.Suit]domain.Card{}
	for _, c := range hand {
		suit := c.EffectiveSuit(trump)
		if cur, ok := best[suit]; !ok || domain.PlayValue(c, trump) > domain.PlayValue(cur, trump) {
			best[suit] = c
		}
	}

	total := 0
	for _, u := range mem.Unseen() {
		top, ok := best[u.EffectiveSuit(trump)]
		if ok && domain.PlayValue(u, trump) > domain.PlayValue(top, trump) {
			total++
		}
	}
	return total
}

// DiscardCandidate picks the card to shed from a six card hand. In order of
// preference: the lowest singleton of a plain suit that is not an ace, the
// lowest plain card that is not an ace, the lowest plain card, the lowest card.
func DiscardCandidate(hand []domain.Card, trump domain.Suit) domain.Card {
	cards := append([]domain.Card(nil), hand...)
	sort.SliceStable(cards, func(i, j int) bool {
		return domain.PlayValue(cards[i], trump) < domain.PlayValue(cards[j], trump)
	})

	counts := map[domain.Suit]int{}
	for _, c := range cards {
		counts[c.EffectiveSuit(trump)]++
	}

	plain := func(c domain.Card) bool { return !c.IsTrump(trump) }
	tiers := []func(domain.Card) bool{
		func(c domain.Card) bool { return plain(c) && c.Rank != domain.Ace && counts[c.Suit] == 1 },
		func(c domain.Card) bool { return plain(c) && c.Rank != domain.Ace },
		plain,
	}
	for _, match := range tiers {
		for _, c := range cards {
			if match(c) {
				return c
			}
		}
	}
	return cards[0]
}

// Lowest returns the card with the smallest play value.
func Lowest(cards []domain.Card, trump domain.Suit) domain.Card {
	low := cards[0]
	for _, c := range cards[1:] {
		if domain.PlayValue(c, trump) < domain.PlayValue(low, trump) {
			low = c
		}
	}
	return low
}

// Highest returns the card with the largest play value.
func Highest(cards []domain.Card, trump domain.Suit) domain.Card {
	high := cards[0]
	for _, c := range cards[1:] {
		if domain.PlayValue(c, trump) > domain.PlayValue(high, trump) {
			high = c
		}
	}
	return high
}

// Playable returns the cards that follow the effective suit of the lead
// card, or the whole hand when void or leading.
func Playable(hand []domain.Card, trump domain.Suit, trick domain.Trick) []domain.Card {
	return domain.LegalCards(hand, trump, trick)
}

// Winning returns the cards of candidates that would take the trick as it stands.
func Winning(candidates []domain.Card, trump domain.Suit, trick domain.Trick) []domain.Card {
	top, ok := trick.Winner(trump)
	if !ok {
		return candidates
	}
	var out []domain.Card
	for _, c := range candidates {
		if c.Beats(top.Card, trump, trick.Led) {
			out = append(out, c)
		}
	}
	return out
}
