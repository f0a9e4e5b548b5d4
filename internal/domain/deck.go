package domain

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidDeal is returned when a fixed deal cannot be built.
var ErrInvalidDeal = errors.New("invalid deal")

const (
	// HandSize is the number of cards dealt to each seat.
	HandSize = 5
	// DeckSize is the nine-through-ace pack.
	DeckSize = 24
)

// NewDeck returns the ordered 24 card euchre deck.
func NewDeck() []Card {
	deck := make([]Card, 0, DeckSize)
	for _, s := range Suits {
		for _, r := range Ranks {
			deck = append(deck, Card{Suit: s, Rank: r})
		}
	}
	return deck
}

// ShuffleDeck returns a shuffled copy of the given deck.
func ShuffleDeck(deck []Card, rng *rand.Rand) []Card {
	out := make([]Card, len(deck))
	copy(out, deck)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Deal is the cards handed out at the start of a hand.
type Deal struct {
	Hands     [4][]Card
	Candidate Card
	Stock     []Card
}

// DealHands deals five cards to each seat starting left of the dealer,
// turns up the next card as the trump candidate and keeps the rest as stock.
func DealHands(deck []Card, dealer Position) Deal {
	var d Deal
	idx := 0
	seat := dealer.Next()
	for range Positions {
		d.Hands[seat] = append([]Card{}, deck[idx:idx+HandSize]...)
		idx += HandSize
		seat = seat.Next()
	}
	d.Candidate = deck[idx]
	d.Stock = append([]Card{}, deck[idx+1:]...)
	return d
}

// DealAround deals a hand in which seat holds exactly hand and candidate is
// turned up. Remaining cards are shuffled with rng and dealt to the others.
func DealAround(dealer, seat Position, hand []Card, candidate Card, rng *rand.Rand) (Deal, error) {
	if len(hand) != HandSize {
		return Deal{}, fmt.Errorf("%w: hand has %d cards", ErrInvalidDeal, len(hand))
	}
	fixed := make(map[Card]bool, HandSize+1)
	for _, c := range append(append([]Card{}, hand...), candidate) {
		if fixed[c] {
			return Deal{}, fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, c.Code())
		}
		fixed[c] = true
	}

	rest := make([]Card, 0, DeckSize-len(fixed))
	for _, c := range NewDeck() {
		if !fixed[c] {
			rest = append(rest, c)
		}
	}
	rest = ShuffleDeck(rest, rng)

	var d Deal
	d.Candidate = candidate
	d.Hands[seat] = append([]Card{}, hand...)
	idx := 0
	for p := dealer.Next(); ; p = p.Next() {
		if p != seat {
			d.Hands[p] = append([]Card{}, rest[idx:idx+HandSize]...)
			idx += HandSize
		}
		if p == dealer {
			break
		}
	}
	d.Stock = rest[idx:]
	return d, nil
}
