package domain

// Play is one card laid in a trick.
type Play struct {
	Seat Position `json:"seat"`
	Card Card     `json:"card"`
}

// Trick accumulates the cards of a single trick in play order. Led is the
// printed suit of the first card and never changes once set.
type Trick struct {
	Plays []Play `json:"plays"`
	Led   Suit   `json:"led"`
}

// Add records seat playing card.
func (t *Trick) Add(seat Position, card Card) {
	if len(t.Plays) == 0 {
		t.Led = card.Suit
	}
	t.Plays = append(t.Plays, Play{Seat: seat, Card: card})
}

// Empty reports whether nobody has played yet.
func (t Trick) Empty() bool {
	return len(t.Plays) == 0
}

// LedSuit returns the printed suit of the first card, if any.
func (t Trick) LedSuit() (Suit, bool) {
	if t.Empty() {
		return 0, false
	}
	return t.Led, true
}

// LeadCard returns the first card played, if any.
func (t Trick) LeadCard() (Card, bool) {
	if t.Empty() {
		return Card{}, false
	}
	return t.Plays[0].Card, true
}

// Winner returns the play currently taking the trick under trump.
func (t Trick) Winner(trump Suit) (Play, bool) {
	if t.Empty() {
		return Play{}, false
	}
	best := t.Plays[0]
	for _, p := range t.Plays[1:] {
		if p.Card.Beats(best.Card, trump, t.Led) {
			best = p
		}
	}
	return best, true
}

// Cards returns the played cards in order.
func (t Trick) Cards() []Card {
	out := make([]Card, len(t.Plays))
	for i, p := range t.Plays {
		out[i] = p.Card
	}
	return out
}

// Clone returns a copy that shares nothing with t.
func (t Trick) Clone() Trick {
	return Trick{Plays: append([]Play(nil), t.Plays...), Led: t.Led}
}
