package brain

import (
	"euchre/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // Could be in any other seat's hand or the stock
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Already on the table or discarded
	StatusExposed                   // Seen but out of play (turned down candidate)
)

// GameMemory stores the bot's private view of one hand.
type GameMemory struct {
	// DeckStatus tracks all 24 cards. Index = Suit*6 + Rank.
	DeckStatus [domain.DeckSize]CardStatus
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{}
}

// Reset clears the memory for a new hand.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that have been played or discarded.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

// MarkExposed records cards seen face up that no opponent can hold.
func (m *GameMemory) MarkExposed(cards []domain.Card) {
	m.mark(cards, StatusExposed)
}

func (m *GameMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		m.DeckStatus[cardToIndex(c)] = status
	}
}

// Unseen returns every card that may still be in another seat's hand.
func (m *GameMemory) Unseen() []domain.Card {
	var out []domain.Card
	for i, s := range m.DeckStatus {
		if s == StatusUnknown {
			out = append(out, indexToCard(i))
		}
	}
	return out
}

// IsBoss reports whether c cannot be beaten within its effective suit by
// any unseen card.
func (m *GameMemory) IsBoss(c domain.Card, trump domain.Suit) bool {
	suit := c.EffectiveSuit(trump)
	for _, u := range m.Unseen() {
		if u.EffectiveSuit(trump) == suit && domain.PlayValue(u, trump) > domain.PlayValue(c, trump) {
			return false
		}
	}
	return true
}

func cardToIndex(c domain.Card) int {
	return int(c.Suit)*len(domain.Ranks) + int(c.Rank)
}

func indexToCard(i int) domain.Card {
	return domain.Card{Suit: domain.Suit(i / len(domain.Ranks)), Rank: domain.Rank(i % len(domain.Ranks))}
}
