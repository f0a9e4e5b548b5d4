package bot

import (
	"euchre/internal/domain"
)

// PassiveBrain declines every bid and plays the first card that follows
// the lead. Other brains embed it to inherit safe defaults.
type PassiveBrain struct{}

var _ Brain = PassiveBrain{}

func (PassiveBrain) ShouldOrderUp(domain.Position, []domain.Card, domain.Position, domain.Card) bool {
	return false
}

func (PassiveBrain) ShouldOrderUpAlone(domain.Position, []domain.Card, domain.Position, domain.Card) bool {
	return false
}

func (PassiveBrain) ShouldDefendAloneOrdered(domain.Position, []domain.Card, domain.Position, domain.Card, domain.Position) bool {
	return false
}

func (PassiveBrain) CallTrump(domain.Position, []domain.Card, domain.Position, domain.Card) (domain.Suit, bool) {
	return 0, false
}

func (PassiveBrain) ShouldCallAlone(domain.Position, []domain.Card, domain.Position, domain.Suit) bool {
	return false
}

func (PassiveBrain) ShouldDefendAloneCalled(domain.Position, []domain.Card, domain.Position, domain.Suit, domain.Position) bool {
	return false
}

// ChooseDiscard sheds the first card.
func (PassiveBrain) ChooseDiscard(_ domain.Position, hand []domain.Card, _ domain.Suit) domain.Card {
	return hand[0]
}

// PlayCard plays the first card following the lead, else the first card.
func (PassiveBrain) PlayCard(_ domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	if lead, ok := trick.LeadCard(); ok {
		suit := lead.EffectiveSuit(bid.Trump)
		for _, c := range hand {
			if c.EffectiveSuit(bid.Trump) == suit {
				return c
			}
		}
	}
	return hand[0]
}
