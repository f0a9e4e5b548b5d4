package bot

import (
	"euchre/internal/domain"
)

// ScriptedBrain answers from fixed configuration. Unset answers decline,
// and plays fall back to PassiveBrain once the script runs out or names a
// card no longer in hand.
type ScriptedBrain struct {
	PassiveBrain

	OrderUp     bool
	Alone       bool // answers both ShouldOrderUpAlone and ShouldCallAlone
	DefendAlone bool
	Call        *domain.Suit
	Discard     *domain.Card
	Plays       []domain.Card
}

var _ Brain = (*ScriptedBrain)(nil)

func (s *ScriptedBrain) ShouldOrderUp(domain.Position, []domain.Card, domain.Position, domain.Card) bool {
	return s.OrderUp
}

func (s *ScriptedBrain) ShouldOrderUpAlone(domain.Position, []domain.Card, domain.Position, domain.Card) bool {
	return s.Alone
}

func (s *ScriptedBrain) ShouldDefendAloneOrdered(domain.Position, []domain.Card, domain.Position, domain.Card, domain.Position) bool {
	return s.DefendAlone
}

func (s *ScriptedBrain) CallTrump(domain.Position, []domain.Card, domain.Position, domain.Card) (domain.Suit, bool) {
	if s.Call == nil {
		return 0, false
	}
	return *s.Call, true
}

func (s *ScriptedBrain) ShouldCallAlone(domain.Position, []domain.Card, domain.Position, domain.Suit) bool {
	return s.Alone
}

func (s *ScriptedBrain) ShouldDefendAloneCalled(domain.Position, []domain.Card, domain.Position, domain.Suit, domain.Position) bool {
	return s.DefendAlone
}

func (s *ScriptedBrain) ChooseDiscard(seat domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	if s.Discard != nil && domain.ContainsCard(hand, *s.Discard) {
		return *s.Discard
	}
	return s.PassiveBrain.ChooseDiscard(seat, hand, trump)
}

func (s *ScriptedBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	if len(s.Plays) > 0 {
		next := s.Plays[0]
		s.Plays = s.Plays[1:]
		if domain.ContainsCard(hand, next) {
			return next
		}
	}
	return s.PassiveBrain.PlayCard(seat, hand, bid, trick)
}
