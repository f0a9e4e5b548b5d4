package nakama

import (
	"errors"

	"euchre/internal/app"
	"euchre/internal/bot"
	"euchre/internal/domain"
)

var (
	errNoHand          = errors.New("no hand in progress")
	errNotSeated       = errors.New("you are not seated at this table")
	errNotYourTurn     = errors.New("it is not your turn")
	errWrongDecision   = errors.New("that decision is not being asked")
	errSuitRequired    = errors.New("a suit is required to name trump")
	errForbiddenSuit   = errors.New("the turned down suit cannot be named")
	errCardNotInHand   = errors.New("card is not in your hand")
	errMustFollowSuit  = errors.New("you must follow suit")
	errAlreadyAnswered = errors.New("answer already received")
)

// answer is a human response waiting for the hand to poll its seat.
type answer struct {
	decision app.Decision
	accept   bool
	suit     domain.Suit
	card     domain.Card
}

// remoteBrain answers polls for a human seat from submitted answers. When
// the turn expires it falls back to the passive defaults.
type remoteBrain struct {
	bot.PassiveBrain
	pending *answer
	expired bool
}

var _ bot.Brain = (*remoteBrain)(nil)

func (r *remoteBrain) ready() bool {
	return r.pending != nil || r.expired
}

func (r *remoteBrain) submit(a answer) {
	r.pending = &a
}

func (r *remoteBrain) expire() {
	r.expired = true
}

func (r *remoteBrain) take(d app.Decision) (answer, bool) {
	a := r.pending
	r.pending, r.expired = nil, false
	if a == nil || a.decision != d {
		return answer{}, false
	}
	return *a, true
}

func (r *remoteBrain) ShouldOrderUp(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	if a, ok := r.take(app.DecisionOrderUp); ok {
		return a.accept
	}
	return r.PassiveBrain.ShouldOrderUp(seat, hand, dealer, candidate)
}

func (r *remoteBrain) ShouldOrderUpAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	if a, ok := r.take(app.DecisionOrderUpAlone); ok {
		return a.accept
	}
	return r.PassiveBrain.ShouldOrderUpAlone(seat, hand, dealer, candidate)
}

func (r *remoteBrain) ShouldDefendAloneOrdered(seat domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card, caller domain.Position) bool {
	if a, ok := r.take(app.DecisionDefendAloneOrdered); ok {
		return a.accept
	}
	return r.PassiveBrain.ShouldDefendAloneOrdered(seat, hand, dealer, candidate, caller)
}

func (r *remoteBrain) CallTrump(seat domain.Position, hand []domain.Card, dealer domain.Position, turnedDown domain.Card) (domain.Suit, bool) {
	if a, ok := r.take(app.DecisionCallTrump); ok {
		return a.suit, a.accept
	}
	return r.PassiveBrain.CallTrump(seat, hand, dealer, turnedDown)
}

func (r *remoteBrain) ShouldCallAlone(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit) bool {
	if a, ok := r.take(app.DecisionCallAlone); ok {
		return a.accept
	}
	return r.PassiveBrain.ShouldCallAlone(seat, hand, dealer, trump)
}

func (r *remoteBrain) ShouldDefendAloneCalled(seat domain.Position, hand []domain.Card, dealer domain.Position, trump domain.Suit, caller domain.Position) bool {
	if a, ok := r.take(app.DecisionDefendAloneCalled); ok {
		return a.accept
	}
	return r.PassiveBrain.ShouldDefendAloneCalled(seat, hand, dealer, trump, caller)
}

func (r *remoteBrain) ChooseDiscard(seat domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	if a, ok := r.take(app.DecisionDiscard); ok {
		return a.card
	}
	return r.PassiveBrain.ChooseDiscard(seat, hand, trump)
}

func (r *remoteBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	if a, ok := r.take(app.DecisionPlayCard); ok {
		return a.card
	}
	return r.PassiveBrain.PlayCard(seat, hand, bid, trick)
}

// validateAnswer checks a human answer against the poll the hand is waiting
// on, so that nothing the core would reject ever reaches it.
func validateAnswer(h *app.HandState, seat domain.Position, a answer) error {
	if h == nil || h.Done() {
		return errNoHand
	}
	pendingSeat, decision, ok := h.Pending()
	if !ok || pendingSeat != seat {
		return errNotYourTurn
	}
	if decision != a.decision {
		return errWrongDecision
	}

	switch a.decision {
	case app.DecisionCallTrump:
		if !a.accept {
			return nil
		}
		if forbidden, ok := h.Bidding().Forbidden(); ok && a.suit == forbidden {
			return errForbiddenSuit
		}
	case app.DecisionDiscard:
		if !domain.ContainsCard(h.Hand(seat), a.card) {
			return errCardNotInHand
		}
	case app.DecisionPlayCard:
		hand := h.Hand(seat)
		if !domain.ContainsCard(hand, a.card) {
			return errCardNotInHand
		}
		bid, _ := h.Bid()
		if !domain.ContainsCard(domain.LegalCards(hand, bid.Trump, h.CurrentTrick()), a.card) {
			return errMustFollowSuit
		}
	}
	return nil
}
