package app

import (
	"fmt"

	"euchre/internal/bot"
	"euchre/internal/domain"
)

// BidPhase is the sub-state of bidding; the seat being polled is tracked separately.
type BidPhase int

const (
	BidOrderUp BidPhase = iota
	BidOrderUpAlone
	BidDefendAloneOrdered
	BidDiscard
	BidCallTrump
	BidCallAlone
	BidDefendAloneCalled
	BidDone
)

var bidDecisions = [...]Decision{
	BidOrderUp:            DecisionOrderUp,
	BidOrderUpAlone:       DecisionOrderUpAlone,
	BidDefendAloneOrdered: DecisionDefendAloneOrdered,
	BidDiscard:            DecisionDiscard,
	BidCallTrump:          DecisionCallTrump,
	BidCallAlone:          DecisionCallAlone,
	BidDefendAloneCalled:  DecisionDefendAloneCalled,
}

// BidState runs the two bidding rounds one poll per Step.
type BidState struct {
	dealer    domain.Position
	candidate domain.Card
	hands     *[4][]domain.Card
	brains    [4]bot.Brain

	phase  BidPhase
	active domain.Position
	round  int
	polled int // seats asked in the current round or defender poll

	trump    domain.Suit
	caller   domain.Position
	alone    bool
	defender *domain.Position
	result   domain.BidResult

	log []Action
}

// NewBidState starts round one with the seat left of the dealer. hands is
// shared with the caller; the dealer's hand grows to six cards on pickup.
func NewBidState(dealer domain.Position, candidate domain.Card, hands *[4][]domain.Card, brains [4]bot.Brain) *BidState {
	return &BidState{
		dealer:    dealer,
		candidate: candidate,
		hands:     hands,
		brains:    brains,
		phase:     BidOrderUp,
		round:     1,
		active:    dealer.Next(),
	}
}

// Step polls one seat. It returns the bid result once bidding is over;
// further calls return the same result without polling.
func (b *BidState) Step() (domain.BidResult, bool) {
	if b.phase == BidDone {
		return b.result, true
	}

	seat := b.active
	brain := b.brains[seat]
	hand := b.hand(seat)

	switch b.phase {
	case BidOrderUp:
		yes := brain.ShouldOrderUp(seat, hand, b.dealer, b.candidate)
		b.record(Action{Seat: seat, Decision: DecisionOrderUp, Accepted: yes})
		if yes {
			b.trump, b.caller = b.candidate.Suit, seat
			b.phase = BidOrderUpAlone
			break
		}
		b.advanceRound(BidCallTrump)

	case BidOrderUpAlone:
		b.alone = brain.ShouldOrderUpAlone(seat, hand, b.dealer, b.candidate)
		b.record(Action{Seat: seat, Decision: DecisionOrderUpAlone, Accepted: b.alone})
		b.afterAlone(BidDefendAloneOrdered, true)

	case BidDefendAloneOrdered:
		yes := brain.ShouldDefendAloneOrdered(seat, hand, b.dealer, b.candidate, b.caller)
		b.record(Action{Seat: seat, Decision: DecisionDefendAloneOrdered, Accepted: yes})
		b.afterDefendPoll(yes, true)

	case BidDiscard:
		card := brain.ChooseDiscard(seat, hand, b.trump)
		rest, ok := domain.RemoveCard(b.hands[seat], card)
		if !ok {
			panic(fmt.Sprintf("euchre: %s discarded %s which is not in hand", seat, card.Code()))
		}
		b.hands[seat] = rest
		b.record(Action{Seat: seat, Decision: DecisionDiscard, Card: &card})
		b.phase = BidDone

	case BidCallTrump:
		suit, ok := brain.CallTrump(seat, hand, b.dealer, b.candidate)
		if ok && suit == b.candidate.Suit {
			panic(fmt.Sprintf("euchre: %s called the turned down suit %s", seat, suit))
		}
		action := Action{Seat: seat, Decision: DecisionCallTrump, Accepted: ok}
		if ok {
			action.Suit = &suit
		}
		b.record(action)
		if ok {
			b.trump, b.caller = suit, seat
			b.phase = BidCallAlone
			break
		}
		b.advanceRound(BidDone)

	case BidCallAlone:
		b.alone = brain.ShouldCallAlone(seat, hand, b.dealer, b.trump)
		b.record(Action{Seat: seat, Decision: DecisionCallAlone, Accepted: b.alone})
		b.afterAlone(BidDefendAloneCalled, false)

	case BidDefendAloneCalled:
		yes := brain.ShouldDefendAloneCalled(seat, hand, b.dealer, b.trump, b.caller)
		b.record(Action{Seat: seat, Decision: DecisionDefendAloneCalled, Accepted: yes})
		b.afterDefendPoll(yes, false)
	}

	if b.phase == BidDone {
		return b.result, true
	}
	return domain.BidResult{}, false
}

// advanceRound moves to the next seat after a decline, or to next once
// all four seats have declined.
func (b *BidState) advanceRound(next BidPhase) {
	b.polled++
	if b.polled < len(domain.Positions) {
		b.active = b.active.Next()
		return
	}
	b.polled = 0
	b.active = b.dealer.Next()
	b.phase = next
	switch next {
	case BidCallTrump:
		b.round = 2
	case BidDone:
		b.result = domain.NoBid()
	}
}

func (b *BidState) afterAlone(defendPhase BidPhase, roundOne bool) {
	if !b.alone {
		b.finish(roundOne)
		return
	}
	b.phase = defendPhase
	b.polled = 0
	b.active = opponentsOf(b.caller)[0]
}

// afterDefendPoll takes the first volunteer; later opponents are not asked.
func (b *BidState) afterDefendPoll(volunteered, roundOne bool) {
	if volunteered {
		seat := b.active
		b.defender = &seat
		b.finish(roundOne)
		return
	}
	opponents := opponentsOf(b.caller)
	b.polled++
	if b.polled == len(opponents) {
		b.finish(roundOne)
		return
	}
	b.active = opponents[b.polled]
}

// opponentsOf lists the seats against caller in polling order.
func opponentsOf(caller domain.Position) []domain.Position {
	var out []domain.Position
	for seat := caller.Next(); seat != caller; seat = seat.Next() {
		if seat.Opposes(caller) {
			out = append(out, seat)
		}
	}
	return out
}

func (b *BidState) finish(roundOne bool) {
	switch {
	case b.defender != nil:
		b.result = domain.DefendedAloneBy(b.trump, b.caller, *b.defender)
	case b.alone:
		b.result = domain.CalledAloneBy(b.trump, b.caller)
	default:
		b.result = domain.CalledBy(b.trump, b.caller)
	}

	if roundOne && b.caller == b.dealer {
		b.hands[b.dealer] = append(b.hands[b.dealer], b.candidate)
		b.phase = BidDiscard
		b.active = b.dealer
		return
	}
	b.phase = BidDone
}

func (b *BidState) hand(seat domain.Position) []domain.Card {
	return append([]domain.Card(nil), b.hands[seat]...)
}

func (b *BidState) record(a Action) {
	b.log = append(b.log, a)
}

// Phase returns the current sub-state.
func (b *BidState) Phase() BidPhase {
	return b.phase
}

// Round is 1 until every seat has declined the candidate, then 2.
func (b *BidState) Round() int {
	return b.round
}

// Pending returns the seat and decision the next Step will poll.
func (b *BidState) Pending() (domain.Position, Decision, bool) {
	if b.phase == BidDone {
		return 0, "", false
	}
	return b.active, bidDecisions[b.phase], true
}

// Forbidden returns the turned down suit once round two has begun.
func (b *BidState) Forbidden() (domain.Suit, bool) {
	if b.Round() == 2 {
		return b.candidate.Suit, true
	}
	return 0, false
}

// Result returns the bid once bidding is over.
func (b *BidState) Result() (domain.BidResult, bool) {
	return b.result, b.phase == BidDone
}

// Dealer returns the dealing seat.
func (b *BidState) Dealer() domain.Position {
	return b.dealer
}

// Candidate returns the turned up card.
func (b *BidState) Candidate() domain.Card {
	return b.candidate
}

// Actions returns every decision made so far.
func (b *BidState) Actions() []Action {
	return append([]Action(nil), b.log...)
}
