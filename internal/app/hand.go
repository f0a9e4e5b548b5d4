package app

import (
	"fmt"

	"euchre/internal/bot"
	"euchre/internal/domain"
)

// HandPhase is the lifecycle stage of a single hand.
type HandPhase int

const (
	PhaseBidding HandPhase = iota
	PhaseFirstTrick
	PhaseSecondTrick
	PhaseThirdTrick
	PhaseFourthTrick
	PhaseFifthTrick
	PhaseScoring
)

// TricksPerHand is the number of tricks played once trump is named.
const TricksPerHand = 5

func (p HandPhase) String() string {
	return [...]string{"bidding", "first_trick", "second_trick", "third_trick", "fourth_trick", "fifth_trick", "scoring"}[p]
}

func (p HandPhase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// Decision names the strategy capability polled by a step.
type Decision string

const (
	DecisionOrderUp            Decision = "order_up"
	DecisionOrderUpAlone       Decision = "order_up_alone"
	DecisionDefendAloneOrdered Decision = "defend_alone_ordered"
	DecisionCallTrump          Decision = "call_trump"
	DecisionCallAlone          Decision = "call_alone"
	DecisionDefendAloneCalled  Decision = "defend_alone_called"
	DecisionDiscard            Decision = "discard"
	DecisionPlayCard           Decision = "play_card"
)

// IsYesNo reports whether the decision is answered with accept/decline.
func (d Decision) IsYesNo() bool {
	switch d {
	case DecisionCallTrump, DecisionDiscard, DecisionPlayCard:
		return false
	}
	return true
}

// Action is one answered poll. Accepted holds yes/no answers and whether a
// suit was named; Suit and Card are set for the decisions that return them.
type Action struct {
	Seat     domain.Position `json:"seat"`
	Decision Decision        `json:"decision"`
	Accepted bool            `json:"accepted,omitempty"`
	Suit     *domain.Suit    `json:"suit,omitempty"`
	Card     *domain.Card    `json:"card,omitempty"`
}

// Tally is tricks taken, indexed by seat.
type Tally [4]int

// Team returns the tricks taken by seat's side.
func (t Tally) Team(seat domain.Position) int {
	return t[seat] + t[seat.Partner()]
}

// HandState sequences bidding, five tricks and the final tally.
type HandState struct {
	dealer    domain.Position
	candidate domain.Card
	hands     [4][]domain.Card
	brains    [4]bot.Brain

	phase HandPhase
	bid   *BidState
	res   domain.BidResult

	active    domain.Position
	trick     domain.Trick
	completed []domain.Trick
	tally     Tally

	log []Action
}

// NewHandState prepares a hand from a deal; the first Step starts bidding.
func NewHandState(dealer domain.Position, deal domain.Deal, brains [4]bot.Brain) *HandState {
	h := &HandState{
		dealer:    dealer,
		candidate: deal.Candidate,
		brains:    brains,
		phase:     PhaseBidding,
	}
	for i := range deal.Hands {
		h.hands[i] = append([]domain.Card(nil), deal.Hands[i]...)
	}
	h.bid = NewBidState(dealer, deal.Candidate, &h.hands, brains)
	return h
}

// Step polls one seat. It returns the tally once the hand reaches Scoring.
func (h *HandState) Step() (Tally, bool) {
	switch h.phase {
	case PhaseScoring:
		return h.tally, true
	case PhaseBidding:
		res, done := h.bid.Step()
		if !done {
			return Tally{}, false
		}
		h.res = res
		if !res.HasTrump() {
			h.phase = PhaseScoring
			return h.tally, true
		}
		h.phase = PhaseFirstTrick
		h.active = domain.FirstLeader(h.dealer, res)
		return Tally{}, false
	}

	seat := h.active
	card := h.brains[seat].PlayCard(seat, h.Hand(seat), h.res, h.trick.Clone())
	rest, ok := domain.RemoveCard(h.hands[seat], card)
	if !ok {
		panic(fmt.Sprintf("euchre: %s played %s which is not in hand", seat, card.Code()))
	}
	h.hands[seat] = rest
	h.trick.Add(seat, card)
	h.log = append(h.log, Action{Seat: seat, Decision: DecisionPlayCard, Card: &card})

	if len(h.trick.Plays) < h.res.Participants() {
		h.active = domain.NextPositionPlaying(seat, h.res)
		return Tally{}, false
	}

	winner, _ := h.trick.Winner(h.res.Trump)
	h.tally[winner.Seat]++
	h.completed = append(h.completed, h.trick)
	h.trick = domain.Trick{}
	h.active = winner.Seat
	h.phase++
	if h.phase == PhaseScoring {
		return h.tally, true
	}
	return Tally{}, false
}

// Pending returns the seat and decision the next Step will poll.
func (h *HandState) Pending() (domain.Position, Decision, bool) {
	switch h.phase {
	case PhaseBidding:
		return h.bid.Pending()
	case PhaseScoring:
		return 0, "", false
	}
	return h.active, DecisionPlayCard, true
}

// Phase returns the current stage.
func (h *HandState) Phase() HandPhase {
	return h.phase
}

// Done reports whether the hand has reached Scoring.
func (h *HandState) Done() bool {
	return h.phase == PhaseScoring
}

// Bidding exposes the bid sequencer for round and forbidden suit queries.
func (h *HandState) Bidding() *BidState {
	return h.bid
}

// Bid returns the bid result once bidding has finished.
func (h *HandState) Bid() (domain.BidResult, bool) {
	if h.phase == PhaseBidding {
		return domain.BidResult{}, false
	}
	return h.res, true
}

// Dealer returns the dealing seat.
func (h *HandState) Dealer() domain.Position {
	return h.dealer
}

// Candidate returns the turned up card.
func (h *HandState) Candidate() domain.Card {
	return h.candidate
}

// Hand returns a copy of seat's cards.
func (h *HandState) Hand(seat domain.Position) []domain.Card {
	return append([]domain.Card(nil), h.hands[seat]...)
}

// CurrentTrick returns a copy of the trick in progress.
func (h *HandState) CurrentTrick() domain.Trick {
	return h.trick.Clone()
}

// CompletedTricks returns the finished tricks in order.
func (h *HandState) CompletedTricks() []domain.Trick {
	out := make([]domain.Trick, len(h.completed))
	for i, t := range h.completed {
		out[i] = t.Clone()
	}
	return out
}

// TrickNumber is 1..5 while playing and 0 otherwise.
func (h *HandState) TrickNumber() int {
	if h.phase == PhaseBidding || h.phase == PhaseScoring {
		return 0
	}
	return int(h.phase)
}

// Tally returns tricks taken so far.
func (h *HandState) Tally() Tally {
	return h.tally
}

// Actions returns every decision of the hand, bidding first.
func (h *HandState) Actions() []Action {
	return append(h.bid.Actions(), h.log...)
}
