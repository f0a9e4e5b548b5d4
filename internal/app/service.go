package app

import (
	"errors"
	"math/rand"
	"time"

	"euchre/internal/bot"
	"euchre/internal/domain"
)

// Service contains euchre use-cases operating on hand state.
type Service struct {
	rng *rand.Rand
	now func() time.Time
}

// NewService constructs a Service with provided rng or a time-seeded default.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng, now: time.Now}
}

var (
	ErrHandOver     = errors.New("hand is already over")
	ErrHandNotOver  = errors.New("hand is still in progress")
	ErrMissingBrain = errors.New("seat has no strategy")
)

// Deal shuffles a fresh deck and deals it around dealer.
func (s *Service) Deal(dealer domain.Position) domain.Deal {
	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	return domain.DealHands(deck, dealer)
}

// StartHand deals a new hand and returns it ready for its first step.
func (s *Service) StartHand(dealer domain.Position, brains [4]bot.Brain) (*HandState, []Event, error) {
	return s.StartDealtHand(dealer, s.Deal(dealer), brains)
}

// StartDealtHand starts a hand from a prepared deal.
func (s *Service) StartDealtHand(dealer domain.Position, deal domain.Deal, brains [4]bot.Brain) (*HandState, []Event, error) {
	for _, b := range brains {
		if b == nil {
			return nil, nil, ErrMissingBrain
		}
	}

	h := NewHandState(dealer, deal, brains)
	events := make([]Event, 0, len(domain.Positions)+1)
	events = append(events, Event{
		Kind: EventHandStarted,
		Payload: HandStartedPayload{
			Dealer:    dealer,
			Candidate: deal.Candidate,
			FirstSeat: dealer.Next(),
		},
	})
	for _, seat := range domain.Positions {
		events = append(events, Event{
			Kind:       EventHandDealt,
			Payload:    HandDealtPayload{Seat: seat, Hand: h.Hand(seat)},
			Recipients: []domain.Position{seat},
		})
	}
	return h, events, nil
}

// Advance performs one step of h and reports what happened.
func (s *Service) Advance(h *HandState) ([]Event, error) {
	if h.Done() {
		return nil, ErrHandOver
	}

	wasBidding := h.Phase() == PhaseBidding
	round := h.Bidding().Round()
	trickNo := h.TrickNumber()
	tricksBefore := len(h.completed)
	actionsBefore := len(h.bid.log) + len(h.log)

	tally, done := h.Step()

	var events []Event
	actions := h.Actions()
	for _, a := range actions[actionsBefore:] {
		events = append(events, s.actionEvents(a, round, trickNo)...)
	}

	if len(h.completed) > tricksBefore {
		last := h.completed[len(h.completed)-1]
		winner, _ := last.Winner(h.res.Trump)
		events = append(events, Event{
			Kind: EventTrickWon,
			Payload: TrickWonPayload{
				Winner: winner.Seat,
				Trick:  len(h.completed),
				Plays:  append([]domain.Play(nil), last.Plays...),
				Tally:  h.Tally(),
			},
		})
	}

	if wasBidding && h.Phase() != PhaseBidding {
		if h.res.HasTrump() {
			events = append(events, Event{
				Kind:    EventTrumpDecided,
				Payload: TrumpDecidedPayload{Bid: h.res, Leader: h.active},
			})
		} else {
			events = append(events, Event{
				Kind:    EventHandPassed,
				Payload: HandPassedPayload{Dealer: h.dealer, Candidate: h.candidate},
			})
		}
	}

	if done {
		events = append(events, Event{
			Kind:    EventHandEnded,
			Payload: HandEndedPayload{Bid: h.res, Tally: tally},
		})
	}
	return events, nil
}

func (s *Service) actionEvents(a Action, round, trickNo int) []Event {
	switch a.Decision {
	case DecisionPlayCard:
		return []Event{{
			Kind:    EventCardPlayed,
			Payload: CardPlayedPayload{Seat: a.Seat, Card: *a.Card, Trick: trickNo},
		}}
	case DecisionDiscard:
		public := a
		public.Card = nil
		return []Event{
			{Kind: EventBidAction, Payload: BidActionPayload{Action: public, Round: round}},
			{
				Kind:       EventDiscardMade,
				Payload:    DiscardMadePayload{Seat: a.Seat, Card: *a.Card},
				Recipients: []domain.Position{a.Seat},
			},
		}
	}
	return []Event{{Kind: EventBidAction, Payload: BidActionPayload{Action: a, Round: round}}}
}

// Run steps h until it is over and returns every event produced.
func (s *Service) Run(h *HandState) ([]Event, error) {
	var all []Event
	for !h.Done() {
		events, err := s.Advance(h)
		if err != nil {
			return all, err
		}
		all = append(all, events...)
	}
	return all, nil
}
