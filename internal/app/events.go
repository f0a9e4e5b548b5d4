package app

import "euchre/internal/domain"

// EventKind identifies emitted hand events for dispatch to front ends.
type EventKind string

const (
	EventHandStarted  EventKind = "hand_started"
	EventHandDealt    EventKind = "hand_dealt"
	EventBidAction    EventKind = "bid_action"
	EventDiscardMade  EventKind = "discard_made"
	EventTrumpDecided EventKind = "trump_decided"
	EventHandPassed   EventKind = "hand_passed"
	EventCardPlayed   EventKind = "card_played"
	EventTrickWon     EventKind = "trick_won"
	EventHandEnded    EventKind = "hand_ended"
)

// Event is an app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.Position // empty means broadcast
}

type HandStartedPayload struct {
	Dealer    domain.Position
	Candidate domain.Card
	FirstSeat domain.Position
}

type HandDealtPayload struct {
	Seat domain.Position
	Hand []domain.Card
}

type BidActionPayload struct {
	Action Action
	Round  int
}

type DiscardMadePayload struct {
	Seat domain.Position
	Card domain.Card
}

type TrumpDecidedPayload struct {
	Bid    domain.BidResult
	Leader domain.Position
}

type HandPassedPayload struct {
	Dealer    domain.Position
	Candidate domain.Card
}

type CardPlayedPayload struct {
	Seat  domain.Position
	Card  domain.Card
	Trick int
}

type TrickWonPayload struct {
	Winner domain.Position
	Trick  int
	Plays  []domain.Play
	Tally  Tally
}

type HandEndedPayload struct {
	Bid   domain.BidResult
	Tally Tally
}
