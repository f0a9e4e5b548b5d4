package app

import (
	"time"

	"euchre/internal/domain"

	"github.com/google/uuid"
)

// HandRecord is the archived form of a finished hand.
type HandRecord struct {
	ID        string           `json:"id"`
	Dealer    domain.Position  `json:"dealer"`
	Candidate domain.Card      `json:"candidate"`
	Bid       domain.BidResult `json:"bid"`
	Tally     Tally            `json:"tally"`
	Actions   []Action         `json:"actions"`
	Tricks    []domain.Trick   `json:"tricks"`
	EndedAt   time.Time        `json:"ended_at"`
}

// Record builds the archive record of a finished hand.
func (s *Service) Record(h *HandState) (HandRecord, error) {
	if !h.Done() {
		return HandRecord{}, ErrHandNotOver
	}
	bid, _ := h.Bid()
	return HandRecord{
		ID:        uuid.NewString(),
		Dealer:    h.Dealer(),
		Candidate: h.Candidate(),
		Bid:       bid,
		Tally:     h.Tally(),
		Actions:   h.Actions(),
		Tricks:    h.CompletedTricks(),
		EndedAt:   s.now().UTC(),
	}, nil
}
