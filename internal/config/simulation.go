package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"euchre/internal/domain"

	"github.com/mitchellh/mapstructure"
)

// ErrInvalidConfig wraps every launch configuration validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Simulation is a validated single-hand launch configuration.
type Simulation struct {
	Dealer          domain.Position
	Candidate       domain.Card
	Seat            domain.Position
	Hand            []domain.Card
	OrderUp         bool
	CallSuit        *domain.Suit
	GoAlone         bool
	IgnoreOtherBids bool
}

// rawSimulation mirrors the file format; optional fields are pointers so
// that "false" and "absent" can be told apart.
type rawSimulation struct {
	Dealer          *domain.Position `mapstructure:"dealer"`
	Candidate       *domain.Card     `mapstructure:"candidate"`
	Seat            *domain.Position `mapstructure:"seat"`
	Hand            []domain.Card    `mapstructure:"hand"`
	OrderUp         *bool            `mapstructure:"order_up"`
	CallSuit        *domain.Suit     `mapstructure:"call_suit"`
	GoAlone         bool             `mapstructure:"go_alone"`
	IgnoreOtherBids bool             `mapstructure:"ignore_other_bids"`
}

// LoadSimulation reads a JSON launch configuration from path.
func LoadSimulation(path string) (Simulation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Simulation{}, fmt.Errorf("failed to read simulation config: %w", err)
	}
	var input map[string]any
	if err := json.Unmarshal(data, &input); err != nil {
		return Simulation{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return ParseSimulation(input)
}

// ParseSimulation decodes and validates a launch configuration. Cards,
// seats and suits use compact notation ("JS", "south", "hearts").
func ParseSimulation(input map[string]any) (Simulation, error) {
	var raw rawSimulation
	if err := Decode(input, &raw); err != nil {
		return Simulation{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return raw.validate()
}

// Decode copies a generic map into a tagged struct, parsing any field
// type that implements encoding.TextUnmarshaler from its string form.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func (r rawSimulation) validate() (Simulation, error) {
	invalid := func(format string, args ...any) (Simulation, error) {
		return Simulation{}, fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if r.Dealer == nil {
		return invalid("dealer is required")
	}
	if r.Candidate == nil {
		return invalid("candidate is required")
	}
	hasOrder := r.OrderUp != nil && *r.OrderUp
	hasCall := r.CallSuit != nil
	switch {
	case hasOrder && hasCall:
		return invalid("order_up and call_suit are mutually exclusive")
	case !hasOrder && !hasCall:
		return invalid("one of order_up or call_suit is required")
	}
	if hasCall && *r.CallSuit == r.Candidate.Suit {
		return invalid("call_suit %s was turned down", *r.CallSuit)
	}
	if len(r.Hand) != domain.HandSize {
		return invalid("hand must have %d cards, got %d", domain.HandSize, len(r.Hand))
	}
	seen := map[domain.Card]bool{*r.Candidate: true}
	for _, c := range r.Hand {
		if seen[c] {
			return invalid("card %s appears twice", c.Code())
		}
		seen[c] = true
	}

	seat := *r.Dealer
	if r.Seat != nil {
		seat = *r.Seat
	}
	return Simulation{
		Dealer:          *r.Dealer,
		Candidate:       *r.Candidate,
		Seat:            seat,
		Hand:            append([]domain.Card(nil), r.Hand...),
		OrderUp:         hasOrder,
		CallSuit:        r.CallSuit,
		GoAlone:         r.GoAlone,
		IgnoreOtherBids: r.IgnoreOtherBids,
	}, nil
}
