package domain

import (
	"encoding/json"
	"fmt"
)

// BidKind distinguishes the outcomes of bidding.
type BidKind int

const (
	NoOneCalled BidKind = iota
	Called
	CalledAlone
	DefendedAlone
)

func (k BidKind) String() string {
	return [...]string{"no_one_called", "called", "called_alone", "defended_alone"}[k]
}

func (k BidKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *BidKind) UnmarshalText(b []byte) error {
	for _, kind := range [...]BidKind{NoOneCalled, Called, CalledAlone, DefendedAlone} {
		if kind.String() == string(b) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown bid kind %q", b)
}

// BidResult is the terminal outcome of bidding. Trump and Caller are
// meaningful for every kind but NoOneCalled; Defender only for DefendedAlone.
// The JSON form leaves out the fields a kind does not use.
type BidResult struct {
	Kind     BidKind
	Trump    Suit
	Caller   Position
	Defender Position
}

type bidResultJSON struct {
	Kind     BidKind   `json:"kind"`
	Trump    *Suit     `json:"trump,omitempty"`
	Caller   *Position `json:"caller,omitempty"`
	Defender *Position `json:"defender,omitempty"`
}

func (b BidResult) MarshalJSON() ([]byte, error) {
	out := bidResultJSON{Kind: b.Kind}
	if b.HasTrump() {
		out.Trump, out.Caller = &b.Trump, &b.Caller
	}
	if b.Kind == DefendedAlone {
		out.Defender = &b.Defender
	}
	return json.Marshal(out)
}

func (b *BidResult) UnmarshalJSON(data []byte) error {
	var in bidResultJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	res := BidResult{Kind: in.Kind}
	if res.HasTrump() {
		if in.Trump == nil || in.Caller == nil {
			return fmt.Errorf("%s bid needs trump and caller", in.Kind)
		}
		res.Trump, res.Caller = *in.Trump, *in.Caller
	}
	if res.Kind == DefendedAlone {
		if in.Defender == nil {
			return fmt.Errorf("%s bid needs a defender", in.Kind)
		}
		res.Defender = *in.Defender
	}
	*b = res
	return nil
}

// NoBid is the result of a hand nobody called.
func NoBid() BidResult {
	return BidResult{Kind: NoOneCalled}
}

// CalledBy builds a regular call.
func CalledBy(trump Suit, caller Position) BidResult {
	return BidResult{Kind: Called, Trump: trump, Caller: caller}
}

// CalledAloneBy builds a call where the caller's partner sits out.
func CalledAloneBy(trump Suit, caller Position) BidResult {
	return BidResult{Kind: CalledAlone, Trump: trump, Caller: caller}
}

// DefendedAloneBy builds a lone call answered by a lone defender.
func DefendedAloneBy(trump Suit, caller, defender Position) BidResult {
	return BidResult{Kind: DefendedAlone, Trump: trump, Caller: caller, Defender: defender}
}

// HasTrump reports whether the hand will be played.
func (b BidResult) HasTrump() bool {
	return b.Kind != NoOneCalled
}

// Alone reports whether the caller went alone.
func (b BidResult) Alone() bool {
	return b.Kind == CalledAlone || b.Kind == DefendedAlone
}

// SittingOut reports whether seat takes no part in trick play.
func (b BidResult) SittingOut(seat Position) bool {
	switch b.Kind {
	case CalledAlone:
		return seat == b.Caller.Partner()
	case DefendedAlone:
		return seat == b.Caller.Partner() || seat == b.Defender.Partner()
	}
	return false
}

// Participants returns how many seats play each trick.
func (b BidResult) Participants() int {
	switch b.Kind {
	case Called:
		return 4
	case CalledAlone:
		return 3
	case DefendedAlone:
		return 2
	}
	return 0
}

func (b BidResult) String() string {
	switch b.Kind {
	case Called:
		return fmt.Sprintf("%s called %s", b.Caller, b.Trump)
	case CalledAlone:
		return fmt.Sprintf("%s called %s alone", b.Caller, b.Trump)
	case DefendedAlone:
		return fmt.Sprintf("%s called %s alone, %s defends alone", b.Caller, b.Trump, b.Defender)
	}
	return "no one called"
}
