package domain

import (
	"fmt"
	"strings"
)

// Position is a seat at the table. Play rotates West, North, East, South.
type Position int

const (
	West Position = iota
	North
	East
	South
)

// Positions lists the seats in rotation order.
var Positions = [4]Position{West, North, East, South}

// Next returns the seat clockwise from p.
func (p Position) Next() Position {
	return (p + 1) % 4
}

// Partner returns the seat across the table.
func (p Position) Partner() Position {
	return (p + 2) % 4
}

// Team is 0 for West/East and 1 for North/South.
func (p Position) Team() int {
	return int(p) % 2
}

// Opposes reports whether p and q sit on different teams.
func (p Position) Opposes(q Position) bool {
	return p.Team() != q.Team()
}

func (p Position) String() string {
	return [...]string{"west", "north", "east", "south"}[p]
}

// ParsePosition accepts a seat name or its first letter.
func ParsePosition(v string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "w", "west":
		return West, nil
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	}
	return 0, fmt.Errorf("unknown position %q", v)
}

func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Position) UnmarshalText(b []byte) error {
	v, err := ParsePosition(string(b))
	if err != nil {
		return err
	}
	*p = v
	return nil
}

// NextPositionPlaying returns the next seat after seat that plays cards
// under bid, skipping partners sitting out an alone hand.
func NextPositionPlaying(seat Position, bid BidResult) Position {
	next := seat.Next()
	if bid.SittingOut(next) {
		return NextPositionPlaying(next, bid)
	}
	return next
}

// FirstLeader returns the seat that leads trick one. A lone caller seated
// directly after the dealer does not lead; play opens with the next
// participating seat.
func FirstLeader(dealer Position, bid BidResult) Position {
	leader := NextPositionPlaying(dealer, bid)
	if bid.Alone() && leader == bid.Caller && bid.Caller == dealer.Next() {
		return NextPositionPlaying(leader, bid)
	}
	return leader
}
