package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a card, suit or rank code cannot be parsed.
var ErrInvalidCard = errors.New("invalid card")

// Suit is one of the four French suits.
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order.
var Suits = [...]Suit{Spades, Hearts, Diamonds, Clubs}

// SameColor returns the other suit of the same color (Spades/Clubs, Hearts/Diamonds).
func (s Suit) SameColor() Suit {
	switch s {
	case Spades:
		return Clubs
	case Clubs:
		return Spades
	case Hearts:
		return Diamonds
	default:
		return Hearts
	}
}

// Symbol returns the suit pip.
func (s Suit) Symbol() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	default:
		return "♣"
	}
}

// Letter returns the one-letter suit code used by compact notation.
func (s Suit) Letter() string {
	return [...]string{"S", "H", "D", "C"}[s]
}

func (s Suit) String() string {
	return [...]string{"spades", "hearts", "diamonds", "clubs"}[s]
}

// IsRed reports whether the suit is hearts or diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit accepts a suit letter, name or pip.
func ParseSuit(v string) (Suit, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "s", "spades", "spade", "♠":
		return Spades, nil
	case "h", "hearts", "heart", "♥":
		return Hearts, nil
	case "d", "diamonds", "diamond", "♦":
		return Diamonds, nil
	case "c", "clubs", "club", "♣":
		return Clubs, nil
	}
	return 0, fmt.Errorf("%w: suit %q", ErrInvalidCard, v)
}

func (s Suit) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Suit) UnmarshalText(b []byte) error {
	v, err := ParseSuit(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Rank is the printed face value, Nine low to Ace high.
type Rank int

const (
	Nine Rank = iota
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank in ascending order.
var Ranks = [...]Rank{Nine, Ten, Jack, Queen, King, Ace}

// Label is the human readable rank ("9", "10", "J", ...).
func (r Rank) Label() string {
	return [...]string{"9", "10", "J", "Q", "K", "A"}[r]
}

// Code is the single character rank used by compact notation.
func (r Rank) Code() string {
	return [...]string{"9", "T", "J", "Q", "K", "A"}[r]
}

func (r Rank) String() string {
	return [...]string{"nine", "ten", "jack", "queen", "king", "ace"}[r]
}

func parseRank(v string) (Rank, bool) {
	switch strings.ToUpper(v) {
	case "9", "N":
		return Nine, true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	}
	return 0, false
}

// RankWithBowers is a card's rank once trump is known.
// The printed ranks keep their order and the two bowers sit above the ace.
type RankWithBowers int

const (
	RankedNine RankWithBowers = iota
	RankedTen
	RankedJack
	RankedQueen
	RankedKing
	RankedAce
	LeftBower
	RightBower
)

func (r RankWithBowers) String() string {
	switch r {
	case LeftBower:
		return "left bower"
	case RightBower:
		return "right bower"
	}
	return Rank(r).String()
}

// Card is an immutable (suit, rank) pair.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard builds a card.
func NewCard(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// IsRightBower reports whether c is the jack of trump.
func (c Card) IsRightBower(trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump
}

// IsLeftBower reports whether c is the jack of trump's same-color suit.
func (c Card) IsLeftBower(trump Suit) bool {
	return c.Rank == Jack && c.Suit == trump.SameColor()
}

// IsBower reports whether c is either bower.
func (c Card) IsBower(trump Suit) bool {
	return c.IsRightBower(trump) || c.IsLeftBower(trump)
}

// RankWithBowers maps c to its in-play rank under trump.
func (c Card) RankWithBowers(trump Suit) RankWithBowers {
	switch {
	case c.IsRightBower(trump):
		return RightBower
	case c.IsLeftBower(trump):
		return LeftBower
	}
	return RankWithBowers(c.Rank)
}

// EffectiveSuit is the suit c belongs to for following and display.
// The left bower counts as trump rather than its printed suit.
func (c Card) EffectiveSuit(trump Suit) Suit {
	if c.IsLeftBower(trump) {
		return trump
	}
	return c.Suit
}

// IsTrump reports whether c ranks as trump, bowers included.
func (c Card) IsTrump(trump Suit) bool {
	return c.EffectiveSuit(trump) == trump
}

// Beats reports whether c outranks other in a trick led with the printed
// suit led. Trump beats everything else; a non-trump card can only win
// when its printed suit is the led suit.
func (c Card) Beats(other Card, trump, led Suit) bool {
	ct, ot := c.IsTrump(trump), other.IsTrump(trump)
	switch {
	case ct && !ot:
		return true
	case !ct && ot:
		return false
	case ct && ot:
		return c.RankWithBowers(trump) > other.RankWithBowers(trump)
	}
	if c.Suit != led {
		return false
	}
	if other.Suit != led {
		return true
	}
	return c.Rank > other.Rank
}

// Code returns the compact two character notation, e.g. "JS" or "9H".
func (c Card) Code() string {
	return c.Rank.Code() + c.Suit.Letter()
}

// String is the ASCII fallback rendering, e.g. "10♠".
func (c Card) String() string {
	return c.Rank.Label() + c.Suit.Symbol()
}

var suitGlyphBase = [...]rune{0x1F0A0, 0x1F0B0, 0x1F0C0, 0x1F0D0}

// Offsets within a suit block; 0xC is the knight, which euchre does not use.
var rankGlyphOffset = [...]rune{9, 0xA, 0xB, 0xD, 0xE, 1}

// Glyph returns the Unicode playing card character for c.
func (c Card) Glyph() (string, bool) {
	if int(c.Suit) >= len(suitGlyphBase) || int(c.Rank) >= len(rankGlyphOffset) {
		return "", false
	}
	return string(suitGlyphBase[c.Suit] + rankGlyphOffset[c.Rank]), true
}

// Display renders the glyph when one exists, otherwise the ASCII form.
func (c Card) Display() string {
	if g, ok := c.Glyph(); ok {
		return g
	}
	return c.String()
}

func (c Card) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

func (c *Card) UnmarshalText(b []byte) error {
	v, err := ParseCard(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// ParseCard reads compact notation: a rank (9/N, T/10, J, Q, K, A) followed
// by a suit letter (S, H, D, C). Case is ignored.
func ParseCard(code string) (Card, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCard, code)
	}
	rank, ok := parseRank(code[:len(code)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: rank in %q", ErrInvalidCard, code)
	}
	suit, err := ParseSuit(code[len(code)-1:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: suit in %q", ErrInvalidCard, code)
	}
	return Card{Suit: suit, Rank: rank}, nil
}

// ParseCards parses each code in order.
func ParseCards(codes ...string) ([]Card, error) {
	out := make([]Card, 0, len(codes))
	for _, code := range codes {
		c, err := ParseCard(code)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// MustParseCard is ParseCard for fixtures; it panics on bad input.
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(err)
	}
	return c
}

// MustParseCards is ParseCards for fixtures; it panics on bad input.
func MustParseCards(codes ...string) []Card {
	out, err := ParseCards(codes...)
	if err != nil {
		panic(err)
	}
	return out
}
