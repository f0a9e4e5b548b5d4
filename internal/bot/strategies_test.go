package bot

import (
	"testing"

	"euchre/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(codes ...string) []domain.Card {
	return domain.MustParseCards(codes...)
}

func card(code string) domain.Card {
	return domain.MustParseCard(code)
}

func trickFrom(leader domain.Position, codes ...string) domain.Trick {
	var t domain.Trick
	seat := leader
	for _, c := range cards(codes...) {
		t.Add(seat, c)
		seat = seat.Next()
	}
	return t
}

func TestDealerWithFourTrumpOrdersUp(t *testing.T) {
	hand := cards("AS", "QS", "TS", "9S", "9H")
	for name, b := range map[string]Brain{"basic": &BasicBrain{}, "advanced": &AdvancedBrain{}} {
		t.Run(name, func(t *testing.T) {
			assert.True(t, b.ShouldOrderUp(domain.South, hand, domain.South, card("KS")))
		})
	}
}

func TestAdvancedOrdersUpAloneAndDiscardsCandidate(t *testing.T) {
	hand := cards("JS", "JC", "AS", "KS", "QS")
	candidate := card("TS")
	b := &AdvancedBrain{}

	assert.True(t, b.ShouldOrderUp(domain.South, hand, domain.South, candidate))
	assert.True(t, b.ShouldOrderUpAlone(domain.South, hand, domain.South, candidate))
	assert.Equal(t, candidate, b.ChooseDiscard(domain.South, append(hand, candidate), domain.Spades))
}

func TestRoundTwoCallSkipsTurnedDownSuit(t *testing.T) {
	clubs := cards("AC", "KC", "QC", "9C", "AH")
	diamonds := cards("AD", "KD", "QD", "TD", "9D")
	turnedDown := card("JD")

	for name, b := range map[string]Brain{"basic": &BasicBrain{}, "advanced": &AdvancedBrain{}} {
		t.Run(name, func(t *testing.T) {
			suit, ok := b.CallTrump(domain.West, clubs, domain.South, turnedDown)
			assert.True(t, ok)
			assert.Equal(t, domain.Clubs, suit)

			_, ok = b.CallTrump(domain.West, diamonds, domain.South, turnedDown)
			assert.False(t, ok, "only diamonds are strong and diamonds were turned down")
		})
	}
}

func TestBasicOrderUpThresholds(t *testing.T) {
	three := cards("AS", "KS", "QS", "9H", "9D")
	b := &BasicBrain{}
	candidate := card("TS")

	assert.True(t, b.ShouldOrderUp(domain.South, three, domain.South, candidate), "dealer")
	assert.True(t, b.ShouldOrderUp(domain.North, three, domain.South, candidate), "dealer's partner")
	assert.False(t, b.ShouldOrderUp(domain.West, three, domain.South, candidate), "opponent")

	withLeft := cards("AS", "KS", "QS", "JC", "9D")
	assert.True(t, b.ShouldOrderUp(domain.West, withLeft, domain.South, candidate))
	assert.False(t, b.ShouldOrderUpAlone(domain.West, withLeft, domain.South, candidate))
}

func TestAdvancedSeatAdjustment(t *testing.T) {
	three := cards("AS", "KS", "QS", "9H", "9D")
	b := &AdvancedBrain{}
	candidate := card("TS")

	assert.True(t, b.ShouldOrderUp(domain.South, three, domain.South, candidate))
	assert.True(t, b.ShouldOrderUp(domain.North, three, domain.South, candidate))
	assert.False(t, b.ShouldOrderUp(domain.West, three, domain.South, candidate))

	bower := cards("JS", "AS", "KS", "QS", "9D")
	assert.True(t, b.ShouldOrderUp(domain.West, bower, domain.South, candidate), "four trump with a bower survives the penalty")
}

func TestAdvancedCustomTuning(t *testing.T) {
	strict := DefaultTuning
	strict.OrderUpThreshold = 6
	strict.BowerOrderUpThreshold = 6
	b := &AdvancedBrain{Tuning: &strict}
	assert.False(t, b.ShouldOrderUp(domain.South, cards("AS", "QS", "TS", "9S", "9H"), domain.South, card("KS")))
}

func TestAdvancedAloneDecisions(t *testing.T) {
	b := &AdvancedBrain{}

	// Non-dealer: the turned up candidate is out of play.
	strong := cards("JH", "JD", "AH", "KH", "AS")
	assert.True(t, b.ShouldOrderUpAlone(domain.West, strong, domain.South, card("QH")))

	weak := cards("JH", "9H", "TH", "9C", "9S")
	assert.False(t, b.ShouldOrderUpAlone(domain.West, weak, domain.South, card("QH")))

	assert.True(t, b.ShouldCallAlone(domain.West, strong, domain.South, domain.Hearts))
	assert.False(t, b.ShouldCallAlone(domain.West, weak, domain.South, domain.Hearts))
}

func TestAdvancedDefendAlone(t *testing.T) {
	b := &AdvancedBrain{}
	assert.True(t, b.ShouldDefendAloneOrdered(domain.West, cards("JS", "AS", "KS", "9H", "9D"), domain.South, card("TS"), domain.North))
	assert.False(t, b.ShouldDefendAloneOrdered(domain.West, cards("JC", "AS", "KS", "9H", "9D"), domain.South, card("TS"), domain.North))
	assert.True(t, b.ShouldDefendAloneCalled(domain.West, cards("JH", "AH", "KH", "9S", "9D"), domain.South, domain.Hearts, domain.North))
}

func TestAdvancedPlayCard(t *testing.T) {
	b := &AdvancedBrain{}
	bid := domain.CalledBy(domain.Spades, domain.West)

	tests := []struct {
		name  string
		seat  domain.Position
		hand  []string
		bid   domain.BidResult
		trick domain.Trick
		want  string
	}{
		{
			name:  "ducks under winning partner",
			seat:  domain.South,
			hand:  []string{"QH", "TH", "JS", "AC", "9C"},
			bid:   bid,
			trick: trickFrom(domain.West, "KH", "AH", "9H"),
			want:  "TH",
		},
		{
			name:  "wins with the cheapest card",
			seat:  domain.South,
			hand:  []string{"AH", "TH", "JS", "9C", "AC"},
			bid:   bid,
			trick: trickFrom(domain.West, "KH", "9H", "QH"),
			want:  "AH",
		},
		{
			name:  "trumps in low when void",
			seat:  domain.South,
			hand:  []string{"JS", "9S", "AC", "KC", "QC"},
			bid:   bid,
			trick: trickFrom(domain.West, "AH", "9H", "KH"),
			want:  "9S",
		},
		{
			name: "caller leads best trump",
			seat: domain.South,
			hand: []string{"9S", "JS", "AH", "KC", "QC"},
			bid:  domain.CalledBy(domain.Spades, domain.South),
			want: "JS",
		},
		{
			name: "defender leads off ace",
			seat: domain.West,
			hand: []string{"9S", "AH", "TC", "KC", "QD"},
			bid:  domain.CalledBy(domain.Spades, domain.South),
			want: "AH",
		},
		{
			name: "defender without ace leads low plain",
			seat: domain.West,
			hand: []string{"9S", "KH", "TC", "KC", "QD"},
			bid:  domain.CalledBy(domain.Spades, domain.South),
			want: "TC",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.PlayCard(tt.seat, cards(tt.hand...), tt.bid, tt.trick)
			assert.Equal(t, tt.want, got.Code())
		})
	}
}

func TestAdvancedLeadsRememberedBoss(t *testing.T) {
	b := &AdvancedBrain{}
	bid := domain.CalledBy(domain.Spades, domain.South)

	// West follows last to a trick that drops the ace and queen of hearts.
	got := b.PlayCard(domain.West, cards("9H", "KH", "TC", "KC", "QD"), bid, trickFrom(domain.North, "AH", "TH", "QH"))
	require.Equal(t, "9H", got.Code())

	got = b.PlayCard(domain.West, cards("KH", "TC", "KC", "QD"), bid, domain.Trick{})
	assert.Equal(t, "KH", got.Code(), "no unseen heart beats the king")

	got = b.PlayCard(domain.West, cards("KH", "TC", "KC", "QD", "KD"), bid, domain.Trick{})
	assert.Equal(t, "TC", got.Code(), "a new hand forgets the ace")
}

func TestBasicPlayCard(t *testing.T) {
	b := &BasicBrain{}
	bid := domain.CalledBy(domain.Spades, domain.West)

	assert.Equal(t, "9S", b.PlayCard(domain.South, cards("AH", "9S"), bid, domain.Trick{}).Code(), "leads highest")
	assert.Equal(t, "AH", b.PlayCard(domain.South, cards("AH", "9H", "JS"), bid, trickFrom(domain.West, "KH")).Code(), "follows high to win")
	assert.Equal(t, "9H", b.PlayCard(domain.South, cards("QH", "9H", "JS"), bid, trickFrom(domain.West, "KH")).Code(), "follows low when beaten")
	assert.Equal(t, "9C", b.PlayCard(domain.South, cards("9C", "JS"), bid, trickFrom(domain.West, "KH", "AH", "9H")).Code(), "no trump over partner")
	assert.Equal(t, "JS", b.PlayCard(domain.South, cards("9C", "JS"), bid, trickFrom(domain.West, "KH")).Code(), "trumps an opponent")
	assert.Equal(t, "9C", b.ChooseDiscard(domain.South, cards("JS", "AS", "9C", "KH", "QS", "TS"), domain.Spades).Code())
}

func TestPassiveBrain(t *testing.T) {
	var b PassiveBrain
	hand := cards("9C", "AH", "KH")
	bid := domain.CalledBy(domain.Spades, domain.West)

	assert.False(t, b.ShouldOrderUp(domain.West, hand, domain.South, card("TS")))
	_, ok := b.CallTrump(domain.West, hand, domain.South, card("TS"))
	assert.False(t, ok)
	assert.Equal(t, card("9C"), b.ChooseDiscard(domain.West, hand, domain.Spades))
	assert.Equal(t, card("9C"), b.PlayCard(domain.West, hand, bid, domain.Trick{}))
	assert.Equal(t, card("AH"), b.PlayCard(domain.West, hand, bid, trickFrom(domain.South, "QH")))
	assert.Equal(t, card("9C"), b.PlayCard(domain.West, hand, bid, trickFrom(domain.South, "QD")))

	// The left bower leads trump, so a club does not follow it.
	assert.Equal(t, card("9S"), b.PlayCard(domain.West, cards("9C", "9S"), bid, trickFrom(domain.South, "JC")))
}
