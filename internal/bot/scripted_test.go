package bot

import (
	"testing"

	"euchre/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestScriptedBrainAnswers(t *testing.T) {
	clubs := domain.Clubs
	discard := card("9H")
	s := &ScriptedBrain{OrderUp: true, Alone: true, DefendAlone: true, Call: &clubs, Discard: &discard}
	hand := cards("9H", "AS", "KS")

	assert.True(t, s.ShouldOrderUp(domain.West, hand, domain.South, card("TS")))
	assert.True(t, s.ShouldOrderUpAlone(domain.West, hand, domain.South, card("TS")))
	assert.True(t, s.ShouldCallAlone(domain.West, hand, domain.South, domain.Clubs))
	assert.True(t, s.ShouldDefendAloneCalled(domain.West, hand, domain.South, domain.Clubs, domain.North))
	suit, ok := s.CallTrump(domain.West, hand, domain.South, card("TS"))
	assert.True(t, ok)
	assert.Equal(t, domain.Clubs, suit)
	assert.Equal(t, discard, s.ChooseDiscard(domain.West, hand, domain.Spades))
	assert.Equal(t, card("9H"), s.ChooseDiscard(domain.West, cards("9H", "AS"), domain.Spades))
}

func TestScriptedBrainZeroValueDeclines(t *testing.T) {
	s := &ScriptedBrain{}
	hand := cards("JS", "JC", "AS", "KS", "QS")
	assert.False(t, s.ShouldOrderUp(domain.West, hand, domain.South, card("TS")))
	_, ok := s.CallTrump(domain.West, hand, domain.South, card("TH"))
	assert.False(t, ok)
}

func TestScriptedBrainPlays(t *testing.T) {
	s := &ScriptedBrain{Plays: cards("KS", "QD")}
	bid := domain.CalledBy(domain.Spades, domain.West)
	hand := cards("AS", "KS", "9H")

	assert.Equal(t, card("KS"), s.PlayCard(domain.West, hand, bid, domain.Trick{}))
	// QD is not held, so the passive fallback plays the first card.
	assert.Equal(t, card("AS"), s.PlayCard(domain.West, cards("AS", "9H"), bid, domain.Trick{}))
	assert.Empty(t, s.Plays)
}

func TestSplitBrainRoutesByRole(t *testing.T) {
	split := SplitBrain{Bidder: &ScriptedBrain{OrderUp: true}, Player: &AdvancedBrain{}}
	weak := cards("9H", "TH", "9C", "TC", "9D")
	assert.True(t, split.ShouldOrderUp(domain.West, weak, domain.South, card("TS")))
	assert.False(t, split.ShouldOrderUpAlone(domain.West, weak, domain.South, card("TS")))

	six := cards("JS", "JC", "AS", "KS", "QS", "TS")
	assert.Equal(t, card("TS"), split.ChooseDiscard(domain.South, six, domain.Spades))
}

func TestNewBrain(t *testing.T) {
	for _, level := range []BotLevel{BotLevelPassive, BotLevelBasic, BotLevelAdvanced} {
		b, err := NewBrain(level)
		assert.NoError(t, err)
		assert.NotNil(t, b)

		parsed, err := ParseBotLevel(level.String())
		assert.NoError(t, err)
		assert.Equal(t, level, parsed)
	}
	_, err := NewBrain(BotLevel(42))
	assert.Error(t, err)
	_, err = ParseBotLevel("godlike")
	assert.Error(t, err)
}

func TestNewAgent(t *testing.T) {
	a := NewAgent(BotIdentity{UserID: "b1", Username: "ace", Difficulty: "hard"}, BotLevelBasic)
	assert.Equal(t, BotLevelAdvanced, a.Level)
	assert.Equal(t, "ace", a.Name)
	assert.IsType(t, &AdvancedBrain{}, a.Strategy)

	a = NewAgent(BotIdentity{UserID: "b2", DisplayName: "Bot Two"}, BotLevelPassive)
	assert.Equal(t, BotLevelPassive, a.Level)
	assert.Equal(t, "Bot Two", a.Name)
}

func TestIdentities(t *testing.T) {
	setIdentities(nil)
	id := GetBotIdentity(3)
	assert.Equal(t, "bot-3", id.UserID)
	assert.True(t, IsBot(id.UserID))
	assert.False(t, IsBot("human"))

	setIdentities([]BotIdentity{{UserID: "u-1", Username: "clubby"}, {Username: "missing id"}})
	assert.Equal(t, "u-1", GetBotIdentity(7).UserID)
	assert.True(t, IsBot("u-1"))
	assert.Equal(t, "clubby", GetBotDisplayName("u-1"))
	assert.Equal(t, "", GetBotDisplayName("human"))
	setIdentities(nil)
}
