package main

import (
	"fmt"

	"euchre/internal/bot"
	"euchre/internal/domain"

	"github.com/pterm/pterm"
	"go.uber.org/zap"
)

const passOption = "pass"

// prompter asks the person at the keyboard.
type prompter interface {
	Confirm(question string) (bool, error)
	Select(question string, options []string) (string, error)
}

type ptermPrompter struct{}

func (ptermPrompter) Confirm(question string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText(question).WithDefaultValue(false).Show()
}

func (ptermPrompter) Select(question string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(question).WithOptions(options).Show()
}

// humanBrain is a seat answered through terminal prompts. Only legal
// choices are offered; a failed prompt falls back to the passive answer.
type humanBrain struct {
	bot.PassiveBrain
	prompt prompter
	logger *zap.Logger
}

var _ bot.Brain = (*humanBrain)(nil)

func newHumanBrain(prompt prompter, logger *zap.Logger) *humanBrain {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &humanBrain{prompt: prompt, logger: logger}
}

func (b *humanBrain) confirm(hand []domain.Card, question string) (bool, bool) {
	pterm.Info.Printfln("Your hand: %s", cardsLabel(hand))
	yes, err := b.prompt.Confirm(question)
	if err != nil {
		b.logger.Warn("prompt failed, passing", zap.String("question", question), zap.Error(err))
		return false, false
	}
	return yes, true
}

// pickCard offers cards grouped by suit under trump and returns the chosen one.
func (b *humanBrain) pickCard(hand, options []domain.Card, trump domain.Suit, question string) (domain.Card, bool) {
	hand = append([]domain.Card(nil), hand...)
	options = append([]domain.Card(nil), options...)
	domain.SortHand(hand, trump)
	domain.SortHand(options, trump)
	pterm.Info.Printfln("Your hand: %s", cardsLabel(hand))
	labels := make([]string, len(options))
	byLabel := make(map[string]domain.Card, len(options))
	for i, c := range options {
		labels[i] = c.String()
		byLabel[labels[i]] = c
	}
	choice, err := b.prompt.Select(question, labels)
	if err != nil {
		b.logger.Warn("prompt failed, using default card", zap.String("question", question), zap.Error(err))
		return domain.Card{}, false
	}
	c, ok := byLabel[choice]
	return c, ok
}

func (b *humanBrain) ShouldOrderUp(_ domain.Position, hand []domain.Card, dealer domain.Position, candidate domain.Card) bool {
	yes, _ := b.confirm(hand, fmt.Sprintf("Order %s up to %s?", candidate, dealer))
	return yes
}

func (b *humanBrain) ShouldOrderUpAlone(_ domain.Position, hand []domain.Card, _ domain.Position, candidate domain.Card) bool {
	yes, _ := b.confirm(hand, fmt.Sprintf("Go alone in %s?", candidate.Suit))
	return yes
}

func (b *humanBrain) ShouldDefendAloneOrdered(_ domain.Position, hand []domain.Card, _ domain.Position, candidate domain.Card, caller domain.Position) bool {
	yes, _ := b.confirm(hand, fmt.Sprintf("%s is alone in %s. Defend alone?", caller, candidate.Suit))
	return yes
}

func (b *humanBrain) CallTrump(_ domain.Position, hand []domain.Card, _ domain.Position, turnedDown domain.Card) (domain.Suit, bool) {
	pterm.Info.Printfln("Your hand: %s", cardsLabel(hand))
	options := []string{passOption}
	for _, s := range domain.Suits {
		if s != turnedDown.Suit {
			options = append(options, s.String())
		}
	}
	choice, err := b.prompt.Select(fmt.Sprintf("%s was turned down. Name trump?", turnedDown), options)
	if err != nil {
		b.logger.Warn("prompt failed, passing", zap.Error(err))
		return 0, false
	}
	if choice == passOption {
		return 0, false
	}
	suit, err := domain.ParseSuit(choice)
	if err != nil || suit == turnedDown.Suit {
		return 0, false
	}
	return suit, true
}

func (b *humanBrain) ShouldCallAlone(_ domain.Position, hand []domain.Card, _ domain.Position, trump domain.Suit) bool {
	yes, _ := b.confirm(hand, fmt.Sprintf("Go alone in %s?", trump))
	return yes
}

func (b *humanBrain) ShouldDefendAloneCalled(_ domain.Position, hand []domain.Card, _ domain.Position, trump domain.Suit, caller domain.Position) bool {
	yes, _ := b.confirm(hand, fmt.Sprintf("%s is alone in %s. Defend alone?", caller, trump))
	return yes
}

func (b *humanBrain) ChooseDiscard(seat domain.Position, hand []domain.Card, trump domain.Suit) domain.Card {
	if c, ok := b.pickCard(hand, hand, trump, fmt.Sprintf("Trump is %s. Discard which card?", trump)); ok {
		return c
	}
	return b.PassiveBrain.ChooseDiscard(seat, hand, trump)
}

func (b *humanBrain) PlayCard(seat domain.Position, hand []domain.Card, bid domain.BidResult, trick domain.Trick) domain.Card {
	question := fmt.Sprintf("Trump is %s. Lead a card", bid.Trump)
	if !trick.Empty() {
		question = fmt.Sprintf("Trump is %s, table: %s. Play a card", bid.Trump, plainCards(trick.Cards()))
	}
	legal := domain.LegalCards(hand, bid.Trump, trick)
	if c, ok := b.pickCard(hand, legal, bid.Trump, question); ok {
		return c
	}
	return b.PassiveBrain.PlayCard(seat, hand, bid, trick)
}
