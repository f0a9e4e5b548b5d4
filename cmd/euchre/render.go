package main

import (
	"fmt"
	"strconv"
	"strings"

	"euchre/internal/app"
	"euchre/internal/domain"

	"github.com/pterm/pterm"
)

// cardLabel colours a card by suit for the terminal.
func cardLabel(c domain.Card) string {
	if c.Suit.IsRed() {
		return pterm.LightRed(c.String())
	}
	return pterm.LightWhite(c.String())
}

func cardsLabel(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = cardLabel(c)
	}
	return strings.Join(parts, " ")
}

func plainCards(cards []domain.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func yesNo(accepted bool, yes, no string) string {
	if accepted {
		return yes
	}
	return no
}

// describeAction is the one-line narration of a bid action.
func describeAction(a app.Action) string {
	switch a.Decision {
	case app.DecisionOrderUp:
		return fmt.Sprintf("%s %s", a.Seat, yesNo(a.Accepted, "orders it up", "passes"))
	case app.DecisionOrderUpAlone, app.DecisionCallAlone:
		return fmt.Sprintf("%s %s", a.Seat, yesNo(a.Accepted, "goes alone", "plays with partner"))
	case app.DecisionDefendAloneOrdered, app.DecisionDefendAloneCalled:
		return fmt.Sprintf("%s %s", a.Seat, yesNo(a.Accepted, "defends alone", "will not defend alone"))
	case app.DecisionCallTrump:
		if a.Accepted && a.Suit != nil {
			return fmt.Sprintf("%s calls %s", a.Seat, *a.Suit)
		}
		return fmt.Sprintf("%s passes", a.Seat)
	case app.DecisionDiscard:
		if a.Card != nil {
			return fmt.Sprintf("%s discards %s", a.Seat, a.Card)
		}
		return fmt.Sprintf("%s discards", a.Seat)
	case app.DecisionPlayCard:
		if a.Card != nil {
			return fmt.Sprintf("%s plays %s", a.Seat, a.Card)
		}
	}
	return fmt.Sprintf("%s: %s", a.Seat, a.Decision)
}

// describeEvent returns plain narration for ev; private events are
// described too and left to the caller to filter.
func describeEvent(ev app.Event) (string, bool) {
	switch p := ev.Payload.(type) {
	case app.HandStartedPayload:
		return fmt.Sprintf("%s deals, %s is turned up", p.Dealer, p.Candidate), true
	case app.HandDealtPayload:
		return fmt.Sprintf("%s holds %s", p.Seat, plainCards(p.Hand)), true
	case app.BidActionPayload:
		return describeAction(p.Action), true
	case app.DiscardMadePayload:
		return fmt.Sprintf("%s discarded %s", p.Seat, p.Card), true
	case app.TrumpDecidedPayload:
		return fmt.Sprintf("%s; %s leads", p.Bid, p.Leader), true
	case app.HandPassedPayload:
		return fmt.Sprintf("everyone passed, %s is turned down", p.Candidate), true
	case app.CardPlayedPayload:
		return fmt.Sprintf("%s plays %s", p.Seat, p.Card), true
	case app.TrickWonPayload:
		return fmt.Sprintf("%s takes trick %d", p.Winner, p.Trick), true
	case app.HandEndedPayload:
		return fmt.Sprintf("hand over: %s", p.Bid), true
	}
	return "", false
}

// tallyRows builds the per-seat and per-team trick table.
func tallyRows(t app.Tally) [][]string {
	rows := [][]string{{"Seat", "Tricks"}}
	for _, seat := range domain.Positions {
		rows = append(rows, []string{seat.String(), strconv.Itoa(t[seat])})
	}
	rows = append(rows,
		[]string{"west/east", strconv.Itoa(t.Team(domain.West))},
		[]string{"north/south", strconv.Itoa(t.Team(domain.North))},
	)
	return rows
}

func trickRows(plays []domain.Play, winner domain.Position) [][]string {
	rows := [][]string{{"Seat", "Card", ""}}
	for _, p := range plays {
		mark := ""
		if p.Seat == winner {
			mark = "wins"
		}
		rows = append(rows, []string{p.Seat.String(), cardLabel(p.Card), mark})
	}
	return rows
}

// renderer prints hand events. Private events are shown only for seats in
// visible.
type renderer struct {
	visible map[domain.Position]bool
	hand    int
}

func newRenderer(visible ...domain.Position) *renderer {
	r := &renderer{visible: make(map[domain.Position]bool)}
	for _, seat := range visible {
		r.visible[seat] = true
	}
	return r
}

func (r *renderer) shows(ev app.Event) bool {
	if len(ev.Recipients) == 0 {
		return true
	}
	for _, seat := range ev.Recipients {
		if r.visible[seat] {
			return true
		}
	}
	return false
}

func (r *renderer) render(events []app.Event) {
	for _, ev := range events {
		if !r.shows(ev) {
			continue
		}
		r.renderEvent(ev)
	}
}

func (r *renderer) renderEvent(ev app.Event) {
	switch p := ev.Payload.(type) {
	case app.HandStartedPayload:
		r.hand++
		pterm.DefaultSection.Printfln("Hand %d: %s deals, %s turned up", r.hand, p.Dealer, cardLabel(p.Candidate))
	case app.HandDealtPayload:
		pterm.Info.Printfln("%s holds %s", p.Seat, cardsLabel(p.Hand))
	case app.TrumpDecidedPayload:
		pterm.Success.Printfln("%s; %s leads", p.Bid, p.Leader)
	case app.HandPassedPayload:
		pterm.Warning.Printfln("everyone passed, %s is turned down", cardLabel(p.Candidate))
	case app.CardPlayedPayload:
		pterm.Printfln("  %s plays %s", p.Seat, cardLabel(p.Card))
	case app.TrickWonPayload:
		pterm.DefaultTable.WithHasHeader().WithData(trickRows(p.Plays, p.Winner)).Render()
		pterm.Info.Printfln("%s takes trick %d", p.Winner, p.Trick)
	case app.HandEndedPayload:
		table, _ := pterm.DefaultTable.WithHasHeader().WithData(tallyRows(p.Tally)).Srender()
		pterm.DefaultBox.WithTitle(p.Bid.String()).WithTitleTopCenter().Println(table)
	default:
		if line, ok := describeEvent(ev); ok {
			pterm.Printfln("  %s", line)
		}
	}
}

// renderTotals prints tricks accumulated over several hands.
func renderTotals(hands int, totals app.Tally) {
	pterm.DefaultSection.Printfln("Totals after %d hands", hands)
	pterm.DefaultTable.WithHasHeader().WithData(tallyRows(totals)).Render()
}
