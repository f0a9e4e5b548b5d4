package app

import (
	"fmt"

	"euchre/internal/bot"
	"euchre/internal/config"
	"euchre/internal/domain"
)

// StartSimulation deals a hand around the seat under test. That seat bids
// as scripted by sim and plays with a level brain; with IgnoreOtherBids the
// other seats decline every bid but still play at level.
func (s *Service) StartSimulation(sim config.Simulation, level bot.BotLevel) (*HandState, []Event, error) {
	deal, err := domain.DealAround(sim.Dealer, sim.Seat, sim.Hand, sim.Candidate, s.rng)
	if err != nil {
		return nil, nil, err
	}

	var brains [4]bot.Brain
	for _, seat := range domain.Positions {
		player, err := bot.NewBrain(level)
		if err != nil {
			return nil, nil, fmt.Errorf("simulation: %w", err)
		}
		switch {
		case seat == sim.Seat:
			brains[seat] = bot.SplitBrain{Bidder: scriptFor(sim), Player: player}
		case sim.IgnoreOtherBids:
			brains[seat] = bot.SplitBrain{Bidder: &bot.ScriptedBrain{}, Player: player}
		default:
			brains[seat] = player
		}
	}
	return s.StartDealtHand(sim.Dealer, deal, brains)
}

func scriptFor(sim config.Simulation) *bot.ScriptedBrain {
	return &bot.ScriptedBrain{
		OrderUp: sim.OrderUp,
		Call:    sim.CallSuit,
		Alone:   sim.GoAlone,
	}
}
