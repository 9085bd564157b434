package game

import "github.com/yohamta/donburi"

type State int

const (
	StateStartMenu State = iota
	StateTreatment
	StateDeckShop
)

func (s State) String() string {
	switch s {
	case StateStartMenu:
		return "start-menu"
	case StateTreatment:
		return "treatment"
	case StateDeckShop:
		return "deck-shop"
	default:
		return "unknown"
	}
}

// Status is the turn/score/suspicion readout of the status panel.
type Status struct {
	Turn      int
	Score     int
	Suspicion int
}

func (g *Game) State() State {
	return g.state
}

// RequestState schedules a transition for the start of the next update.
func (g *Game) RequestState(next State) {
	g.next = &next
}

func (g *Game) applyTransition() {
	if g.next == nil {
		return
	}
	next := *g.next
	g.next = nil
	if next == g.state {
		return
	}
	g.exitState(g.state)
	g.Logger.Printf("state %s -> %s", g.state, next)
	g.state = next
	g.enterState(next)
}

func (g *Game) enterState(s State) {
	switch s {
	case StateTreatment:
		g.Status = Status{Turn: 1}
		for _, label := range g.StartingHand {
			g.Deal(label)
		}
	}
}

func (g *Game) exitState(s State) {
	switch s {
	case StateTreatment:
		var cards []donburi.Entity
		g.allCards.Each(g.World, func(entry *donburi.Entry) {
			cards = append(cards, entry.Entity())
		})
		for _, e := range cards {
			g.Despawn(e)
		}
	}
}

// EndTurn advances the turn counter and discharges the patient at the head of
// the queue. The queue refills on the next update.
func (g *Game) EndTurn() {
	if g.state != StateTreatment {
		return
	}
	g.Status.Turn++
	if e, ok := g.Patients.PopFront(); ok {
		g.Despawn(e)
	}
}
