package game

import (
	"github.com/oklog/ulid/v2"
	"github.com/yohamta/donburi"
)

var patientNames = []string{"Jane Doe", "John Roe", "Mary Major", "Richard Miles"}

// PatientQueue is a FIFO of patient entities waiting for treatment.
type PatientQueue struct {
	queue []donburi.Entity
}

func (q *PatientQueue) PushBack(e donburi.Entity) {
	q.queue = append(q.queue, e)
}

func (q *PatientQueue) PopFront() (donburi.Entity, bool) {
	if len(q.queue) == 0 {
		return donburi.Null, false
	}
	e := q.queue[0]
	q.queue = q.queue[1:]
	return e, true
}

func (q *PatientQueue) Front() (donburi.Entity, bool) {
	if len(q.queue) == 0 {
		return donburi.Null, false
	}
	return q.queue[0], true
}

func (q *PatientQueue) Len() int {
	return len(q.queue)
}

// fillPatients tops the queue up to capacity.
// TODO: replace the placeholder records once patient generation exists.
func (g *Game) fillPatients() {
	for g.Patients.Len() < g.Config.MaxPatients {
		e := g.World.Create(PatientTag, PatientComponent)
		donburi.SetValue(g.World.Entry(e), PatientComponent, PatientData{
			ID:       ulid.Make(),
			Name:     patientNames[g.admitted%len(patientNames)],
			Health:   100,
			Delirium: 1,
		})
		g.admitted++
		g.Patients.PushBack(e)
	}
}

// CurrentPatient returns the record at the head of the queue.
func (g *Game) CurrentPatient() (PatientData, bool) {
	e, ok := g.Patients.Front()
	if !ok {
		return PatientData{}, false
	}
	entry, ok := g.entry(e)
	if !ok {
		return PatientData{}, false
	}
	return *donburi.Get[PatientData](entry, PatientComponent), true
}
