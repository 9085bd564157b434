package game

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

func TestFillPatientsToCapacity(t *testing.T) {
	for _, capacity := range []int{0, 1, 3, 7} {
		g, _ := newMenuGame()
		g.Config.MaxPatients = capacity
		g.Update(frame)
		g.Update(frame)

		assert.Equal(t, capacity, g.Patients.Len())
		patients := donburi.NewQuery(filter.Contains(PatientTag))
		assert.Equal(t, capacity, patients.Count(g.World))
	}
}

func TestPatientsHaveUniqueIDs(t *testing.T) {
	g, _ := newMenuGame()
	g.Config.MaxPatients = 10
	g.Update(frame)

	seen := map[ulid.ULID]bool{}
	for range g.Patients.Len() {
		e, ok := g.Patients.PopFront()
		require.True(t, ok)
		data := donburi.Get[PatientData](g.World.Entry(e), PatientComponent)
		assert.False(t, seen[data.ID])
		seen[data.ID] = true
		assert.NotEmpty(t, data.Name)
		assert.Equal(t, 100, data.Health)
	}
	_, ok := g.Patients.PopFront()
	assert.False(t, ok)
}

func TestPatientQueueOrder(t *testing.T) {
	g, _ := newMenuGame()
	g.Update(frame)

	first, ok := g.Patients.Front()
	require.True(t, ok)
	popped, ok := g.Patients.PopFront()
	require.True(t, ok)
	assert.Equal(t, first, popped)

	var q PatientQueue
	_, ok = q.Front()
	assert.False(t, ok)
	_, ok = g.CurrentPatient()
	assert.True(t, ok)
}
