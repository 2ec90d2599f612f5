package manager

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/entity"
)

func activeKeys(snapshot map[string]entity.ActiveEntry) []string {
	keys := []string{}
	for k, e := range snapshot {
		if e.Active {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestObserveSingleActiveInvariant(t *testing.T) {
	am := NewActivityManager()
	t0 := int64(1000)

	sequence := []string{"a.exe:1", "b.exe:2", "a.exe:1", "c.exe:3", "c.exe:3", "b.exe:2"}
	for i, key := range sequence {
		am.Observe(key, t0+int64(i))
		active := activeKeys(am.Snapshot())
		require.Len(t, active, 1, "après Observe(%q)", key)
		assert.Equal(t, key, active[0])
	}
	assert.Len(t, am.Snapshot(), 3)
}

func TestObserveReactivationResetsActiveSince(t *testing.T) {
	am := NewActivityManager()

	am.Observe("a.exe:1", 1000)
	am.Observe("b.exe:2", 1100) // a devient inactif
	am.Observe("a.exe:1", 1250) // réactivation: repart de zéro

	entry := am.Snapshot()["a.exe:1"]
	assert.True(t, entry.Active)
	assert.Equal(t, int64(1250), entry.ActiveSince)
	assert.Equal(t, int64(1250), entry.LastSeen)
}

func TestObserveWhileActiveKeepsActiveSince(t *testing.T) {
	am := NewActivityManager()

	am.Observe("a.exe:1", 1000)
	am.Observe("a.exe:1", 1060)

	entry := am.Snapshot()["a.exe:1"]
	assert.Equal(t, int64(1000), entry.ActiveSince)
	assert.Equal(t, int64(1060), entry.LastSeen)
}

func TestDrainScenarioSwitch(t *testing.T) {
	am := NewActivityManager()
	t0 := int64(5000)

	am.Observe("A", t0)
	am.Observe("B", t0+10)

	drained := am.Drain(t0 + 10)
	require.Len(t, drained, 1)
	assert.Equal(t, "B", drained[0].Identifier)
	assert.Zero(t, drained[0].Seconds)
}

func TestDrainLongActivation(t *testing.T) {
	am := NewActivityManager()
	t0 := int64(5000)

	am.Observe("A", t0)
	drained := am.Drain(t0 + 300)
	require.Len(t, drained, 1)
	assert.Equal(t, "A", drained[0].Identifier)
	assert.Equal(t, int64(300), drained[0].Seconds)
}

func TestDrainSaturatesAtZero(t *testing.T) {
	am := NewActivityManager()

	// horloge irrégulière: now antérieur à l'activation
	am.Observe("A", 2000)
	drained := am.Drain(1990)
	require.Len(t, drained, 1)
	assert.Zero(t, drained[0].Seconds)
}

func TestDrainDoesNotResetActivation(t *testing.T) {
	am := NewActivityManager()

	am.Observe("A", 1000)
	first := am.Drain(1005)
	second := am.Drain(1010)
	require.Len(t, first, 1)
	require.Len(t, second, 1)
	// durées cumulatives: chaque drain repart de l'activation
	assert.Equal(t, int64(5), first[0].Seconds)
	assert.Equal(t, int64(10), second[0].Seconds)
}

func TestWarmSeedsInactiveEntries(t *testing.T) {
	am := NewActivityManager()
	am.Observe("live.exe:x", 3000)

	am.Warm([]entity.LastSeen{
		{Identifier: "old.exe:y", Timestamp: 2000},
		{Identifier: "live.exe:x", Timestamp: 1000}, // ne doit pas écraser
	})

	snapshot := am.Snapshot()
	require.Len(t, snapshot, 2)
	assert.False(t, snapshot["old.exe:y"].Active)
	assert.Equal(t, int64(2000), snapshot["old.exe:y"].LastSeen)
	assert.True(t, snapshot["live.exe:x"].Active)
	assert.Equal(t, int64(3000), snapshot["live.exe:x"].LastSeen)
}

func TestSnapshotIsACopy(t *testing.T) {
	am := NewActivityManager()
	am.Observe("a.exe:1", 1000)

	snapshot := am.Snapshot()
	snapshot["a.exe:1"] = entity.ActiveEntry{Active: false}
	delete(snapshot, "a.exe:1")

	entry := am.Snapshot()["a.exe:1"]
	assert.True(t, entry.Active)
}
