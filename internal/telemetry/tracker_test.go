package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emberfield/palisade/internal/testutil"
)

func TestRecorder(t *testing.T) {
	rec := NewRecorder()

	rec.Track("building-constructed", map[string]any{"building_id": "sawmill"})
	rec.Track("day-advanced", map[string]any{"day": 2})

	calls := rec.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "building-constructed", calls[0].Name)
	assert.Equal(t, "sawmill", calls[0].Params["building_id"])
	assert.Equal(t, "day-advanced", calls[1].Name)
}

func TestRecorder_CallsReturnsSnapshot(t *testing.T) {
	rec := NewRecorder()
	rec.Track("resource-changed", nil)

	first := rec.Calls()
	rec.Track("resource-changed", nil)

	assert.Len(t, first, 1)
	assert.Len(t, rec.Calls(), 2)
}

func TestLogTracker(t *testing.T) {
	// Only exercises the path; the sink is a nop logger.
	tracker := NewLogTracker(testutil.NopLogger())
	tracker.Track("adventure-succeeded", map[string]any{"adventure_id": "bandit-camp"})
}
