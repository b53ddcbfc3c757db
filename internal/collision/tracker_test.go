package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tuyair/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_TrackFunction(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackFunction("POWER", 0x0001))
	require.NoError(t, tracker.TrackFunction("VOLUME_UP", 0x0002))
	require.NoError(t, tracker.TrackFunction("VOLUME_DOWN", 0x0003))

	require.Equal(t, 3, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"POWER", "VOLUME_UP", "VOLUME_DOWN"}, tracker.Names())
}

func TestTracker_TrackFunction_Errors(t *testing.T) {
	tracker := NewTracker()

	require.ErrorIs(t, tracker.TrackFunction("", 0x0001), errs.ErrInvalidFunctionName)
	require.Equal(t, 0, tracker.Count())

	require.NoError(t, tracker.TrackFunction("POWER", 0x0001))
	require.ErrorIs(t, tracker.TrackFunction("POWER", 0x0001), errs.ErrFunctionAlreadyAdded)
	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision(), "a duplicate is not a collision")
}

func TestTracker_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.TrackFunction("POWER", 0x1234))
	require.NoError(t, tracker.TrackFunction("POWER_OFF", 0x1234))
	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// Duplicates are still caught for a name that collided.
	require.ErrorIs(t, tracker.TrackFunction("POWER_OFF", 0x1234), errs.ErrFunctionAlreadyAdded)

	require.NoError(t, tracker.TrackFunction("MUTE", 0x9999))
	require.True(t, tracker.HasCollision(), "collision flag persists")
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	for i := range 100 {
		require.NoError(t, tracker.TrackFunction(string(rune('A'+i%26))+string(rune('a'+i/26)), uint64(i%10)))
	}
	require.True(t, tracker.HasCollision())
	initialCap := cap(tracker.namesList)

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
	require.GreaterOrEqual(t, cap(tracker.namesList), initialCap)

	require.NoError(t, tracker.TrackFunction("Aa", 0x0001))
	require.Equal(t, []string{"Aa"}, tracker.Names())
}
