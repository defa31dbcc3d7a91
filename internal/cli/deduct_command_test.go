package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeductCommand_Execute(t *testing.T) {
	ctx := context.Background()
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)

	t.Run("removes time from the day", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.addSession(day.Add(9*time.Hour), day.Add(9*time.Hour+50*time.Minute))

		err := NewDeductCommand(app).Execute(ctx, "2024-03-01", "20")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Removed 20m from 2024-03-01")

		remaining, err := mock.ListRecentSessions(ctx, 0)
		require.NoError(t, err)
		require.Len(t, remaining, 1)
		assert.Equal(t, 30*time.Minute, remaining[0].Duration())
	})

	t.Run("caps the removal at what the day holds", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.addSession(day.Add(9*time.Hour), day.Add(9*time.Hour+30*time.Minute))

		err := NewDeductCommand(app).Execute(ctx, "2024-03-01", "120")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Removed 30m")
		assert.Empty(t, mock.sessions)
	})

	t.Run("says so when the day is empty", func(t *testing.T) {
		app, _, out := setupTestApp(t)

		err := NewDeductCommand(app).Execute(ctx, "2024-03-01", "15")
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Nothing logged on 2024-03-01")
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		err := NewDeductCommand(app).Execute(ctx, "03/01", "15")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date")
	})
}
