package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("writes JSON to stdout by default", func(t *testing.T) {
		app, _, out := setupTestApp(t)

		err := NewExportCommand(app).Execute(ctx, "")
		require.NoError(t, err)
		assert.Contains(t, out.String(), `[{"id":1}]`)
	})

	t.Run("writes to a file when asked", func(t *testing.T) {
		app, _, out := setupTestApp(t)
		path := filepath.Join(t.TempDir(), "export.json")

		err := NewExportCommand(app).Execute(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Exported session log to "+path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"id":1}]`, string(data))
	})

	t.Run("wraps API failures", func(t *testing.T) {
		app, mock, _ := setupTestApp(t)
		mock.failWith = assert.AnError

		err := NewExportCommand(app).Execute(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to export sessions")
	})
}
