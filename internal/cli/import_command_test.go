package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportCommand_Execute(t *testing.T) {
	ctx := context.Background()

	writeFile := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "import.json")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("imports a JSON export", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.imported = 3
		path := writeFile(t, `[{"id":1},{"id":2},{"id":3}]`)

		err := NewImportCommand(app).Execute(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Imported 3 sessions from "+path)
	})

	t.Run("singular session reads naturally", func(t *testing.T) {
		app, mock, out := setupTestApp(t)
		mock.imported = 1
		path := writeFile(t, `[{"id":1}]`)

		err := NewImportCommand(app).Execute(ctx, path)
		require.NoError(t, err)
		assert.Contains(t, out.String(), "Imported 1 session from")
	})

	t.Run("reports an unreadable file", func(t *testing.T) {
		app, _, _ := setupTestApp(t)

		err := NewImportCommand(app).Execute(ctx, filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read import file")
	})

	t.Run("wraps malformed payload rejections", func(t *testing.T) {
		app, _, _ := setupTestApp(t)
		path := writeFile(t, `{"not":"an array"}`)

		err := NewImportCommand(app).Execute(ctx, path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to import sessions")
	})
}
