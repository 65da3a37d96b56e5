package content_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifykit/pkg/content"
	"github.com/dmitrymomot/notifykit/pkg/notifications"
)

const minimalTable = `
info:
  titles: ["i-title"]
  descriptions: ["i-desc"]
success:
  titles: ["s-title"]
  descriptions: ["s-desc"]
warning:
  titles: ["w-title"]
  descriptions: ["w-desc"]
error:
  titles: ["e-title"]
  descriptions: ["e-desc"]
`

func TestDefaultTable(t *testing.T) {
	table := content.DefaultTable()
	require.NoError(t, table.Validate())
	for _, c := range notifications.Categories() {
		e, ok := table[c]
		require.True(t, ok, c)
		assert.Len(t, e.Titles, 8, c)
		assert.Len(t, e.Descriptions, 8, c)
	}
}

func TestParseTable(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid", input: minimalTable},
		{name: "malformed yaml", input: "info: [", wantErr: true},
		{name: "missing category", input: `
info: {titles: [a], descriptions: [b]}
success: {titles: [a], descriptions: [b]}
warning: {titles: [a], descriptions: [b]}
`, wantErr: true},
		{name: "unknown category", input: minimalTable + `
critical: {titles: [a], descriptions: [b]}
`, wantErr: true},
		{name: "empty titles", input: `
info: {titles: [], descriptions: [b]}
success: {titles: [a], descriptions: [b]}
warning: {titles: [a], descriptions: [b]}
error: {titles: [a], descriptions: [b]}
`, wantErr: true},
		{name: "blank description", input: `
info: {titles: [a], descriptions: ["  "]}
success: {titles: [a], descriptions: [b]}
warning: {titles: [a], descriptions: [b]}
error: {titles: [a], descriptions: [b]}
`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := content.ParseTable([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, content.ErrInvalidTable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, []string{"e-title"}, table[notifications.CategoryError].Titles)
		})
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimalTable), 0o600))

	table, err := content.LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"i-desc"}, table[notifications.CategoryInfo].Descriptions)

	_, err = content.LoadTable(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
