package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategories(t *testing.T) {
	assert.Equal(t,
		[]Category{CategoryInfo, CategorySuccess, CategoryWarning, CategoryError},
		Categories(),
	)
	for _, c := range Categories() {
		assert.True(t, c.Valid(), c)
	}
	assert.False(t, Category("critical").Valid())
	assert.False(t, Category("").Valid())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "lower case", input: "info", want: CategoryInfo},
		{name: "mixed case", input: "Warning", want: CategoryWarning},
		{name: "padded", input: "  error ", want: CategoryError},
		{name: "unknown", input: "critical", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidCategory)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSnapshot(t *testing.T) {
	snap := Snapshot{
		{ID: "3", IsRead: false},
		{ID: "2", IsRead: true},
		{ID: "1", IsRead: false},
	}

	assert.Equal(t, 3, snap.Len())
	assert.Equal(t, 2, snap.UnreadCount())

	unread := snap.Unread()
	require.Len(t, unread, 2)
	assert.Equal(t, "3", unread[0].ID)
	assert.Equal(t, "1", unread[1].ID)

	read := snap.Read()
	require.Len(t, read, 1)
	assert.Equal(t, "2", read[0].ID)

	n, ok := snap.Find("2")
	assert.True(t, ok)
	assert.True(t, n.IsRead)
	_, ok = snap.Find("missing")
	assert.False(t, ok)

	clone := snap.Clone()
	clone[0].IsRead = true
	assert.False(t, snap[0].IsRead)

	assert.NotNil(t, Snapshot(nil).Clone())
	assert.Empty(t, Snapshot(nil).Clone())
}
