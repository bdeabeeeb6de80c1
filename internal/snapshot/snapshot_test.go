package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromGrid(t *testing.T) {
	grid := [][]string{
		{"Title", "Genre", "Projected_OWBO_Million"},
		{"Solar Flare", "Sci-Fi", "250"},
		{"Quiet Harvest", "Drama"}, // short row pads with empty cells
		{"Backlot", "Comedy", "80", "stray"}, // extra cell beyond header drops
	}
	table := FromGrid(grid)

	require.Equal(t, []string{"Title", "Genre", "Projected_OWBO_Million"}, table.Header)
	require.Len(t, table.Rows, 3)
	require.Equal(t, "250", table.Rows[0]["Projected_OWBO_Million"])
	require.Equal(t, "", table.Rows[1]["Projected_OWBO_Million"])
	require.Equal(t, "80", table.Rows[2]["Projected_OWBO_Million"])
	require.Len(t, table.Rows[2], 3)
}

func TestFromGridEmpty(t *testing.T) {
	require.Empty(t, FromGrid(nil).Rows)
	require.Empty(t, FromGrid([][]string{}).Rows)

	headerOnly := FromGrid([][]string{{"Player_Name"}})
	require.Equal(t, []string{"Player_Name"}, headerOnly.Header)
	require.Empty(t, headerOnly.Rows)
}

func TestSnapshotTableMissing(t *testing.T) {
	var nilSnap *Snapshot
	require.Empty(t, nilSnap.Table(TablePlayers).Rows)

	snap := &Snapshot{Tables: map[string]Table{}}
	require.Empty(t, snap.Table(TableDraftPool).Rows)
}
