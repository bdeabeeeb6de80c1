package snapshot

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/box-office-league/internal/logger"
	"github.com/iliyamo/box-office-league/internal/sheet"
)

// fakeStore serves canned grids and counts reads so cache behavior is
// observable.
type fakeStore struct {
	grids map[string][][]string
	reads map[string]int
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		grids: map[string][][]string{
			TablePlayers: {
				{"Player_Name", "Total_Net_Worth_Million"},
				{"Ava", "320.5"},
			},
		},
		reads: map[string]int{},
	}
}

func (f *fakeStore) ReadTable(_ context.Context, name string) ([][]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.reads[name]++
	grid, ok := f.grids[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sheet.ErrTableNotFound, name)
	}
	return grid, nil
}

func (f *fakeStore) AppendRow(context.Context, string, []string) error { return nil }

func (f *fakeStore) UpdateCell(context.Context, string, int, int, string) error { return nil }

func TestLoadCachedMemoizes(t *testing.T) {
	store := newFakeStore()
	loader := NewLoader(store, nil, time.Minute, logger.NewNop())

	ctx := context.Background()
	first, err := loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, "Ava", first.Table(TablePlayers).Rows[0]["Player_Name"])

	_, err = loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, 1, store.reads[TablePlayers], "second cached load must not hit the store")
}

func TestLoadBypassAlwaysFetches(t *testing.T) {
	store := newFakeStore()
	loader := NewLoader(store, nil, time.Minute, logger.NewNop())

	ctx := context.Background()
	_, err := loader.Load(ctx, Bypass, TablePlayers)
	require.NoError(t, err)
	_, err = loader.Load(ctx, Bypass, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, 2, store.reads[TablePlayers])

	// Bypass still refreshes the cache for the read pages behind it.
	_, err = loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, 2, store.reads[TablePlayers])
}

func TestLoadTTLExpiry(t *testing.T) {
	store := newFakeStore()
	loader := NewLoader(store, nil, 10*time.Millisecond, logger.NewNop())

	ctx := context.Background()
	_, err := loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)
	_, err = loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, 2, store.reads[TablePlayers], "expired entry must refetch")
}

func TestInvalidateDropsEntry(t *testing.T) {
	store := newFakeStore()
	loader := NewLoader(store, nil, time.Minute, logger.NewNop())

	ctx := context.Background()
	_, err := loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)

	loader.Invalidate(ctx, TablePlayers)
	_, err = loader.Load(ctx, Cached, TablePlayers)
	require.NoError(t, err)
	require.Equal(t, 2, store.reads[TablePlayers])
}

func TestLoadUnknownTable(t *testing.T) {
	store := newFakeStore()
	loader := NewLoader(store, nil, time.Minute, logger.NewNop())

	_, err := loader.Load(context.Background(), Cached, "Champions")
	require.ErrorIs(t, err, sheet.ErrTableNotFound)
}

func TestLoadConnectionError(t *testing.T) {
	store := newFakeStore()
	store.err = &sheet.ConnectionError{Err: errors.New("dial tcp: timeout")}
	loader := NewLoader(store, nil, time.Minute, logger.NewNop())

	_, err := loader.Load(context.Background(), Cached, TablePlayers)
	var connErr *sheet.ConnectionError
	require.ErrorAs(t, err, &connErr)
}
