package sources_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"relay-analytics/internal/shared/filestorages"
	storagemocks "relay-analytics/internal/shared/filestorages/mocks"
	"relay-analytics/internal/sources"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const snapshotDocument = `{
  "relays_published": "2024-05-01 12:00:00",
  "relays": [
    {"fingerprint": "AAAA", "country": "de", "running": true, "consensus_weight": 100},
    {"fingerprint": "BBBB", "country": "fr", "running": true, "consensus_weight": 40},
    {"fingerprint": "CCCC", "country": "de", "running": false, "consensus_weight": 60}
  ]
}`

func newSnapshotSource(t *testing.T, content string) sources.RelaySource {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "details.json"), []byte(content), 0o644))
	storage, err := filestorages.NewFileStorage(dir)
	require.NoError(t, err)
	return sources.NewSnapshotFileSource(storage, "details.json")
}

func TestSnapshotFileSource_FetchCountry(t *testing.T) {
	t.Parallel()

	source := newSnapshotSource(t, snapshotDocument)

	snapshot, err := source.FetchCountry(context.Background(), "de")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01 12:00:00", snapshot.RelaysPublished)
	require.Len(t, snapshot.Relays, 2)
	assert.Equal(t, "AAAA", snapshot.Relays[0].Fingerprint)
	assert.Equal(t, "CCCC", snapshot.Relays[1].Fingerprint)

	none, err := source.FetchCountry(context.Background(), "us")
	require.NoError(t, err)
	assert.NotNil(t, none.Relays)
	assert.Empty(t, none.Relays)
}

func TestSnapshotFileSource_FetchNetwork(t *testing.T) {
	t.Parallel()

	snapshot, err := newSnapshotSource(t, snapshotDocument).FetchNetwork(context.Background())
	require.NoError(t, err)
	assert.Len(t, snapshot.Relays, 3)
	assert.Equal(t, int64(200), snapshot.TotalConsensusWeight())
}

func TestSnapshotFileSource_Missing(t *testing.T) {
	t.Parallel()

	storage, err := filestorages.NewFileStorage(t.TempDir())
	require.NoError(t, err)

	_, err = sources.NewSnapshotFileSource(storage, "details.json").FetchNetwork(context.Background())
	assert.ErrorIs(t, err, sources.ErrSnapshotNotFound)
}

func TestSnapshotFileSource_Malformed(t *testing.T) {
	t.Parallel()

	_, err := newSnapshotSource(t, "[1,2,3]").FetchCountry(context.Background(), "de")
	assert.ErrorIs(t, err, sources.ErrDecodeFailed)
}

func TestSnapshotFileSource_StorageFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := storagemocks.NewMockFileStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), "snapshots/today.json").Return(nil, errors.New("disk on fire"))

	_, err := sources.NewSnapshotFileSource(storage, "snapshots/today.json").FetchNetwork(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, sources.ErrSnapshotNotFound)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestSnapshotFileSource_ReadsEveryFetch(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storage := storagemocks.NewMockFileStorage(ctrl)
	storage.EXPECT().Get(gomock.Any(), "details.json").Return(io.NopCloser(strings.NewReader(snapshotDocument)), nil)
	storage.EXPECT().Get(gomock.Any(), "details.json").Return(io.NopCloser(strings.NewReader(`{"relays":[]}`)), nil)

	source := sources.NewSnapshotFileSource(storage, "details.json")

	first, err := source.FetchNetwork(context.Background())
	require.NoError(t, err)
	assert.Len(t, first.Relays, 3)

	second, err := source.FetchNetwork(context.Background())
	require.NoError(t, err)
	assert.Empty(t, second.Relays)
}
