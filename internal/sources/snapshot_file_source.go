package sources

import (
	"context"
	"errors"
	"fmt"

	"relay-analytics/internal/models"
	"relay-analytics/internal/shared/filestorages"
)

type snapshotFileSource struct {
	fileStorage filestorages.FileStorage
	key         string
}

// NewSnapshotFileSource serves relays from a saved details document instead of the network.
// The document is re-read on every fetch so it can be replaced while the process runs.
func NewSnapshotFileSource(fileStorage filestorages.FileStorage, key string) RelaySource {
	return &snapshotFileSource{fileStorage: fileStorage, key: key}
}

func (s *snapshotFileSource) FetchCountry(ctx context.Context, country models.CountryCode) (*models.RelaySnapshot, error) {
	snapshot, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return snapshot.FilterCountry(country), nil
}

func (s *snapshotFileSource) FetchNetwork(ctx context.Context) (*models.RelaySnapshot, error) {
	return s.load(ctx)
}

func (s *snapshotFileSource) load(ctx context.Context) (*models.RelaySnapshot, error) {
	rc, err := s.fileStorage.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, s.key)
		}
		return nil, fmt.Errorf("failed to open relay snapshot %q: %w", s.key, err)
	}
	defer rc.Close()

	return decodeSnapshot(rc)
}
