package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"relay-analytics/internal/models"
)

const (
	ScopeCountry = "country"
	ScopeNetwork = "network"
)

// RelaySource yields decoded relay documents. FetchCountry returns only the relays located in
// country; FetchNetwork returns every relay with at least its consensus weight populated.
//
//go:generate mockgen -source=relay_source.go -destination=./mocks/relay_source_mock.go -package=mocks
type RelaySource interface {
	FetchCountry(ctx context.Context, country models.CountryCode) (*models.RelaySnapshot, error)
	FetchNetwork(ctx context.Context) (*models.RelaySnapshot, error)
}

// decodeSnapshot reads a details document, ignoring fields the models do not carry.
func decodeSnapshot(r io.Reader) (*models.RelaySnapshot, error) {
	var snapshot models.RelaySnapshot
	if err := json.NewDecoder(io.LimitReader(r, maxDocumentBytes)).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeFailed, err)
	}
	if snapshot.Relays == nil {
		snapshot.Relays = []models.RelayRecord{}
	}
	return &snapshot, nil
}
