package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelayRecord_AbsentFieldsCoerceToZero(t *testing.T) {
	t.Parallel()

	var relay RelayRecord
	err := json.Unmarshal([]byte(`{"fingerprint":"AAAA","running":true}`), &relay)
	require.NoError(t, err)

	assert.True(t, relay.Running)
	assert.Equal(t, int64(0), relay.AdvertisedBandwidthBytes())
	assert.Equal(t, int64(0), relay.ConsensusWeightOrZero())

	_, _, ok := relay.AutonomousSystem()
	assert.False(t, ok)
}

func TestRelayRecord_PresentFields(t *testing.T) {
	t.Parallel()

	var relay RelayRecord
	err := json.Unmarshal([]byte(`{
		"running": false,
		"advertised_bandwidth": 2097152,
		"consensus_weight": 1400,
		"as": "AS24940",
		"as_name": "Hetzner Online GmbH"
	}`), &relay)
	require.NoError(t, err)

	assert.False(t, relay.Running)
	assert.Equal(t, int64(2097152), relay.AdvertisedBandwidthBytes())
	assert.Equal(t, int64(1400), relay.ConsensusWeightOrZero())

	asn, name, ok := relay.AutonomousSystem()
	assert.True(t, ok)
	assert.Equal(t, "AS24940", asn)
	assert.Equal(t, "Hetzner Online GmbH", name)
}

func TestRelayRecord_AutonomousSystem(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		json   string
		wantOk bool
	}{
		{name: "both present", json: `{"as":"AS1","as_name":"Net1"}`, wantOk: true},
		{name: "id only", json: `{"as":"AS1"}`, wantOk: false},
		{name: "name only", json: `{"as_name":"Net1"}`, wantOk: false},
		{name: "empty id", json: `{"as":"","as_name":"Net1"}`, wantOk: false},
		{name: "empty name", json: `{"as":"AS1","as_name":""}`, wantOk: false},
		{name: "null id", json: `{"as":null,"as_name":"Net1"}`, wantOk: false},
		{name: "neither", json: `{}`, wantOk: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var relay RelayRecord
			require.NoError(t, json.Unmarshal([]byte(tt.json), &relay))

			_, _, ok := relay.AutonomousSystem()
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestRelayRecord_NegativeValuesAcceptedAsIs(t *testing.T) {
	t.Parallel()

	var relay RelayRecord
	require.NoError(t, json.Unmarshal([]byte(`{"advertised_bandwidth":-10,"consensus_weight":-3}`), &relay))

	assert.Equal(t, int64(-10), relay.AdvertisedBandwidthBytes())
	assert.Equal(t, int64(-3), relay.ConsensusWeightOrZero())
}
