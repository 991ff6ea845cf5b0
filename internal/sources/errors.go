package sources

import "errors"

var (
	ErrUnexpectedStatus = errors.New("unexpected upstream status")
	ErrDecodeFailed     = errors.New("failed to decode relay document")
	ErrSnapshotNotFound = errors.New("relay snapshot not found")
)
