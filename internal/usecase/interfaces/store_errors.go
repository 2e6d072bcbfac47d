package interfaces

import "errors"

var (
	// ErrStoreUnavailable wraps every read or write failure of a record store.
	ErrStoreUnavailable = errors.New("record store unavailable")
	// ErrStoreEmpty is joined to ErrStoreUnavailable when the storage holds no collection yet.
	ErrStoreEmpty = errors.New("record store empty")
)
