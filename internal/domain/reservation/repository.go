package reservation

import "io"

// Repository is the store contract the HTTP layer depends on.
//
// Implementations serialize every call. They do not validate records:
// callers run Validate before Append.
type Repository interface {
	// EnsureInitialized creates the store with its header if it is absent.
	EnsureInitialized() error

	// Append persists one record at the end of the store.
	Append(r Record) error

	// ReadAll returns every well-formed record in insertion order.
	// A store that does not exist yet yields an empty slice.
	ReadAll() ([]Record, error)

	// Snapshot copies the raw store bytes to w.
	Snapshot(w io.Writer) (int64, error)
}
