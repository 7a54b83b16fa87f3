package medication

import "context"

// Store owns the persisted collection of medications. The collection keeps
// insertion order and every ID in it is unique.
type Store interface {
	// Add appends m to the end of the collection.
	Add(ctx context.Context, m Medication) error
	// List returns the whole collection, empty if nothing was stored yet.
	List(ctx context.Context) ([]Medication, error)
	// Remove drops every medication with the given ID. Removing an unknown
	// ID is not an error.
	Remove(ctx context.Context, id ID) error
}
