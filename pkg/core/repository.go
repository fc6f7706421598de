package core

import "context"

// Repository defines the contract for storing and retrieving notes.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism.
type Repository interface {
	// Create persists a new note. It fails with ErrAlreadyExists if a note
	// with the same name exists, and never overwrites one.
	Create(ctx context.Context, n Note) error

	// Get retrieves a note by its name.
	// Absent notes yield ErrNotFound, unreadable records ErrMalformed.
	Get(ctx context.Context, name string) (Note, error)

	// Replace swaps the record of an existing note for n.
	// A rejected or failed replace leaves the stored note untouched.
	Replace(ctx context.Context, n Note) error

	// Delete removes a note by its name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored notes.
	List(ctx context.Context) ([]string, error)

	// Initialize ensures the underlying storage is ready (e.g. create directories).
	Initialize(ctx context.Context) error
}
