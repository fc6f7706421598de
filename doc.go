// Package notes is the Composition Root for the notes application.
//
// It connects the core business logic (Domain Layer) with the filesystem
// adapter (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Each note is a named record with a title and a content, stored as one file
// per note in a single flat directory. The file name is the note name plus
// the format extension (".json" by default).
//
// Usage:
//
//	svc, err := notes.New(ctx, "/home/me/.notes/",
//		notes.WithLogger(logger),
//	)
//
//	// Create a note
//	err = svc.CreateNote(ctx, "groceries", "Shopping", "milk, eggs")
//
//	// Read it back
//	n, err := svc.GetNote(ctx, "groceries")
package notes
