package notes_test

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/aretw0/notes"
)

// Example_basic creates a note in a temporary directory and reads it back.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()

	svc, err := notes.New(ctx, tmpDir+string(os.PathSeparator))
	if err != nil {
		log.Fatal(err)
	}

	if err := svc.CreateNote(ctx, "groceries", "Shopping", "milk, eggs"); err != nil {
		log.Fatal(err)
	}

	n, err := svc.GetNote(ctx, "groceries")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %s\n", n.Title, n.Content)
	// Output:
	// Shopping: milk, eggs
}

// Example_list shows that listing returns note names without the extension.
func Example_list() {
	tmpDir, err := os.MkdirTemp("", "notes-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	ctx := context.Background()

	svc, err := notes.New(ctx, tmpDir, notes.WithFormat("yaml"))
	if err != nil {
		log.Fatal(err)
	}

	for _, name := range []string{"a", "b"} {
		if err := svc.CreateNote(ctx, name, "T", "C"); err != nil {
			log.Fatal(err)
		}
	}

	names, err := svc.ListNotes(ctx)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(names)
	// Output:
	// [a b]
}
