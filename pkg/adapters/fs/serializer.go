package fs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notes/pkg/core"
)

// Serializer defines how to read and write a note record in a specific file format.
type Serializer interface {
	// Parse reads from r and returns the stored Title and Content.
	// The Name is left for the caller to fill.
	Parse(r io.Reader) (core.Note, error)
	// Serialize converts the note to bytes. The Name is never written.
	Serialize(n core.Note) ([]byte, error)
}

// DefaultSerializers returns the standard set of serializers.
func DefaultSerializers() map[string]Serializer {
	return map[string]Serializer{
		".json": NewJSONSerializer(),
		".yaml": NewYAMLSerializer(),
		".yml":  NewYAMLSerializer(),
	}
}

// record is the on-disk shape. Pointers tell a missing field from an empty one.
type record struct {
	Title   *string `json:"title" yaml:"title"`
	Content *string `json:"content" yaml:"content"`
}

func (rec record) note() (core.Note, error) {
	if rec.Title == nil {
		return core.Note{}, fmt.Errorf("missing field %q", "title")
	}
	if rec.Content == nil {
		return core.Note{}, fmt.Errorf("missing field %q", "content")
	}
	return core.Note{Title: *rec.Title, Content: *rec.Content}, nil
}

// --- JSON Serializer ---

// JSONSerializer handles reading and writing JSON records:
// {"title":"...","content":"..."}.
type JSONSerializer struct{}

// NewJSONSerializer creates a new JSON serializer.
func NewJSONSerializer() *JSONSerializer {
	return &JSONSerializer{}
}

// Parse accepts exactly one JSON object; anything after it is an error.
func (s *JSONSerializer) Parse(r io.Reader) (core.Note, error) {
	dec := json.NewDecoder(r)

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return core.Note{}, fmt.Errorf("invalid json: %w", err)
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return core.Note{}, errors.New("invalid json: trailing data after record")
	}
	return rec.note()
}

func (s *JSONSerializer) Serialize(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Titles and content are free text; keep <, > and & readable on disk.
	enc.SetEscapeHTML(false)
	if err := enc.Encode(record{Title: &n.Title, Content: &n.Content}); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// --- YAML Serializer ---

// YAMLSerializer handles reading and writing YAML records.
type YAMLSerializer struct{}

// NewYAMLSerializer creates a new YAML serializer.
func NewYAMLSerializer() *YAMLSerializer {
	return &YAMLSerializer{}
}

// Parse accepts a single YAML document; a second document is an error.
func (s *YAMLSerializer) Parse(r io.Reader) (core.Note, error) {
	dec := yaml.NewDecoder(r)

	var rec record
	if err := dec.Decode(&rec); err != nil {
		return core.Note{}, fmt.Errorf("invalid yaml: %w", err)
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return core.Note{}, errors.New("invalid yaml: more than one document")
	}
	return rec.note()
}

func (s *YAMLSerializer) Serialize(n core.Note) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(record{Title: &n.Title, Content: &n.Content}); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
