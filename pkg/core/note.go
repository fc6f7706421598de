package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Note is the central entity of the domain.
// It is a titled piece of text identified by a Name. The Name is never part
// of the stored record: adapters derive it from the storage key (e.g. the file name).
type Note struct {
	Name    string `json:"-" yaml:"-"`
	Title   string `json:"title" yaml:"title" validate:"required"`
	Content string `json:"content" yaml:"content" validate:"required"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails on an empty tag or nil func.
	_ = v.RegisterValidation("notename", func(fl validator.FieldLevel) bool {
		name := fl.Field().String()
		if name == "." || name == ".." {
			return false
		}
		return !strings.ContainsAny(name, "/\\\x00")
	})
	return v
}

// Validate checks that the note can be persisted.
// Title is checked before Content, so a note missing both reports ErrEmptyTitle.
func (n Note) Validate() error {
	err := validate.Struct(n)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	switch fieldErrs[0].Field() {
	case "Title":
		return ErrEmptyTitle
	case "Content":
		return ErrEmptyContent
	default:
		return err
	}
}

// ValidateName rejects names that cannot safely be turned into a storage key:
// empty names, "." and "..", and names holding path separators or NUL.
func ValidateName(name string) error {
	if err := validate.Var(name, "required,notename"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
