// Package query validates a word-ladder request before any graph is built.
package query

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidQuery wraps every validation failure.
var ErrInvalidQuery = errors.New("query: invalid")

// Query is a word-ladder request: find ladders from First to Last.
type Query struct {
	First string `validate:"required,alphabet"`
	Last  string `validate:"required,alphabet"`
}

// Validator checks queries against one alphabet.
type Validator struct {
	alphabet string
	validate *validator.Validate
}

// NewValidator returns a Validator for words over alphabet.
func NewValidator(alphabet string) *Validator {
	v := &Validator{alphabet: alphabet, validate: validator.New()}
	if err := v.validate.RegisterValidation("alphabet", v.inAlphabet); err != nil {
		panic(fmt.Sprintf("query: register alphabet validation: %v", err))
	}
	v.validate.RegisterStructValidation(sameLength, Query{})

	return v
}

// inAlphabet reports whether every rune of the field belongs to the alphabet.
func (v *Validator) inAlphabet(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		if !strings.ContainsRune(v.alphabet, r) {
			return false
		}
	}
	return true
}

// sameLength reports Last when both words are present but differ in length.
func sameLength(sl validator.StructLevel) {
	q := sl.Current().Interface().(Query)
	if q.First == "" || q.Last == "" {
		return
	}
	if utf8.RuneCountInString(q.First) != utf8.RuneCountInString(q.Last) {
		sl.ReportError(q.Last, "Last", "Last", "samelen", "")
	}
}

// Validate returns nil for a well-formed query, otherwise an error wrapping
// ErrInvalidQuery. When several rules fail, the message reports the first of:
// empty first word, empty last word, length mismatch, foreign characters.
func (v *Validator) Validate(q Query) error {
	err := v.validate.Struct(q)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidQuery, err)
	}

	best := len(messages)
	for _, fe := range verrs {
		if p := priority(fe); p < best {
			best = p
		}
	}
	if best == len(messages) {
		return fmt.Errorf("%w: %s", ErrInvalidQuery, verrs[0].Error())
	}

	return fmt.Errorf("%w: %s", ErrInvalidQuery, messages[best])
}

var messages = []string{
	"first must not be empty",
	"last must not be empty",
	"first and last must have the same length",
	"word must not contain punctuation",
}

func priority(fe validator.FieldError) int {
	switch {
	case fe.Tag() == "required" && fe.Field() == "First":
		return 0
	case fe.Tag() == "required" && fe.Field() == "Last":
		return 1
	case fe.Tag() == "samelen":
		return 2
	case fe.Tag() == "alphabet":
		return 3
	}
	return len(messages)
}

// Message returns the human-readable part of a validation error, without
// the package prefix.
func Message(err error) string {
	return strings.TrimPrefix(err.Error(), ErrInvalidQuery.Error()+": ")
}
