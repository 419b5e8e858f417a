// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package submission

import (
	"context"
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"
)

// Field error messages
const (
	MsgNameRequired = "Name is required"
	MsgAgeRequired  = "Age is required"
	MsgAgeInvalid   = "Age must be a positive number"
)

// SuccessMessage is shown to the respondent after a successful submit.
const SuccessMessage = "Your response has been successfully submitted."

// FallbackErrorMessage replaces a storage error that carries no message.
const FallbackErrorMessage = "An error occurred while submitting your response. Please try again."

var ErrSubmitting = errors.New("submission already in progress")

// FieldErrors holds at most one message per field. Empty means valid.
type FieldErrors struct {
	Name string
	Age  string
}

func (fe FieldErrors) Valid() bool {
	return fe.Name == "" && fe.Age == ""
}

// Map returns the errors keyed by JSON field name
func (fe FieldErrors) Map() map[string]string {
	m := map[string]string{}
	if fe.Name != "" {
		m["name"] = fe.Name
	}
	if fe.Age != "" {
		m["age"] = fe.Age
	}
	return m
}

// ValidationError is returned by Submit when the form does not validate.
// It never reaches the repository.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, 2)
	if e.Fields.Name != "" {
		msgs = append(msgs, e.Fields.Name)
	}
	if e.Fields.Age != "" {
		msgs = append(msgs, e.Fields.Age)
	}
	return "invalid response: " + strings.Join(msgs, "; ")
}

// Inserter is the part of the repository a submission needs.
type Inserter interface {
	Insert(ctx context.Context, name string, age int) error
}

// Validate checks the raw form input
func Validate(name, age string) FieldErrors {
	var fe FieldErrors

	if strings.TrimSpace(name) == "" {
		fe.Name = MsgNameRequired
	}

	if age == "" {
		fe.Age = MsgAgeRequired
	} else if _, ok := ParseAge(age); !ok {
		fe.Age = MsgAgeInvalid
	}

	return fe
}

// ParseAge parses a positive whole-number age. Surrounding whitespace and
// forms like "34.0" or "3.4e1" are accepted.
func ParseAge(age string) (int, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(age), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f <= 0 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// Form is one respondent's in-progress submission.
type Form struct {
	repo      Inserter
	onSuccess func()
	onError   func(error)

	mu          sync.Mutex
	name        string
	age         string
	fieldErrors FieldErrors
	submitting  bool
}

type Option func(*Form)

// WithCallbacks sets the success and error signals. Either may be nil.
func WithCallbacks(onSuccess func(), onError func(error)) Option {
	return func(f *Form) {
		f.onSuccess = onSuccess
		f.onError = onError
	}
}

func NewForm(repo Inserter, opts ...Option) *Form {
	f := &Form{repo: repo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// SetName updates the name and clears its error
func (f *Form) SetName(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.name = name
	f.fieldErrors.Name = ""
}

// SetAge updates the age and clears its error
func (f *Form) SetAge(age string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.age = age
	f.fieldErrors.Age = ""
}

func (f *Form) Values() (name, age string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.name, f.age
}

func (f *Form) FieldErrors() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fieldErrors
}

// Submitting reports whether an insert is in flight (submit control disabled).
func (f *Form) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Validate checks the current values and records the field errors.
func (f *Form) Validate() FieldErrors {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fieldErrors = Validate(f.name, f.age)
	return f.fieldErrors
}

// Submit validates and inserts the response. Fields are cleared on success
// and kept on failure so the respondent can correct them.
func (f *Form) Submit(ctx context.Context) error {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return ErrSubmitting
	}

	f.fieldErrors = Validate(f.name, f.age)
	if !f.fieldErrors.Valid() {
		fe := f.fieldErrors
		f.mu.Unlock()
		return &ValidationError{Fields: fe}
	}

	name := strings.TrimSpace(f.name)
	age, _ := ParseAge(f.age)
	f.submitting = true
	f.mu.Unlock()

	err := f.repo.Insert(ctx, name, age)

	f.mu.Lock()
	f.submitting = false
	if err == nil {
		f.name = ""
		f.age = ""
	}
	f.mu.Unlock()

	if err != nil {
		if f.onError != nil {
			f.onError(err)
		}
		return err
	}

	if f.onSuccess != nil {
		f.onSuccess()
	}
	return nil
}

// UserMessage is the banner text for a failed submit.
func UserMessage(err error) string {
	if err == nil || err.Error() == "" {
		return FallbackErrorMessage
	}
	return err.Error()
}
