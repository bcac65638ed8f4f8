package soil

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	InputMissing
	InputNotNumeric
	InvalidPlasticity
	ModelUnavailable
	PredictionFailure
	ClipboardFailure
)

var kindNames = map[Kind]string{
	KindUnknown:       "UNKNOWN",
	InputMissing:      "INPUT_MISSING",
	InputNotNumeric:   "INPUT_NOT_NUMERIC",
	InvalidPlasticity: "INVALID_PLASTICITY",
	ModelUnavailable:  "MODEL_UNAVAILABLE",
	PredictionFailure: "PREDICTION_FAILURE",
	ClipboardFailure:  "CLIPBOARD_FAILURE",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error carries the kind of failure, the field it concerns (if any) and a
// message fit to show the user.
type Error struct {
	Kind  Kind
	Field *Field
	Msg   string
	Err   error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Field == nil || (e.Field != nil && *t.Field == *e.Field))
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func fieldError(kind Kind, field Field, msg string) *Error {
	f := field
	return &Error{Kind: kind, Field: &f, Msg: msg}
}

// KindOf reports the Kind of err, or KindUnknown when err is not a soil error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// FieldOf reports the field err concerns.
func FieldOf(err error) (Field, bool) {
	var e *Error
	if errors.As(err, &e) && e.Field != nil {
		return *e.Field, true
	}
	return 0, false
}

// Sentinels for errors.Is checks.
var (
	ErrInputMissing      = &Error{Kind: InputMissing}
	ErrInputNotNumeric   = &Error{Kind: InputNotNumeric}
	ErrInvalidPlasticity = &Error{Kind: InvalidPlasticity}
	ErrModelUnavailable  = &Error{Kind: ModelUnavailable}
	ErrPredictionFailure = &Error{Kind: PredictionFailure}
	ErrClipboardFailure  = &Error{Kind: ClipboardFailure}
)

// ClipboardError wraps a failed clipboard write.
func ClipboardError(err error) *Error {
	return newError(ClipboardFailure, "Error copying data", err)
}
