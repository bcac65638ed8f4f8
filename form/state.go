// Package form holds the state of the prediction form and the pure
// transitions the terminal front end applies to it.
package form

import (
	"context"
	"strings"

	"soilindex/soil"
)

type NoticeLevel int

const (
	LevelInfo NoticeLevel = iota
	LevelError
)

// Notice is a blocking message the front end must show until dismissed.
type Notice struct {
	Level   NoticeLevel
	Kind    soil.Kind
	Title   string
	Message string
}

// State is everything the form shows. Transitions return a new State and
// never mutate their argument.
type State struct {
	Raw     soil.RawInput
	Derived soil.Derived
	Result  string
	Notice  *Notice
}

func New() State {
	return State{Derived: soil.Derived{State: soil.NotApplicable}}
}

// PI is the Plasticity Index as displayed: "N/A", "Invalid" or two decimals.
func (s State) PI() string {
	return s.Derived.Display()
}

// Warning is the inline message shown next to the derived value while typing.
func (s State) Warning() string {
	if s.Derived.State != soil.Invalid || s.Derived.Err == nil {
		return ""
	}
	if soil.KindOf(s.Derived.Err) == soil.InvalidPlasticity {
		return s.Derived.Err.Error()
	}
	return ""
}

func (s State) Blocked() bool {
	return s.Notice != nil
}

func SetField(s State, f soil.Field, text string) State {
	s.Raw = s.Raw.With(f, text)
	if f == soil.LiquidLimit || f == soil.PlasticLimit {
		s.Derived = soil.DerivedFeature(s.Raw[soil.LiquidLimit], s.Raw[soil.PlasticLimit])
	}
	return s
}

// Submit runs one prediction. Input errors leave the previous result on
// screen; model errors also replace the result with the error text. Either
// way a notice is raised and raw input is kept for correction.
func Submit(ctx context.Context, s State, runner *soil.Runner) State {
	s.Derived = soil.DerivedFeature(s.Raw[soil.LiquidLimit], s.Raw[soil.PlasticLimit])

	if runner == nil {
		runner = &soil.Runner{}
	}
	_, pred, err := runner.Run(ctx, s.Raw)
	if err != nil {
		s.Notice = ErrorNotice(err)
		switch s.Notice.Kind {
		case soil.ModelUnavailable, soil.PredictionFailure:
			s.Result = s.Notice.Message
		}
		return s
	}
	s.Result = pred.String()
	s.Notice = nil
	return s
}

func Dismiss(s State) State {
	s.Notice = nil
	return s
}

func ErrorNotice(err error) *Notice {
	kind := soil.KindOf(err)
	return &Notice{
		Level:   LevelError,
		Kind:    kind,
		Title:   titleFor(kind),
		Message: err.Error(),
	}
}

func titleFor(kind soil.Kind) string {
	switch kind {
	case soil.InputMissing, soil.InputNotNumeric, soil.InvalidPlasticity:
		return "Input Error"
	case soil.PredictionFailure, soil.KindUnknown:
		return "Prediction Error"
	default:
		return "Error"
	}
}

// ClipboardText serializes the four raw fields, the displayed PI and the
// results text, one per line.
func ClipboardText(s State) string {
	lines := make([]string, 0, soil.FieldCount+2)
	for _, f := range soil.Fields() {
		lines = append(lines, f.Label()+": "+s.Raw[f])
	}
	lines = append(lines, "Plasticity Index (PI): "+s.PI())
	lines = append(lines, "\nResults:\n"+s.Result)
	return strings.Join(lines, "\n")
}

func Copied(s State) State {
	s.Notice = &Notice{Level: LevelInfo, Title: "Copied", Message: "All inputs and results copied to clipboard!"}
	return s
}

func CopyFailed(s State, err error) State {
	s.Notice = ErrorNotice(soil.ClipboardError(err))
	return s
}

func About(s State) State {
	s.Notice = &Notice{
		Level: LevelInfo,
		Title: "About This Application",
		Message: "This application predicts the Compression Index (Cc) and Swelling Index (SI) " +
			"based on soil parameters.",
	}
	return s
}

func HowToUse(s State) State {
	s.Notice = &Notice{
		Level: LevelInfo,
		Title: "How to Use",
		Message: "1. Enter the initial void ratio (eo), natural water content (wn), Liquid Limit (LL), " +
			"and Plastic Limit (PL).\n" +
			"2. The Plasticity Index (PI) will be calculated automatically.\n" +
			"3. Press Enter on the Predict button (or ctrl+p) to get results.\n" +
			"4. Use Copy All (ctrl+y) to save the inputs and results.",
	}
	return s
}
