package soil

import (
	"fmt"

	"soilindex/ml"
)

const negativePlasticityMsg = "Plasticity Index (PI) cannot be negative."

type DerivedState int

const (
	// NotApplicable means LL or PL has not been entered yet.
	NotApplicable DerivedState = iota
	Valid
	Invalid
)

// Derived is the outcome of computing the Plasticity Index from raw text.
type Derived struct {
	State DerivedState
	Value float64
	Err   error
}

// Display renders the derived value the way the form shows it.
func (d Derived) Display() string {
	switch d.State {
	case Valid:
		return fmt.Sprintf("%.2f", d.Value)
	case Invalid:
		return "Invalid"
	default:
		return "N/A"
	}
}

func ComputePlasticityIndex(liquidLimit, plasticLimit float64) (float64, error) {
	pi := liquidLimit - plasticLimit
	if pi < 0 {
		return 0, newError(InvalidPlasticity, negativePlasticityMsg, nil)
	}
	return pi, nil
}

// DerivedFeature computes PI = LL - PL from the raw liquid and plastic limit
// text. Blank input is not an error; it yields NotApplicable.
func DerivedFeature(liquidLimit, plasticLimit string) Derived {
	if isBlank(liquidLimit) || isBlank(plasticLimit) {
		return Derived{State: NotApplicable}
	}
	ll, okLL := parseNumber(liquidLimit)
	pl, okPL := parseNumber(plasticLimit)
	if !okLL || !okPL {
		field := LiquidLimit
		if okLL {
			field = PlasticLimit
		}
		return Derived{State: Invalid, Err: fieldError(InputNotNumeric, field, field.Label()+" must be a number.")}
	}
	pi, err := ComputePlasticityIndex(ll, pl)
	if err != nil {
		return Derived{State: Invalid, Err: err}
	}
	return Derived{State: Valid, Value: pi}
}

// FeatureVector is the model input: eo, wn, LL, PL, PI. The order is fixed by
// ml.FeatureNames.
type FeatureVector [ml.FeatureCount]float64

func (v FeatureVector) Slice() []float64 {
	out := make([]float64, len(v))
	copy(out, v[:])
	return out
}

func NewFeatureVector(m Measurements, pi float64) FeatureVector {
	return FeatureVector{
		m.InitialVoidRatio,
		m.NaturalWaterContent,
		m.LiquidLimit,
		m.PlasticLimit,
		pi,
	}
}

func BuildFeatureVector(raw RawInput) (FeatureVector, error) {
	m, err := ParseMeasurements(raw)
	if err != nil {
		return FeatureVector{}, err
	}
	derived := DerivedFeature(raw[LiquidLimit], raw[PlasticLimit])
	if derived.State != Valid {
		if derived.Err != nil {
			return FeatureVector{}, derived.Err
		}
		return FeatureVector{}, newError(InputMissing, "Plasticity Index (PI) is not available.", nil)
	}
	return NewFeatureVector(m, derived.Value), nil
}
