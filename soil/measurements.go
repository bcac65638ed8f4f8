package soil

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

type Field int

const (
	InitialVoidRatio Field = iota
	NaturalWaterContent
	LiquidLimit
	PlasticLimit
)

// FieldCount is the number of raw measurements the user enters.
const FieldCount = 4

var fieldLabels = [FieldCount]string{
	"Initial Void Ratio (eo)",
	"Natural Water Content (wn)",
	"Liquid Limit (LL)",
	"Plastic Limit (PL)",
}

var fieldDescriptions = [FieldCount]string{
	"Initial void ratio of the soil",
	"Natural water content of the soil (%)",
	"Liquid Limit of the soil (%)",
	"Plastic Limit of the soil (%)",
}

func Fields() []Field {
	return []Field{InitialVoidRatio, NaturalWaterContent, LiquidLimit, PlasticLimit}
}

func (f Field) Label() string {
	if f < 0 || int(f) >= FieldCount {
		return "Unknown field"
	}
	return fieldLabels[f]
}

func (f Field) Description() string {
	if f < 0 || int(f) >= FieldCount {
		return ""
	}
	return fieldDescriptions[f]
}

func (f Field) String() string {
	return f.Label()
}

// RawInput holds the text of each field as typed.
type RawInput [FieldCount]string

func (r RawInput) Get(f Field) string {
	return r[f]
}

func (r RawInput) With(f Field, text string) RawInput {
	r[f] = text
	return r
}

type Measurements struct {
	InitialVoidRatio    float64
	NaturalWaterContent float64
	LiquidLimit         float64
	PlasticLimit        float64
}

func normalize(text string) string {
	return strings.TrimSpace(width.Narrow.String(text))
}

func isBlank(text string) bool {
	return normalize(text) == ""
}

// parseNumber accepts any finite real number, after narrowing full-width
// digits and signs.
func parseNumber(text string) (float64, bool) {
	value, err := strconv.ParseFloat(normalize(text), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func parseField(raw RawInput, f Field) (float64, error) {
	text := raw[f]
	if isBlank(text) {
		return 0, fieldError(InputMissing, f, "Please fill in the "+f.Label()+".")
	}
	value, ok := parseNumber(text)
	if !ok {
		return 0, fieldError(InputNotNumeric, f, f.Label()+" must be a number, got \""+strings.TrimSpace(text)+"\".")
	}
	return value, nil
}

// ParseMeasurements validates every field in display order; the first
// failing field is reported.
func ParseMeasurements(raw RawInput) (Measurements, error) {
	var values [FieldCount]float64
	for _, f := range Fields() {
		value, err := parseField(raw, f)
		if err != nil {
			return Measurements{}, err
		}
		values[f] = value
	}
	return Measurements{
		InitialVoidRatio:    values[InitialVoidRatio],
		NaturalWaterContent: values[NaturalWaterContent],
		LiquidLimit:         values[LiquidLimit],
		PlasticLimit:        values[PlasticLimit],
	}, nil
}
