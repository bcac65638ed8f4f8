package form

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soilindex/ml"
	"soilindex/soil"
)

type fixedProvider struct {
	cc, si float64
	err    error
	calls  int
}

func (p *fixedProvider) Models(context.Context) (ml.Regressor, ml.Regressor, error) {
	p.calls++
	if p.err != nil {
		return nil, nil, p.err
	}
	cc := ml.RegressorFunc(func([]float64) (float64, error) { return p.cc, nil })
	si := ml.RegressorFunc(func([]float64) (float64, error) { return p.si, nil })
	return cc, si, nil
}

type failingModels struct{}

func (failingModels) Models(context.Context) (ml.Regressor, ml.Regressor, error) {
	m := ml.RegressorFunc(func([]float64) (float64, error) { return 0, errors.New("bad tree") })
	return m, m, nil
}

func fill(s State, eo, wn, ll, pl string) State {
	s = SetField(s, soil.InitialVoidRatio, eo)
	s = SetField(s, soil.NaturalWaterContent, wn)
	s = SetField(s, soil.LiquidLimit, ll)
	return SetField(s, soil.PlasticLimit, pl)
}

func TestSetFieldUpdatesPI(t *testing.T) {
	s := New()
	assert.Equal(t, "N/A", s.PI())

	s = SetField(s, soil.LiquidLimit, "45")
	assert.Equal(t, "N/A", s.PI())

	s = SetField(s, soil.PlasticLimit, "20")
	assert.Equal(t, "25.00", s.PI())
	assert.Empty(t, s.Warning())

	s = SetField(s, soil.PlasticLimit, "2x")
	assert.Equal(t, "Invalid", s.PI())
	assert.Empty(t, s.Warning())

	s = SetField(s, soil.PlasticLimit, "50")
	assert.Equal(t, "Invalid", s.PI())
	assert.Equal(t, "Plasticity Index (PI) cannot be negative.", s.Warning())
	assert.False(t, s.Blocked(), "live typing never blocks")
}

func TestSetFieldIsPure(t *testing.T) {
	before := New()
	after := SetField(before, soil.LiquidLimit, "45")
	assert.Empty(t, before.Raw[soil.LiquidLimit])
	assert.Equal(t, "45", after.Raw[soil.LiquidLimit])
}

// Scenario 1: valid input produces both formatted predictions.
func TestSubmitSuccess(t *testing.T) {
	provider := &fixedProvider{cc: 0.3120, si: 0.1450}
	s := fill(New(), "0.8", "35", "45", "20")

	s = Submit(context.Background(), s, soil.NewRunner(provider))
	require.Nil(t, s.Notice)
	assert.Equal(t, "25.00", s.PI())
	assert.Equal(t, "Predicted Compression Index (Cc): 0.3120\nPredicted Swelling Index (SI): 0.1450", s.Result)
}

// Scenario 2: negative plasticity fails before any model is touched.
func TestSubmitNegativePlasticity(t *testing.T) {
	provider := &fixedProvider{cc: 0.3, si: 0.1}
	s := New()
	s.Result = "previous result"
	s = fill(s, "0.8", "35", "20", "30")

	s = Submit(context.Background(), s, soil.NewRunner(provider))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.InvalidPlasticity, s.Notice.Kind)
	assert.Equal(t, "Input Error", s.Notice.Title)
	assert.Equal(t, "previous result", s.Result)
	assert.Equal(t, "Invalid", s.PI())
	assert.Zero(t, provider.calls)
}

// Scenario 3: a blank plastic limit names the field.
func TestSubmitMissingPlasticLimit(t *testing.T) {
	s := fill(New(), "0.8", "35", "45", "")

	s = Submit(context.Background(), s, soil.NewRunner(&fixedProvider{}))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.InputMissing, s.Notice.Kind)
	assert.Contains(t, s.Notice.Message, "Plastic Limit (PL)")
	assert.Equal(t, "45", s.Raw[soil.LiquidLimit], "input preserved for correction")
}

// Scenario 4: model load failure is reported, not fatal.
func TestSubmitModelUnavailable(t *testing.T) {
	provider := &fixedProvider{err: errors.New("open Cc_random_forest.json: no such file or directory")}
	s := fill(New(), "0.8", "35", "45", "20")

	s = Submit(context.Background(), s, soil.NewRunner(provider))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.ModelUnavailable, s.Notice.Kind)
	assert.Equal(t, "Error", s.Notice.Title)
	assert.Contains(t, s.Notice.Message, "Error loading models")
	assert.Equal(t, s.Notice.Message, s.Result)
	assert.Equal(t, "20", s.Raw[soil.PlasticLimit])
}

func TestSubmitPredictionFailureReplacesResult(t *testing.T) {
	s := fill(New(), "0.8", "35", "45", "20")
	s.Result = "previous result"

	s = Submit(context.Background(), s, soil.NewRunner(failingModels{}))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.PredictionFailure, s.Notice.Kind)
	assert.Equal(t, "Prediction Error", s.Notice.Title)
	assert.Contains(t, s.Result, "Error during prediction")
}

func TestSubmitWithoutRunner(t *testing.T) {
	s := Submit(context.Background(), fill(New(), "0.8", "35", "45", "20"), nil)
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.ModelUnavailable, s.Notice.Kind)
}

func TestSubmitNotNumeric(t *testing.T) {
	s := fill(New(), "abc", "35", "45", "20")
	s = Submit(context.Background(), s, soil.NewRunner(&fixedProvider{}))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.InputNotNumeric, s.Notice.Kind)
	assert.Equal(t, "Input Error", s.Notice.Title)

	s = Dismiss(s)
	assert.Nil(t, s.Notice)
}

func TestClipboardText(t *testing.T) {
	s := fill(New(), "0.8", "35", "45", "20")
	s.Result = "Predicted Compression Index (Cc): 0.3120\nPredicted Swelling Index (SI): 0.1450"

	expected := "Initial Void Ratio (eo): 0.8\n" +
		"Natural Water Content (wn): 35\n" +
		"Liquid Limit (LL): 45\n" +
		"Plastic Limit (PL): 20\n" +
		"Plasticity Index (PI): 25.00\n" +
		"\nResults:\n" +
		"Predicted Compression Index (Cc): 0.3120\nPredicted Swelling Index (SI): 0.1450"
	assert.Equal(t, expected, ClipboardText(s))
}

func TestClipboardNotices(t *testing.T) {
	s := Copied(New())
	require.NotNil(t, s.Notice)
	assert.Equal(t, "Copied", s.Notice.Title)
	assert.Equal(t, LevelInfo, s.Notice.Level)

	s = CopyFailed(New(), errors.New("no terminal"))
	require.NotNil(t, s.Notice)
	assert.Equal(t, soil.ClipboardFailure, s.Notice.Kind)
	assert.Equal(t, "Error", s.Notice.Title)
	assert.Equal(t, "Error copying data: no terminal", s.Notice.Message)
}

func TestStaticNotices(t *testing.T) {
	assert.Equal(t, "About This Application", About(New()).Notice.Title)
	assert.Contains(t, HowToUse(New()).Notice.Message, "Plasticity Index (PI)")
}
