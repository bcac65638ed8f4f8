package soil

import (
	"context"
	"fmt"
	"math"

	"soilindex/ml"
)

// Prediction is the pair of model outputs shown for one request.
type Prediction struct {
	CompressionIndex float64
	SwellingIndex    float64
}

func (p Prediction) String() string {
	return fmt.Sprintf("Predicted Compression Index (Cc): %.4f\nPredicted Swelling Index (SI): %.4f",
		p.CompressionIndex, p.SwellingIndex)
}

// Predict runs both models on the same vector. Either model failing fails the
// whole request; no partial result is returned.
func Predict(vec FeatureVector, cc, si ml.Regressor) (Prediction, error) {
	if cc == nil || si == nil {
		return Prediction{}, newError(ModelUnavailable, "Error loading models", fmt.Errorf("model handle is nil"))
	}
	ccValue, err := invoke("Cc", cc, vec)
	if err != nil {
		return Prediction{}, err
	}
	siValue, err := invoke("SI", si, vec)
	if err != nil {
		return Prediction{}, err
	}
	return Prediction{CompressionIndex: ccValue, SwellingIndex: siValue}, nil
}

func invoke(target string, model ml.Regressor, vec FeatureVector) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			value = 0
			err = newError(PredictionFailure, "Error during prediction", fmt.Errorf("%s model panicked: %v", target, r))
		}
	}()

	value, err = model.Predict(vec.Slice())
	if err != nil {
		return 0, newError(PredictionFailure, "Error during prediction", fmt.Errorf("%s model: %w", target, err))
	}
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, newError(PredictionFailure, "Error during prediction", fmt.Errorf("%s model returned %v", target, value))
	}
	return value, nil
}

// Runner is the validate-then-infer pipeline behind one submit.
type Runner struct {
	Models ml.ModelProvider
}

func NewRunner(models ml.ModelProvider) *Runner {
	return &Runner{Models: models}
}

// Run validates raw input, builds the feature vector and only then acquires
// the models, so input errors never touch the artifacts.
func (r *Runner) Run(ctx context.Context, raw RawInput) (FeatureVector, Prediction, error) {
	vec, err := BuildFeatureVector(raw)
	if err != nil {
		return FeatureVector{}, Prediction{}, err
	}
	if r.Models == nil {
		return vec, Prediction{}, newError(ModelUnavailable, "Error loading models", fmt.Errorf("no model provider configured"))
	}
	cc, si, err := r.Models.Models(ctx)
	if err != nil {
		return vec, Prediction{}, newError(ModelUnavailable, "Error loading models", err)
	}
	pred, err := Predict(vec, cc, si)
	if err != nil {
		return vec, Prediction{}, err
	}
	return vec, pred, nil
}
