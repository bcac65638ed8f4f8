package ml

import "context"

// Regressor maps one feature vector to a scalar prediction.
type Regressor interface {
	Predict(features []float64) (float64, error)
}

// ModelProvider hands out the Compression Index and Swelling Index models.
type ModelProvider interface {
	Models(ctx context.Context) (cc Regressor, si Regressor, err error)
}

type RegressorFunc func(features []float64) (float64, error)

func (f RegressorFunc) Predict(features []float64) (float64, error) {
	return f(features)
}
