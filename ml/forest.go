package ml

import (
	"errors"

	"gonum.org/v1/gonum/stat"
)

// RandomForest averages the outputs of its trees.
type RandomForest struct {
	trees []*DecisionTree
}

func NewRandomForest(trees []*DecisionTree) (*RandomForest, error) {
	if len(trees) == 0 {
		return nil, errors.New("forest has no trees")
	}
	return &RandomForest{trees: trees}, nil
}

func (rf *RandomForest) Predict(features []float64) (float64, error) {
	if len(rf.trees) == 0 {
		return 0, errors.New("model not loaded")
	}
	outputs := make([]float64, len(rf.trees))
	for i, tree := range rf.trees {
		value, err := tree.Predict(features)
		if err != nil {
			return 0, err
		}
		outputs[i] = value
	}
	return stat.Mean(outputs, nil), nil
}

func (rf *RandomForest) Size() int {
	return len(rf.trees)
}
