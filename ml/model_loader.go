package ml

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const (
	ModelTypeDecisionTree = "decision_tree"
	ModelTypeRandomForest = "random_forest"
)

// Artifact is the on-disk form of a trained regressor.
type Artifact struct {
	ModelType    string       `json:"model_type"`
	Target       string       `json:"target"`
	Description  string       `json:"description,omitempty"`
	FeatureNames []string     `json:"feature_names"`
	Trees        [][]TreeNode `json:"trees"`
}

func LoadModel(modelType, path string) (Regressor, error) {
	switch modelType {
	case ModelTypeDecisionTree, ModelTypeRandomForest:
	default:
		return nil, fmt.Errorf("unsupported model type %q", modelType)
	}

	artifact, err := ReadArtifact(path)
	if err != nil {
		return nil, err
	}
	if artifact.ModelType != modelType {
		return nil, fmt.Errorf("%s: model type %q does not match configured %q", path, artifact.ModelType, modelType)
	}
	model, err := artifact.Build()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model, nil
}

func ReadArtifact(path string) (*Artifact, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var artifact Artifact
	if err := json.Unmarshal(payload, &artifact); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &artifact, nil
}

func (a *Artifact) Build() (Regressor, error) {
	if !sameFeatureNames(a.FeatureNames) {
		return nil, fmt.Errorf("feature names %v do not match %v", a.FeatureNames, FeatureNames())
	}
	if len(a.Trees) == 0 {
		return nil, errors.New("artifact has no trees")
	}

	trees := make([]*DecisionTree, 0, len(a.Trees))
	for i, nodes := range a.Trees {
		tree, err := NewDecisionTree(nodes)
		if err != nil {
			return nil, fmt.Errorf("tree %d: %w", i, err)
		}
		trees = append(trees, tree)
	}

	switch a.ModelType {
	case ModelTypeDecisionTree:
		if len(trees) != 1 {
			return nil, fmt.Errorf("decision tree artifact has %d trees", len(trees))
		}
		return trees[0], nil
	case ModelTypeRandomForest:
		return NewRandomForest(trees)
	default:
		return nil, fmt.Errorf("unsupported model type %q", a.ModelType)
	}
}

func (a *Artifact) Save(path string) error {
	payload, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o600)
}
