// Package model loads deployed model artifacts. Only the interp.Predictor
// boundary leaks into the scoring pipeline; the artifact layout here is the
// reference coefficient-file form exported alongside the deployment config.
package model

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Artifact is the serialized coefficient-file form of a trained binary
// classifier: a logistic score over the numeric features plus per-level
// weights for the text features, with the two class labels split by
// threshold on the event probability.
type Artifact struct {
	Intercept     float64                       `yaml:"intercept"`
	Weights       map[string]float64            `yaml:"weights"`
	Levels        map[string]map[string]float64 `yaml:"levels"`
	EventLabel    string                        `yaml:"event_label"`
	NonEventLabel string                        `yaml:"non_event_label"`
	Threshold     float64                       `yaml:"threshold"`
}

// Load reads a coefficient-file artifact from path.
func Load(path string) (*LogisticPredictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	var a Artifact
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse artifact: %w", err)
	}
	if a.EventLabel == "" || a.NonEventLabel == "" {
		return nil, fmt.Errorf("artifact %s: missing class labels", path)
	}
	return New(a), nil
}

// LogisticPredictor scores records with frozen logistic coefficients.
type LogisticPredictor struct {
	artifact Artifact
}

func New(a Artifact) *LogisticPredictor {
	if a.Threshold == 0 {
		a.Threshold = 0.5
	}
	return &LogisticPredictor{artifact: a}
}

// Predict returns the classification label and event probability for one
// fully populated record. The sigmoid keeps the probability inside [0,1]
// for any coefficient values.
func (p *LogisticPredictor) Predict(num map[string]float64, txt map[string]string) (string, float64, error) {
	z := p.artifact.Intercept
	for name, w := range p.artifact.Weights {
		z += w * num[name]
	}
	for name, levels := range p.artifact.Levels {
		z += levels[txt[name]]
	}
	prob := 1.0 / (1.0 + math.Exp(-z))
	if prob >= p.artifact.Threshold {
		return p.artifact.EventLabel, prob, nil
	}
	return p.artifact.NonEventLabel, prob, nil
}
