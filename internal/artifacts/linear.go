package artifacts

import (
	"fmt"
	"math"
)

// Scorer is the probability-scoring contract every trained model fulfils.
// The prediction pipeline only depends on this interface, so tests can run
// against hand-built stub models instead of real exported artifacts.
type Scorer interface {
	// Classes returns the ordered class labels the model was trained on.
	Classes() []string
	// PredictProba scores a feature vector and returns one probability per
	// class, in Classes() order.
	PredictProba(features []float64) ([]float64, error)
}

// LinearClassifier is a logistic regression model exported to JSON at
// training time. Multinomial models carry one coefficient row per class and
// are scored via softmax; binary models carry a single row and are scored
// via sigmoid, with the probability assigned to the second class.
type LinearClassifier struct {
	ClassLabels  []string    `json:"classes"`
	Coefficients [][]float64 `json:"coefficients"`
	Intercepts   []float64   `json:"intercepts"`
}

func (c *LinearClassifier) Classes() []string {
	return c.ClassLabels
}

func (c *LinearClassifier) validate() error {
	if len(c.ClassLabels) < 2 {
		return fmt.Errorf("classifier needs at least 2 classes, got %d", len(c.ClassLabels))
	}
	if len(c.Coefficients) == 0 {
		return fmt.Errorf("classifier has no coefficients")
	}
	if len(c.Coefficients) != len(c.Intercepts) {
		return fmt.Errorf("coefficient rows (%d) and intercepts (%d) do not match", len(c.Coefficients), len(c.Intercepts))
	}
	if len(c.Coefficients) == 1 {
		if len(c.ClassLabels) != 2 {
			return fmt.Errorf("single-row classifier must be binary, got %d classes", len(c.ClassLabels))
		}
	} else if len(c.Coefficients) != len(c.ClassLabels) {
		return fmt.Errorf("coefficient rows (%d) and classes (%d) do not match", len(c.Coefficients), len(c.ClassLabels))
	}
	width := len(c.Coefficients[0])
	for i, row := range c.Coefficients {
		if len(row) != width {
			return fmt.Errorf("coefficient row %d has width %d, expected %d", i, len(row), width)
		}
	}
	return nil
}

// FeatureWidth returns the feature vector width the model was trained on.
func (c *LinearClassifier) FeatureWidth() int {
	if len(c.Coefficients) == 0 {
		return 0
	}
	return len(c.Coefficients[0])
}

func (c *LinearClassifier) PredictProba(features []float64) ([]float64, error) {
	if len(features) != c.FeatureWidth() {
		return nil, fmt.Errorf("feature vector has width %d, model expects %d", len(features), c.FeatureWidth())
	}

	// Binary model: one decision score, sigmoid probability for the second class.
	if len(c.Coefficients) == 1 {
		p := sigmoid(dot(c.Coefficients[0], features) + c.Intercepts[0])
		return []float64{1 - p, p}, nil
	}

	// Multinomial model: softmax over per-class decision scores.
	scores := make([]float64, len(c.Coefficients))
	for i, row := range c.Coefficients {
		scores[i] = dot(row, features) + c.Intercepts[i]
	}
	return softmax(scores), nil
}

func dot(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

func softmax(scores []float64) []float64 {
	// Shift by the max score for numerical stability.
	max := scores[0]
	for _, s := range scores[1:] {
		if s > max {
			max = s
		}
	}

	probs := make([]float64, len(scores))
	var total float64
	for i, s := range scores {
		probs[i] = math.Exp(s - max)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}
	return probs
}
