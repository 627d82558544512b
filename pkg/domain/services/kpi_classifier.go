package services

import (
	"math"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

// KpiClassifier maps a metric reading to a traffic-light status given yellow
// and red breakpoints.
type KpiClassifier struct{}

// NewKpiClassifier creates a new KPI classifier
func NewKpiClassifier() *KpiClassifier {
	return &KpiClassifier{}
}

// Classify evaluates a metric value red-first with inclusive comparisons:
// value >= red is CRITICAL, value >= yellow is WARNING, anything else is
// OPTIMAL. A value exactly on a threshold takes that threshold's severity.
// Thresholds must satisfy red >= yellow (higher-is-worse semantics); the
// classifier performs no directionality inference.
func (c *KpiClassifier) Classify(value, yellow, red float64) (entities.KpiStatus, error) {
	if math.IsNaN(value) {
		return entities.StatusOptimal, entities.NewInvalidInput("metric value", "must be a number, got NaN")
	}

	thresholds, err := entities.NewKpiThresholds(yellow, red)
	if err != nil {
		return entities.StatusOptimal, err
	}

	switch {
	case value >= thresholds.Red:
		return entities.StatusCritical, nil
	case value >= thresholds.Yellow:
		return entities.StatusWarning, nil
	default:
		return entities.StatusOptimal, nil
	}
}
