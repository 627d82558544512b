package entities

import (
	"math"
)

// KpiStatus represents the traffic-light classification of a production metric.
// Values are ordered by severity so classifications compare with <.
type KpiStatus int

const (
	StatusOptimal KpiStatus = iota
	StatusWarning
	StatusCritical
)

// String method for KpiStatus enum
func (s KpiStatus) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusWarning:
		return "WARNING"
	case StatusCritical:
		return "CRITICAL"
	default:
		return "Unknown"
	}
}

// KpiThresholds holds the yellow and red breakpoints for a higher-is-worse
// metric. A metric where lower is worse must be sign-inverted by the caller
// before classification.
type KpiThresholds struct {
	Yellow float64
	Red    float64
}

// NewKpiThresholds creates validated KpiThresholds
func NewKpiThresholds(yellow, red float64) (*KpiThresholds, error) {
	if !isFinite(yellow) {
		return nil, NewInvalidInput("yellow threshold", "must be a finite number, got %v", yellow)
	}
	if !isFinite(red) {
		return nil, NewInvalidInput("red threshold", "must be a finite number, got %v", red)
	}
	if red < yellow {
		return nil, NewInvalidInput("red threshold", "must be >= yellow threshold, got red=%v yellow=%v", red, yellow)
	}

	return &KpiThresholds{Yellow: yellow, Red: red}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
