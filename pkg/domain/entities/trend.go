package entities

// TrendPoint is a single observation in the shift cycle-time series. The hour
// label is an opaque display string ("9AM", "2PM") rather than a timestamp
// because the feed is bucketed by the presentation layer.
type TrendPoint struct {
	Hour             string
	CycleTimeSeconds float64
}

// NewTrendPoint creates a validated TrendPoint
func NewTrendPoint(hour string, cycleTimeSeconds float64) (*TrendPoint, error) {
	if hour == "" {
		return nil, NewInvalidInput("hour", "cannot be empty")
	}
	if !isFinite(cycleTimeSeconds) || cycleTimeSeconds <= 0 {
		return nil, NewInvalidInput("cycle time", "must be positive, got %v", cycleTimeSeconds)
	}

	return &TrendPoint{
		Hour:             hour,
		CycleTimeSeconds: cycleTimeSeconds,
	}, nil
}
