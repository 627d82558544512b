package entities

// ProcessStage represents a named production process configuration, such as
// the manual baseline or a semi-automated line, with its per-unit cycle time.
type ProcessStage struct {
	Name             string
	CycleTimeSeconds float64
}

// NewProcessStage creates a validated ProcessStage
func NewProcessStage(name string, cycleTimeSeconds float64) (*ProcessStage, error) {
	if name == "" {
		return nil, NewInvalidInput("stage name", "cannot be empty")
	}
	if !isFinite(cycleTimeSeconds) || cycleTimeSeconds <= 0 {
		return nil, NewInvalidInput("cycle time", "must be positive, got %v", cycleTimeSeconds)
	}

	return &ProcessStage{
		Name:             name,
		CycleTimeSeconds: cycleTimeSeconds,
	}, nil
}

// CapacityResult is the projected output of one process stage over a single
// shift. Kept real-valued for charting; truncation happens only where a whole
// unit count is displayed.
type CapacityResult struct {
	StageName          string
	DailyCapacityUnits float64
}
