package memory

import (
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/repositories"
)

// TrendRepository provides in-memory trend series storage
type TrendRepository struct {
	points []entities.TrendPoint
}

// NewTrendRepository creates a new in-memory trend repository
func NewTrendRepository() *TrendRepository {
	return &TrendRepository{
		points: []entities.TrendPoint{},
	}
}

// Verify interface compliance
var _ repositories.TrendRepository = (*TrendRepository)(nil)

// NewIllustrativeTrendRepository creates a trend repository pre-loaded with
// the canned morning-to-afternoon series used when no real feed is wired. The
// afternoon climb is the fatigue pattern the dashboard is meant to surface.
func NewIllustrativeTrendRepository() *TrendRepository {
	repo := NewTrendRepository()
	repo.points = []entities.TrendPoint{
		{Hour: "9AM", CycleTimeSeconds: 30},
		{Hour: "10AM", CycleTimeSeconds: 29},
		{Hour: "11AM", CycleTimeSeconds: 29},
		{Hour: "12PM", CycleTimeSeconds: 31},
		{Hour: "2PM", CycleTimeSeconds: 35},
		{Hour: "3PM", CycleTimeSeconds: 38},
	}
	return repo
}

// LoadTrend replaces the stored series with the given points
func (r *TrendRepository) LoadTrend(points []*entities.TrendPoint) error {
	r.points = make([]entities.TrendPoint, 0, len(points))
	for _, point := range points {
		r.points = append(r.points, *point)
	}
	return nil
}

// AddPoint appends a single observation to the series
func (r *TrendRepository) AddPoint(point entities.TrendPoint) {
	r.points = append(r.points, point)
}

// GetTrend returns the stored series in insertion order
func (r *TrendRepository) GetTrend() ([]*entities.TrendPoint, error) {
	trend := make([]*entities.TrendPoint, 0, len(r.points))
	for i := range r.points {
		trend = append(trend, &r.points[i])
	}
	return trend, nil
}
