package repositories

import "github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"

// TrendRepository provides access to the shift cycle-time series. The
// in-memory implementation serves illustrative data; a real time-series feed
// would sit behind the same interface.
type TrendRepository interface {
	GetTrend() ([]*entities.TrendPoint, error)
	LoadTrend(points []*entities.TrendPoint) error
}
