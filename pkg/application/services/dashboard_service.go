package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/repositories"
	domainservices "github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/services"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/config"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/events"
)

// AlertStream is the event stream evaluation events are appended to.
const AlertStream = "dashboard"

// DashboardService runs one collect-compute-render pass: it validates the
// live floor inputs, evaluates the reorder policy, classifies the production
// KPIs, projects stage capacity, and assembles a snapshot for the
// presentation layer. The service holds no per-request state; concurrent
// callers each get an independent snapshot.
type DashboardService struct {
	policy     *domainservices.InventoryPolicy
	classifier *domainservices.KpiClassifier
	simulator  *domainservices.CapacitySimulator
	trendRepo  repositories.TrendRepository
	eventStore events.EventStore
	logger     *zap.Logger
}

// NewDashboardService creates a dashboard service. trendRepo supplies the
// chart series; eventStore may be nil when no alert history is wanted.
func NewDashboardService(trendRepo repositories.TrendRepository, eventStore events.EventStore, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		policy:     domainservices.NewInventoryPolicy(),
		classifier: domainservices.NewKpiClassifier(),
		simulator:  domainservices.NewCapacitySimulator(),
		trendRepo:  trendRepo,
		eventStore: eventStore,
		logger:     logger,
	}
}

// Render evaluates the facility model against the given live inputs and
// returns a complete snapshot. Any invalid input fails the whole pass; there
// are no partial snapshots.
func (s *DashboardService) Render(ctx context.Context, cfg *config.FacilityConfig, inputs dto.LiveInputs) (*dto.DashboardSnapshot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	snapshot := &dto.DashboardSnapshot{
		GeneratedAt:   time.Now(),
		Inputs:        inputs,
		SafetyStockKg: decimal.NewFromFloat(cfg.Inventory.SafetyStockKg),
	}

	// Inventory policy
	state, err := entities.NewInventoryState(
		inputs.CurrentStockKg,
		decimal.NewFromFloat(cfg.Inventory.ReorderPointKg),
		decimal.NewFromFloat(cfg.Inventory.EconomicOrderQtyKg),
		snapshot.SafetyStockKg,
	)
	if err != nil {
		return nil, err
	}

	decision, err := s.policy.Evaluate(*state)
	if err != nil {
		return nil, err
	}
	snapshot.Inventory = *decision

	if decision.NeedsReorder {
		snapshot.Alerts = append(snapshot.Alerts, fmt.Sprintf(
			"Stock hit reorder point (%v kg). Order %s kg immediately.",
			cfg.Inventory.ReorderPointKg, decision.RecommendedOrderQty))
		s.appendEvent(events.NewEvent(events.ReorderTriggeredEvent, AlertStream, events.ReorderTriggered{
			State:    *state,
			Decision: *decision,
		}))
	}

	// Production KPIs
	snapshot.CycleTime, err = s.classifyMetric("cycle_time", inputs.CycleTimeSeconds, "s",
		cfg.Production.CycleTimeYellowSeconds, cfg.Production.CycleTimeRedSeconds)
	if err != nil {
		return nil, err
	}
	snapshot.DefectRate, err = s.classifyMetric("defect_rate", inputs.DefectRatePct, "%",
		cfg.Production.DefectRateYellowPct, cfg.Production.DefectRateRedPct)
	if err != nil {
		return nil, err
	}
	s.recordBreaches(snapshot)

	snapshot.CycleTimeDeltaSeconds = inputs.CycleTimeSeconds - cfg.Production.BaselineCycleTimeSeconds

	snapshot.HourlyThroughput, err = s.simulator.HourlyThroughput(inputs.CycleTimeSeconds)
	if err != nil {
		return nil, err
	}

	// Capacity simulation across configured stages
	stages := make([]entities.ProcessStage, 0, len(cfg.Capacity.Stages))
	for _, stage := range cfg.Capacity.Stages {
		stages = append(stages, entities.ProcessStage{
			Name:             stage.Name,
			CycleTimeSeconds: stage.CycleTimeSeconds,
		})
	}
	snapshot.Capacity, err = s.simulator.Simulate(cfg.Capacity.ShiftDurationSeconds, stages)
	if err != nil {
		return nil, err
	}

	if cfg.Capacity.AutomationTriggerUnits > 0 {
		snapshot.Recommendation = fmt.Sprintf(
			"Trigger next automation stage when daily demand exceeds %v units.",
			cfg.Capacity.AutomationTriggerUnits)
	}

	// Trend series: stored feed plus the live reading as the latest point
	snapshot.Trend, err = s.buildTrend(inputs.CycleTimeSeconds)
	if err != nil {
		return nil, err
	}

	s.appendEvent(events.NewEvent(events.DashboardRenderedEvent, AlertStream, events.DashboardRendered{
		AlertCount: len(snapshot.Alerts),
	}))

	s.logger.Debug("dashboard pass complete",
		zap.Bool("needs_reorder", decision.NeedsReorder),
		zap.String("cycle_time_status", snapshot.CycleTime.Status.String()),
		zap.String("defect_rate_status", snapshot.DefectRate.Status.String()),
		zap.Int("hourly_throughput", snapshot.HourlyThroughput))

	return snapshot, nil
}

// AlertHistory returns all evaluation events recorded so far
func (s *DashboardService) AlertHistory() ([]events.Event, error) {
	if s.eventStore == nil {
		return []events.Event{}, nil
	}
	return s.eventStore.ReadEvents(AlertStream, 1)
}

// classifyMetric runs the traffic-light classifier and packages the report
func (s *DashboardService) classifyMetric(metric string, value float64, unit string, yellow, red float64) (dto.KpiReport, error) {
	status, err := s.classifier.Classify(value, yellow, red)
	if err != nil {
		return dto.KpiReport{}, fmt.Errorf("failed to classify %s: %w", metric, err)
	}

	return dto.KpiReport{
		Metric: metric,
		Value:  value,
		Unit:   unit,
		Status: status,
		Bounds: entities.KpiThresholds{Yellow: yellow, Red: red},
	}, nil
}

// recordBreaches raises alerts and events for non-optimal KPI reports
func (s *DashboardService) recordBreaches(snapshot *dto.DashboardSnapshot) {
	for _, report := range []dto.KpiReport{snapshot.CycleTime, snapshot.DefectRate} {
		if report.Status == entities.StatusOptimal {
			continue
		}
		snapshot.Alerts = append(snapshot.Alerts, fmt.Sprintf(
			"%s is %s: %v%s", report.Metric, report.Status, report.Value, report.Unit))
		s.appendEvent(events.NewEvent(events.KpiBreachedEvent, AlertStream, events.KpiBreached{
			Metric: report.Metric,
			Value:  report.Value,
			Status: report.Status,
		}))
	}
}

// buildTrend reads the stored series and appends the live reading
func (s *DashboardService) buildTrend(liveCycleTime float64) ([]entities.TrendPoint, error) {
	if s.trendRepo == nil {
		return nil, nil
	}

	stored, err := s.trendRepo.GetTrend()
	if err != nil {
		return nil, fmt.Errorf("failed to read trend series: %w", err)
	}

	trend := make([]entities.TrendPoint, 0, len(stored)+1)
	for _, point := range stored {
		trend = append(trend, *point)
	}

	live, err := entities.NewTrendPoint("Now", liveCycleTime)
	if err != nil {
		return nil, err
	}
	trend = append(trend, *live)

	return trend, nil
}

// appendEvent writes to the event store when one is configured
func (s *DashboardService) appendEvent(event events.Event) {
	if s.eventStore == nil {
		return
	}
	if err := s.eventStore.AppendEvent(AlertStream, event); err != nil {
		s.logger.Warn("failed to append evaluation event",
			zap.String("type", event.Type()), zap.Error(err))
	}
}
