package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FacilityConfig holds the per-facility operating model: the reorder policy,
// the KPI thresholds, and the capacity stages. These are externally supplied
// configuration, not hardcoded business logic, so a different facility can
// run the same dashboard with its own numbers.
type FacilityConfig struct {
	Inventory  InventoryConfig  `mapstructure:"inventory"`
	Production ProductionConfig `mapstructure:"production"`
	Capacity   CapacityConfig   `mapstructure:"capacity"`
}

// InventoryConfig holds the reorder policy constants, in kilograms
type InventoryConfig struct {
	// ReorderPointKg is the stock level at or below which a reorder triggers
	ReorderPointKg float64 `mapstructure:"reorder_point_kg"`
	// EconomicOrderQtyKg is the fixed quantity recommended per reorder
	EconomicOrderQtyKg float64 `mapstructure:"economic_order_qty_kg"`
	// SafetyStockKg is the buffer held against demand and lead-time variability
	SafetyStockKg float64 `mapstructure:"safety_stock_kg"`
}

// ProductionConfig holds KPI thresholds and the baseline cycle time
type ProductionConfig struct {
	// CycleTimeYellowSeconds and CycleTimeRedSeconds are the traffic-light
	// breakpoints for the cycle time metric (higher is worse)
	CycleTimeYellowSeconds float64 `mapstructure:"cycle_time_yellow_seconds"`
	CycleTimeRedSeconds    float64 `mapstructure:"cycle_time_red_seconds"`
	// DefectRateYellowPct and DefectRateRedPct are the breakpoints for the
	// defect rate metric
	DefectRateYellowPct float64 `mapstructure:"defect_rate_yellow_pct"`
	DefectRateRedPct    float64 `mapstructure:"defect_rate_red_pct"`
	// BaselineCycleTimeSeconds anchors the cycle-time delta display
	BaselineCycleTimeSeconds float64 `mapstructure:"baseline_cycle_time_seconds"`
}

// CapacityConfig holds the shift model and the simulated process stages
type CapacityConfig struct {
	// ShiftDurationSeconds is the productive time per shift (default 7 hours)
	ShiftDurationSeconds float64 `mapstructure:"shift_duration_seconds"`
	// AutomationTriggerUnits is the daily demand above which the next
	// automation investment is recommended (0 disables the recommendation)
	AutomationTriggerUnits float64 `mapstructure:"automation_trigger_units"`
	// Stages are the process configurations to simulate, in chart order
	Stages []StageConfig `mapstructure:"stages"`
}

// StageConfig is one simulated process stage
type StageConfig struct {
	Name             string  `mapstructure:"name"`
	CycleTimeSeconds float64 `mapstructure:"cycle_time_seconds"`
}

// Default returns the Vikhroli facility operating model
func Default() *FacilityConfig {
	return &FacilityConfig{
		Inventory: InventoryConfig{
			ReorderPointKg:     37,
			EconomicOrderQtyKg: 215,
			SafetyStockKg:      12.5,
		},
		Production: ProductionConfig{
			CycleTimeYellowSeconds:   35,
			CycleTimeRedSeconds:      40,
			DefectRateYellowPct:      2.0,
			DefectRateRedPct:         3.0,
			BaselineCycleTimeSeconds: 35,
		},
		Capacity: CapacityConfig{
			ShiftDurationSeconds:   7 * 3600,
			AutomationTriggerUnits: 600,
			Stages: []StageConfig{
				{Name: "Manual (Baseline)", CycleTimeSeconds: 35},
				{Name: "U-Layout (Optimized)", CycleTimeSeconds: 29},
				{Name: "Semi-Automation", CycleTimeSeconds: 12},
			},
		},
	}
}

// SetDefaults registers all default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("inventory.reorder_point_kg", defaults.Inventory.ReorderPointKg)
	viper.SetDefault("inventory.economic_order_qty_kg", defaults.Inventory.EconomicOrderQtyKg)
	viper.SetDefault("inventory.safety_stock_kg", defaults.Inventory.SafetyStockKg)

	viper.SetDefault("production.cycle_time_yellow_seconds", defaults.Production.CycleTimeYellowSeconds)
	viper.SetDefault("production.cycle_time_red_seconds", defaults.Production.CycleTimeRedSeconds)
	viper.SetDefault("production.defect_rate_yellow_pct", defaults.Production.DefectRateYellowPct)
	viper.SetDefault("production.defect_rate_red_pct", defaults.Production.DefectRateRedPct)
	viper.SetDefault("production.baseline_cycle_time_seconds", defaults.Production.BaselineCycleTimeSeconds)

	viper.SetDefault("capacity.shift_duration_seconds", defaults.Capacity.ShiftDurationSeconds)
	viper.SetDefault("capacity.automation_trigger_units", defaults.Capacity.AutomationTriggerUnits)
	viper.SetDefault("capacity.stages", defaults.Capacity.Stages)
}

// Load reads the configuration from viper into a FacilityConfig and validates it
func Load() (*FacilityConfig, error) {
	var cfg FacilityConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal facility config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadFile reads a specific config file, applying defaults for missing keys
func LoadFile(path string) (*FacilityConfig, error) {
	SetDefaults()
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}
	return Load()
}

// Validate checks the configuration against the domain invariants
func (c *FacilityConfig) Validate() error {
	var problems []string

	if c.Inventory.ReorderPointKg < 0 {
		problems = append(problems, "inventory.reorder_point_kg cannot be negative")
	}
	if c.Inventory.EconomicOrderQtyKg <= 0 {
		problems = append(problems, "inventory.economic_order_qty_kg must be positive")
	}
	if c.Inventory.SafetyStockKg < 0 {
		problems = append(problems, "inventory.safety_stock_kg cannot be negative")
	}
	if c.Production.CycleTimeRedSeconds < c.Production.CycleTimeYellowSeconds {
		problems = append(problems, "production.cycle_time_red_seconds must be >= cycle_time_yellow_seconds")
	}
	if c.Production.DefectRateRedPct < c.Production.DefectRateYellowPct {
		problems = append(problems, "production.defect_rate_red_pct must be >= defect_rate_yellow_pct")
	}
	if c.Production.BaselineCycleTimeSeconds <= 0 {
		problems = append(problems, "production.baseline_cycle_time_seconds must be positive")
	}
	if c.Capacity.ShiftDurationSeconds <= 0 {
		problems = append(problems, "capacity.shift_duration_seconds must be positive")
	}
	if len(c.Capacity.Stages) == 0 {
		problems = append(problems, "capacity.stages must have at least one stage")
	}
	for i, stage := range c.Capacity.Stages {
		if stage.Name == "" {
			problems = append(problems, fmt.Sprintf("capacity.stages[%d].name cannot be empty", i))
		}
		if stage.CycleTimeSeconds <= 0 {
			problems = append(problems, fmt.Sprintf("capacity.stages[%d].cycle_time_seconds must be positive", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid facility config: %s", strings.Join(problems, "; "))
	}
	return nil
}
