package output

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// statusColors maps each classification to its chart color, explicit and
// keyed by status value like the terminal styles.
var statusColors = map[entities.KpiStatus]string{
	entities.StatusOptimal:  "#2e7d32",
	entities.StatusWarning:  "#f9a825",
	entities.StatusCritical: "#c62828",
}

// CapacityBar is one bar in the capacity chart
type CapacityBar struct {
	StageName string
	Units     float64
	WidthPct  float64
}

// TrendPointView is one plotted point of the cycle-time trend
type TrendPointView struct {
	Hour  string
	Value float64
	X     float64
	Y     float64
}

// KpiView is one metric card in the HTML dashboard
type KpiView struct {
	Label  string
	Value  string
	Status string
	Color  string
}

// TemplateData contains all data for rendering the HTML dashboard
type TemplateData struct {
	Title          string
	GeneratedAt    string
	Alerts         []string
	Inventory      []KpiView
	KPIs           []KpiView
	TrendPoints    []TrendPointView
	TrendPolyline  string
	CriticalLine   float64
	CriticalLineY  float64
	CapacityBars   []CapacityBar
	Recommendation string
	DataJSON       template.JS
}

// generateHTMLOutput renders the dashboard to an HTML file
func generateHTMLOutput(snapshot *dto.DashboardSnapshot, config Config) error {
	html, err := GenerateHTML(snapshot, config)
	if err != nil {
		return err
	}

	outputDir := config.OutputDir
	if outputDir == "" {
		outputDir = "."
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(outputDir, "dashboard.html")
	if err := os.WriteFile(filename, []byte(html), 0644); err != nil {
		return fmt.Errorf("failed to write HTML file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 HTML dashboard saved to: %s\n", filename)
	}
	return nil
}

// GenerateHTML builds the standalone HTML dashboard page
func GenerateHTML(snapshot *dto.DashboardSnapshot, config Config) (string, error) {
	jsonData, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot data: %w", err)
	}

	data := TemplateData{
		Title:          "Candour Coffee | Operations Dashboard",
		GeneratedAt:    snapshot.GeneratedAt.Format("2006-01-02 15:04:05"),
		Alerts:         snapshot.Alerts,
		Inventory:      buildInventoryViews(snapshot),
		KPIs:           buildKpiViews(snapshot),
		CriticalLine:   snapshot.CycleTime.Bounds.Red,
		CapacityBars:   buildCapacityBars(snapshot.Capacity),
		Recommendation: snapshot.Recommendation,
		DataJSON:       template.JS(jsonData),
	}
	data.TrendPoints, data.TrendPolyline, data.CriticalLineY = buildTrendViews(snapshot.Trend, data.CriticalLine)

	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render dashboard template: %w", err)
	}

	return buf.String(), nil
}

// buildInventoryViews creates the inventory metric cards
func buildInventoryViews(snapshot *dto.DashboardSnapshot) []KpiView {
	stockStatus, stockColor := "Healthy", statusColors[entities.StatusOptimal]
	if snapshot.Inventory.NeedsReorder {
		stockStatus, stockColor = "Reorder now", statusColors[entities.StatusCritical]
	}

	return []KpiView{
		{Label: "Warehouse Stock", Value: snapshot.Inputs.CurrentStockKg.String() + " kg", Status: stockStatus, Color: stockColor},
		{Label: "Optimal Order (EOQ)", Value: snapshot.Inventory.RecommendedOrderQty.String() + " kg"},
		{Label: "Safety Stock", Value: snapshot.SafetyStockKg.String() + " kg"},
	}
}

// buildKpiViews creates the production metric cards
func buildKpiViews(snapshot *dto.DashboardSnapshot) []KpiView {
	return []KpiView{
		{
			Label:  "Cycle Time",
			Value:  fmt.Sprintf("%v s (Δ %+.1f s)", snapshot.CycleTime.Value, snapshot.CycleTimeDeltaSeconds),
			Status: snapshot.CycleTime.Status.String(),
			Color:  statusColors[snapshot.CycleTime.Status],
		},
		{
			Label:  "Defect Rate",
			Value:  fmt.Sprintf("%v %%", snapshot.DefectRate.Value),
			Status: snapshot.DefectRate.Status.String(),
			Color:  statusColors[snapshot.DefectRate.Status],
		},
		{
			Label: "Hourly Throughput",
			Value: fmt.Sprintf("%d units", snapshot.HourlyThroughput),
		},
	}
}

// buildCapacityBars scales stage capacities to chart widths
func buildCapacityBars(results []entities.CapacityResult) []CapacityBar {
	maxCapacity := 0.0
	for _, result := range results {
		if result.DailyCapacityUnits > maxCapacity {
			maxCapacity = result.DailyCapacityUnits
		}
	}

	bars := make([]CapacityBar, 0, len(results))
	for _, result := range results {
		widthPct := 0.0
		if maxCapacity > 0 {
			widthPct = result.DailyCapacityUnits / maxCapacity * 100
		}
		bars = append(bars, CapacityBar{
			StageName: result.StageName,
			Units:     result.DailyCapacityUnits,
			WidthPct:  widthPct,
		})
	}
	return bars
}

// buildTrendViews plots the trend series onto a fixed 600x200 SVG viewport.
// The critical threshold is included in the value domain so its limit line
// always lands inside the chart, and its Y coordinate is returned alongside
// the plotted points.
func buildTrendViews(trend []entities.TrendPoint, criticalLimit float64) ([]TrendPointView, string, float64) {
	if len(trend) == 0 {
		return nil, "", 0
	}

	const width, height, pad = 600.0, 200.0, 20.0

	minValue, maxValue := trend[0].CycleTimeSeconds, trend[0].CycleTimeSeconds
	for _, point := range trend {
		if point.CycleTimeSeconds < minValue {
			minValue = point.CycleTimeSeconds
		}
		if point.CycleTimeSeconds > maxValue {
			maxValue = point.CycleTimeSeconds
		}
	}
	if criticalLimit < minValue {
		minValue = criticalLimit
	}
	if criticalLimit > maxValue {
		maxValue = criticalLimit
	}
	span := maxValue - minValue
	if span == 0 {
		span = 1
	}

	step := (width - 2*pad) / float64(maxInt(len(trend)-1, 1))
	views := make([]TrendPointView, 0, len(trend))
	var polyline bytes.Buffer
	for i, point := range trend {
		x := pad + float64(i)*step
		y := height - pad - (point.CycleTimeSeconds-minValue)/span*(height-2*pad)
		views = append(views, TrendPointView{
			Hour:  point.Hour,
			Value: point.CycleTimeSeconds,
			X:     x,
			Y:     y,
		})
		if i > 0 {
			polyline.WriteString(" ")
		}
		fmt.Fprintf(&polyline, "%.1f,%.1f", x, y)
	}

	criticalY := height - pad - (criticalLimit-minValue)/span*(height-2*pad)
	return views, polyline.String(), criticalY
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
