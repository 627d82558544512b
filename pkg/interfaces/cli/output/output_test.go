package output

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/services"
	testfixtures "github.com/rahuldagarjn01-netizen/Coffee/pkg/infrastructure/testing"
)

func buildSnapshot(t *testing.T, inputs dto.LiveInputs) *dto.DashboardSnapshot {
	t.Helper()

	cfg, trendRepo := testfixtures.BuildVikhroliScenario()
	service := services.NewDashboardService(trendRepo, nil, nil)

	snapshot, err := service.Render(context.Background(), cfg, inputs)
	if err != nil {
		t.Fatalf("Failed to build snapshot: %v", err)
	}
	return snapshot
}

func TestGenerate_UnsupportedFormat(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())

	err := Generate(snapshot, Config{Format: "xml"})
	if err == nil {
		t.Fatal("Expected error for unsupported format, but got none")
	}
	if !strings.Contains(err.Error(), "unsupported output format: xml") {
		t.Errorf("Expected unsupported format message, got '%s'", err.Error())
	}
}

func TestRenderText_Healthy(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())

	rendered := RenderText(snapshot, Config{Format: "text"})

	for _, expected := range []string{
		"Inventory Strategy",
		"Warehouse Stock",
		"45 kg",
		"215 kg",
		"12.5 kg",
		"OPTIMAL",
		"124 units",
		"Manual (Baseline)",
		"Semi-Automation",
	} {
		if !strings.Contains(rendered, expected) {
			t.Errorf("Expected rendered text to contain %q", expected)
		}
	}

	if strings.Contains(rendered, "ALERT") {
		t.Error("Expected no alerts in healthy render")
	}
}

func TestRenderText_Degraded(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.DegradedInputs())

	rendered := RenderText(snapshot, Config{Format: "text"})

	if !strings.Contains(rendered, "ALERT") {
		t.Error("Expected alert banner in degraded render")
	}
	if !strings.Contains(rendered, "CRITICAL") {
		t.Error("Expected CRITICAL status in degraded render")
	}
	if !strings.Contains(rendered, "Order 215 kg immediately") {
		t.Error("Expected reorder instruction in degraded render")
	}
}

func TestGenerateJSON_File(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())
	outputDir := t.TempDir()

	err := Generate(snapshot, Config{Format: "json", OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Expected JSON generation to succeed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "dashboard.json"))
	if err != nil {
		t.Fatalf("Expected JSON file to exist: %v", err)
	}

	var decoded dto.DashboardSnapshot
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Expected valid JSON: %v", err)
	}
	if decoded.HourlyThroughput != 124 {
		t.Errorf("Expected throughput 124 in JSON, got %d", decoded.HourlyThroughput)
	}
	if len(decoded.Capacity) != 3 {
		t.Errorf("Expected 3 capacity results in JSON, got %d", len(decoded.Capacity))
	}
}

func TestGenerateHTML(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.DegradedInputs())

	html, err := GenerateHTML(snapshot, Config{Format: "html"})
	if err != nil {
		t.Fatalf("Expected HTML generation to succeed: %v", err)
	}

	for _, expected := range []string{
		"<!DOCTYPE html>",
		"Candour Coffee",
		"Manual (Baseline)",
		"U-Layout (Optimized)",
		"Semi-Automation",
		"polyline",
		"CRITICAL",
		"Critical Limit (40s)",
		"stroke-dasharray",
		"window.dashboardData",
	} {
		if !strings.Contains(html, expected) {
			t.Errorf("Expected HTML to contain %q", expected)
		}
	}
}

func TestBuildTrendViews_CriticalLine(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())

	views, polyline, criticalY := buildTrendViews(snapshot.Trend, snapshot.CycleTime.Bounds.Red)
	if len(views) != len(snapshot.Trend) {
		t.Fatalf("Expected %d plotted points, got %d", len(snapshot.Trend), len(views))
	}
	if polyline == "" {
		t.Error("Expected a non-empty polyline")
	}

	// The 40s limit sits above every canned reading (29..38), so including it
	// in the value domain puts the limit line at the top padding edge.
	if criticalY != 20 {
		t.Errorf("Expected critical line at y=20, got %v", criticalY)
	}
	for _, view := range views {
		if view.Y < criticalY {
			t.Errorf("Expected point %s (%vs) below the critical line, got y=%v", view.Hour, view.Value, view.Y)
		}
	}
}

func TestGenerateHTML_File(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())
	outputDir := t.TempDir()

	err := Generate(snapshot, Config{Format: "html", OutputDir: outputDir})
	if err != nil {
		t.Fatalf("Expected HTML generation to succeed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(outputDir, "dashboard.html")); err != nil {
		t.Errorf("Expected dashboard.html to exist: %v", err)
	}
}

func TestBuildCapacityBars_Scaling(t *testing.T) {
	snapshot := buildSnapshot(t, testfixtures.HealthyInputs())

	bars := buildCapacityBars(snapshot.Capacity)
	if len(bars) != 3 {
		t.Fatalf("Expected 3 bars, got %d", len(bars))
	}

	// The fastest stage fills the chart; the others scale proportionally.
	if bars[2].WidthPct != 100 {
		t.Errorf("Expected semi-automation bar at 100%%, got %v", bars[2].WidthPct)
	}
	if bars[0].WidthPct >= bars[1].WidthPct {
		t.Errorf("Expected baseline bar narrower than optimized: %v vs %v", bars[0].WidthPct, bars[1].WidthPct)
	}
}
