package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/application/dto"
)

// Config holds configuration for output generation
type Config struct {
	Format     string
	OutputDir  string
	Verbose    bool
	RenderTime time.Duration
}

// Generate creates output in the specified format
func Generate(snapshot *dto.DashboardSnapshot, config Config) error {
	switch config.Format {
	case "text":
		return generateTextOutput(snapshot, config)
	case "json":
		return generateJSONOutput(snapshot, config)
	case "html":
		return generateHTMLOutput(snapshot, config)
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// generateJSONOutput creates JSON output
func generateJSONOutput(snapshot *dto.DashboardSnapshot, config Config) error {
	jsonData, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if config.OutputDir == "" {
		fmt.Println(string(jsonData))
		return nil
	}

	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filename := filepath.Join(config.OutputDir, "dashboard.json")
	if err := os.WriteFile(filename, jsonData, 0644); err != nil {
		return fmt.Errorf("failed to write JSON file: %w", err)
	}

	if config.Verbose {
		fmt.Printf("💾 JSON snapshot saved to: %s\n", filename)
	}
	return nil
}
