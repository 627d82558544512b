package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

// Loader handles loading dashboard feed data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadTrend loads a cycle-time trend series from a CSV file. The series is
// display data for the trend chart, in file order.
func (l *Loader) LoadTrend(filename string) ([]*entities.TrendPoint, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open trend file %s: %w", filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read trend CSV: %w", err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("trend CSV must have header and at least one data row")
	}

	// Validate header
	expectedHeader := []string{"hour", "cycle_time_seconds"}
	header := records[0]
	if !validateHeader(header, expectedHeader) {
		return nil, fmt.Errorf("trend CSV header mismatch. Expected: %v, Got: %v", expectedHeader, header)
	}

	var points []*entities.TrendPoint
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("trend CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		point, err := parseTrendPoint(record)
		if err != nil {
			return nil, fmt.Errorf("trend CSV row %d: %w", i+2, err)
		}

		points = append(points, point)
	}

	return points, nil
}

// parseTrendPoint converts a CSV record to a TrendPoint
func parseTrendPoint(record []string) (*entities.TrendPoint, error) {
	hour := strings.TrimSpace(record[0])

	cycleTime, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid cycle_time_seconds %q: %w", record[1], err)
	}

	return entities.NewTrendPoint(hour, cycleTime)
}

// validateHeader checks that a CSV header matches the expected column names
func validateHeader(header, expected []string) bool {
	if len(header) != len(expected) {
		return false
	}
	for i, col := range header {
		if strings.TrimSpace(strings.ToLower(col)) != expected[i] {
			return false
		}
	}
	return true
}
