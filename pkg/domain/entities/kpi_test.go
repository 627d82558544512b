package entities

import (
	"math"
	"testing"
)

func TestKpiStatus_String(t *testing.T) {
	testCases := []struct {
		status   KpiStatus
		expected string
	}{
		{StatusOptimal, "OPTIMAL"},
		{StatusWarning, "WARNING"},
		{StatusCritical, "CRITICAL"},
		{KpiStatus(99), "Unknown"},
	}

	for _, tc := range testCases {
		if got := tc.status.String(); got != tc.expected {
			t.Errorf("Expected %s, got %s", tc.expected, got)
		}
	}
}

func TestKpiStatus_SeverityOrdering(t *testing.T) {
	if !(StatusOptimal < StatusWarning && StatusWarning < StatusCritical) {
		t.Error("Expected status values ordered by severity")
	}
}

func TestKpiThresholds_Validation(t *testing.T) {
	thresholds, err := NewKpiThresholds(35, 40)
	if err != nil {
		t.Fatalf("Expected valid thresholds to succeed: %v", err)
	}
	if thresholds.Yellow != 35 || thresholds.Red != 40 {
		t.Errorf("Expected thresholds 35/40, got %v/%v", thresholds.Yellow, thresholds.Red)
	}

	// Equal thresholds are allowed
	if _, err := NewKpiThresholds(3.0, 3.0); err != nil {
		t.Errorf("Expected equal thresholds to be valid: %v", err)
	}

	testCases := []struct {
		name        string
		yellow      float64
		red         float64
		expectError string
	}{
		{"red below yellow", 40, 35, "invalid input: red threshold must be >= yellow threshold, got red=35 yellow=40"},
		{"NaN yellow", math.NaN(), 40, "invalid input: yellow threshold must be a finite number, got NaN"},
		{"infinite red", 35, math.Inf(1), "invalid input: red threshold must be a finite number, got +Inf"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewKpiThresholds(tc.yellow, tc.red)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}
