package services

import (
	"math"
	"testing"

	"github.com/rahuldagarjn01-netizen/Coffee/pkg/domain/entities"
)

func TestKpiClassifier_Classify(t *testing.T) {
	classifier := NewKpiClassifier()

	testCases := []struct {
		name     string
		value    float64
		yellow   float64
		red      float64
		expected entities.KpiStatus
	}{
		{"well below yellow", 20, 35, 40, entities.StatusOptimal},
		{"just below yellow", 34, 35, 40, entities.StatusOptimal},
		{"exactly at yellow", 35, 35, 40, entities.StatusWarning},
		{"between thresholds", 38, 35, 40, entities.StatusWarning},
		{"exactly at red", 40, 35, 40, entities.StatusCritical},
		{"above red", 50, 35, 40, entities.StatusCritical},
		{"defect rate at yellow", 2.0, 2.0, 3.0, entities.StatusWarning},
		{"defect rate at red", 3.0, 2.0, 3.0, entities.StatusCritical},
		{"boundary with yellow < red", 3.0, 2.0, 3.0, entities.StatusCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, err := classifier.Classify(tc.value, tc.yellow, tc.red)
			if err != nil {
				t.Fatalf("Expected classification to succeed: %v", err)
			}
			if status != tc.expected {
				t.Errorf("Expected %s for value %v against %v/%v, got %s",
					tc.expected, tc.value, tc.yellow, tc.red, status)
			}
		})
	}
}

func TestKpiClassifier_Monotonicity(t *testing.T) {
	classifier := NewKpiClassifier()

	// For fixed thresholds, severity never decreases as the value increases.
	previous := entities.StatusOptimal
	for value := 0.0; value <= 50.0; value += 0.5 {
		status, err := classifier.Classify(value, 35, 40)
		if err != nil {
			t.Fatalf("Expected classification to succeed for %v: %v", value, err)
		}
		if status < previous {
			t.Fatalf("Severity decreased from %s to %s at value %v", previous, status, value)
		}
		previous = status
	}
}

func TestKpiClassifier_EqualThresholds(t *testing.T) {
	classifier := NewKpiClassifier()

	// With yellow == red, the red comparison wins at the shared boundary.
	status, err := classifier.Classify(3.0, 3.0, 3.0)
	if err != nil {
		t.Fatalf("Expected classification to succeed: %v", err)
	}
	if status != entities.StatusCritical {
		t.Errorf("Expected CRITICAL at shared boundary, got %s", status)
	}
}

func TestKpiClassifier_InvalidInput(t *testing.T) {
	classifier := NewKpiClassifier()

	testCases := []struct {
		name   string
		value  float64
		yellow float64
		red    float64
	}{
		{"NaN value", math.NaN(), 35, 40},
		{"inverted thresholds", 30, 40, 35},
		{"NaN threshold", 30, math.NaN(), 40},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := classifier.Classify(tc.value, tc.yellow, tc.red)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if !entities.IsInvalidInput(err) {
				t.Errorf("Expected InvalidInputError, got %T: %v", err, err)
			}
		})
	}
}

func TestKpiClassifier_InfiniteValueClassifies(t *testing.T) {
	classifier := NewKpiClassifier()

	// +Inf is a degenerate but comparable reading; it lands in CRITICAL.
	status, err := classifier.Classify(math.Inf(1), 35, 40)
	if err != nil {
		t.Fatalf("Expected classification to succeed: %v", err)
	}
	if status != entities.StatusCritical {
		t.Errorf("Expected CRITICAL for +Inf, got %s", status)
	}
}
