package entities

import (
	"errors"
	"fmt"
	"testing"
)

func TestInvalidInputError_Message(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{
			"plain reason",
			NewInvalidInput("stage name", "cannot be empty"),
			"invalid input: stage name cannot be empty",
		},
		{
			"formatted reason",
			NewInvalidInput("cycle time", "must be positive, got %v", -5.0),
			"invalid input: cycle time must be positive, got -5",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.err.Error() != tc.expected {
				t.Errorf("Expected error '%s', got '%s'", tc.expected, tc.err.Error())
			}
		})
	}
}

func TestIsInvalidInput(t *testing.T) {
	direct := NewInvalidInput("current stock", "cannot be negative, got -1")
	if !IsInvalidInput(direct) {
		t.Error("Expected direct InvalidInputError to match")
	}

	// Wrapped errors still match through the chain
	wrapped := fmt.Errorf("failed to classify cycle_time: %w", direct)
	if !IsInvalidInput(wrapped) {
		t.Error("Expected wrapped InvalidInputError to match")
	}

	if IsInvalidInput(errors.New("something else")) {
		t.Error("Expected unrelated error not to match")
	}
	if IsInvalidInput(nil) {
		t.Error("Expected nil not to match")
	}
}

func TestInvalidInputError_FieldAndReason(t *testing.T) {
	err := NewInvalidInput("reorder point", "cannot be negative, got -37")

	var invalid *InvalidInputError
	if !errors.As(err, &invalid) {
		t.Fatalf("Expected *InvalidInputError, got %T", err)
	}
	if invalid.Field != "reorder point" {
		t.Errorf("Expected field 'reorder point', got '%s'", invalid.Field)
	}
	if invalid.Reason != "cannot be negative, got -37" {
		t.Errorf("Expected reason 'cannot be negative, got -37', got '%s'", invalid.Reason)
	}
}
