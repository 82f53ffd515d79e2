package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transfer-compliance/internal/domain"
	"transfer-compliance/internal/usecase"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		origin       []string
		counterparty []string
		direction    domain.Direction
		expected     domain.Classification
	}{
		{
			name:         "identical sets OUT",
			origin:       []string{"full_name", "wallet_address"},
			counterparty: []string{"full_name", "wallet_address"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationFullMatch,
		},
		{
			name:         "identical sets IN",
			origin:       []string{"full_name", "wallet_address"},
			counterparty: []string{"full_name", "wallet_address"},
			direction:    domain.DirectionIn,
			expected:     domain.ClassificationFullMatch,
		},
		{
			name:         "identical sets in different order",
			origin:       []string{"wallet_address", "full_name"},
			counterparty: []string{"full_name", "wallet_address"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationFullMatch,
		},
		{
			name:         "origin superset OUT",
			origin:       []string{"full_name", "residential_address"},
			counterparty: []string{"full_name"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationOvercompliance,
		},
		{
			name:         "origin superset IN",
			origin:       []string{"full_name", "residential_address"},
			counterparty: []string{"full_name"},
			direction:    domain.DirectionIn,
			expected:     domain.ClassificationSenderMayNotProvide,
		},
		{
			name:         "origin subset OUT",
			origin:       []string{"full_name"},
			counterparty: []string{"full_name", "residential_address"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationCounterpartyMayRequestMore,
		},
		{
			name:         "origin subset IN",
			origin:       []string{"full_name"},
			counterparty: []string{"full_name", "residential_address"},
			direction:    domain.DirectionIn,
			expected:     domain.ClassificationOvercompliance,
		},
		{
			name:         "partial overlap OUT",
			origin:       []string{"full_name", "nationality"},
			counterparty: []string{"full_name", "residential_address"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationCounterpartyMayRequestMore,
		},
		{
			name:         "partial overlap IN",
			origin:       []string{"full_name", "nationality"},
			counterparty: []string{"full_name", "residential_address"},
			direction:    domain.DirectionIn,
			expected:     domain.ClassificationSenderMayNotProvide,
		},
		{
			name:         "both empty",
			origin:       []string{},
			counterparty: []string{},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationFullMatch,
		},
		{
			name:         "empty origin OUT",
			origin:       []string{},
			counterparty: []string{"full_name"},
			direction:    domain.DirectionOut,
			expected:     domain.ClassificationCounterpartyMayRequestMore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.Classify(tt.origin, tt.counterparty, tt.direction)
			assert.Equal(t, tt.expected, got)
		})
	}
}
