package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"transfer-compliance/internal/domain"
	"transfer-compliance/internal/usecase"
)

func TestExtractRequirements(t *testing.T) {
	tests := []struct {
		name     string
		ruleSet  domain.RequirementRuleSet
		expected domain.ExtractedRequirements
	}{
		{
			name: "AND fields deduplicated in first-appearance order, OR groups numbered separately",
			ruleSet: domain.RequirementRuleSet{
				Groups: []domain.RequirementGroup{
					{Fields: []string{"full_name", "residential_address"}, Logic: domain.LogicAnd},
					{Fields: []string{"id_document_number", "customer_id"}, Logic: domain.LogicOr},
					{Fields: []string{"residential_address", "wallet_address"}, Logic: domain.LogicAnd},
					{Fields: []string{"nationality", "email_address"}, Logic: domain.LogicOr},
				},
			},
			expected: domain.ExtractedRequirements{
				MandatoryFields: []string{"full_name", "residential_address", "wallet_address"},
				AlternativeGroups: []domain.AlternativeGroup{
					{ID: "group_0", Fields: []string{"id_document_number", "customer_id"}},
					{ID: "group_1", Fields: []string{"nationality", "email_address"}},
				},
			},
		},
		{
			name:    "empty rule set",
			ruleSet: domain.RequirementRuleSet{},
			expected: domain.ExtractedRequirements{
				MandatoryFields:   []string{},
				AlternativeGroups: []domain.AlternativeGroup{},
			},
		},
		{
			name: "OR-only rule set has no mandatory fields",
			ruleSet: domain.RequirementRuleSet{
				Groups: []domain.RequirementGroup{
					{Fields: []string{"id_document_number", "customer_id"}, Logic: domain.LogicOr},
				},
			},
			expected: domain.ExtractedRequirements{
				MandatoryFields: []string{},
				AlternativeGroups: []domain.AlternativeGroup{
					{ID: "group_0", Fields: []string{"id_document_number", "customer_id"}},
				},
			},
		},
		{
			name: "field appearing in both an AND and an OR group",
			ruleSet: domain.RequirementRuleSet{
				Groups: []domain.RequirementGroup{
					{Fields: []string{"date_of_birth"}, Logic: domain.LogicAnd},
					{Fields: []string{"date_of_birth", "birthplace"}, Logic: domain.LogicOr},
				},
			},
			expected: domain.ExtractedRequirements{
				MandatoryFields: []string{"date_of_birth"},
				AlternativeGroups: []domain.AlternativeGroup{
					{ID: "group_0", Fields: []string{"date_of_birth", "birthplace"}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.ExtractRequirements(tt.ruleSet)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestExtractRequirements_Deterministic(t *testing.T) {
	ruleSet := domain.RequirementRuleSet{
		Groups: []domain.RequirementGroup{
			{Fields: []string{"full_name", "wallet_address"}, Logic: domain.LogicAnd},
			{Fields: []string{"id_document_number", "customer_id"}, Logic: domain.LogicOr},
		},
	}

	first := usecase.ExtractRequirements(ruleSet)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, usecase.ExtractRequirements(ruleSet))
	}
}
