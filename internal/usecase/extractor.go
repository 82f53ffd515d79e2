package usecase

import (
	"fmt"

	"transfer-compliance/internal/domain"
)

// ExtractRequirements flattens a rule set's group sequence into the mandatory
// field set and the alternative-group table.
//
// AND-group fields enter the mandatory set with set semantics: first
// appearance fixes the order, later duplicates are no-ops. OR groups are
// recorded verbatim under positional identifiers group_0, group_1, ... where
// the counter advances only on OR groups; their fields never enter the
// mandatory set. The counter is local to one side's extraction.
func ExtractRequirements(ruleSet domain.RequirementRuleSet) domain.ExtractedRequirements {
	mandatory := make([]string, 0)
	seen := make(map[string]bool)
	groups := make([]domain.AlternativeGroup, 0)

	orIndex := 0
	for _, group := range ruleSet.Groups {
		if group.Logic == domain.LogicOr {
			groups = append(groups, domain.AlternativeGroup{
				ID:     fmt.Sprintf("group_%d", orIndex),
				Fields: append([]string(nil), group.Fields...),
			})
			orIndex++
			continue
		}
		for _, field := range group.Fields {
			if !seen[field] {
				seen[field] = true
				mandatory = append(mandatory, field)
			}
		}
	}

	return domain.ExtractedRequirements{
		MandatoryFields:   mandatory,
		AlternativeGroups: groups,
	}
}
