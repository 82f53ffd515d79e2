package usecase

import (
	"transfer-compliance/internal/domain"
)

// Alternative-group identifiers are positional per side, so both sides can
// own a group_0. The resolution map namespaces them to keep the records
// apart.
const (
	originGroupPrefix       = "origin:"
	counterpartyGroupPrefix = "counterparty:"
)

// MatchFields reconciles the two sides' extracted requirements field by
// field. Four greedy passes run in strict order, each considering only fields
// not already claimed on the relevant side:
//
//  1. exact matches between the two mandatory sets, in origin order
//  2. counterparty alternative groups resolved against origin's mandatory set
//  3. origin alternative groups resolved against counterparty's mandatory set
//  4. semantic equivalence via the field dictionary, never alternative-flagged
//
// All passes are order-sensitive by contract: mandatory sets iterate in
// insertion order, group field lists and dictionary equivalents in declared
// order. First claim wins.
func MatchFields(origin, counterparty domain.ExtractedRequirements, dict domain.FieldDictionary, direction domain.Direction) domain.FieldAnalysis {
	originSet := toSet(origin.MandatoryFields)
	counterpartySet := toSet(counterparty.MandatoryFields)
	claimedOrigin := make(map[string]bool)
	claimedCounterparty := make(map[string]bool)

	analysis := domain.FieldAnalysis{
		MatchingFields:              make([]string, 0),
		SourceSendsMore:             make([]string, 0),
		CounterpartySendsMore:       make([]string, 0),
		Matches:                     make([]domain.FieldMatch, 0),
		AlternativeGroupResolutions: make(map[string]string),
	}

	// Pass 1: exact mandatory matches.
	for _, field := range origin.MandatoryFields {
		if counterpartySet[field] && !claimedCounterparty[field] {
			analysis.Matches = append(analysis.Matches, domain.FieldMatch{
				SourceField: field,
				TargetField: field,
				Exact:       true,
			})
			claimedOrigin[field] = true
			claimedCounterparty[field] = true
		}
	}

	// Pass 2: counterparty alternative groups against origin's mandatory set.
	resolveAlternativeGroups(counterparty.AlternativeGroups, counterpartyGroupPrefix,
		originSet, claimedOrigin, claimedCounterparty, &analysis)

	// Pass 3: origin alternative groups against counterparty's mandatory set.
	resolveAlternativeGroups(origin.AlternativeGroups, originGroupPrefix,
		counterpartySet, claimedCounterparty, claimedOrigin, &analysis)

	// Pass 4: semantic equivalence for origin fields still unclaimed.
	for _, field := range origin.MandatoryFields {
		if claimedOrigin[field] {
			continue
		}
		for _, alias := range dict.EquivalentsOf(field) {
			if counterpartySet[alias] && !claimedCounterparty[alias] {
				analysis.Matches = append(analysis.Matches, domain.FieldMatch{
					SourceField: field,
					TargetField: alias,
					Exact:       false,
				})
				claimedOrigin[field] = true
				claimedCounterparty[alias] = true
				break
			}
		}
	}

	for _, field := range origin.MandatoryFields {
		if claimedOrigin[field] {
			analysis.MatchingFields = append(analysis.MatchingFields, field)
		}
	}

	if direction == domain.DirectionIn {
		// Counterparty sends to origin: gaps are origin fields nobody covers,
		// surpluses are counterparty fields origin never asked for.
		analysis.MissingFields = unclaimed(origin.MandatoryFields, claimedOrigin)
		analysis.ExtraFields = unclaimed(counterparty.MandatoryFields, claimedCounterparty)
		analysis.CounterpartySendsMore = analysis.ExtraFields
	} else {
		analysis.MissingFields = unclaimed(counterparty.MandatoryFields, claimedCounterparty)
		analysis.ExtraFields = unclaimed(origin.MandatoryFields, claimedOrigin)
		analysis.SourceSendsMore = analysis.ExtraFields
	}

	return analysis
}

// resolveAlternativeGroups runs one alternative-resolution pass. Groups are
// visited in identifier order. For the exact 4-member alternative-identity
// group with both pair fields available on the counterpart side, the
// date-of-birth/birthplace pair rule wins; otherwise the group resolves to
// the first declared field present and unclaimed in the counterpart's
// mandatory set. The pair rule is not a general N-of-M mechanism.
func resolveAlternativeGroups(groups []domain.AlternativeGroup, idPrefix string,
	counterpart map[string]bool, claimedCounterpart, claimedOwner map[string]bool,
	analysis *domain.FieldAnalysis) {

	for _, group := range groups {
		id := idPrefix + group.ID
		if _, done := analysis.AlternativeGroupResolutions[id]; done {
			continue
		}

		if isAlternativeIdentityGroup(group.Fields) &&
			pairAvailable(counterpart, claimedCounterpart) {
			for _, field := range []string{domain.FieldDateOfBirth, domain.FieldBirthplace} {
				analysis.Matches = append(analysis.Matches, domain.FieldMatch{
					SourceField:        field,
					TargetField:        field,
					Exact:              true,
					ViaAlternative:     true,
					AlternativeGroupID: id,
				})
				claimedCounterpart[field] = true
				claimedOwner[field] = true
			}
			analysis.AlternativeGroupResolutions[id] = domain.FieldDateOfBirth + " + " + domain.FieldBirthplace
			continue
		}

		for _, field := range group.Fields {
			if counterpart[field] && !claimedCounterpart[field] {
				analysis.Matches = append(analysis.Matches, domain.FieldMatch{
					SourceField:        field,
					TargetField:        field,
					Exact:              true,
					ViaAlternative:     true,
					AlternativeGroupID: id,
				})
				claimedCounterpart[field] = true
				claimedOwner[field] = true
				analysis.AlternativeGroupResolutions[id] = field
				break
			}
		}
	}
}

// pairAvailable reports whether date of birth and birthplace are both present
// and unclaimed on the counterpart side.
func pairAvailable(counterpart, claimed map[string]bool) bool {
	for _, field := range []string{domain.FieldDateOfBirth, domain.FieldBirthplace} {
		if !counterpart[field] || claimed[field] {
			return false
		}
	}
	return true
}

// isAlternativeIdentityGroup reports whether fields is exactly the 4-member
// alternative-identity set.
func isAlternativeIdentityGroup(fields []string) bool {
	if len(fields) != 4 {
		return false
	}
	want := map[string]bool{
		domain.FieldIDDocumentNumber: true,
		domain.FieldCustomerID:       true,
		domain.FieldDateOfBirth:      true,
		domain.FieldBirthplace:       true,
	}
	for _, field := range fields {
		if !want[field] {
			return false
		}
		delete(want, field)
	}
	return len(want) == 0
}

func toSet(fields []string) map[string]bool {
	set := make(map[string]bool, len(fields))
	for _, field := range fields {
		set[field] = true
	}
	return set
}

func unclaimed(fields []string, claimed map[string]bool) []string {
	out := make([]string, 0)
	for _, field := range fields {
		if !claimed[field] {
			out = append(out, field)
		}
	}
	return out
}
