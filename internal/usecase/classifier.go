package usecase

import "transfer-compliance/internal/domain"

// Classify derives the compliance classification from the two mandatory
// (AND-only) field sets and the transfer direction.
//
// Contract note: alternative groups and semantic equivalence are ignored here
// on purpose. A side whose only gap is covered by an alternative group still
// classifies as mismatched; group satisfaction is reported separately in the
// field analysis. Consumers rely on these narrower semantics.
func Classify(origin, counterparty []string, direction domain.Direction) domain.Classification {
	originSet := toSet(origin)
	counterpartySet := toSet(counterparty)

	originCovers := coversAll(originSet, counterparty)
	counterpartyCovers := coversAll(counterpartySet, origin)

	if originCovers && counterpartyCovers && len(originSet) == len(counterpartySet) {
		return domain.ClassificationFullMatch
	}

	if direction == domain.DirectionIn {
		if counterpartyCovers {
			if len(counterpartySet) > len(originSet) {
				return domain.ClassificationOvercompliance
			}
			return domain.ClassificationFullMatch
		}
		return domain.ClassificationSenderMayNotProvide
	}

	if originCovers {
		if len(originSet) > len(counterpartySet) {
			return domain.ClassificationOvercompliance
		}
		return domain.ClassificationFullMatch
	}
	return domain.ClassificationCounterpartyMayRequestMore
}

func coversAll(set map[string]bool, fields []string) bool {
	for _, field := range fields {
		if !set[field] {
			return false
		}
	}
	return true
}
