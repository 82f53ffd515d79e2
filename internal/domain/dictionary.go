package domain

// Canonical keys of the alternative-identity group. Either any single member
// or the date-of-birth/birthplace pair satisfies such a group.
const (
	FieldIDDocumentNumber = "id_document_number"
	FieldCustomerID       = "customer_id"
	FieldDateOfBirth      = "date_of_birth"
	FieldBirthplace       = "birthplace"
)

// FieldDefinition maps a canonical field key to its display label and to the
// other canonical keys treated as semantically equivalent.
type FieldDefinition struct {
	Key     string   `json:"key" yaml:"key"`
	Label   string   `json:"label" yaml:"label"`
	Aliases []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// FieldDictionary is the ordered field-alias table. Declaration order is
// significant: the matcher tries equivalents in the order returned by
// EquivalentsOf, which follows dictionary order.
type FieldDictionary []FieldDefinition

// LabelFor returns the display label of a key, falling back to the key itself
// for fields absent from the dictionary.
func (d FieldDictionary) LabelFor(key string) string {
	for _, def := range d {
		if def.Key == key {
			return def.Label
		}
	}
	return key
}

// EquivalentsOf returns the keys semantically equivalent to key, in dictionary
// declaration order, excluding key itself. Equivalence is many-to-many: a key
// listed as an alias of a definition is equivalent to that definition's key
// and to its other aliases.
func (d FieldDictionary) EquivalentsOf(key string) []string {
	seen := map[string]bool{key: true}
	var out []string
	add := func(k string) {
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	for _, def := range d {
		if def.Key == key {
			for _, alias := range def.Aliases {
				add(alias)
			}
			continue
		}
		for _, alias := range def.Aliases {
			if alias == key {
				add(def.Key)
				for _, other := range def.Aliases {
					add(other)
				}
				break
			}
		}
	}
	return out
}
