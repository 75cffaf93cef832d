// Package recommend selects a budget template for a questionnaire by scoring
// every template in the catalog against the user's answers and spending log.
package recommend

// Group is a top-level expense group.
type Group string

const (
	GroupVitales     Group = "Vitales"
	GroupOcio        Group = "Ocio"
	GroupFinancieros Group = "Financieros"
)

// expenseGroups maps each group to its subgroups and each subgroup to the
// concrete categories it contains.
var expenseGroups = map[Group]map[string][]string{
	GroupVitales: {
		"Vivienda":     {"Arriendo"},
		"Servicios":    {"Servicios", "Comunicación"},
		"Alimentación": {"Mercado"},
		"Transporte":   {"Transporte"},
		"Salud":        {"Salud"},
		"Seguros":      {"Seguros"},
	},
	GroupOcio: {
		"Salidas":         {"Salidas", "Domicilio"},
		"Entretenimiento": {"Antojos", "Suscripciones"},
		"Hobbies":         {"Hobbies"},
	},
	GroupFinancieros: {
		"Ahorros":   {"Ahorros"},
		"Deudas":    {"Deudas"},
		"Educación": {"Educación"},
	},
}

// categoryGroup is the flattened category to group lookup.
var categoryGroup = map[string]Group{}

func init() {
	for group, subgroups := range expenseGroups {
		for _, categories := range subgroups {
			for _, category := range categories {
				categoryGroup[category] = group
			}
		}
	}
}

// GroupOf returns the group a category belongs to. Categories outside the
// taxonomy (such as "Otros") report ok=false and are ignored by the scorer.
func GroupOf(category string) (Group, bool) {
	g, ok := categoryGroup[category]
	return g, ok
}

// Categories lists every selectable expense category, including "Otros",
// which is selectable but carries no group.
func Categories() []string {
	return []string{
		"Arriendo", "Servicios", "Mercado", "Salud", "Seguros",
		"Comunicación", "Transporte", "Educación", "Antojos", "Domicilio",
		"Suscripciones", "Salidas", "Hobbies", "Ahorros", "Deudas", "Otros",
	}
}

// IsCategory reports whether name is a selectable expense category.
func IsCategory(name string) bool {
	for _, c := range Categories() {
		if c == name {
			return true
		}
	}
	return false
}
