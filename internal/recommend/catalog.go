package recommend

// Priority expresses a qualitative level used for a template's complexity
// and its debt and savings emphasis.
type Priority string

const (
	PriorityVeryLow Priority = "Muy Baja"
	PriorityLow     Priority = "Baja"
	PriorityMedium  Priority = "Media"
	PriorityHigh    Priority = "Alta"
)

// Template is one budgeting method in the catalog. The percentage fields are
// zero for methods without a fixed split (zero-based, envelopes, custom).
type Template struct {
	Name            string
	NeedsPct        float64
	WantsPct        float64
	SavingsPct      float64
	Complexity      Priority
	DebtPriority    Priority
	SavingsPriority Priority
}

// catalog holds every template in a fixed order. Ties in the recommender
// resolve to the earliest entry, so the order is part of the behavior.
var catalog = []Template{
	{"50/30/20", 50, 30, 20, PriorityLow, PriorityMedium, PriorityMedium},
	{"70/20/10", 70, 20, 10, PriorityLow, PriorityLow, PriorityMedium},
	{"80/20", 80, 20, 20, PriorityVeryLow, PriorityLow, PriorityLow},
	{"60/20/20", 60, 20, 20, PriorityMedium, PriorityMedium, PriorityMedium},
	{"30/30/20/20", 30, 20, 20, PriorityMedium, PriorityMedium, PriorityMedium},
	{"Basado en Cero", 0, 0, 0, PriorityHigh, PriorityHigh, PriorityHigh},
	{"Sobres", 0, 0, 0, PriorityMedium, PriorityMedium, PriorityMedium},
	{"50/15/35", 50, 15, 35, PriorityMedium, PriorityMedium, PriorityHigh},
	{"10/10/80", 10, 10, 80, PriorityLow, PriorityLow, PriorityHigh},
	{"Personalizado", 0, 0, 0, PriorityHigh, PriorityHigh, PriorityHigh},
}

// Catalog returns the ordered template catalog.
func Catalog() []Template {
	out := make([]Template, len(catalog))
	copy(out, catalog)
	return out
}

// TemplateByName looks a template up by its exact name.
func TemplateByName(name string) (Template, bool) {
	for _, t := range catalog {
		if t.Name == name {
			return t, true
		}
	}
	return Template{}, false
}
