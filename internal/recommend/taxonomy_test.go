package recommend

import "testing"

func TestGroupOf(t *testing.T) {
	tests := []struct {
		category string
		group    Group
		found    bool
	}{
		{"Arriendo", GroupVitales, true},
		{"Comunicación", GroupVitales, true},
		{"Mercado", GroupVitales, true},
		{"Domicilio", GroupOcio, true},
		{"Suscripciones", GroupOcio, true},
		{"Hobbies", GroupOcio, true},
		{"Ahorros", GroupFinancieros, true},
		{"Deudas", GroupFinancieros, true},
		{"Educación", GroupFinancieros, true},
		{"Otros", "", false},
		{"Inventada", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			group, ok := GroupOf(tt.category)
			if ok != tt.found {
				t.Fatalf("GroupOf(%q) ok = %v, want %v", tt.category, ok, tt.found)
			}
			if ok && group != tt.group {
				t.Errorf("GroupOf(%q) = %q, want %q", tt.category, group, tt.group)
			}
		})
	}
}

func TestCategoriesCoverTaxonomy(t *testing.T) {
	for category := range categoryGroup {
		if !IsCategory(category) {
			t.Errorf("taxonomy category %q is not selectable", category)
		}
	}

	if !IsCategory("Otros") {
		t.Error("Otros should be selectable even though it has no group")
	}
	if _, ok := GroupOf("Otros"); ok {
		t.Error("Otros should not belong to any group")
	}
}

func TestCatalogOrder(t *testing.T) {
	want := []string{
		"50/30/20", "70/20/10", "80/20", "60/20/20", "30/30/20/20",
		"Basado en Cero", "Sobres", "50/15/35", "10/10/80", "Personalizado",
	}

	got := Catalog()
	if len(got) != len(want) {
		t.Fatalf("catalog has %d entries, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("catalog[%d] = %q, want %q", i, got[i].Name, name)
		}
	}
}

func TestTemplateByName(t *testing.T) {
	tmpl, ok := TemplateByName("80/20")
	if !ok {
		t.Fatal("expected to find template 80/20")
	}
	if tmpl.NeedsPct != 80 || tmpl.Complexity != PriorityVeryLow {
		t.Errorf("unexpected template data: %+v", tmpl)
	}

	if _, ok := TemplateByName("90/10"); ok {
		t.Error("expected lookup miss for unknown template")
	}
}
