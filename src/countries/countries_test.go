package countries

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"España", "ESPANA"},
		{"  francia  ", "FRANCIA"},
		{"Reino   Unido", "REINO UNIDO"},
		{"U.S.A.", "USA"},
		{"Türkiye", "TURKIYE"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolveExactMatches(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"España", "ES"},
		{"ESPANA", "ES"},
		{"Francia", "FR"},
		{"France", "FR"},
		{"Alemania", "DE"},
		{"Deutschland", "DE"},
		{"Reino Unido", "GB"},
		{"United Kingdom", "GB"},
		{"Estados Unidos", "US"},
		{"Estados Unidos de América", "US"},
		{"Países Bajos", "NL"},
		{"Holanda", "NL"},
		{"Suiza", "CH"},
		{"República Checa", "CZ"},
		{"Marruecos", "MA"},
	}

	for _, tt := range tests {
		if got := Resolve(tt.input); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestResolvePartialMatch(t *testing.T) {
	// The alias is a substring of the input.
	if got := Resolve("Republique de France"); got != "FR" {
		t.Errorf("Resolve(Republique de France) = %q, want FR", got)
	}
	// The input is a substring of an alias.
	if got := Resolve("FR"); got != "FR" {
		t.Errorf("Resolve(FR) = %q, want FR", got)
	}
}

func TestResolveWordMatch(t *testing.T) {
	// No substring relation, but the word UNIDO appears in REINO UNIDO.
	if got := Resolve("Unido Reino"); got != "GB" {
		t.Errorf("Resolve(Unido Reino) = %q, want GB", got)
	}
}

func TestResolveFallsBackToSpain(t *testing.T) {
	tests := []string{"", "   ", "Atlantis", "Wakanda"}
	for _, input := range tests {
		if got := Resolve(input); got != DefaultCode {
			t.Errorf("Resolve(%q) = %q, want %q", input, got, DefaultCode)
		}
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first := Resolve("Francia")
	for i := 0; i < 50; i++ {
		if got := Resolve("Francia"); got != first {
			t.Fatalf("Resolve(Francia) changed between calls: %q then %q", first, got)
		}
	}
}

func TestCountryOptionsCatalog(t *testing.T) {
	if len(CountryOptions) == 0 {
		t.Fatal("CountryOptions is empty")
	}
	if CountryOptions[0].Name != "AFGANISTÁN - AF" || CountryOptions[0].Code != "AF" {
		t.Errorf("first catalog entry = %+v, want AFGANISTÁN - AF / AF", CountryOptions[0])
	}
	seen := make(map[string]bool, len(CountryOptions))
	for _, c := range CountryOptions {
		if c.Code == "" || c.Name == "" {
			t.Errorf("catalog entry with empty field: %+v", c)
		}
		if seen[c.Code] {
			t.Errorf("duplicate catalog code %q", c.Code)
		}
		seen[c.Code] = true
	}
}
