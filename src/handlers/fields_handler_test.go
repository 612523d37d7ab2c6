// backend/src/handlers/fields_handler_test.go
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/username/modelia/backend/src/countries"
	"github.com/username/modelia/backend/src/models"
)

func TestHandleGetFields(t *testing.T) {
	handler := NewFieldsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/fields", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetFields(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var payload struct {
		Sections []string                     `json:"sections"`
		Fields   map[string][]models.FieldDef `json:"fields"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	if len(payload.Sections) != len(models.SectionKeys) {
		t.Errorf("sections = %v, want %v", payload.Sections, models.SectionKeys)
	}
	for _, section := range models.SectionKeys {
		if _, ok := payload.Fields[section]; !ok {
			t.Errorf("missing field definitions for section %q", section)
		}
	}

	// Country selects must carry the full catalog.
	var paisField *models.FieldDef
	for i, def := range payload.Fields[models.SectionBuyer] {
		if def.Name == "pais" {
			paisField = &payload.Fields[models.SectionBuyer][i]
		}
	}
	if paisField == nil {
		t.Fatal("buyer section has no pais field")
	}
	if len(paisField.Options) != len(countries.CountryOptions) {
		t.Errorf("pais options = %d, want %d", len(paisField.Options), len(countries.CountryOptions))
	}
}

func TestHandleGetFieldsDoesNotMutateDefinitions(t *testing.T) {
	handler := NewFieldsHandler()

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		handler.HandleGetFields(rec, httptest.NewRequest(http.MethodGet, "/api/fields", nil))
	}

	for _, def := range models.RequiredFields[models.SectionBuyer] {
		if def.CountryOptions && def.Options != nil {
			t.Errorf("shared field definition %q was mutated with injected options", def.Name)
		}
	}
}

func TestHandleGetCountries(t *testing.T) {
	handler := NewFieldsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/countries", nil)
	rec := httptest.NewRecorder()
	handler.HandleGetCountries(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var catalog []countries.CountryOption
	if err := json.NewDecoder(rec.Body).Decode(&catalog); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(catalog) != len(countries.CountryOptions) {
		t.Errorf("catalog has %d entries, want %d", len(catalog), len(countries.CountryOptions))
	}
}
