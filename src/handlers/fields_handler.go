// backend/src/handlers/fields_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/username/modelia/backend/src/countries"
	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/models"
)

type FieldsHandler struct{}

func NewFieldsHandler() *FieldsHandler {
	return &FieldsHandler{}
}

// HandleGetFields returns the form field metadata for every declaration
// section, with the country catalog injected into the country selects.
func (h *FieldsHandler) HandleGetFields(w http.ResponseWriter, r *http.Request) {
	countryOptions := make([]models.FieldOption, len(countries.CountryOptions))
	for i, c := range countries.CountryOptions {
		countryOptions[i] = models.FieldOption{Value: c.Code, Label: c.Name}
	}

	fields := make(map[string][]models.FieldDef, len(models.RequiredFields))
	for section, defs := range models.RequiredFields {
		out := make([]models.FieldDef, len(defs))
		copy(out, defs)
		for i := range out {
			if out[i].CountryOptions {
				out[i].Options = countryOptions
			}
		}
		fields[section] = out
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{
		"sections": models.SectionKeys,
		"fields":   fields,
	}); err != nil {
		logger.L.Error("Error encoding JSON response for fields", "error", err)
	}
}

// HandleGetCountries returns the country dropdown catalog.
func (h *FieldsHandler) HandleGetCountries(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(countries.CountryOptions); err != nil {
		logger.L.Error("Error encoding JSON response for countries", "error", err)
	}
}
