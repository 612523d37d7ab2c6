package models

// FieldOption is one choice of a select field.
type FieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// FieldDef describes one form field of a declaration section. Type is empty
// for plain text inputs and "select" when Options apply. Country selects are
// marked with CountryOptions and filled in by the handler.
type FieldDef struct {
	Name           string        `json:"name"`
	Label          string        `json:"label"`
	Required       bool          `json:"required"`
	Type           string        `json:"type,omitempty"`
	Options        []FieldOption `json:"options,omitempty"`
	CountryOptions bool          `json:"-"`
}

var buyerDocumentTypes = []FieldOption{
	{Value: "F", Label: "F - Persona física española"},
	{Value: "E", Label: "E - Extranjero con NIE"},
	{Value: "X", Label: "X - Extranjero sin NIE (pasaporte)"},
}

var sellerDocumentTypes = []FieldOption{
	{Value: "F", Label: "F - Persona física española"},
	{Value: "J", Label: "J - Persona jurídica/empresa"},
	{Value: "E", Label: "E - Extranjero con NIE"},
	{Value: "X", Label: "X - Extranjero sin NIE (pasaporte)"},
}

// RequiredFields lists the form fields of every section, keyed by the
// canonical section names, in display order.
var RequiredFields = map[string][]FieldDef{
	SectionBuyer: {
		{Name: "nombre_completo", Label: "Nombre completo", Required: true},
		{Name: "tipo_documento", Label: "Tipo documento (F, E, X)", Required: true, Type: "select", Options: buyerDocumentTypes},
		{Name: "nif_nie", Label: "NIF/NIE/Pasaporte", Required: true},
		{Name: "direccion", Label: "Dirección", Required: true},
		{Name: "direccion_complemento", Label: "Complemento dirección", Required: false},
		{Name: "codigo_postal", Label: "Código postal", Required: true},
		{Name: "municipio", Label: "Municipio/Ciudad", Required: false},
		{Name: "provincia", Label: "Provincia", Required: false},
		{Name: "pais", Label: "País", Required: true, Type: "select", CountryOptions: true},
	},
	SectionSeller: {
		{Name: "nombre_completo", Label: "Nombre completo", Required: true},
		{Name: "tipo_documento", Label: "Tipo documento (F, J, E, X)", Required: true, Type: "select", Options: sellerDocumentTypes},
		{Name: "nif_nie", Label: "NIF/NIE/Pasaporte", Required: true},
		{Name: "direccion", Label: "Dirección", Required: true},
		{Name: "direccion_complemento", Label: "Complemento dirección", Required: false},
		{Name: "codigo_postal", Label: "Código postal", Required: true},
		{Name: "municipio", Label: "Municipio/Ciudad", Required: false},
		{Name: "provincia", Label: "Provincia", Required: false},
		{Name: "pais", Label: "País", Required: true, Type: "select", CountryOptions: true},
	},
	SectionProperty: {
		{Name: "direccion", Label: "Dirección", Required: true},
		{Name: "referencia_catastral", Label: "Referencia catastral", Required: true},
		{Name: "codigo_postal", Label: "Código postal", Required: false},
		{Name: "municipio", Label: "Municipio/Ciudad", Required: false},
		{Name: "provincia", Label: "Provincia", Required: false},
	},
	SectionOperation: {
		{Name: "fecha_documento", Label: "Fecha (DD/MM/AAAA)", Required: true},
		{Name: "importe", Label: "Importe (euros)", Required: true},
		{Name: "retencion", Label: "Retención (euros)", Required: false},
		{Name: "porcentaje_adquirido", Label: "Porcentaje adquirido", Required: false},
		{Name: "tipo_iva", Label: "Tipo de IVA (%)", Required: false},
		{Name: "tipo_itp", Label: "Tipo de ITP (%)", Required: false},
		{Name: "codigo_notario", Label: "Código notario", Required: false},
		{Name: "numero_protocolo", Label: "Número protocolo", Required: true},
	},
	SectionPresenter: {
		{Name: "nombre_completo", Label: "Nombre completo", Required: false},
		{Name: "tipo_documento", Label: "Tipo documento", Required: false},
		{Name: "nif_nie", Label: "NIF/NIE", Required: false},
	},
	SectionFiscalRep: {
		{Name: "nombre_completo", Label: "Nombre completo", Required: false},
		{Name: "tipo_documento", Label: "Tipo documento", Required: false},
		{Name: "nif_nie", Label: "NIF/NIE", Required: false},
		{Name: "direccion", Label: "Dirección", Required: false},
		{Name: "codigo_postal", Label: "Código postal", Required: false},
		{Name: "municipio", Label: "Municipio/Ciudad", Required: false},
		{Name: "pais", Label: "País", Required: false, Type: "select", CountryOptions: true},
	},
}
