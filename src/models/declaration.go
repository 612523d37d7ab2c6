package models

// Canonical section keys of an extracted deed. The AI extractor is instructed
// to use exactly these, but older prompt revisions produced "datos_" prefixed
// variants which the normalizer still accepts.
const (
	SectionBuyer     = "comprador"
	SectionSeller    = "vendedor"
	SectionProperty  = "inmueble"
	SectionOperation = "operacion"
	SectionPresenter = "presentante"
	SectionFiscalRep = "representante_fiscal"
)

// SectionKeys lists all canonical sections in their fixed order.
var SectionKeys = []string{
	SectionBuyer,
	SectionSeller,
	SectionProperty,
	SectionOperation,
	SectionPresenter,
	SectionFiscalRep,
}

// Party is one of buyer, seller, fiscal representative or presenter.
// Country stays as the free-text name from the deed; the encoder resolves it
// to an alpha-2 code at write time.
type Party struct {
	FullName     string `json:"nombre_completo"`
	DocumentType string `json:"tipo_documento"` // F, J (seller only), E or X
	Identity     string `json:"nif_nie"`
	Address      string `json:"direccion"`
	AddressExtra string `json:"direccion_complemento"`
	PostalCode   string `json:"codigo_postal"`
	Municipality string `json:"municipio"`
	Province     string `json:"provincia"`
	Country      string `json:"pais"`
}

// Property describes the transferred real estate.
type Property struct {
	Address            string `json:"direccion"`
	CadastralReference string `json:"referencia_catastral"`
	PostalCode         string `json:"codigo_postal"`
	Municipality       string `json:"municipio"`
	Province           string `json:"provincia"`
}

// Operation holds the monetary and document terms of the transfer.
type Operation struct {
	DocumentDate    string  `json:"fecha_documento"`
	Amount          float64 `json:"importe"`
	Withholding     float64 `json:"retencion"`
	PercentAcquired float64 `json:"porcentaje_adquirido"`
	VATRate         float64 `json:"tipo_iva"`
	TransferTaxRate float64 `json:"tipo_itp"`
	NotaryCode      string  `json:"codigo_notario"`
	ProtocolNumber  string  `json:"numero_protocolo"`

	// WithholdingDerived is true when the 3% non-resident withholding was
	// computed by the normalizer rather than extracted from the deed.
	WithholdingDerived bool `json:"retencion_derivada,omitempty"`
}

// Declaration is the normalized six-section view of one deed. It lives for a
// single encode call; nothing in the pipeline retains it.
type Declaration struct {
	Buyer     Party     `json:"comprador"`
	Seller    Party     `json:"vendedor"`
	Property  Property  `json:"inmueble"`
	Operation Operation `json:"operacion"`
	Presenter Party     `json:"presentante"`
	FiscalRep Party     `json:"representante_fiscal"`
}
