// Package schema reconciles the semi-structured section maps produced by the
// AI extractor into the canonical six-section Declaration. Normalization is
// total and pure: it never fails, it fills defaults for anything missing and
// it leaves the caller's map untouched.
package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/username/modelia/backend/src/countries"
	"github.com/username/modelia/backend/src/format"
	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/models"
	"github.com/username/modelia/backend/src/utils"
)

// legacyKeyPrefix is the section prefix older prompt revisions leaked into
// extractor output ("datos_comprador" instead of "comprador"). The canonical
// key wins when both are present.
const legacyKeyPrefix = "datos_"

// nonResidentWithholdingRate is the fraction of the sale amount withheld when
// the seller is not resident in Spain.
const nonResidentWithholdingRate = 0.03

const (
	defaultPercentAcquired = 100
	defaultVATRate         = 0
	defaultTransferTaxRate = 7
)

// Normalize builds a Declaration from raw extractor output. Missing sections
// become empty, numeric operation fields are coerced with role defaults, the
// country names of buyer, seller and fiscal representative are uppercased and
// the 3% non-resident withholding is derived when absent.
func Normalize(raw map[string]any) *models.Declaration {
	if raw == nil {
		raw = map[string]any{}
	}

	buyer := partyFrom(section(raw, models.SectionBuyer))
	seller := partyFrom(section(raw, models.SectionSeller))
	presenter := partyFrom(section(raw, models.SectionPresenter))
	fiscalRep := partyFrom(section(raw, models.SectionFiscalRep))

	buyer.Country = strings.ToUpper(buyer.Country)
	seller.Country = strings.ToUpper(seller.Country)
	fiscalRep.Country = strings.ToUpper(fiscalRep.Country)

	prop := section(raw, models.SectionProperty)
	op := section(raw, models.SectionOperation)

	decl := &models.Declaration{
		Buyer:  buyer,
		Seller: seller,
		Property: models.Property{
			Address:            stringField(prop, "direccion"),
			CadastralReference: stringField(prop, "referencia_catastral"),
			PostalCode:         stringField(prop, "codigo_postal"),
			Municipality:       stringField(prop, "municipio"),
			Province:           stringField(prop, "provincia"),
		},
		Operation: models.Operation{
			DocumentDate:   stringField(op, "fecha_documento"),
			NotaryCode:     stringField(op, "codigo_notario"),
			ProtocolNumber: stringField(op, "numero_protocolo"),
		},
		Presenter: presenter,
		FiscalRep: fiscalRep,
	}

	decl.Operation.Amount = numberField(op, "importe", 0)
	decl.Operation.Withholding = numberField(op, "retencion", 0)
	decl.Operation.PercentAcquired = numberField(op, "porcentaje_adquirido", defaultPercentAcquired)
	decl.Operation.VATRate = numberField(op, "tipo_iva", defaultVATRate)
	decl.Operation.TransferTaxRate = numberField(op, "tipo_itp", defaultTransferTaxRate)

	deriveWithholding(decl)

	return decl
}

// deriveWithholding fills in the 3% non-resident withholding when the deed
// does not state one. Residency is decided on the resolved alpha-2 code, so
// "FRANCE", "Francia" and "FR" all count as non-resident the same way.
func deriveWithholding(decl *models.Declaration) {
	op := &decl.Operation
	if op.Withholding != 0 || op.Amount == 0 {
		return
	}
	if decl.Seller.Country == "" {
		return
	}
	if countries.Resolve(decl.Seller.Country) == countries.DefaultCode {
		return
	}

	op.Withholding = utils.RoundFloat(op.Amount*nonResidentWithholdingRate, 2)
	op.WithholdingDerived = true
	logger.L.Info("Derived withholding for non-resident seller",
		"sellerCountry", decl.Seller.Country,
		"amount", op.Amount,
		"withholding", op.Withholding)
}

// section returns the named section map, accepting the legacy "datos_"
// prefixed key when the canonical one is absent. The caller must not mutate
// the returned map; it may alias the input.
func section(raw map[string]any, key string) map[string]any {
	if sec, ok := raw[key].(map[string]any); ok {
		return sec
	}
	if sec, ok := raw[legacyKeyPrefix+key].(map[string]any); ok {
		logger.L.Debug("Section found under legacy prefixed key", "section", key)
		return sec
	}
	logger.L.Warn("Missing section in extracted data, using empty defaults", "section", key)
	return map[string]any{}
}

func partyFrom(sec map[string]any) models.Party {
	return models.Party{
		FullName:     stringField(sec, "nombre_completo"),
		DocumentType: stringField(sec, "tipo_documento"),
		Identity:     stringField(sec, "nif_nie"),
		Address:      stringField(sec, "direccion"),
		AddressExtra: stringField(sec, "direccion_complemento"),
		PostalCode:   stringField(sec, "codigo_postal"),
		Municipality: stringField(sec, "municipio"),
		Province:     stringField(sec, "provincia"),
		Country:      stringField(sec, "pais"),
	}
}

// stringField reads a field as text. JSON numbers (postal codes, notary
// codes) are rendered without a fractional part.
func stringField(sec map[string]any, key string) string {
	switch v := sec[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// numberField coerces a numeric field, falling back to def when the value is
// absent, unparseable or falsy (zero/empty), matching the form's defaulting
// rules.
func numberField(sec map[string]any, key string, def float64) float64 {
	v, ok := sec[key]
	if !ok || v == nil {
		return def
	}
	parsed, usedDefault := format.ParseNumber(v)
	if usedDefault {
		logger.L.Warn("Unparseable numeric field, using default", "field", key, "value", v, "default", def)
		return def
	}
	if parsed == 0 {
		return def
	}
	return parsed
}
