// Package encoder assembles the Modelo 211 flat file: one fixed-width
// positional record per line, in the record-type order the Agencia Tributaria
// expects. Encoding is best-effort and total; an empty Declaration still
// produces a structurally valid file.
package encoder

import (
	"strings"

	"github.com/username/modelia/backend/src/countries"
	"github.com/username/modelia/backend/src/format"
	"github.com/username/modelia/backend/src/logger"
	"github.com/username/modelia/backend/src/models"
)

// Record type digits, first character of every line.
const (
	RecordHeader      = "1"
	RecordProperty    = "2"
	RecordBuyer       = "3"
	RecordSeller      = "4"
	RecordTransaction = "5"
	RecordFiscalRep   = "6"
	RecordPresenter   = "7"
)

// Header constants mandated by the form.
const (
	formCode              = "211"
	defaultDelegationCode = "05"
	defaultAdministration = "B"
	defaultDocumentType   = "F"
)

// RecordLengths gives the exact line length per record type, including the
// leading type digit. Process-wide, read-only.
var RecordLengths = map[string]int{
	RecordHeader:      156,
	RecordProperty:    147,
	RecordBuyer:       148,
	RecordSeller:      148,
	RecordTransaction: 141,
	RecordFiscalRep:   148,
	RecordPresenter:   148,
}

// Encode renders a normalized Declaration as the newline-joined record
// sequence of a Modelo 211 submission file. Records 6 (fiscal representative)
// and 7 (presenter) are emitted only when the party has a name; they are
// never written as blank lines.
func Encode(decl *models.Declaration) string {
	if decl == nil {
		decl = &models.Declaration{}
	}

	records := []string{
		headerRecord(decl),
		propertyRecord(decl.Property),
		partyRecord(RecordBuyer, decl.Buyer),
		partyRecord(RecordSeller, decl.Seller),
		transactionRecord(decl.Operation),
	}

	if strings.TrimSpace(decl.FiscalRep.FullName) != "" {
		records = append(records, fiscalRepRecord(decl.FiscalRep))
	}
	if strings.TrimSpace(decl.Presenter.FullName) != "" {
		records = append(records, presenterRecord(decl.Presenter))
	}

	logger.L.Info("Encoded declaration file", "records", len(records))
	return strings.Join(records, "\n")
}

func headerRecord(decl *models.Declaration) string {
	var b strings.Builder
	b.WriteString(RecordHeader)
	b.WriteString(format.Text(formCode, 3))
	b.WriteString(format.Text(defaultDelegationCode, 2))
	b.WriteString(format.Text(defaultAdministration, 1))
	b.WriteString(format.Date(decl.Operation.DocumentDate))
	b.WriteString(format.Text("", 13))
	b.WriteString(format.Text("", 40))
	b.WriteString(format.Text("", 88))
	return b.String()
}

func propertyRecord(p models.Property) string {
	var b strings.Builder
	b.WriteString(RecordProperty)
	b.WriteString(format.Text(p.CadastralReference, 20))
	b.WriteString(format.Text(p.Address, 40))
	b.WriteString(format.Text(p.PostalCode, 5))
	b.WriteString(format.Text(p.Municipality, 25))
	b.WriteString(format.Text(p.Province, 25))
	b.WriteString(format.Text("", 31))
	return b.String()
}

// partyRecord writes a buyer (type 3) or seller (type 4) line. The country
// code is resolved from the party's raw country text here, independently of
// whatever normalization already ran upstream.
func partyRecord(recordType string, p models.Party) string {
	var b strings.Builder
	b.WriteString(recordType)
	b.WriteString(format.Text(documentTypeOrDefault(p.DocumentType), 1))
	b.WriteString(format.Text(format.Identity(p.Identity), 9))
	b.WriteString(format.Text(p.FullName, 40))
	b.WriteString(format.Text(p.Address, 40))
	b.WriteString(format.Text(p.PostalCode, 5))
	b.WriteString(format.Text(p.Municipality, 25))
	b.WriteString(format.Text(p.Province, 25))
	b.WriteString(format.Text(resolveCountry(p.Country), 2))
	return b.String()
}

func transactionRecord(op models.Operation) string {
	var b strings.Builder
	b.WriteString(RecordTransaction)
	b.WriteString(format.Text(op.ProtocolNumber, 10))
	b.WriteString(format.Text(op.NotaryCode, 5))
	b.WriteString(format.Number(op.Amount, 11, 0))
	b.WriteString(format.Number(op.Withholding, 11, 0))
	b.WriteString(format.Number(op.PercentAcquired, 3, 0))
	b.WriteString(format.Number(op.VATRate, 2, 0))
	b.WriteString(format.Number(op.TransferTaxRate, 2, 0))
	b.WriteString(format.Text("", 96))
	return b.String()
}

// fiscalRepRecord writes the optional type 6 line. The province slot is left
// blank by the form definition.
func fiscalRepRecord(p models.Party) string {
	var b strings.Builder
	b.WriteString(RecordFiscalRep)
	b.WriteString(format.Text(documentTypeOrDefault(p.DocumentType), 1))
	b.WriteString(format.Text(format.Identity(p.Identity), 9))
	b.WriteString(format.Text(p.FullName, 40))
	b.WriteString(format.Text(p.Address, 40))
	b.WriteString(format.Text(p.PostalCode, 5))
	b.WriteString(format.Text(p.Municipality, 25))
	b.WriteString(format.Text("", 25))
	b.WriteString(format.Text(resolveCountry(p.Country), 2))
	return b.String()
}

func presenterRecord(p models.Party) string {
	var b strings.Builder
	b.WriteString(RecordPresenter)
	b.WriteString(format.Text(documentTypeOrDefault(p.DocumentType), 1))
	b.WriteString(format.Text(format.Identity(p.Identity), 9))
	b.WriteString(format.Text(p.FullName, 40))
	b.WriteString(format.Text("", 97))
	return b.String()
}

func documentTypeOrDefault(docType string) string {
	if strings.TrimSpace(docType) == "" {
		return defaultDocumentType
	}
	return docType
}

func resolveCountry(rawName string) string {
	if strings.TrimSpace(rawName) == "" {
		return countries.DefaultCode
	}
	return countries.Resolve(rawName)
}
