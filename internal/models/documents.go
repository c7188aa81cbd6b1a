package models

// DocumentType is the fixed, non-extensible set of paperwork the app tracks.
type DocumentType string

const (
	DocLicencia            DocumentType = "licencia"
	DocCedula              DocumentType = "cedula"
	DocMedico              DocumentType = "medico"
	DocRCV                 DocumentType = "rcv"
	DocImpuestoMunicipal   DocumentType = "impuesto_municipal"
	DocCertificadoSaberes  DocumentType = "certificado_saberes"
)

// Document is one tracked paper with an optional expiration date (ISO
// string, empty when unset) and whether a photo is attached. One global set
// per installation, not owned by a vehicle.
type Document struct {
	ID             DocumentType `json:"id"`
	Name           string       `json:"name"`
	ExpirationDate string       `json:"expirationDate,omitempty"`
	HasPhoto       bool         `json:"hasPhoto"`
}

// DocumentUpdate is a partial update of a document.
type DocumentUpdate struct {
	ExpirationDate *string
	HasPhoto       *bool
}

// Apply copies the non-nil fields of the update onto the document.
func (u DocumentUpdate) Apply(d *Document) {
	if u.ExpirationDate != nil {
		d.ExpirationDate = *u.ExpirationDate
	}
	if u.HasPhoto != nil {
		d.HasPhoto = *u.HasPhoto
	}
}

// Expense is a money entry the user logs against the current month.
type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}
