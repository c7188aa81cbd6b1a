package repository

import (
	"context"
	"time"

	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/models"
)

var defaultDocuments = []models.Document{
	{ID: models.DocLicencia, Name: "Licencia"},
	{ID: models.DocCedula, Name: "Cedula"},
	{ID: models.DocMedico, Name: "Certificado Medico"},
	{ID: models.DocRCV, Name: "R.C.V."},
	{ID: models.DocImpuestoMunicipal, Name: "Impuesto Municipal"},
	{ID: models.DocCertificadoSaberes, Name: "Certificado de Saberes"},
}

// expiringSoonDays is the warning window for document expiry.
const expiringSoonDays = 15

// Documents returns the tracked paperwork. Document types added after the
// stored list was written are backfilled with empty state and persisted.
func (r *Repository) Documents(ctx context.Context) []models.Document {
	var stored []models.Document
	if !r.getJSON(ctx, kvstore.KeyDocuments, &stored) {
		return defaultDocuments
	}

	storedIDs := make(map[models.DocumentType]bool, len(stored))
	for _, d := range stored {
		storedIDs[d.ID] = true
	}

	docs := stored
	changed := false
	for _, def := range defaultDocuments {
		if !storedIDs[def.ID] {
			docs = append(docs, def)
			changed = true
		}
	}

	if changed {
		r.SaveDocuments(ctx, docs)
	}

	return docs
}

// SaveDocuments overwrites the document collection.
func (r *Repository) SaveDocuments(ctx context.Context, docs []models.Document) {
	r.setJSON(ctx, kvstore.KeyDocuments, docs)
}

// UpdateDocument applies a partial update to one document.
func (r *Repository) UpdateDocument(ctx context.Context, id models.DocumentType, update models.DocumentUpdate) {
	docs := r.Documents(ctx)
	for i := range docs {
		if docs[i].ID == id {
			update.Apply(&docs[i])
		}
	}
	r.SaveDocuments(ctx, docs)
}

// DaysRemaining reports the whole days until the expiration date, negative
// when already expired. Returns false for documents without a date or with
// one that does not parse.
func (r *Repository) DaysRemaining(doc models.Document) (int, bool) {
	if doc.ExpirationDate == "" {
		return 0, false
	}
	expiry, err := parseStoredDate(doc.ExpirationDate)
	if err != nil {
		return 0, false
	}

	now := r.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	expiry = time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)

	return int(expiry.Sub(today).Hours() / 24), true
}

// ExpiringDocuments filters documents whose expiry is inside the warning
// window, expired ones included.
func (r *Repository) ExpiringDocuments(docs []models.Document) []models.Document {
	var out []models.Document
	for _, doc := range docs {
		if days, ok := r.DaysRemaining(doc); ok && days < expiringSoonDays {
			out = append(out, doc)
		}
	}
	return out
}
