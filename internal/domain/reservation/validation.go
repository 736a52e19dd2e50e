package reservation

import (
	"github.com/BruksfildServices01/reservation-api/internal/httperr"
	"github.com/BruksfildServices01/reservation-api/internal/validators"
)

// ===============================
// Validations
// ===============================

const (
	ErrCodeMissingFields = "missing_fields"
	ErrCodeInvalidField  = "invalid_field"
)

// Validate checks a record before it may reach the store.
// Every field except Note is required. No field may contain a line break,
// since the store keeps one record per line.
func Validate(r Record) error {
	if i := validators.FirstEmpty(r.Name, r.Phone, r.Date, r.Time, r.People); i >= 0 {
		return httperr.ErrField(ErrCodeMissingFields, Columns[i])
	}
	for i, f := range r.Fields() {
		if validators.HasLineBreak(f) {
			return httperr.ErrField(ErrCodeInvalidField, Columns[i])
		}
	}
	return nil
}
