package dto

import (
	"strings"

	"github.com/BruksfildServices01/reservation-api/internal/csvcodec"
	domain "github.com/BruksfildServices01/reservation-api/internal/domain/reservation"
)

// ReservationListJSON renders records as a JSON array of objects with the
// keys name, phone, date, time, people and note, in that order. Values go
// through csvcodec.JSONEscape and are otherwise copied byte for byte.
func ReservationListJSON(records []domain.Record) []byte {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for j, v := range r.Fields() {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteByte('"')
			b.WriteString(domain.Columns[j])
			b.WriteString(`":"`)
			b.WriteString(csvcodec.JSONEscape(v))
			b.WriteByte('"')
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return []byte(b.String())
}
