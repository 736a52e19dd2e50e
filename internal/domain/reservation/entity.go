package reservation

import "strings"

// ===============================
// Record
// ===============================

// Columns is the fixed column order of the store file.
var Columns = []string{"name", "phone", "date", "time", "people", "note"}

// Header is the first line of every store file.
var Header = strings.Join(Columns, ",")

// Record is one reservation as it is persisted.
// Date, Time and People are kept as submitted text.
type Record struct {
	Name   string
	Phone  string
	Date   string
	Time   string
	People string
	Note   string
}

// Fields returns the values in column order.
func (r Record) Fields() []string {
	return []string{r.Name, r.Phone, r.Date, r.Time, r.People, r.Note}
}

// FromFields builds a Record from decoded values. It reports false when fewer
// than len(Columns) values are present; extra values are ignored.
func FromFields(f []string) (Record, bool) {
	if len(f) < len(Columns) {
		return Record{}, false
	}
	return Record{
		Name:   f[0],
		Phone:  f[1],
		Date:   f[2],
		Time:   f[3],
		People: f[4],
		Note:   f[5],
	}, true
}
