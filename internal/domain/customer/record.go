package customer

import "strings"

// Column headers of the backing file. Lookup is by name, so existing files
// may order the columns differently.
const (
	HeaderFullName   = "نام و نام خانوادگی"
	HeaderPhone      = "شماره تماس"
	HeaderAddress    = "آدرس محل سکونت"
	HeaderPostalCode = "کد پستی"
)

// Record is one customer's label entry. Field order here is the column order
// written for a new file.
type Record struct {
	FullName   string `csv:"نام و نام خانوادگی" json:"full_name"`
	Phone      string `csv:"شماره تماس" json:"phone"`
	Address    string `csv:"آدرس محل سکونت" json:"address"`
	PostalCode string `csv:"کد پستی" json:"postal_code"`
}

// NewRecord builds a record with every field trimmed of surrounding whitespace
func NewRecord(fullName, phone, address, postalCode string) Record {
	return Record{
		FullName:   strings.TrimSpace(fullName),
		Phone:      strings.TrimSpace(phone),
		Address:    strings.TrimSpace(address),
		PostalCode: strings.TrimSpace(postalCode),
	}
}

// FromColumns builds a record from a header → value map. Missing headers
// yield empty fields.
func FromColumns(cols map[string]string) Record {
	return NewRecord(
		cols[HeaderFullName],
		cols[HeaderPhone],
		cols[HeaderAddress],
		cols[HeaderPostalCode],
	)
}

// IsBlank returns true if every field is empty after trimming
func (r Record) IsBlank() bool {
	return strings.TrimSpace(r.FullName) == "" &&
		strings.TrimSpace(r.Phone) == "" &&
		strings.TrimSpace(r.Address) == "" &&
		strings.TrimSpace(r.PostalCode) == ""
}

// Fields returns the labelled fields in print order
func (r Record) Fields() []Field {
	return []Field{
		{Label: LabelFullName, Value: r.FullName},
		{Label: LabelPhone, Value: r.Phone},
		{Label: LabelAddress, Value: r.Address},
		{Label: LabelPostalCode, Value: r.PostalCode},
	}
}

// RecordSet is an ordered sequence of records; order is file order
type RecordSet []Record

// Len returns the number of records
func (s RecordSet) Len() int {
	return len(s)
}

// IsEmpty returns true if the set has no records
func (s RecordSet) IsEmpty() bool {
	return len(s) == 0
}
