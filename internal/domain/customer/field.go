package customer

// Labels printed in front of each value. They match the file headers.
const (
	LabelFullName   = HeaderFullName
	LabelPhone      = HeaderPhone
	LabelAddress    = HeaderAddress
	LabelPostalCode = HeaderPostalCode
)

// DefaultCaption is printed at the top of each label when no shop name is set
const DefaultCaption = "فاکتور مشتری"

// Field is one labelled value on a printed label
type Field struct {
	Label string
	Value string
}

// Headers returns the column headers in the order written for a new file
func Headers() []string {
	return []string{HeaderFullName, HeaderPhone, HeaderAddress, HeaderPostalCode}
}
