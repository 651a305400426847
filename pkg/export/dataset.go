package export

// LabeledValue is a caption/value pair rendered above the table body.
type LabeledValue struct {
	Label string
	Value string
}

// Dataset defines exportable report content: optional summary lines
// followed by a table.
type Dataset struct {
	Title   string
	Summary []LabeledValue
	Headers []string
	Rows    [][]string
}
