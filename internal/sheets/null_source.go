package sheets

import "context"

// NullSource is the RowSource used in sample mode: every fetch reports that
// no spreadsheet is configured, which downstream converts into empty tables
// and sample metric values.
type NullSource struct{}

func NewNullSource() *NullSource {
	return &NullSource{}
}

func (n *NullSource) FetchRows(ctx context.Context, sheetName string) ([][]string, error) {
	return nil, ErrNotConfigured
}

func (n *NullSource) SheetNames(ctx context.Context) ([]string, error) {
	return nil, ErrNotConfigured
}
