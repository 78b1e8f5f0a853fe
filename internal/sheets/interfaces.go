package sheets

import "context"

// RowSource abstracts where raw spreadsheet rows come from: the Google
// Sheets values REST API, CSV export URLs, or nothing at all in sample mode.
// Rows are returned as-is (strings, first row is the header); coercion is the
// caller's concern.
type RowSource interface {
	// FetchRows returns every row of the named sheet tab. A sheet that
	// exists but has no data yields an empty slice, not an error.
	FetchRows(ctx context.Context, sheetName string) ([][]string, error)

	// SheetNames lists the spreadsheet's tab titles, used as a connection
	// check at startup and by the /sheets endpoint.
	SheetNames(ctx context.Context) ([]string, error)
}
