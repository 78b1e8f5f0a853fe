package sheets_mocks

//go:generate mockgen -source=../interfaces.go -destination=sheets_mocks.go -package=sheets_mocks

// This file contains the go:generate directive to generate mocks for the
// row source interface. To regenerate the mocks, run:
//   go generate ./internal/sheets/sheets_mocks
