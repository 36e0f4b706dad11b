package domain

// Page is a limit/offset window over a listing or report.
type Page struct {
	Limit  int
	Offset int
}
