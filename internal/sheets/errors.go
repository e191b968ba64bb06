package sheets

// Error is a kind of spreadsheet failure. Backends wrap the underlying
// error with one of the kinds below so callers can branch with errors.Is.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrUnavailable means the spreadsheet service could not be reached,
	// rejected the credentials or failed on its side
	ErrUnavailable Error = "spreadsheet service unavailable"

	// ErrNotFound means the spreadsheet or worksheet does not exist
	ErrNotFound Error = "spreadsheet resource not found"

	// ErrAlreadyExists means a worksheet with the same title exists
	ErrAlreadyExists Error = "spreadsheet resource already exists"

	// ErrUnexpectedShape means the resource answered with content of the
	// wrong shape, like a non-numeric total or a missing header
	ErrUnexpectedShape Error = "unexpected spreadsheet content"
)
