package app

// Constants
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 8765

	// Request bodies larger than this are rejected.
	MaxBodyBytes = 1 << 20

	// Error messages
	ErrNotFound     = "Not found"
	ErrUnauthorized = "Unauthorized"
	ErrReadBody     = "Failed to read request body"

	// Response messages
	MsgSaved = "Gespeichert"

	ContentTypeHTML = "text/html; charset=utf-8"
	ContentTypeJSON = "application/json; charset=utf-8"
)
