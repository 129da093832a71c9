package bullbear

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBody is returned when an invocation carries no payload.
	ErrEmptyBody = errors.New("message body is empty")

	// ErrNotDict is returned when the payload is present but not
	// dictionary-shaped.
	ErrNotDict = errors.New("not a dictionary")

	// ErrTickerTooLong rejects tickers over TickerMaxLen bytes.
	ErrTickerTooLong = errors.New("ticker too long")

	// ErrAuditPathTooLong rejects audit paths over AuditPathMaxLen entries.
	ErrAuditPathTooLong = errors.New("audit path too long")

	// ErrUnsupportedCommand is returned for any command other than "Buy".
	ErrUnsupportedCommand = errors.New("Unsupported command")
)

// fieldErr reports a missing or mis-typed payload field by name.
func fieldErr(name string) error {
	return fmt.Errorf("could not parse %s", name)
}
