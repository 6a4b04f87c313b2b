package menu

import (
	"errors"
	"fmt"
)

// ErrAuthentication indicates missing, invalid or unrefreshable credentials.
var ErrAuthentication = errors.New("authentication failed")

// ErrRemoteTargetNotFound indicates the destination worksheet does not exist in the spreadsheet.
var ErrRemoteTargetNotFound = errors.New("worksheet not found")

// ErrRemoteCall indicates a network or API failure talking to the remote document store.
var ErrRemoteCall = errors.New("remote call failed")

// ErrEncoding indicates page content that is not valid UTF-8.
var ErrEncoding = errors.New("invalid UTF-8 content")

// ParseError is the per-page failure to read or decode a page. It excludes the page from the
// sync but does not abort it.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("error parsing %v (%v)", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
