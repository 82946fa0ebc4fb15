package json

import (
	"errors"
	"fmt"
)

// Code enumerates every way a read or write can fail. None means
// success; the Expected codes are parse failures named for the token
// the reader required at the reported offset.
type Code uint8

const (
	None Code = iota
	FileIOError
	InvalidNumber
	InvalidString
	InvalidValueType
	ExpectedColon
	ExpectedComma
	ExpectedStart
	ExpectedQuoteOpen
	ExpectedQuoteClose
	ExpectedBraceOpen
	ExpectedBraceClose
	ExpectedBracketOpen
	ExpectedBracketClose
	ExpectedCommaOrBraceClose
	ExpectedCommaOrBracketClose
	FailedToReachEnd
	UnexpectedValueStart
)

var codeNames = [...]string{
	None:                        "None",
	FileIOError:                 "FileIOError",
	InvalidNumber:               "InvalidNumber",
	InvalidString:               "InvalidString",
	InvalidValueType:            "InvalidValueType",
	ExpectedColon:               "ExpectedColon",
	ExpectedComma:               "ExpectedComma",
	ExpectedStart:               "ExpectedStart",
	ExpectedQuoteOpen:           "ExpectedQuoteOpen",
	ExpectedQuoteClose:          "ExpectedQuoteClose",
	ExpectedBraceOpen:           "ExpectedBraceOpen",
	ExpectedBraceClose:          "ExpectedBraceClose",
	ExpectedBracketOpen:         "ExpectedBracketOpen",
	ExpectedBracketClose:        "ExpectedBracketClose",
	ExpectedCommaOrBraceClose:   "ExpectedCommaOrBraceClose",
	ExpectedCommaOrBracketClose: "ExpectedCommaOrBracketClose",
	FailedToReachEnd:            "FailedToReachEnd",
	UnexpectedValueStart:        "UnexpectedValueStart",
}

func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return "Unknown"
}

// Error pairs a failure Code with the byte offset the cursor had
// reached when the operation stopped. Offset is -1 when an offset is
// not meaningful, as for writer and file errors. File errors wrap the
// underlying os error.
type Error struct {
	Code   Code
	Offset int64
	err    error
}

func (e *Error) Error() string {
	switch {
	case e.err != nil:
		return fmt.Sprintf("json: %s: %v", e.Code, e.err)
	case e.Offset >= 0:
		return fmt.Sprintf("json: %s at offset %d", e.Code, e.Offset)
	}
	return "json: " + e.Code.String()
}

func (e *Error) Unwrap() error { return e.err }

// ErrorCode returns the Code carried by err: None when err is nil or
// was not produced by this package's reader or writer.
func ErrorCode(err error) Code {
	if err == nil {
		return None
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return None
}
