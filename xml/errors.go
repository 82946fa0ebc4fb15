package xml

import "fmt"

// Code enumerates the ways a read or write can fail.
type Code uint8

const (
	None Code = iota
	FileIOError
	ParseError
)

func (c Code) String() string {
	switch c {
	case None:
		return "None"
	case FileIOError:
		return "FileIOError"
	case ParseError:
		return "ParseError"
	}
	return "Unknown"
}

// Error carries the failure Code, the line the underlying parser
// reported (0 when no line is meaningful) and its message. File
// errors wrap the underlying os error.
type Error struct {
	Code    Code
	Line    int
	Message string
	err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" && e.err != nil {
		msg = e.err.Error()
	}
	switch {
	case e.Line > 0:
		return fmt.Sprintf("xml: %s at line %d: %s", e.Code, e.Line, msg)
	case msg != "":
		return fmt.Sprintf("xml: %s: %s", e.Code, msg)
	}
	return "xml: " + e.Code.String()
}

func (e *Error) Unwrap() error { return e.err }
