package cli

// ErrorCode defines error types for CLI operations
type ErrorCode string

const (
	InvalidArguments ErrorCode = "InvalidArguments"
	NotATerminal     ErrorCode = "NotATerminal"
	StdinRead        ErrorCode = "StdinRead"
	Canceled         ErrorCode = "Canceled"
)

func (c ErrorCode) ErrorCode() string {
	return string(c)
}
