package util

const (
	// Success indicates the command completed.
	Success = iota
	// ErrLocalExe indicates error occurs executing the command.
	ErrLocalExe
	// ErrLocalParse indicates error occurs locally when parsing the input.
	ErrLocalParse
)
