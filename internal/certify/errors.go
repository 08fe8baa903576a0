package certify

// Exit codes, one per terminal condition. Code 2 is also what the flag
// package uses for usage errors, so config failures share it.
const (
	ExitOK             = 0
	ExitRunFailure     = 1
	ExitUsage          = 2
	ExitBadMode        = 3
	ExitUnknownFont    = 4
	ExitBadImageExt    = 5
	ExitBadCoordinates = 6
	ExitBadRosterExt   = 7
	ExitBadColor       = 8
	ExitRosterData     = 9
)

// ValidationError is a single failed check. Message is what the user sees,
// Code is the process exit code the caller should map it to.
type ValidationError struct {
	Code    int
	Message string
}

func (e *ValidationError) Error() string { return e.Message }
