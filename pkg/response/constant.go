package response

const (
	// MessageSuccess is the default success message.
	MessageSuccess = "Success"

	// DefaultErrorMessage is returned for unexpected internal errors.
	DefaultErrorMessage = "Something went wrong"

	// InternalServerErrorCode is the error code for internal failures.
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for datetimes.
	DateTimeFormat = "2006-01-02 15:04:05"
)
