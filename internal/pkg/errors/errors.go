package errors

import "errors"

// Custom application errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrReminderNotFound     = errors.New("reminder not found")
	ErrValidation           = errors.New("validation failed")              // Bad input on create/edit
	ErrInvalidDateTime      = errors.New("invalid schedule time")          // Schedule too soon, too far or zero
	ErrMonthlyLimitExceeded = errors.New("monthly reminder limit exceeded") // Free tier quota breach
	ErrDatabaseOperation    = errors.New("database operation failed")      // Generic database error
	ErrScheduling           = errors.New("scheduling failed")              // Generic scheduling error
	ErrGeneration           = errors.New("message generation failed")      // AI or template generation error
	ErrDelivery             = errors.New("delivery failed")                // Channel transport error
	ErrUnauthorized         = errors.New("unauthorized")                   // Missing or invalid identity
	ErrInternalServer       = errors.New("internal server error")          // Generic internal error
)

// CodeMonthlyLimitExceeded is the machine readable code sent to clients on quota breach.
const CodeMonthlyLimitExceeded = "MONTHLY_LIMIT_EXCEEDED"
