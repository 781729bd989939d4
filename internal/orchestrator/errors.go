package orchestrator

import (
	"errors"
	"fmt"
	"strings"

	"threshold-cli/internal/transform"
)

// Error types for different categories of failures
var (
	ErrConfigurationInvalid = errors.New("configuration error")
	ErrValidationFailed     = errors.New("validation error")
	ErrOverflow             = errors.New("overflow error")
	ErrOutputFailed         = errors.New("output error")
)

// ThresholdError represents a structured error with actionable guidance
type ThresholdError struct {
	Type     error
	Message  string
	Guidance string
	Cause    error
}

func (e *ThresholdError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	if e.Guidance != "" {
		return fmt.Sprintf("%s\n\nSuggestion: %s", msg, e.Guidance)
	}
	return msg
}

func (e *ThresholdError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is this error's category
func (e *ThresholdError) Is(target error) bool {
	return e.Type == target
}

// Error constructors with actionable guidance

func NewConfigurationError(message string, cause error) *ThresholdError {
	guidance := "Check your configuration file syntax. " +
		"Use 'threshold --config /path/to/config.toml' to specify a different config file."

	if cause != nil {
		switch {
		case strings.Contains(cause.Error(), "permission"):
			guidance = "Check file permissions for ~/.config/threshold/ and the config file."
		case strings.Contains(cause.Error(), "log_level"):
			guidance = "log_level must be one of debug, info, warn, error. " +
				"Set it in config.toml, THRESHOLD_LOG_LEVEL or --log-level."
		case strings.Contains(cause.Error(), "log_format"):
			guidance = "log_format must be 'console' or 'json'."
		case strings.Contains(cause.Error(), "overflow policy"):
			guidance = "overflow_policy must be 'wrap' or 'error'."
		}
	}

	return &ThresholdError{
		Type:     ErrConfigurationInvalid,
		Message:  message,
		Guidance: guidance,
		Cause:    cause,
	}
}

func NewOverflowError(value int32, cause error) *ThresholdError {
	return &ThresholdError{
		Type:    ErrOverflow,
		Message: fmt.Sprintf("result for %d does not fit in 32 bits", value),
		Guidance: fmt.Sprintf("Inputs below %d are doubled and the rest are offset by %d. "+
			"Use --overflow wrap to accept two's-complement wrap-around.", transform.Limit, transform.Limit),
		Cause: cause,
	}
}

func NewOutputError(cause error) *ThresholdError {
	return &ThresholdError{
		Type:     ErrOutputFailed,
		Message:  "failed to write result",
		Guidance: "Check that standard output is open and writable.",
		Cause:    cause,
	}
}

func NewValidationError(field string, value interface{}, reason string) *ThresholdError {
	return &ThresholdError{
		Type:    ErrValidationFailed,
		Message: fmt.Sprintf("validation failed for %s: %v (%s)", field, value, reason),
	}
}
