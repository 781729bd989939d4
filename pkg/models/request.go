package models

// DefaultValue is the input the program always evaluates
const DefaultValue int32 = 42

// CheckRequest represents the application state for a single evaluation
type CheckRequest struct {
	Value          int32
	ConfigPath     string
	LogLevel       string
	LogFormat      string
	OverflowPolicy string
}

// NewCheckRequest creates a request for the hard-coded input
func NewCheckRequest() *CheckRequest {
	return &CheckRequest{
		Value: DefaultValue,
	}
}
