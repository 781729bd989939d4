package interfaces

// OutputHandler writes the computed result to its destination
type OutputHandler interface {
	// WriteResult writes a single "Result = <n>" line
	WriteResult(result int32) error
}
