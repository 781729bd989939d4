package orchestrator

import (
	"fmt"
	"io"

	"threshold-cli/internal/interfaces"
)

// OutputHandler implements the OutputHandler interface
type OutputHandler struct {
	out io.Writer
}

// NewOutputHandler creates an output handler writing to out
func NewOutputHandler(out io.Writer) interfaces.OutputHandler {
	return &OutputHandler{out: out}
}

// WriteResult writes "Result = <n>" followed by a newline
func (h *OutputHandler) WriteResult(result int32) error {
	_, err := fmt.Fprintf(h.out, "Result = %d\n", result)
	return err
}
