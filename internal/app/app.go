package app

import (
	"fmt"
	"io"

	"threshold-cli/internal/orchestrator"
	"threshold-cli/pkg/models"
)

// Run executes the main application logic
func Run(request *models.CheckRequest, stdout, stderr io.Writer) error {
	orch := orchestrator.New(stdout, stderr)

	cfg, err := orch.LoadConfiguration(request)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	result, err := orch.Evaluate(request, cfg)
	if err != nil {
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if err := orch.OutputResult(result); err != nil {
		return fmt.Errorf("output failed: %w", err)
	}

	return nil
}
