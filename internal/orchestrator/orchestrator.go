package orchestrator

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"threshold-cli/internal/config"
	"threshold-cli/internal/interfaces"
	"threshold-cli/internal/logger"
	"threshold-cli/internal/transform"
	"threshold-cli/pkg/models"
)

// flagSetter is implemented by config managers that accept flag overrides
type flagSetter interface {
	SetFlag(key string, value interface{})
}

// Orchestrator coordinates configuration, the transform and output
type Orchestrator struct {
	configManager interfaces.ConfigManager
	outputHandler interfaces.OutputHandler
	logOut        io.Writer
	log           zerolog.Logger
}

// New creates an orchestrator printing results to stdout and diagnostics to stderr
func New(stdout, stderr io.Writer) *Orchestrator {
	return NewWithComponents(config.NewManager(), NewOutputHandler(stdout), stderr)
}

// NewWithComponents creates an orchestrator from explicit components
func NewWithComponents(cm interfaces.ConfigManager, out interfaces.OutputHandler, logOut io.Writer) *Orchestrator {
	return &Orchestrator{
		configManager: cm,
		outputHandler: out,
		logOut:        logOut,
		log:           zerolog.Nop(),
	}
}

// LoadConfiguration loads and resolves configuration with precedence and
// rebuilds the logger from it
func (o *Orchestrator) LoadConfiguration(request *models.CheckRequest) (*interfaces.Config, error) {
	if request == nil {
		return nil, NewValidationError("request", nil, "request cannot be nil")
	}

	if _, err := o.configManager.Load(request.ConfigPath); err != nil {
		return nil, NewConfigurationError("failed to load configuration", err)
	}

	if fs, ok := o.configManager.(flagSetter); ok {
		fs.SetFlag("log_level", request.LogLevel)
		fs.SetFlag("log_format", request.LogFormat)
		fs.SetFlag("overflow_policy", request.OverflowPolicy)
	}

	cfg, err := o.configManager.Resolve()
	if err != nil {
		return nil, NewConfigurationError("failed to resolve configuration", err)
	}

	if err := o.configManager.Validate(cfg); err != nil {
		return nil, NewConfigurationError("invalid configuration", err)
	}

	o.log = logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, o.logOut)
	o.log.Debug().
		Str("log_level", cfg.LogLevel).
		Str("overflow_policy", cfg.OverflowPolicy).
		Msg("configuration loaded")

	return cfg, nil
}

// Evaluate applies the threshold transform to the request value
func (o *Orchestrator) Evaluate(request *models.CheckRequest, cfg *interfaces.Config) (int32, error) {
	if request == nil {
		return 0, NewValidationError("request", nil, "request cannot be nil")
	}
	if cfg == nil {
		return 0, NewValidationError("config", nil, "configuration must be loaded first")
	}

	policy, err := transform.ParsePolicy(cfg.OverflowPolicy)
	if err != nil {
		return 0, NewConfigurationError("invalid configuration", err)
	}

	result, err := transform.Apply(request.Value, policy)
	if err != nil {
		if errors.Is(err, transform.ErrOverflow) {
			o.log.Debug().Err(err).Int32("value", request.Value).Msg("transform overflowed")
			return 0, NewOverflowError(request.Value, err)
		}
		return 0, fmt.Errorf("transform failed: %w", err)
	}

	o.log.Debug().
		Int32("value", request.Value).
		Int32("limit", transform.Limit).
		Str("branch", transform.Branch(request.Value)).
		Int32("result", result).
		Msg("transform applied")

	return result, nil
}

// OutputResult writes the result through the output handler
func (o *Orchestrator) OutputResult(result int32) error {
	if err := o.outputHandler.WriteResult(result); err != nil {
		return NewOutputError(err)
	}
	return nil
}
