// Where: ec2-starter/internal/starter/handler.go
// What: Trigger handler that requests one EC2 instance start.
// Why: Resolve the target, call StartInstances once, and log the outcome.
package starter

import (
	"context"
	"log/slog"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/controlplane"
	"github.com/poruru/ec2-starter/internal/envutil"
	"github.com/poruru/ec2-starter/internal/logging"
)

// Handler is safe for concurrent invocations; it holds no per-invocation state.
type Handler struct {
	Client controlplane.Starter
	Logger *slog.Logger
	// DryRun sends the request with the EC2 DryRun flag set. EC2_STARTER_DRY_RUN
	// in the execution context enables it per invocation.
	DryRun bool
}

func New(client controlplane.Starter, logger *slog.Logger) *Handler {
	return &Handler{Client: client, Logger: logger}
}

// Handle runs one invocation against the given execution context.
// It never returns an error: every failure is logged and folded into the Outcome.
func (h *Handler) Handle(ctx context.Context, env envutil.Lookup) Outcome {
	return h.handle(ctx, env, h.logger())
}

func (h *Handler) handle(ctx context.Context, env envutil.Lookup, logger *slog.Logger) Outcome {
	instanceID := envutil.Value(env, constants.EnvInstanceID)
	if instanceID == "" {
		logger.Error("No EC2 instance ID found in environment variables", "key", constants.EnvInstanceID)
		return Outcome{Kind: ConfigurationError, Err: ErrMissingInstanceID}
	}

	if h.Client == nil {
		err := &controlplane.ClientError{Err: errNoClient}
		return h.controlPlaneFailure(logger, instanceID, err)
	}

	request := controlplane.StartRequest{
		InstanceID: instanceID,
		DryRun:     h.DryRun || envutil.Bool(env, constants.EnvDryRun),
	}
	change, err := h.Client.StartInstance(ctx, request)
	if err != nil {
		return h.controlPlaneFailure(logger, instanceID, err)
	}

	if change.DryRun {
		logger.Info("EC2 instance start permitted (dry run)", "instance_id", instanceID)
	} else {
		logger.Info("EC2 instance started",
			"instance_id", instanceID,
			"previous_state", change.Previous,
			"current_state", change.Current,
		)
	}
	return Outcome{Kind: Success, InstanceID: instanceID, Change: change}
}

func (h *Handler) controlPlaneFailure(logger *slog.Logger, instanceID string, err error) Outcome {
	failure := controlplane.Classify(err)
	logger.Error("Error starting EC2 instance",
		"instance_id", instanceID,
		"failure", string(failure),
		"error", err.Error(),
	)
	return Outcome{Kind: ControlPlaneError, InstanceID: instanceID, Failure: failure, Err: err}
}

func (h *Handler) logger() *slog.Logger {
	if h.Logger == nil {
		return logging.Discard()
	}
	return h.Logger
}
