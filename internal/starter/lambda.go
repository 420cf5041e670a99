// Where: ec2-starter/internal/starter/lambda.go
// What: Lambda runtime adapter for the trigger handler.
// Why: Map one scheduled event to one Handle call and report back to the runtime.
package starter

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambdacontext"

	"github.com/poruru/ec2-starter/internal/envutil"
)

// Invoke is the aws-lambda-go entry. The event payload is ignored.
// The execution context is the process environment, read on every call.
func (h *Handler) Invoke(ctx context.Context, _ json.RawMessage) error {
	return h.InvokeWith(ctx, envutil.OSEnv{})
}

// InvokeWith runs one invocation and returns an error to the runtime only when
// the target is missing and EC2_STARTER_ON_MISSING_ID=fail.
func (h *Handler) InvokeWith(ctx context.Context, env envutil.Lookup) error {
	logger := h.logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With("request_id", lc.AwsRequestID)
	}

	policy := ResolveMissingTargetPolicy(env, logger)
	return policy.HostError(h.handle(ctx, env, logger))
}
