// Where: ec2-starter/internal/starter/policy.go
// What: Policy for reporting a missing target to the host runtime.
// Why: Let operators choose whether a misconfigured function counts as a failed invocation.
package starter

import (
	"log/slog"
	"strings"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/envutil"
	"github.com/poruru/ec2-starter/internal/logging"
)

type MissingTargetPolicy string

const (
	// MissingTargetIgnore logs the configuration error and reports success to the host.
	MissingTargetIgnore MissingTargetPolicy = "ignore"
	// MissingTargetFail logs the configuration error and returns it to the host,
	// so the trigger source's retry and alerting apply.
	MissingTargetFail MissingTargetPolicy = "fail"
)

// ParseMissingTargetPolicy accepts "ignore" and "fail" (case-insensitive).
// The boolean is false for unrecognized non-empty values.
func ParseMissingTargetPolicy(value string) (MissingTargetPolicy, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", string(MissingTargetIgnore):
		return MissingTargetIgnore, true
	case string(MissingTargetFail):
		return MissingTargetFail, true
	default:
		return MissingTargetIgnore, false
	}
}

// ResolveMissingTargetPolicy reads EC2_STARTER_ON_MISSING_ID from env.
// Unrecognized values are logged as a warning and resolve to ignore.
func ResolveMissingTargetPolicy(env envutil.Lookup, logger *slog.Logger) MissingTargetPolicy {
	if logger == nil {
		logger = logging.Discard()
	}
	raw := envutil.Value(env, constants.EnvOnMissingTarget)
	policy, ok := ParseMissingTargetPolicy(raw)
	if !ok {
		logger.Warn("Unrecognized missing-target policy, using ignore",
			"key", constants.EnvOnMissingTarget,
			"value", raw,
		)
	}
	return policy
}

// HostError is the error reported to the host for outcome. Only a missing
// target under MissingTargetFail yields one; control-plane failures never do.
func (p MissingTargetPolicy) HostError(outcome Outcome) error {
	if outcome.Kind == ConfigurationError && p == MissingTargetFail {
		return outcome.Err
	}
	return nil
}
