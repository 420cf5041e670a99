// Where: ec2-starter/internal/starter/outcome.go
// What: Invocation outcome types.
// Why: Give every invocation one explicit terminal result for logging and reporting.
package starter

import (
	"errors"

	"github.com/poruru/ec2-starter/internal/constants"
	"github.com/poruru/ec2-starter/internal/controlplane"
)

// ErrMissingInstanceID is reported when EC2_INSTANCE_ID is absent or empty.
var ErrMissingInstanceID = errors.New(constants.EnvInstanceID + " is not set")

var errNoClient = errors.New("control-plane client not configured")

type OutcomeKind int

const (
	Success OutcomeKind = iota
	ConfigurationError
	ControlPlaneError
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case ConfigurationError:
		return "configuration-error"
	case ControlPlaneError:
		return "control-plane-error"
	default:
		return "unknown"
	}
}

// Outcome is produced once per invocation.
type Outcome struct {
	Kind       OutcomeKind
	InstanceID string
	Change     controlplane.StateChange
	Failure    controlplane.FailureClass
	Err        error
}
