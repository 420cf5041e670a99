// Where: ec2-starter/internal/controlplane/errors.go
// What: Classification of control-plane failures.
// Why: Give operators a stable label for each failure in the logs.
package controlplane

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/aws/smithy-go"
)

// FailureClass labels why a start request failed.
type FailureClass string

const (
	FailureNone          FailureClass = ""
	FailureAuthorization FailureClass = "authorization"
	FailureInvalidTarget FailureClass = "invalid-target"
	FailureConflict      FailureClass = "conflict"
	FailureThrottled     FailureClass = "throttled"
	FailureTransient     FailureClass = "transient"
	FailureService       FailureClass = "service"
	FailureRejected      FailureClass = "rejected"
	FailureClient        FailureClass = "client"
	FailureUnknown       FailureClass = "unknown"
)

var codeClasses = map[string]FailureClass{
	"AuthFailure":                  FailureAuthorization,
	"UnauthorizedOperation":        FailureAuthorization,
	"OptInRequired":                FailureAuthorization,
	"Blocked":                      FailureAuthorization,
	"AccessDenied":                 FailureAuthorization,
	"AccessDeniedException":        FailureAuthorization,
	"InvalidClientTokenId":         FailureAuthorization,
	"SignatureDoesNotMatch":        FailureAuthorization,
	"ExpiredToken":                 FailureAuthorization,
	"UnrecognizedClientException":  FailureAuthorization,
	"InvalidInstanceID":            FailureInvalidTarget,
	"InvalidInstanceID.Malformed":  FailureInvalidTarget,
	"InvalidInstanceID.NotFound":   FailureInvalidTarget,
	"InvalidParameterValue":        FailureInvalidTarget,
	"MissingParameter":             FailureInvalidTarget,
	"IncorrectInstanceState":       FailureConflict,
	"IncorrectState":               FailureConflict,
	"UnsupportedOperation":         FailureConflict,
	"RequestLimitExceeded":         FailureThrottled,
	"Throttling":                   FailureThrottled,
	"ThrottlingException":          FailureThrottled,
	"TooManyRequestsException":     FailureThrottled,
	"InsufficientInstanceCapacity": FailureTransient,
	"ServiceUnavailable":           FailureTransient,
	"Unavailable":                  FailureTransient,
	"InternalError":                FailureService,
	"InternalFailure":              FailureService,
}

// Classify maps a start error to a FailureClass. A nil error is FailureNone.
func Classify(err error) FailureClass {
	if err == nil {
		return FailureNone
	}

	var clientErr *ClientError
	if errors.As(err, &clientErr) {
		return FailureClient
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		if class, ok := codeClasses[apiErr.ErrorCode()]; ok {
			return class
		}
		if strings.HasPrefix(apiErr.ErrorCode(), "InvalidInstanceID.") {
			return FailureInvalidTarget
		}
		switch apiErr.ErrorFault() {
		case smithy.FaultServer:
			return FailureService
		case smithy.FaultClient:
			return FailureRejected
		}
		return FailureUnknown
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return FailureTransient
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return FailureTransient
	}
	return FailureUnknown
}
