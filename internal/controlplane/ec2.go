// Where: ec2-starter/internal/controlplane/ec2.go
// What: AWS SDK adapter for the EC2 StartInstances call.
// Why: Map internal start requests to SDK types and back.
package controlplane

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/aws/smithy-go"
)

const dryRunOperationCode = "DryRunOperation"

// StartRequest asks the control plane to start exactly one instance.
type StartRequest struct {
	InstanceID string
	DryRun     bool
}

// StateChange is the transition reported by the control plane for one instance.
// Previous and Current are empty when the response did not include the instance.
type StateChange struct {
	InstanceID string
	Previous   string
	Current    string
	DryRun     bool
}

// Starter issues start requests against the control plane.
type Starter interface {
	StartInstance(ctx context.Context, request StartRequest) (StateChange, error)
}

// EC2API is the subset of *ec2.Client used by this package.
type EC2API interface {
	StartInstances(
		ctx context.Context,
		params *ec2.StartInstancesInput,
		optFns ...func(*ec2.Options),
	) (*ec2.StartInstancesOutput, error)
}

type awsEC2Client struct {
	client EC2API
}

// NewEC2Starter wraps an SDK client (or a compatible fake) as a Starter.
func NewEC2Starter(client EC2API) Starter {
	return awsEC2Client{client: client}
}

func (c awsEC2Client) StartInstance(ctx context.Context, request StartRequest) (StateChange, error) {
	if c.client == nil {
		return StateChange{}, fmt.Errorf("ec2 client is nil")
	}
	if request.InstanceID == "" {
		return StateChange{}, fmt.Errorf("instance id is required")
	}

	input := buildStartInstancesInput(request)
	resp, err := c.client.StartInstances(ctx, input)
	if err != nil {
		if request.DryRun && isDryRunSuccess(err) {
			return StateChange{InstanceID: request.InstanceID, DryRun: true}, nil
		}
		return StateChange{}, err
	}
	return mapStateChange(request.InstanceID, resp), nil
}

func buildStartInstancesInput(request StartRequest) *ec2.StartInstancesInput {
	input := &ec2.StartInstancesInput{
		InstanceIds: []string{request.InstanceID},
	}
	if request.DryRun {
		input.DryRun = aws.Bool(true)
	}
	return input
}

// isDryRunSuccess reports the DryRunOperation error, which EC2 returns when a
// dry-run request would have succeeded.
func isDryRunSuccess(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == dryRunOperationCode
}

func mapStateChange(instanceID string, resp *ec2.StartInstancesOutput) StateChange {
	out := StateChange{InstanceID: instanceID}
	if resp == nil {
		return out
	}
	for _, item := range resp.StartingInstances {
		if aws.ToString(item.InstanceId) != instanceID {
			continue
		}
		out.Previous = stateName(item.PreviousState)
		out.Current = stateName(item.CurrentState)
		break
	}
	return out
}

func stateName(state *types.InstanceState) string {
	if state == nil {
		return ""
	}
	return string(state.Name)
}
