// Where: ec2-starter/internal/controlplane/lazy.go
// What: Per-process cache for the EC2 client.
// Why: Build SDK clients once per warm runtime instead of once per invocation.
package controlplane

import (
	"context"
	"fmt"
	"sync"

	"github.com/poruru/ec2-starter/internal/envutil"
)

// ClientError reports that the control-plane client could not be built.
type ClientError struct {
	Err error
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("build ec2 client: %v", e.Err)
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// LazyStarter builds its client on first use and reuses it afterwards.
// A failed build is not cached. Options are read from Env at build time.
type LazyStarter struct {
	Factory ClientFactory
	Env     envutil.Lookup

	mu     sync.Mutex
	client Starter
}

func NewLazyStarter(factory ClientFactory, env envutil.Lookup) *LazyStarter {
	return &LazyStarter{Factory: factory, Env: env}
}

func (l *LazyStarter) StartInstance(ctx context.Context, request StartRequest) (StateChange, error) {
	client, err := l.get(ctx)
	if err != nil {
		return StateChange{}, &ClientError{Err: err}
	}
	return client.StartInstance(ctx, request)
}

func (l *LazyStarter) get(ctx context.Context) (Starter, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.client != nil {
		return l.client, nil
	}
	if l.Factory == nil {
		return nil, fmt.Errorf("client factory not configured")
	}
	client, err := l.Factory.EC2(ctx, OptionsFromEnv(l.Env))
	if err != nil {
		return nil, err
	}
	l.client = client
	return client, nil
}
