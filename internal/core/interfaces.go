package core

import (
	"context"
	"encoding/json"

	"github.com/learnhub/admin-console/internal/apiclient"
)

// This file contains the contracts the resource services depend on.
// Service implementations should depend on these interfaces, not concrete implementations.

// Requester issues one backend call for a resource family.
// Failures are returned as *errors.ServiceError.
type Requester interface {
	Do(ctx context.Context, basePath string, req apiclient.Request) (json.RawMessage, error)
}

// Compile-time check that the executor satisfies Requester.
var _ Requester = (*apiclient.Executor)(nil)
