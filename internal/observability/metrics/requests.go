// Package metrics turns console events into StatsD metrics with stable tag sets.
package metrics

import (
	"strings"
	"time"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
	obserrors "github.com/learnhub/admin-console/internal/observability/errors"
	"github.com/learnhub/admin-console/internal/observability/statsd"
)

// Result tag values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// RequestMetric describes one completed backend call.
type RequestMetric struct {
	// Resource is the collection base path, e.g. "/subject".
	Resource string
	Method   string
	Duration time.Duration
	Err      error
}

// EmitRequest records a counter and a timing for one backend call.
// Failures are tagged with the service error kind and, for transport
// failures, the error class.
func EmitRequest(sink statsd.Sink, in RequestMetric) {
	if sink == nil {
		return
	}

	tags := map[string]string{
		"resource": resourceTag(in.Resource),
		"method":   strings.ToUpper(in.Method),
		"result":   ResultSuccess,
	}
	if in.Err != nil {
		tags["result"] = ResultError
		if svcErr, ok := svcerrors.As(in.Err); ok {
			tags["kind"] = string(svcErr.Kind)
			if svcErr.Cause != nil {
				tags["error_class"] = obserrors.Classify(svcErr.Cause)
			}
		} else {
			tags["error_class"] = obserrors.Classify(in.Err)
		}
	}

	sink.Count("api.request", 1, tags)
	if in.Duration > 0 {
		sink.Timing("api.request.duration", in.Duration, CloneTags(tags))
	}
}

func resourceTag(base string) string {
	r := strings.Trim(base, "/")
	if r == "" {
		return "root"
	}
	return strings.ReplaceAll(r, "/", "_")
}

// CloneTags returns a shallow copy of src.
func CloneTags(src map[string]string) map[string]string {
	if len(src) == 0 {
		return nil
	}
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
