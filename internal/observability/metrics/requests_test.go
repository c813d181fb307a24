package metrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
)

type recorded struct {
	name  string
	value any
	tags  map[string]string
}

type fakeSink struct {
	calls []recorded
}

func (f *fakeSink) Count(name string, value int64, tags map[string]string) {
	f.calls = append(f.calls, recorded{name, value, tags})
}

func (f *fakeSink) Timing(name string, value time.Duration, tags map[string]string) {
	f.calls = append(f.calls, recorded{name, value, tags})
}

func TestEmitRequest(t *testing.T) {
	tests := []struct {
		name     string
		in       RequestMetric
		wantTags map[string]string
		wantLen  int
	}{
		{
			name:     "success",
			in:       RequestMetric{Resource: "/subject", Method: "get", Duration: time.Millisecond},
			wantTags: map[string]string{"resource": "subject", "method": "GET", "result": ResultSuccess},
			wantLen:  2,
		},
		{
			name: "backend failure",
			in:   RequestMetric{Resource: "/community-chat", Method: "POST", Err: svcerrors.Conflict("exists")},
			wantTags: map[string]string{
				"resource": "community-chat", "method": "POST", "result": ResultError, "kind": "conflict",
			},
			wantLen: 1,
		},
		{
			name: "transport failure",
			in: RequestMetric{Resource: "/exam", Method: "GET", Duration: time.Second,
				Err: svcerrors.Network(context.DeadlineExceeded, "timeout")},
			wantTags: map[string]string{
				"resource": "exam", "method": "GET", "result": ResultError, "kind": "network", "error_class": "timeout",
			},
			wantLen: 2,
		},
		{
			name: "plain error",
			in:   RequestMetric{Resource: "", Method: "GET", Err: context.Canceled},
			wantTags: map[string]string{
				"resource": "root", "method": "GET", "result": ResultError, "error_class": "canceled",
			},
			wantLen: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			EmitRequest(sink, tt.in)

			require.Len(t, sink.calls, tt.wantLen)
			assert.Equal(t, "api.request", sink.calls[0].name)
			assert.Equal(t, int64(1), sink.calls[0].value)
			assert.Equal(t, tt.wantTags, sink.calls[0].tags)
			if tt.wantLen == 2 {
				assert.Equal(t, "api.request.duration", sink.calls[1].name)
				assert.Equal(t, tt.wantTags, sink.calls[1].tags)
			}
		})
	}
}

func TestEmitRequestNilSink(t *testing.T) {
	assert.NotPanics(t, func() {
		EmitRequest(nil, RequestMetric{Err: errors.New("x")})
	})
}

func TestCloneTags(t *testing.T) {
	assert.Nil(t, CloneTags(nil))
	src := map[string]string{"a": "1"}
	cp := CloneTags(src)
	cp["a"] = "2"
	assert.Equal(t, "1", src["a"])
}
