package errors

import (
	"context"
	goerrors "errors"
	"net"
	"reflect"
	"strings"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
)

// Classify returns a normalized error class suitable for tagging logs.
// Transport failures get stable names (timeout, dns, connection_refused, canceled);
// anything else falls back to the innermost concrete type in snake_case-ish form.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case goerrors.Is(err, context.Canceled):
		return "canceled"
	case goerrors.Is(err, context.DeadlineExceeded):
		return "timeout"
	}

	var dnsErr *net.DNSError
	if goerrors.As(err, &dnsErr) {
		return "dns"
	}
	var opErr *net.OpError
	if goerrors.As(err, &opErr) {
		if opErr.Timeout() {
			return "timeout"
		}
		if opErr.Op == "dial" {
			return "connection_refused"
		}
		return "net_" + opErr.Op
	}
	var netErr net.Error
	if goerrors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}

	if svcErr, ok := svcerrors.As(err); ok && svcErr.Cause == nil {
		return string(svcErr.Kind)
	}

	return typeName(innermost(err))
}

func innermost(err error) error {
	for {
		unwrapped := goerrors.Unwrap(err)
		if unwrapped == nil {
			return err
		}
		err = unwrapped
	}
}

func typeName(err error) string {
	t := reflect.TypeOf(err)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil {
		return "unknown"
	}

	name := strings.ToLower(strings.ReplaceAll(t.String(), "*", ""))
	name = strings.ReplaceAll(name, ".", "_")
	if name == "" {
		return "unknown"
	}
	return name
}
