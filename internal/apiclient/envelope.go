package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"

	svcerrors "github.com/learnhub/admin-console/internal/errors"
)

// EnvelopePaths are the JMESPath expressions used to read a failed response
// body of the form { message?, data?, success?, error?, details? }.
type EnvelopePaths struct {
	Message string
	Error   string
	Details string
}

// DefaultEnvelopePaths matches the backend's response envelope.
func DefaultEnvelopePaths() EnvelopePaths {
	return EnvelopePaths{
		Message: "message",
		Error:   "error",
		Details: "details",
	}
}

func (p EnvelopePaths) withDefaults() EnvelopePaths {
	def := DefaultEnvelopePaths()
	if strings.TrimSpace(p.Message) == "" {
		p.Message = def.Message
	}
	if strings.TrimSpace(p.Error) == "" {
		p.Error = def.Error
	}
	if strings.TrimSpace(p.Details) == "" {
		p.Details = def.Details
	}
	return p
}

func (p EnvelopePaths) validate() error {
	for _, expr := range []string{p.Message, p.Error, p.Details} {
		if _, err := jmespath.Compile(expr); err != nil {
			return fmt.Errorf("invalid envelope expression %q: %w", expr, err)
		}
	}
	return nil
}

// errorBody is what classification reads from a failed response.
type errorBody struct {
	message string
	err     string
	details any
}

func (p EnvelopePaths) read(body []byte) errorBody {
	var out errorBody
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return out
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return out
	}
	if _, ok := doc.(map[string]any); !ok {
		return out
	}

	out.message = searchString(p.Message, doc)
	out.err = searchString(p.Error, doc)
	if v, err := jmespath.Search(p.Details, doc); err == nil && v != nil {
		out.details = v
	}
	return out
}

func searchString(expr string, doc any) string {
	v, err := jmespath.Search(expr, doc)
	if err != nil {
		return ""
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

// Data returns the success value of a response body: the envelope's data
// member when present, otherwise the whole body.
func Data(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return trimmed
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return trimmed
	}
	if data, ok := envelope["data"]; ok {
		return data
	}
	return trimmed
}

// DecodeData decodes the success value of raw into T.
// Empty bodies decode to the zero value.
func DecodeData[T any](raw json.RawMessage, fallback string) (T, error) {
	var out T
	data := Data(raw)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, nil
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return out, svcerrors.Wrap(err, svcerrors.KindUnknown, fallbackMessage(fallback))
	}
	return out, nil
}
