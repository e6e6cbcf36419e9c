package apiclient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

const (
	// listExpr finds the item array in a list response.
	listExpr = "[results, data, items][?@ != `null`] | [0]"
	// errorMessageExpr finds a human readable message in an error body.
	errorMessageExpr = "error || detail || message || non_field_errors[0] || errors[0]"
)

// decodeList unmarshals a list response into out (a pointer to a slice).
func decodeList(payload []byte, out any) error {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if trimmed[0] == '[' {
		return json.Unmarshal(trimmed, out)
	}
	var doc any
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return err
	}
	items, err := jmespath.Search(listExpr, doc)
	if err != nil {
		return fmt.Errorf("locate list items: %w", err)
	}
	if _, ok := items.([]any); !ok {
		return fmt.Errorf("expected a list response, got %T", items)
	}
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// errorMessage extracts the API's message from an error body. When the body
// is not JSON or carries no known field, a field-keyed validation body is
// flattened ("title: This field is required."); otherwise "" is returned.
func errorMessage(payload []byte) string {
	var doc any
	if err := json.Unmarshal(payload, &doc); err != nil {
		return ""
	}
	if v, err := jmespath.Search(errorMessageExpr, doc); err == nil {
		if s := stringify(v); s != "" {
			return s
		}
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return ""
	}
	return flattenFieldErrors(obj)
}

func flattenFieldErrors(obj map[string]any) string {
	parts := make([]string, 0, len(obj))
	for k, v := range obj {
		if s := stringify(v); s != "" {
			parts = append(parts, k+": "+s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	sort.Strings(parts)
	return strings.Join(parts, "; ")
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		if len(t) > 0 {
			return stringify(t[0])
		}
	}
	return ""
}
