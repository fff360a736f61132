package repository

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"fieldservice/internal/resilience"
)

// jsonTagKey makes the DynamoDB codec use the same field names as the JSON
// patches the stores send.
const jsonTagKey = "json"

func recordNotFound(table, id string) error {
	return &resilience.StatusError{
		StatusCode: http.StatusNotFound,
		Message:    fmt.Sprintf("%s record %q not found", table, id),
	}
}

func recordConflict(table, id string) error {
	return &resilience.StatusError{
		StatusCode: http.StatusConflict,
		Message:    fmt.Sprintf("%s record %q already exists with different content", table, id),
	}
}

// sameDocument reports whether a and b encode to the same JSON document.
func sameDocument(a, b any) bool {
	ja, err := json.Marshal(a)
	if err != nil {
		return false
	}
	jb, err := json.Marshal(b)
	if err != nil {
		return false
	}
	return bytes.Equal(ja, jb)
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}

func quoteIdentifier(identifier string) string {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return `""`
	}
	return `"` + strings.ReplaceAll(identifier, `"`, `""`) + `"`
}
