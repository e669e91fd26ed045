//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Edit changes one request body decoded into a generic map.
type Edit func(body map[string]any)

// BodyMap turns a valid request struct into its JSON object form and applies
// edits, so tests can break exactly one field of an otherwise valid payload.
func BodyMap(t *testing.T, req any, edits ...Edit) map[string]any {
	t.Helper()

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, edit := range edits {
		edit(body)
	}
	return body
}

func Set(key string, value any) Edit {
	return func(body map[string]any) { body[key] = value }
}

func Without(keys ...string) Edit {
	return func(body map[string]any) {
		for _, k := range keys {
			delete(body, k)
		}
	}
}
