//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns a request DTO into its JSON object form so tests can mutate single fields.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err, "Failed to encode DTO")

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "DTO is not a JSON object")

	for _, f := range muts {
		f(m)
	}
	return m
}
