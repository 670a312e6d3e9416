package remote

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnwrapList(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		extra []string
		want  int
	}{
		{"bare array", `[{"id":"a"},{"id":"b"}]`, nil, 2},
		{"content envelope", `{"content":[{"id":"a"}],"totalElements":1}`, nil, 1},
		{"data envelope", `{"data":[{"id":"a"},{"id":"b"},{"id":"c"}]}`, nil, 3},
		{"items envelope", `{"items":[]}`, nil, 0},
		{"nested envelopes", `{"data":{"content":[{"id":"a"}]}}`, nil, 1},
		{"extra key", `{"events":[{"id":"a"}]}`, []string{"events"}, 1},
		{"null body", `null`, nil, 0},
		{"empty body", ``, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := unwrapList([]byte(tt.body), tt.extra...)
			require.NoError(t, err)
			assert.Len(t, got, tt.want)
		})
	}

	t.Run("object without a known key", func(t *testing.T) {
		_, err := unwrapList([]byte(`{"results":[]}`))
		assert.Error(t, err)
	})

	t.Run("scalar body", func(t *testing.T) {
		_, err := unwrapList([]byte(`"oops"`))
		assert.Error(t, err)
	})
}

func TestUnwrapObject(t *testing.T) {
	got, err := unwrapObject([]byte(`{"data":{"id":"x"}}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x"}`, string(got))

	got, err = unwrapObject([]byte(`{"id":"x","items":[1,2]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"x","items":[1,2]}`, string(got), "a list under items is a field, not an envelope")

	got, err = unwrapObject(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = unwrapObject([]byte(`[1]`))
	assert.Error(t, err)
}

func TestDecodeEmbedded(t *testing.T) {
	var direct, encoded []int
	require.NoError(t, decodeEmbedded(json.RawMessage(`[1,2]`), &direct))
	require.NoError(t, decodeEmbedded(json.RawMessage(`"[1,2]"`), &encoded))
	assert.Equal(t, direct, encoded)

	var none []int
	require.NoError(t, decodeEmbedded(json.RawMessage(`""`), &none))
	assert.Nil(t, none)
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "claim is locked", errorMessage([]byte(`{"message":"claim is locked"}`)))
	assert.Equal(t, "bad thing", errorMessage([]byte(`{"error":"bad thing"}`)))
	assert.Equal(t, "upstream down", errorMessage([]byte("upstream down\n")))
	assert.Equal(t, "", errorMessage([]byte(`{"status":500}`)))
	assert.Equal(t, "", errorMessage(nil))
}
