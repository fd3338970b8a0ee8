package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexInt(t *testing.T) {
	valid := map[string]flexInt{
		`{"n":7}`:      7,
		`{"n":-3}`:     -3,
		`{"n":" 12 "}`: 12,
		`{"n":"08"}`:   8,
		`{"n":"010"}`:  10,
	}
	for body, want := range valid {
		var v struct {
			N *flexInt `json:"n"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &v), body)
		require.NotNil(t, v.N, body)
		assert.Equal(t, want, *v.N, body)
	}

	var v struct {
		N *flexInt `json:"n"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"n":null}`), &v))
	assert.Nil(t, v.N)

	invalid := []string{
		`{"n":"abc"}`,
		`{"n":true}`,
		`{"n":3.5}`,
		`{"n":2.9}`,
		`{"n":"0x1f"}`,
		`{"n":"1_000"}`,
		`{"n":3000000000}`,
		`{"n":[1]}`,
	}
	for _, body := range invalid {
		var v struct {
			N *flexInt `json:"n"`
		}
		assert.Error(t, json.Unmarshal([]byte(body), &v), body)
	}
}
