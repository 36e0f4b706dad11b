package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_TriState(t *testing.T) {
	type payload struct {
		Note Optional[string] `json:"note"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Note.Set)
	assert.Nil(t, absent.Note.Ptr())

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"note": null}`), &null))
	assert.True(t, null.Note.Set)
	assert.False(t, null.Note.Valid)
	assert.Nil(t, null.Note.Ptr())

	var present payload
	require.NoError(t, json.Unmarshal([]byte(`{"note": "done"}`), &present))
	assert.True(t, present.Note.Set)
	assert.True(t, present.Note.Valid)
	require.NotNil(t, present.Note.Ptr())
	assert.Equal(t, "done", *present.Note.Ptr())
}

func TestOptional_TypeMismatch(t *testing.T) {
	type payload struct {
		Count Optional[int] `json:"count"`
	}

	var p payload
	err := json.Unmarshal([]byte(`{"count": "three"}`), &p)
	require.Error(t, err)
}
