// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	ID    int               `json:"id" yaml:"id"`
	Tags  []string          `json:"tags" yaml:"tags"`
	Extra map[string]string `json:"extra" yaml:"extra"`
}

func TestJSONRoundTrip(t *testing.T) {
	in := payload{ID: 7, Tags: []string{"a", "b"}, Extra: map[string]string{"k": "v"}}

	data, err := JSON{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, JSON{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestJSONSortedMapKeys(t *testing.T) {
	// Key order stability is what makes fingerprints reproducible.
	m := map[string]int{"zeta": 1, "alpha": 2, "mid": 3}

	a, err := JSON{}.Marshal(m)
	require.NoError(t, err)
	b, err := JSON{}.Marshal(m)
	require.NoError(t, err)

	assert.Equal(t, string(a), string(b))
	assert.Equal(t, `{"alpha":2,"mid":3,"zeta":1}`, string(a))
}

func TestJSONEncodeError(t *testing.T) {
	_, err := JSON{}.Marshal(make(chan int))
	require.Error(t, err)

	var encErr *EncodeError
	assert.ErrorAs(t, err, &encErr)
}

func TestJSONDecodeError(t *testing.T) {
	var out payload
	err := JSON{}.Unmarshal([]byte("{{{"), &out)
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestYAMLRoundTrip(t *testing.T) {
	in := payload{ID: 9, Tags: []string{"x"}, Extra: map[string]string{"a": "b"}}

	data, err := YAML{}.Marshal(in)
	require.NoError(t, err)

	var out payload
	require.NoError(t, YAML{}.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestYAMLDecodeError(t *testing.T) {
	var out payload
	err := YAML{}.Unmarshal([]byte(":\n\t- broken"), &out)
	require.Error(t, err)

	var decErr *DecodeError
	assert.ErrorAs(t, err, &decErr)
}

func TestExt(t *testing.T) {
	assert.Equal(t, "json", JSON{}.Ext())
	assert.Equal(t, "yaml", YAML{}.Ext())
}
