package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_SetValid(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("localhost:3000"))
	assert.Equal(t, "localhost", a.Host)
	assert.Equal(t, 3000, a.Port)
	assert.Equal(t, "localhost:3000", a.String())
}

func TestNetAddress_SetIPHost(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set("127.0.0.1:8080"))
	assert.Equal(t, "127.0.0.1:8080", a.String())
}

func TestNetAddress_SetEmptyHost(t *testing.T) {
	var a NetAddress
	require.NoError(t, a.Set(":3000"))
	assert.Equal(t, ":3000", a.String())
}

func TestNetAddress_SetInvalid(t *testing.T) {
	cases := []string{"localhost", "localhost:notaport", "localhost:0", "nonsense-host:80"}
	for _, c := range cases {
		var a NetAddress
		assert.Error(t, a.Set(c), "input %q", c)
	}
}

func TestNetAddress_StringZeroValue(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
