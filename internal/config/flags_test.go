package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{"localhost with port", "localhost:8080", "localhost", 8080, false},
		{"ip with port", "127.0.0.1:9090", "127.0.0.1", 9090, false},
		{"empty host", ":8080", "", 8080, false},
		{"no colon", "localhost", "", 0, true},
		{"non-numeric port", "localhost:http", "", 0, true},
		{"port too large", "localhost:70000", "", 0, true},
		{"zero port", "localhost:0", "", 0, true},
		{"invalid host", "not an ip:8080", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantHost, addr.Host)
			assert.Equal(t, tt.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	t.Run("set address", func(t *testing.T) {
		addr := NetAddress{Host: "localhost", Port: 8080}
		assert.Equal(t, "localhost:8080", addr.String())
	})

	t.Run("zero value stays empty for the merge step", func(t *testing.T) {
		var addr NetAddress
		assert.Empty(t, addr.String())
	})
}
