package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateServeConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  *ServeConfig
		wantErr bool
	}{
		{"defaults", NewServeConfig(), false},
		{"empty host", &ServeConfig{Host: "", Port: 8080}, true},
		{"host with space", &ServeConfig{Host: "bad host", Port: 8080}, true},
		{"ip host", &ServeConfig{Host: "127.0.0.1", Port: 8080}, false},
		{"port zero", &ServeConfig{Host: "localhost", Port: 0}, true},
		{"port too high", &ServeConfig{Host: "localhost", Port: 70000}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateServeConfig(tt.config)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
