package service

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestAbsoluteURL(t *testing.T) {
	cases := []struct {
		name   string
		domain string
		port   string
		ssl    bool
		want   string
	}{
		{"dev listen port kept", "localhost", "8080", false, "http://localhost:8080/verify?token=x"},
		{"default http port dropped", "ravensquill.app", "80", false, "http://ravensquill.app/verify?token=x"},
		{"default https port dropped", "ravensquill.app", "443", true, "https://ravensquill.app/verify?token=x"},
		{"domain with explicit port wins", "ravensquill.app:9000", "8080", false, "http://ravensquill.app:9000/verify?token=x"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			viper.Set("host.domain", tc.domain)
			viper.Set("host.port", tc.port)
			viper.Set("host.ssl_enabled", tc.ssl)

			assert.Equal(t, tc.want, absoluteURL("/verify?token=x"))
		})
	}
}
