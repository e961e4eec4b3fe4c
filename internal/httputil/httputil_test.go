package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOperationMethod(t *testing.T) {
	for _, m := range []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"} {
		assert.True(t, IsOperationMethod(m), m)
	}
	for _, k := range []string{"parameters", "summary", "servers", "x-internal", "GET"} {
		assert.False(t, IsOperationMethod(k), k)
	}
}

func TestIsSuccess(t *testing.T) {
	tests := []struct {
		code int
		want bool
	}{
		{199, false},
		{200, true},
		{204, true},
		{299, true},
		{301, false},
		{404, false},
		{500, false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, IsSuccess(tc.code), "status %d", tc.code)
	}
}
