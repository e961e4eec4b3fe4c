package commands

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

func TestValidateServerURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr string
	}{
		{name: "http", url: "http://localhost:8070"},
		{name: "https with path", url: "https://iq.example.com/iq/"},
		{name: "empty", url: "", wantErr: "cannot be empty"},
		{name: "no scheme", url: "localhost:8070", wantErr: "scheme must be http or https"},
		{name: "ftp", url: "ftp://iq.example.com", wantErr: "scheme must be http or https"},
		{name: "no host", url: "http:///path", wantErr: "missing host"},
		{name: "unparsable", url: "http://[::1", wantErr: "invalid URL"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateServerURL(tc.url)
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.True(t, errors.Is(err, oaserrors.ErrConfig))
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Run("info", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "console", "info", false)
		require.NoError(t, err)
		logger.Debug("hidden")
		logger.Info("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("quiet raises the level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "console", "debug", true)
		require.NoError(t, err)
		logger.Info("hidden")
		logger.Warn("shown")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})

	t.Run("quiet keeps a higher level", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "text", "error", true)
		require.NoError(t, err)
		logger.Warn("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := NewLogger(&buf, "json", "info", false)
		require.NoError(t, err)
		logger.Info("shown", "rule", "dedupe-tags")
		assert.Contains(t, buf.String(), `"rule":"dedupe-tags"`)
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := NewLogger(&bytes.Buffer{}, "xml", "info", false)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})
}

func TestPrintVersion(t *testing.T) {
	var buf bytes.Buffer
	PrintVersion(&buf)
	assert.Equal(t, "iqspec dev (commit unknown)\n", buf.String())
}

func TestUsageError(t *testing.T) {
	var buf bytes.Buffer
	err := usageError(&buf, 1)

	assert.Equal(t, "Usage: iqspec <IQ_SERVER_URL> <IQ_SERVER_VERSION>\n", buf.String())
	var usageErr *oaserrors.UsageError
	if assert.True(t, errors.As(err, &usageErr)) {
		assert.Equal(t, UsageLine, usageErr.Usage)
		assert.Equal(t, "expected 2 arguments, got 1", usageErr.Message)
	}
}
