package commands

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sonatype-nexus-community/iqspec/internal/testutil"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

func TestSetupUpdateFlags(t *testing.T) {
	fs, flags := SetupUpdateFlags()

	t.Run("default values", func(t *testing.T) {
		assert.Equal(t, "spec/openapi.yaml", flags.Output)
		assert.False(t, flags.Quiet, "expected Quiet to be false by default")
		assert.Equal(t, 30*time.Second, flags.Timeout)
		assert.False(t, flags.NormalizeSchemaNames)
		assert.Equal(t, "info", flags.LogLevel)
		assert.Equal(t, "console", flags.LogFormat)
		assert.False(t, flags.Version)
	})

	t.Run("short flags", func(t *testing.T) {
		args := []string{"-o", "out.yaml", "-q", "http://localhost:8070", "1.185.0"}
		require.NoError(t, fs.Parse(args))

		assert.Equal(t, "out.yaml", flags.Output)
		assert.True(t, flags.Quiet, "expected Quiet to be true")
		assert.Equal(t, []string{"http://localhost:8070", "1.185.0"}, fs.Args())
	})

	t.Run("long flags", func(t *testing.T) {
		fs2, flags2 := SetupUpdateFlags()
		args := []string{
			"--output", "api.yaml", "--quiet", "--timeout", "2m",
			"--normalize-schema-names", "--log-level", "debug", "--log-format", "json", "--version",
		}
		require.NoError(t, fs2.Parse(args))

		assert.Equal(t, "api.yaml", flags2.Output)
		assert.True(t, flags2.Quiet)
		assert.Equal(t, 2*time.Minute, flags2.Timeout)
		assert.True(t, flags2.NormalizeSchemaNames)
		assert.Equal(t, "debug", flags2.LogLevel)
		assert.Equal(t, "json", flags2.LogFormat)
		assert.True(t, flags2.Version)
	})
}

func TestRunUpdate(t *testing.T) {
	srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
	output := filepath.Join(t.TempDir(), "spec", "openapi.yaml")

	var out bytes.Buffer
	err := RunUpdate(context.Background(), []string{"-o", output, srv.URL, "1.185.0"}, &out)
	require.NoError(t, err)

	text := out.String()
	assert.Contains(t, text, "IQ Server Spec Update\n=====================\n")
	assert.Contains(t, text, "IQ Server Version: 1.185.0")
	assert.Contains(t, text, "INF Adding `info`")
	assert.Contains(t, text, "Removing: /api/v2/config/saml : [put]")
	assert.Contains(t, text, "✓ Applied 22 fix(es)")
	assert.Contains(t, text, "Output written to: "+output)
	assert.NotContains(t, text, "applying rule", "debug lines are hidden at info level")

	doc := testutil.ReadYAML(t, output)
	info, ok := doc["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "1.185.0", info["version"])
	assert.Equal(t, "Sonatype IQ Server", info["title"])
	paths := doc["paths"].(map[string]any)
	assert.NotContains(t, paths, "/api/v2/product/license")
}

// TestRunUpdate_Repeatable checks that two runs write identical files
func TestRunUpdate_Repeatable(t *testing.T) {
	srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
	output := filepath.Join(t.TempDir(), "openapi.yaml")
	args := []string{"-q", "-o", output, srv.URL, "1.185.0"}

	require.NoError(t, RunUpdate(context.Background(), args, &bytes.Buffer{}))
	first, err := os.ReadFile(output)
	require.NoError(t, err)

	require.NoError(t, RunUpdate(context.Background(), args, &bytes.Buffer{}))
	second, err := os.ReadFile(output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRunUpdate_Quiet(t *testing.T) {
	srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
	output := filepath.Join(t.TempDir(), "openapi.yaml")

	var out bytes.Buffer
	err := RunUpdate(context.Background(), []string{"--quiet", "--log-level", "debug", "-o", output, srv.URL, "1.185.0"}, &out)
	require.NoError(t, err)

	assert.Empty(t, out.String())
	assert.FileExists(t, output)
}

func TestRunUpdate_DebugLevel(t *testing.T) {
	srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
	output := filepath.Join(t.TempDir(), "openapi.yaml")

	var out bytes.Buffer
	err := RunUpdate(context.Background(), []string{"--log-level", "debug", "-o", output, srv.URL, "1.185.0"}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "DBG applying rule")
	assert.Contains(t, out.String(), "DBG received response")
}

func TestRunUpdate_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no arguments", args: []string{}},
		{name: "one argument", args: []string{"http://localhost:8070"}},
		{name: "three arguments", args: []string{"http://localhost:8070", "1.185.0", "extra"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := RunUpdate(context.Background(), tc.args, &out)

			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrUsage))
			assert.Equal(t, UsageLine+"\n", out.String())
		})
	}
}

func TestRunUpdate_Help(t *testing.T) {
	var out bytes.Buffer
	err := RunUpdate(context.Background(), []string{"--help"}, &out)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "Usage: iqspec [flags] <IQ_SERVER_URL> <IQ_SERVER_VERSION>")
	assert.Contains(t, out.String(), "--normalize-schema-names")
	assert.Contains(t, out.String(), "  - rename-schemas\n")
	assert.Contains(t, out.String(), "--log-format")
	assert.Contains(t, out.String(), "  - /api/v2/product/license\n")
	assert.Contains(t, out.String(), "  - /api/v2/config/saml [put]\n")
}

func TestRunUpdate_LogFormat(t *testing.T) {
	tests := []struct {
		format string
		want   string
	}{
		{format: "json", want: `"message":"Adding `+"`info`"+`"`},
		{format: "text", want: "level=INFO msg=\"Adding `info`\""},
	}
	for _, tc := range tests {
		t.Run(tc.format, func(t *testing.T) {
			srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
			output := filepath.Join(t.TempDir(), "openapi.yaml")

			var out bytes.Buffer
			err := RunUpdate(context.Background(), []string{"--log-format", tc.format, "-o", output, srv.URL, "1.185.0"}, &out)
			require.NoError(t, err)

			assert.Contains(t, out.String(), tc.want)
			assert.NotContains(t, out.String(), "INF ")
			assert.FileExists(t, output)
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "openapi.yaml")
		err := RunUpdate(context.Background(), []string{"--log-format", "xml", "-o", output, "http://localhost:8070", "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		assert.NoFileExists(t, output)
	})
}

func TestRunUpdate_Version(t *testing.T) {
	var out bytes.Buffer
	err := RunUpdate(context.Background(), []string{"-v"}, &out)
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "iqspec dev")
}

func TestRunUpdate_Errors(t *testing.T) {
	t.Run("server error", func(t *testing.T) {
		srv := testutil.NewSpecServer(t, http.StatusInternalServerError, "boom")
		output := filepath.Join(t.TempDir(), "openapi.yaml")

		err := RunUpdate(context.Background(), []string{"-q", "-o", output, srv.URL, "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrFetch))
		assert.NoFileExists(t, output, "nothing is written when the fetch fails")
	})

	t.Run("invalid body", func(t *testing.T) {
		srv := testutil.NewSpecServer(t, http.StatusOK, `["not", "an", "object"]`)
		output := filepath.Join(t.TempDir(), "openapi.yaml")

		err := RunUpdate(context.Background(), []string{"-q", "-o", output, srv.URL, "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrParse))
		assert.NoFileExists(t, output)
	})

	t.Run("unwritable output", func(t *testing.T) {
		srv := testutil.NewSpecServer(t, http.StatusOK, testutil.IQDocumentJSON)
		blocker := filepath.Join(t.TempDir(), "spec")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		err := RunUpdate(context.Background(), []string{"-q", "-o", filepath.Join(blocker, "openapi.yaml"), srv.URL, "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrWrite))
	})

	t.Run("invalid server URL", func(t *testing.T) {
		err := RunUpdate(context.Background(), []string{"localhost:8070", "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("empty version", func(t *testing.T) {
		err := RunUpdate(context.Background(), []string{"http://localhost:8070", ""}, &bytes.Buffer{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrConfig))
	})

	t.Run("unknown flag", func(t *testing.T) {
		err := RunUpdate(context.Background(), []string{"--bogus", "http://localhost:8070", "1.185.0"}, &bytes.Buffer{})
		require.Error(t, err)
		assert.False(t, errors.Is(err, oaserrors.ErrUsage))
	})
}
