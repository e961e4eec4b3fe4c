package commands

import (
	"fmt"
	"io"
	"net/url"

	"github.com/rs/zerolog"

	"github.com/sonatype-nexus-community/iqspec"
	"github.com/sonatype-nexus-community/iqspec/internal/cliutil"
	"github.com/sonatype-nexus-community/iqspec/internal/options"
	"github.com/sonatype-nexus-community/iqspec/logging"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

// ProgramName is the command name shown in usage and version output.
const ProgramName = "iqspec"

// UsageLine is printed when the positional arguments are wrong.
const UsageLine = "Usage: " + ProgramName + " <IQ_SERVER_URL> <IQ_SERVER_VERSION>"

// PrintVersion writes the version line to w.
func PrintVersion(w io.Writer) {
	cliutil.Writef(w, "%s %s (commit %s)\n", ProgramName, iqspec.Version(), iqspec.Commit())
}

// NewLogger returns the logger used for progress lines, in one of
// logging.Formats. Quiet mode never logs below warn, whatever levelName
// asks for.
func NewLogger(w io.Writer, format, levelName string, quiet bool) (logging.Logger, error) {
	level := logging.ParseLevel(levelName)
	if quiet && level < zerolog.WarnLevel {
		level = zerolog.WarnLevel
	}
	return logging.New(w, format, level)
}

// ValidateServerURL checks that serverURL is an absolute http or https URL.
func ValidateServerURL(serverURL string) error {
	if err := options.RequireNonEmpty("IQ_SERVER_URL", serverURL); err != nil {
		return err
	}
	u, err := url.Parse(serverURL)
	if err != nil {
		return &oaserrors.ConfigError{Option: "IQ_SERVER_URL", Value: serverURL, Message: "invalid URL", Cause: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return &oaserrors.ConfigError{Option: "IQ_SERVER_URL", Value: serverURL, Message: "scheme must be http or https"}
	}
	if u.Host == "" {
		return &oaserrors.ConfigError{Option: "IQ_SERVER_URL", Value: serverURL, Message: "missing host"}
	}
	return nil
}

// usageError prints UsageLine to w and returns the matching error.
func usageError(w io.Writer, nargs int) error {
	cliutil.Writef(w, "%s\n", UsageLine)
	return &oaserrors.UsageError{
		Usage:   UsageLine,
		Message: fmt.Sprintf("expected 2 arguments, got %d", nargs),
	}
}
