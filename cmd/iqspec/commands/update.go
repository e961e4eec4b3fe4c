package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/sonatype-nexus-community/iqspec"
	"github.com/sonatype-nexus-community/iqspec/fetcher"
	"github.com/sonatype-nexus-community/iqspec/internal/cliutil"
	"github.com/sonatype-nexus-community/iqspec/internal/fileutil"
	"github.com/sonatype-nexus-community/iqspec/internal/options"
	"github.com/sonatype-nexus-community/iqspec/logging"
	"github.com/sonatype-nexus-community/iqspec/patcher"
	"github.com/sonatype-nexus-community/iqspec/serializer"
)

// UpdateFlags contains flags for the update command
type UpdateFlags struct {
	Output               string
	Quiet                bool
	Timeout              time.Duration
	NormalizeSchemaNames bool
	LogLevel             string
	LogFormat            string
	Version              bool
}

// SetupUpdateFlags creates and configures a FlagSet for the update command.
// Returns the FlagSet and an UpdateFlags struct with bound flag variables.
func SetupUpdateFlags() (*pflag.FlagSet, *UpdateFlags) {
	fs := pflag.NewFlagSet(ProgramName, pflag.ContinueOnError)
	fs.SortFlags = false
	flags := &UpdateFlags{}

	fs.StringVarP(&flags.Output, "output", "o", fileutil.DefaultOutputPath, "output file path")
	fs.BoolVarP(&flags.Quiet, "quiet", "q", false, "quiet mode: only warnings and errors are printed")
	fs.DurationVar(&flags.Timeout, "timeout", fetcher.DefaultTimeout, "timeout for the request to the IQ Server")
	fs.BoolVar(&flags.NormalizeSchemaNames, "normalize-schema-names", false, "rename every schema whose name is not a valid identifier")
	fs.StringVar(&flags.LogLevel, "log-level", "info", "log level: debug, info, warn or error")
	fs.StringVar(&flags.LogFormat, "log-format", logging.FormatConsole, "log format: "+strings.Join(logging.Formats(), ", "))
	fs.BoolVarP(&flags.Version, "version", "v", false, "print the version and exit")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: %s [flags] <IQ_SERVER_URL> <IQ_SERVER_VERSION>\n\n", ProgramName)
		cliutil.Writef(fs.Output(), "Download the public OpenAPI specification from a Sonatype IQ Server,\n")
		cliutil.Writef(fs.Output(), "patch it for client generators and write it as YAML.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nRules:\n")
		for _, rule := range patcher.AllRules() {
			cliutil.Writef(fs.Output(), "  - %s\n", rule)
		}
		cliutil.Writef(fs.Output(), "\nRemoved endpoints:\n")
		for _, removal := range patcher.PathRemovals() {
			if len(removal.Methods) == 0 {
				cliutil.Writef(fs.Output(), "  - %s\n", removal.Path)
				continue
			}
			cliutil.Writef(fs.Output(), "  - %s [%s]\n", removal.Path, strings.Join(removal.Methods, ", "))
		}
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  %s http://localhost:8070 1.185.0\n", ProgramName)
		cliutil.Writef(fs.Output(), "  %s -o api/openapi.yaml --timeout 2m https://iq.example.com 1.185.0\n", ProgramName)
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    Specification written (or usage printed)\n")
		cliutil.Writef(fs.Output(), "  1    Failed to fetch, parse or write the specification\n")
	}

	return fs, flags
}

// HandleUpdate executes the update command, writing progress to stdout
func HandleUpdate(args []string) error {
	return RunUpdate(context.Background(), args, os.Stdout)
}

// RunUpdate fetches, patches and writes the specification. Usage, progress
// and the summary are written to out. A wrong number of positional
// arguments prints UsageLine and returns a *oaserrors.UsageError.
func RunUpdate(ctx context.Context, args []string, out io.Writer) error {
	fs, flags := SetupUpdateFlags()
	fs.SetOutput(out)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.Version {
		PrintVersion(out)
		return nil
	}

	if fs.NArg() != 2 {
		return usageError(out, fs.NArg())
	}
	serverURL, version := fs.Arg(0), fs.Arg(1)

	if err := ValidateServerURL(serverURL); err != nil {
		return err
	}
	if err := options.RequireNonEmpty("IQ_SERVER_VERSION", version); err != nil {
		return err
	}

	logger, err := NewLogger(out, flags.LogFormat, flags.LogLevel, flags.Quiet)
	if err != nil {
		return err
	}

	if !flags.Quiet {
		cliutil.Heading(out, "IQ Server Spec Update")
		cliutil.Writef(out, "iqspec version: %s\n", iqspec.Version())
		cliutil.Writef(out, "IQ Server: %s\n", serverURL)
		cliutil.Writef(out, "IQ Server Version: %s\n\n", version)
	}

	startTime := time.Now()

	f := fetcher.New()
	f.Timeout = flags.Timeout
	f.Logger = logger
	fetched, err := f.Fetch(ctx, serverURL)
	if err != nil {
		return fmt.Errorf("fetching specification: %w", err)
	}

	p := patcher.New()
	p.Version = version
	p.NormalizeSchemaNames = flags.NormalizeSchemaNames
	p.Logger = logger
	result, err := p.Patch(patcher.Document(fetched.Document))
	if err != nil {
		return fmt.Errorf("patching specification: %w", err)
	}

	written, err := serializer.WriteFile(flags.Output, result.Document)
	if err != nil {
		return fmt.Errorf("writing specification: %w", err)
	}
	totalTime := time.Since(startTime)

	if !flags.Quiet {
		cliutil.Writef(out, "\nSource: %s\n", fetched.SourceURL)
		cliutil.Writef(out, "OAS Version: %s\n", fetched.OpenAPIVersion)
		cliutil.Writef(out, "Paths: %d\n", result.Stats.PathCount)
		cliutil.Writef(out, "Operations: %d\n", result.Stats.OperationCount)
		cliutil.Writef(out, "Schemas: %d\n", result.Stats.SchemaCount)
		cliutil.Writef(out, "Tags: %d\n", result.Stats.TagCount)
		cliutil.Writef(out, "Total Time: %v\n\n", totalTime)

		if result.HasFixes() {
			cliutil.Writef(out, "✓ Applied %d fix(es)\n", result.FixCount)
		} else {
			cliutil.Writef(out, "✓ No fixes needed\n")
		}
		cliutil.Writef(out, "Output written to: %s (%d bytes)\n", written.Path, written.Bytes)
	}

	return nil
}
