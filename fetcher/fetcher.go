package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/sonatype-nexus-community/iqspec"
	"github.com/sonatype-nexus-community/iqspec/internal/httputil"
	"github.com/sonatype-nexus-community/iqspec/internal/options"
	"github.com/sonatype-nexus-community/iqspec/logging"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

// PublicSpecPath is the IQ Server endpoint serving the public OpenAPI document.
const PublicSpecPath = "/api/v2/endpoints/public"

// DefaultTimeout bounds the whole request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// FetchResult contains the downloaded specification and request metadata.
type FetchResult struct {
	// Document is the decoded top-level JSON object
	Document map[string]any
	// SourceURL is the URL that was requested
	SourceURL string
	// SourceSize is the size of the response body in bytes
	SourceSize int64
	// StatusCode is the HTTP status of the response
	StatusCode int
	// OpenAPIVersion is the value of the top-level "openapi" key, if any
	OpenAPIVersion string
	// LoadTime is the time taken by the request
	LoadTime time.Duration
}

// Fetcher downloads the public OpenAPI specification from an IQ Server.
type Fetcher struct {
	// Timeout bounds the request. Defaults to DefaultTimeout.
	Timeout time.Duration
	// UserAgent is sent with the request. Defaults to iqspec.UserAgent().
	UserAgent string
	// HTTPClient is the underlying client. If nil, resty's default is used.
	// When set, Timeout is ignored; configure the timeout on the client.
	HTTPClient *http.Client
	// Logger receives debug output. Nil disables logging.
	Logger logging.Logger
}

// New creates a new Fetcher instance with default settings
func New() *Fetcher {
	return &Fetcher{
		Timeout:   DefaultTimeout,
		UserAgent: iqspec.UserAgent(),
	}
}

// Option is a function that configures a fetch operation
type Option func(*fetchConfig) error

// fetchConfig holds configuration for a fetch operation
type fetchConfig struct {
	// Input source (exactly one must be set)
	serverURL *string
	specURL   *string

	ctx        context.Context
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	logger     logging.Logger
}

// FetchWithOptions downloads a specification using functional options.
//
// Example:
//
//	result, err := fetcher.FetchWithOptions(
//	    fetcher.WithServerURL("http://localhost:8070"),
//	    fetcher.WithTimeout(time.Minute),
//	)
func FetchWithOptions(opts ...Option) (*FetchResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("fetcher: invalid options: %w", err)
	}

	f := New()
	if cfg.timeout > 0 {
		f.Timeout = cfg.timeout
	}
	if cfg.userAgent != "" {
		f.UserAgent = cfg.userAgent
	}
	f.HTTPClient = cfg.httpClient
	f.Logger = cfg.logger

	if cfg.serverURL != nil {
		return f.Fetch(cfg.ctx, *cfg.serverURL)
	}
	return f.FetchURL(cfg.ctx, *cfg.specURL)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*fetchConfig, error) {
	cfg := &fetchConfig{
		ctx: context.Background(),
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ValidateSingleInputSource("source",
		"no source specified: use WithServerURL or WithSpecURL",
		"multiple sources specified: use only one of WithServerURL or WithSpecURL",
		cfg.serverURL != nil, cfg.specURL != nil,
	); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithServerURL sets the IQ Server base URL; PublicSpecPath is appended to it
func WithServerURL(serverURL string) Option {
	return func(cfg *fetchConfig) error {
		if err := options.RequireNonEmpty("server URL", serverURL); err != nil {
			return err
		}
		cfg.serverURL = &serverURL
		return nil
	}
}

// WithSpecURL sets the full URL of the specification document
func WithSpecURL(specURL string) Option {
	return func(cfg *fetchConfig) error {
		if err := options.RequireNonEmpty("spec URL", specURL); err != nil {
			return err
		}
		cfg.specURL = &specURL
		return nil
	}
}

// WithContext sets the context for the request
func WithContext(ctx context.Context) Option {
	return func(cfg *fetchConfig) error {
		if ctx == nil {
			return &oaserrors.ConfigError{Option: "context", Message: "cannot be nil"}
		}
		cfg.ctx = ctx
		return nil
	}
}

// WithTimeout sets the request timeout
func WithTimeout(timeout time.Duration) Option {
	return func(cfg *fetchConfig) error {
		if timeout < 0 {
			return &oaserrors.ConfigError{Option: "timeout", Value: timeout, Message: "cannot be negative"}
		}
		cfg.timeout = timeout
		return nil
	}
}

// WithUserAgent sets the User-Agent header
func WithUserAgent(userAgent string) Option {
	return func(cfg *fetchConfig) error {
		cfg.userAgent = userAgent
		return nil
	}
}

// WithHTTPClient sets the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(cfg *fetchConfig) error {
		cfg.httpClient = client
		return nil
	}
}

// WithLogger sets the logger
func WithLogger(logger logging.Logger) Option {
	return func(cfg *fetchConfig) error {
		cfg.logger = logger
		return nil
	}
}

// SpecURL joins a server base URL and PublicSpecPath.
func SpecURL(serverURL string) string {
	return strings.TrimRight(serverURL, "/") + PublicSpecPath
}

// Fetch downloads the public specification from the IQ Server at serverURL.
func (f *Fetcher) Fetch(ctx context.Context, serverURL string) (*FetchResult, error) {
	return f.FetchURL(ctx, SpecURL(serverURL))
}

// FetchURL downloads and decodes the specification at specURL. Network
// failures and non-2xx responses return a *oaserrors.FetchError; a body
// that is not a JSON object returns a *oaserrors.ParseError.
func (f *Fetcher) FetchURL(ctx context.Context, specURL string) (*FetchResult, error) {
	log := logging.OrNop(f.Logger).With("url", specURL)

	resp, err := f.client().R().
		SetContext(ctx).
		SetHeader("Accept", httputil.MediaTypeJSON).
		Get(specURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher: %w", &oaserrors.FetchError{
			URL:     specURL,
			Message: "request failed",
			Cause:   err,
		})
	}

	log.Debug("received response", "status", resp.StatusCode(), "bytes", len(resp.Body()), "duration", resp.Time())

	if !httputil.IsSuccess(resp.StatusCode()) {
		return nil, fmt.Errorf("fetcher: %w", &oaserrors.FetchError{
			URL:        specURL,
			StatusCode: resp.StatusCode(),
			Message:    "unexpected status " + resp.Status(),
		})
	}

	body := resp.Body()
	doc, err := Decode(body, specURL)
	if err != nil {
		return nil, fmt.Errorf("fetcher: %w", err)
	}

	result := &FetchResult{
		Document:   doc,
		SourceURL:  specURL,
		SourceSize: int64(len(body)),
		StatusCode: resp.StatusCode(),
		LoadTime:   resp.Time(),
	}
	if v, ok := doc["openapi"].(string); ok {
		result.OpenAPIVersion = v
	}
	return result, nil
}

// client builds the resty client for one request.
func (f *Fetcher) client() *resty.Client {
	userAgent := f.UserAgent
	if userAgent == "" {
		userAgent = iqspec.UserAgent()
	}

	if f.HTTPClient != nil {
		return resty.NewWithClient(f.HTTPClient).SetHeader("User-Agent", userAgent)
	}

	timeout := f.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)
}

// Decode parses a JSON body whose top-level value must be an object.
// Integer literals decode to int64 (uint64 above the int64 range) and every
// other number to float64. source is used in error messages.
func Decode(data []byte, source string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, decodeError(data, source, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		line, col := lineColumn(data, dec.InputOffset())
		return nil, &oaserrors.ParseError{
			Path:    source,
			Line:    line,
			Column:  col,
			Message: "unexpected data after top-level value",
		}
	}
	if doc == nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "top-level value is not an object"}
	}
	convertNumbers(doc)
	return doc, nil
}

func decodeError(data []byte, source string, err error) error {
	parseErr := &oaserrors.ParseError{
		Path:    source,
		Message: "invalid JSON",
		Cause:   err,
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF):
		parseErr.Message = "empty body"
		parseErr.Cause = nil
	case errors.Is(err, io.ErrUnexpectedEOF):
		parseErr.Line, parseErr.Column = lineColumn(data, int64(len(data)))
	case errors.As(err, &syntaxErr):
		parseErr.Line, parseErr.Column = lineColumn(data, syntaxErr.Offset)
	case errors.As(err, &typeErr) && typeErr.Field == "":
		parseErr.Message = "top-level value is not an object"
		parseErr.Cause = nil
	}
	return parseErr
}

// convertNumbers replaces every json.Number under node, in place.
func convertNumbers(node any) {
	switch v := node.(type) {
	case map[string]any:
		for key, value := range v {
			if n, ok := value.(json.Number); ok {
				v[key] = numberValue(n)
				continue
			}
			convertNumbers(value)
		}
	case []any:
		for i, value := range v {
			if n, ok := value.(json.Number); ok {
				v[i] = numberValue(n)
				continue
			}
			convertNumbers(value)
		}
	}
}

func numberValue(n json.Number) any {
	if i, err := n.Int64(); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u
	}
	// Out-of-range values come back as ±Inf.
	f, _ := n.Float64()
	return f
}

// lineColumn converts a byte offset into 1-based line and column numbers.
func lineColumn(data []byte, offset int64) (int, int) {
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, col := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}
