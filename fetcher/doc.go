// Package fetcher downloads the public OpenAPI specification of a Sonatype
// IQ Server.
//
// IQ Server serves its generated OpenAPI 3 document as JSON at
// /api/v2/endpoints/public. The fetcher issues a single GET against that
// endpoint and decodes the body into a generic map. It does not retry.
//
// # Quick Start
//
//	result, err := fetcher.FetchWithOptions(
//	    fetcher.WithServerURL("http://localhost:8070"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("OpenAPI %s, %d bytes\n", result.OpenAPIVersion, result.SourceSize)
//
// Or with the struct API and a context:
//
//	f := fetcher.New()
//	f.Timeout = time.Minute
//	result, err := f.Fetch(ctx, "http://localhost:8070")
//
// # Errors
//
// A network failure or a non-2xx status returns an error matching
// [oaserrors.ErrFetch]; a body that is not a JSON object returns an error
// matching [oaserrors.ErrParse]. Configuration mistakes match
// [oaserrors.ErrConfig].
package fetcher
