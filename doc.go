// Package iqspec produces a client-generation-ready OpenAPI specification for
// Sonatype IQ Server.
//
// IQ Server publishes an auto-generated OpenAPI 3 document at
// /api/v2/endpoints/public. That document has a number of known defects:
// missing info and security metadata, mis-typed parameters, wrong response
// schemas, duplicate tags, schema names containing spaces, and endpoints
// whose definitions are too incomplete to generate clients from. iqspec
// downloads the document, applies a fixed sequence of corrective patches and
// writes the result as YAML.
//
// # Packages
//
//   - fetcher: download and decode the public specification from a server
//   - patcher: the document model and the ordered list of patch rules
//   - serializer: YAML encoding and writing of the patched document
//   - oaserrors: structured error types for each failure class
//   - logging: the logging interface used by the packages above
//
// # Quick Start
//
//	fetched, err := fetcher.FetchWithOptions(
//		fetcher.WithServerURL("http://localhost:8070"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := patcher.PatchWithOptions(
//		patcher.WithFetchResult(fetched),
//		patcher.WithVersion("1.185.0"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if _, err := serializer.WriteFile("spec/openapi.yaml", result.Document); err != nil {
//		log.Fatal(err)
//	}
//
// Every patch rule checks its precondition first and is skipped when its
// target is absent, so the same binary can be run against IQ Server versions
// where some defects have already been fixed upstream. Running the rules
// twice produces the same document as running them once.
package iqspec
