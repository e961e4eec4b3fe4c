// Package serializer writes a patched specification as YAML.
//
// The output has sorted mapping keys and two-space indentation, so a
// document patched twice produces byte-identical files:
//
//	result, err := serializer.WriteFile("spec/openapi.yaml", patched.Document)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("wrote %d bytes to %s\n", result.Bytes, result.Path)
package serializer
