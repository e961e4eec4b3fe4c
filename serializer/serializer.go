package serializer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v4"

	"github.com/sonatype-nexus-community/iqspec/internal/fileutil"
	"github.com/sonatype-nexus-community/iqspec/oaserrors"
)

// Indent is the number of spaces per nesting level in the output.
const Indent = 2

// Encode writes doc to w as a single YAML document. Mapping keys are sorted
// and sequences are not indented under their parent key.
func Encode(w io.Writer, doc map[string]any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	enc.CompactSeqIndent()
	if err := enc.Encode(doc); err != nil {
		_ = enc.Close()
		return err
	}
	return enc.Close()
}

// Marshal returns the YAML encoding of doc.
func Marshal(doc map[string]any) ([]byte, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "cannot be nil"}
	}
	var buf bytes.Buffer
	if err := Encode(&buf, doc); err != nil {
		return nil, fmt.Errorf("serializer: encoding YAML: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile serializes doc and writes it to path, replacing any existing
// file. Missing parent directories are created. Failures are returned as
// *oaserrors.WriteError.
func WriteFile(path string, doc map[string]any) (*WriteResult, error) {
	if path == "" {
		path = fileutil.DefaultOutputPath
	}
	cleaned := filepath.Clean(path)

	data, err := Marshal(doc)
	if err != nil {
		return nil, &oaserrors.WriteError{Path: cleaned, Message: "serialization failed", Cause: err}
	}

	if dir := filepath.Dir(cleaned); dir != "." {
		if err := os.MkdirAll(dir, fileutil.DirReadableByAll); err != nil {
			return nil, &oaserrors.WriteError{Path: cleaned, Message: "creating directory", Cause: err}
		}
	}
	if err := fileutil.RejectSymlinkOutput(cleaned); err != nil {
		return nil, &oaserrors.WriteError{Path: cleaned, Message: "unsafe output path", Cause: err}
	}
	if err := os.WriteFile(cleaned, data, fileutil.ReadableByAll); err != nil {
		return nil, &oaserrors.WriteError{Path: cleaned, Message: "writing file", Cause: err}
	}

	return &WriteResult{Path: cleaned, Bytes: int64(len(data))}, nil
}

// WriteResult describes a written specification file.
type WriteResult struct {
	// Path is the cleaned output path
	Path string
	// Bytes is the number of bytes written
	Bytes int64
}
