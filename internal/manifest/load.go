package manifest

import (
	"bytes"
	"encoding/json"
	"io/fs"

	"github.com/cockroachdb/errors"

	"github.com/mcp-tools/mcplint/pkg/fileutil"
)

// Sentinel errors for the two structural load failures. JSON syntax
// problems are reported through *ParseError instead, so the decoder's
// diagnostic survives to the user.
var (
	// ErrNotFound indicates the manifest file does not exist.
	ErrNotFound = errors.New("manifest not found")

	// ErrNotObject indicates the document root is valid JSON but not an
	// object (a bare array, string, number, bool or null). Field-presence
	// rules are meaningless against such a document, so this is a fatal
	// load failure rather than a validation diagnostic.
	ErrNotObject = errors.New("manifest must be a JSON object")
)

// ParseError wraps a JSON decoding failure with the decoder's diagnostic.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "invalid JSON: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads and decodes a manifest file.
//
// Failure kinds are distinguishable by the caller:
//   - ErrNotFound when the file does not exist
//   - ErrNotObject when the document root is not a JSON object
//   - *ParseError when the content is not valid JSON
//   - any other error for I/O problems (permissions, oversized file)
func Load(path string) (*Manifest, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
		return nil, err
	}
	return Parse(data)
}

// Parse decodes a manifest from raw JSON bytes.
func Parse(data []byte) (*Manifest, error) {
	// A bare null decodes into a struct without complaint; reject it
	// explicitly so the caller never validates a document that was
	// never there.
	if string(bytes.TrimSpace(data)) == "null" {
		return nil, ErrNotObject
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		// A type error with no field path means the document root
		// itself is not an object.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "" {
			return nil, errors.WithSecondaryError(ErrNotObject, err)
		}
		return nil, &ParseError{Err: err}
	}
	return &m, nil
}
