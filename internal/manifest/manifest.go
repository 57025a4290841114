package manifest

import (
	"bytes"
	"encoding/json"
	"slices"
)

// Package type constants for the registry's known distribution channels.
const (
	TypeNPM    = "npm"
	TypePyPI   = "pypi"
	TypeMCPB   = "mcpb"
	TypeDocker = "docker"
	TypeNuGet  = "nuget"
)

// Transport constants for remote deployments.
const (
	TransportStreamableHTTP = "streamable-http"
	TransportSSE            = "sse"
)

// knownPackageTypes is the closed set of recognized package types.
// Anything else is permitted but draws a warning.
var knownPackageTypes = []PackageType{TypeNPM, TypePyPI, TypeMCPB, TypeDocker, TypeNuGet}

// knownTransports is the closed set of recognized remote transports.
var knownTransports = []string{TransportStreamableHTTP, TransportSSE}

// PackageType is a package's distribution channel. The zero value means
// the field was absent or empty; unrecognized raw values are preserved.
type PackageType string

// Known returns true if the type is one of the registry's recognized
// distribution channels.
func (t PackageType) Known() bool {
	return slices.Contains(knownPackageTypes, t)
}

// KnownTransport returns true if the transport value is recognized.
func KnownTransport(transport string) bool {
	return slices.Contains(knownTransports, transport)
}

// Manifest is the typed model of a server.json deployment manifest.
//
// Scalar fields are pointers so the validator can distinguish an absent
// key from a present-but-empty value; the two conditions produce
// different diagnostics.
type Manifest struct {
	// Name is the server identifier, conventionally namespace/name
	// under an io.github.* or com.* namespace.
	Name *string `json:"name"`

	// Version is the release version of the server.
	Version *string `json:"version"`

	// Description is a short human-readable summary.
	Description *string `json:"description"`

	// License is the SPDX license identifier. Recommended.
	License *string `json:"license"`

	// Homepage is the project URL. Recommended.
	Homepage *string `json:"homepage"`

	// Repository points at the source repository. Recommended.
	Repository Repository `json:"repository"`

	// Packages lists the distributable artifacts for this server.
	Packages []Package `json:"packages"`

	// Remotes lists the network-accessible deployment endpoints.
	Remotes []Remote `json:"remotes"`
}

// HasPackages returns true if the manifest declares at least one package.
func (m *Manifest) HasPackages() bool {
	return len(m.Packages) > 0
}

// HasRemotes returns true if the manifest declares at least one remote.
func (m *Manifest) HasRemotes() bool {
	return len(m.Remotes) > 0
}

// Package is a declared distributable artifact entry.
type Package struct {
	// Type is the distribution channel (npm, pypi, mcpb, docker, nuget).
	Type PackageType `json:"type"`

	// URI is the artifact location. Required for mcpb packages.
	URI *string `json:"uri"`

	// SHA256 is the artifact content hash. Required for mcpb packages.
	SHA256 *string `json:"sha256"`

	// Platforms lists per-platform binary manifests. Required and
	// non-empty for mcpb packages.
	Platforms []Platform `json:"platforms"`
}

// Platform is an OS/architecture pair with its own artifact URI and hash,
// nested under an mcpb package.
type Platform struct {
	OS     *string `json:"os"`
	Arch   *string `json:"arch"`
	URI    *string `json:"uri"`
	SHA256 *string `json:"sha256"`
}

// Remote is a declared network-accessible deployment endpoint.
type Remote struct {
	// Endpoint is the URL the server is reachable at.
	Endpoint *string `json:"endpoint"`

	// Transport is the protocol tag (streamable-http or sse).
	Transport *string `json:"transport"`
}

// Repository describes the source repository of the server.
//
// The field is deliberately tolerant at decode time: a repository value
// that is not a JSON object (a string, array, number or null) records
// that fact instead of failing the whole parse, so the validator can
// report it as an ordinary diagnostic.
type Repository struct {
	Type *string `json:"type"`
	URL  *string `json:"url"`

	present bool
	object  bool
}

// Present returns true if the repository key appeared in the document,
// regardless of its value's type.
func (r Repository) Present() bool { return r.present }

// IsObject returns true if the repository value was a JSON object.
func (r Repository) IsObject() bool { return r.object }

// UnmarshalJSON implements json.Unmarshaler. It is called only when the
// repository key is present, including for an explicit null.
func (r *Repository) UnmarshalJSON(data []byte) error {
	r.present = true

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		// Non-object value (string, array, number, bool, null).
		// Recorded for the validator; not a parse failure.
		return nil
	}
	r.object = true

	var fields struct {
		Type *string `json:"type"`
		URL  *string `json:"url"`
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	r.Type = fields.Type
	r.URL = fields.URL
	return nil
}

// MarshalJSON implements json.Marshaler for symmetry with UnmarshalJSON.
func (r Repository) MarshalJSON() ([]byte, error) {
	if !r.present || !r.object {
		return []byte("null"), nil
	}
	return json.Marshal(struct {
		Type *string `json:"type,omitempty"`
		URL  *string `json:"url,omitempty"`
	}{Type: r.Type, URL: r.URL})
}
