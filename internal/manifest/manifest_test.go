package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_TypedFields(t *testing.T) {
	m, err := Parse([]byte(`{
		"name": "io.github.acme/tool",
		"version": "1.0.0",
		"description": "",
		"packages": [
			{"type": "mcpb", "uri": "https://example.com/a.mcpb", "sha256": "abc",
			 "platforms": [{"os": "darwin", "arch": "arm64", "uri": "u", "sha256": "s"}]}
		],
		"remotes": [{"endpoint": "https://mcp.example.com", "transport": "sse"}]
	}`))
	require.NoError(t, err)

	require.NotNil(t, m.Name)
	assert.Equal(t, "io.github.acme/tool", *m.Name)

	// Present-but-empty stays distinguishable from absent
	require.NotNil(t, m.Description)
	assert.Equal(t, "", *m.Description)
	assert.Nil(t, m.License)
	assert.Nil(t, m.Homepage)

	require.Len(t, m.Packages, 1)
	pkg := m.Packages[0]
	assert.Equal(t, PackageType(TypeMCPB), pkg.Type)
	require.NotNil(t, pkg.URI)
	require.Len(t, pkg.Platforms, 1)
	require.NotNil(t, pkg.Platforms[0].OS)
	assert.Equal(t, "darwin", *pkg.Platforms[0].OS)

	require.Len(t, m.Remotes, 1)
	require.NotNil(t, m.Remotes[0].Transport)
	assert.Equal(t, TransportSSE, *m.Remotes[0].Transport)

	assert.True(t, m.HasPackages())
	assert.True(t, m.HasRemotes())
}

func TestParse_AbsentFields(t *testing.T) {
	m, err := Parse([]byte(`{}`))
	require.NoError(t, err)

	assert.Nil(t, m.Name)
	assert.Nil(t, m.Version)
	assert.Nil(t, m.Description)
	assert.False(t, m.Repository.Present())
	assert.False(t, m.HasPackages())
	assert.False(t, m.HasRemotes())
}

func TestParse_Repository(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		present bool
		object  bool
		hasType bool
		hasURL  bool
	}{
		{"absent", `{}`, false, false, false, false},
		{"object with both fields", `{"repository": {"type": "git", "url": "https://x"}}`, true, true, true, true},
		{"empty object", `{"repository": {}}`, true, true, false, false},
		{"string value", `{"repository": "https://x"}`, true, false, false, false},
		{"array value", `{"repository": ["https://x"]}`, true, false, false, false},
		{"number value", `{"repository": 42}`, true, false, false, false},
		{"null value", `{"repository": null}`, true, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse([]byte(tt.doc))
			require.NoError(t, err)

			assert.Equal(t, tt.present, m.Repository.Present(), "Present()")
			assert.Equal(t, tt.object, m.Repository.IsObject(), "IsObject()")
			assert.Equal(t, tt.hasType, m.Repository.Type != nil, "Type presence")
			assert.Equal(t, tt.hasURL, m.Repository.URL != nil, "URL presence")
		})
	}
}

func TestParse_NonObjectRoot(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"array root", `[1, 2]`},
		{"string root", `"server"`},
		{"number root", `42`},
		{"null root", `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.ErrorIs(t, err, ErrNotObject)
		})
	}
}

func TestParse_MalformedJSON(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"truncated", `{"name": "x"`},
		{"garbage", `not json at all`},
		{"empty input", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			var parseErr *ParseError
			require.ErrorAs(t, err, &parseErr)
			// The decoder's diagnostic must survive for display
			assert.Contains(t, parseErr.Error(), "invalid JSON: ")
		})
	}
}

func TestPackageType_Known(t *testing.T) {
	for _, known := range []PackageType{TypeNPM, TypePyPI, TypeMCPB, TypeDocker, TypeNuGet} {
		assert.True(t, known.Known(), "type %q", known)
	}
	assert.False(t, PackageType("homebrew").Known())
	assert.False(t, PackageType("").Known())
}

func TestKnownTransport(t *testing.T) {
	assert.True(t, KnownTransport(TransportStreamableHTTP))
	assert.True(t, KnownTransport(TransportSSE))
	assert.False(t, KnownTransport("graphql"))
	assert.False(t, KnownTransport(""))
}
