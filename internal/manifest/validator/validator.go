// Package validator implements the server.json validation rule set.
package validator

import (
	"fmt"
	"strings"

	"github.com/mcp-tools/mcplint/internal/lint"
	"github.com/mcp-tools/mcplint/internal/manifest"
)

// Rule identifiers, stable across releases so diagnostics can be filtered
// or suppressed by id.
const (
	RuleRequiredField          = "required-field"
	RuleNameNamespace          = "name-namespace"
	RuleNameSeparator          = "name-separator"
	RuleDeploymentRequired     = "deployment-required"
	RulePackageType            = "package-type"
	RulePackageTypeUnknown     = "package-type-unknown"
	RuleMCPBURI                = "mcpb-uri"
	RuleMCPBSHA256             = "mcpb-sha256"
	RuleMCPBPlatforms          = "mcpb-platforms"
	RulePlatformField          = "platform-field"
	RuleRemoteEndpoint         = "remote-endpoint"
	RuleRemoteTransport        = "remote-transport"
	RuleRemoteTransportUnknown = "remote-transport-unknown"
	RuleRecommendedField       = "recommended-field"
	RuleRepositoryObject       = "repository-object"
	RuleRepositoryType         = "repository-type"
	RuleRepositoryURL          = "repository-url"
)

// requiredFields are checked in order; absence and emptiness produce
// distinct diagnostics.
var requiredFields = []string{"name", "version", "description"}

// recommendedFields draw a warning when absent. No emptiness check.
var recommendedFields = []string{"license", "homepage", "repository"}

// Validate checks a manifest against the full rule set and returns the
// accumulated diagnostics in rule evaluation order.
//
// It is a pure function: the manifest is never mutated or retained, no
// rule short-circuits another, and validating the same document twice
// yields identical results.
func Validate(m *manifest.Manifest) *lint.Result {
	res := &lint.Result{}

	validateRequired(res, m)
	validateName(res, m)
	validateDeployment(res, m)
	validatePackages(res, m)
	validateRemotes(res, m)
	validateRecommended(res, m)
	validateRepository(res, m)

	return res
}

// validateRequired enforces presence and non-emptiness of the required
// top-level fields. Only one of the two diagnostics can fire per field.
func validateRequired(res *lint.Result, m *manifest.Manifest) {
	for _, field := range requiredFields {
		value := requiredValue(m, field)
		switch {
		case value == nil:
			res.AddError(RuleRequiredField, field,
				fmt.Sprintf("Missing required field: %s", field))
		case *value == "":
			res.AddError(RuleRequiredField, field,
				fmt.Sprintf("Field '%s' cannot be empty", field))
		}
	}
}

func requiredValue(m *manifest.Manifest, field string) *string {
	switch field {
	case "name":
		return m.Name
	case "version":
		return m.Version
	case "description":
		return m.Description
	}
	return nil
}

// validateName checks the naming convention. Both checks run
// independently; a name can draw zero, one or both warnings.
func validateName(res *lint.Result, m *manifest.Manifest) {
	if m.Name == nil {
		return
	}
	name := *m.Name

	if !strings.HasPrefix(name, "io.github.") && !strings.HasPrefix(name, "com.") {
		res.AddWarning(RuleNameNamespace, "name",
			fmt.Sprintf("Name should use io.github.* or com.* namespace: %s", name))
	}
	if !strings.Contains(name, "/") {
		res.AddWarning(RuleNameSeparator, "name",
			fmt.Sprintf("Name should include a slash separator (namespace/name): %s", name))
	}
}

// validateDeployment requires at least one deployment mechanism.
func validateDeployment(res *lint.Result, m *manifest.Manifest) {
	if !m.HasPackages() && !m.HasRemotes() {
		res.AddError(RuleDeploymentRequired, "",
			"Must have at least one package or remote deployment")
	}
}

func validatePackages(res *lint.Result, m *manifest.Manifest) {
	if !m.HasPackages() {
		return
	}

	for i, pkg := range m.Packages {
		field := fmt.Sprintf("packages[%d]", i)

		switch {
		case pkg.Type == "":
			res.AddError(RulePackageType, field+".type",
				fmt.Sprintf("Package %d: Missing 'type' field", i))
		case !pkg.Type.Known():
			res.AddWarning(RulePackageTypeUnknown, field+".type",
				fmt.Sprintf("Package %d: Unknown package type '%s'", i, pkg.Type))
		}

		if pkg.Type == manifest.TypeMCPB {
			validateMCPB(res, i, pkg)
		}
	}
}

// validateMCPB enforces the extra requirements on mcpb packages: a
// source URI, a content hash, and explicit per-platform manifests.
func validateMCPB(res *lint.Result, idx int, pkg manifest.Package) {
	field := fmt.Sprintf("packages[%d]", idx)

	if pkg.URI == nil {
		res.AddError(RuleMCPBURI, field+".uri",
			fmt.Sprintf("Package %d: MCPB package missing 'uri' field", idx))
	}
	if pkg.SHA256 == nil {
		res.AddError(RuleMCPBSHA256, field+".sha256",
			fmt.Sprintf("Package %d: MCPB package missing 'sha256' field", idx))
	}
	if len(pkg.Platforms) == 0 {
		res.AddError(RuleMCPBPlatforms, field+".platforms",
			fmt.Sprintf("Package %d: MCPB package missing 'platforms' array", idx))
		return
	}

	for p, platform := range pkg.Platforms {
		pfield := fmt.Sprintf("%s.platforms[%d]", field, p)
		for _, check := range []struct {
			name  string
			value *string
		}{
			{"os", platform.OS},
			{"arch", platform.Arch},
			{"uri", platform.URI},
			{"sha256", platform.SHA256},
		} {
			if check.value == nil {
				res.AddError(RulePlatformField, pfield+"."+check.name,
					fmt.Sprintf("Package %d, Platform %d: Missing '%s' field", idx, p, check.name))
			}
		}
	}
}

func validateRemotes(res *lint.Result, m *manifest.Manifest) {
	if !m.HasRemotes() {
		return
	}

	for i, remote := range m.Remotes {
		field := fmt.Sprintf("remotes[%d]", i)

		if remote.Endpoint == nil {
			res.AddError(RuleRemoteEndpoint, field+".endpoint",
				fmt.Sprintf("Remote %d: Missing 'endpoint' field", i))
		}

		switch {
		case remote.Transport == nil:
			res.AddError(RuleRemoteTransport, field+".transport",
				fmt.Sprintf("Remote %d: Missing 'transport' field", i))
		case !manifest.KnownTransport(*remote.Transport):
			res.AddWarning(RuleRemoteTransportUnknown, field+".transport",
				fmt.Sprintf("Remote %d: Unknown transport '%s'", i, *remote.Transport))
		}
	}
}

// validateRecommended warns about absent recommended fields. Unlike the
// required fields there is no emptiness check.
func validateRecommended(res *lint.Result, m *manifest.Manifest) {
	for _, field := range recommendedFields {
		var present bool
		switch field {
		case "license":
			present = m.License != nil
		case "homepage":
			present = m.Homepage != nil
		case "repository":
			present = m.Repository.Present()
		}
		if !present {
			res.AddWarning(RuleRecommendedField, field,
				fmt.Sprintf("Recommended field missing: %s", field))
		}
	}
}

func validateRepository(res *lint.Result, m *manifest.Manifest) {
	if !m.Repository.Present() {
		return
	}

	if !m.Repository.IsObject() {
		res.AddError(RuleRepositoryObject, "repository",
			"Repository must be an object")
		return
	}

	if m.Repository.Type == nil {
		res.AddWarning(RuleRepositoryType, "repository.type",
			"Repository missing 'type' field")
	}
	if m.Repository.URL == nil {
		res.AddWarning(RuleRepositoryURL, "repository.url",
			"Repository missing 'url' field")
	}
}
