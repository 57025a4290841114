// Package manifest models the server.json deployment manifest published
// to the MCP registry.
//
// The document is decoded into one record type per nesting level
// (Manifest, Package, Platform, Remote, Repository). Optional scalar
// fields are pointers so absence and emptiness stay distinguishable,
// which the validation rules depend on.
//
// Loading and decoding live here; the rule set lives in the validator
// subpackage and rendering in the report subpackage.
package manifest
