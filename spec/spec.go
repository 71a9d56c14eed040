// Package spec embeds the OpenAPI contract of the tour insights API.
// The server exposes it at /openapi.yaml; handler/gen is generated from it.
package spec

import _ "embed"

// OpenAPI contains the raw bytes of openapi.yaml, embedded at compile time.
//
//go:embed openapi.yaml
var OpenAPI []byte
