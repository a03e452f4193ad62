// Package api embeds the OpenAPI contract of the HTTP interface.
//
// The echo server in internal/generated/servers is generated from the same file.
package api

//go:generate go tool oapi-codegen -config oapi-codegen.types.yml openapi.yml
//go:generate go tool oapi-codegen -config oapi-codegen.server.yml openapi.yml

import (
	"context"
	_ "embed"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yml
var contract []byte

// Load parses and validates the embedded document.
func Load() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(contract)
	if err != nil {
		return nil, err
	}
	if err = doc.Validate(context.Background()); err != nil {
		return nil, err
	}
	return doc, nil
}
