// Package summit holds the assets compiled into the binary.
package summit

import "embed"

// Migrations contains the goose migrations under "migrations/".
//
//go:embed migrations/*.sql
var Migrations embed.FS

// DefaultProfile is the canned profile document served by the mock endpoint.
//
//go:embed fixtures/profile.json
var DefaultProfile []byte

// OpenAPISpec describes the mock profile API.
//
//go:embed specs/v1.yaml
var OpenAPISpec []byte
