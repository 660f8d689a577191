// Package schemas embeds the JSON Schema documents for the summarize API.
package schemas

import _ "embed"

// RequestSchema is the JSON Schema for POST /summarize request bodies
//
//go:embed summarize_request.schema.json
var RequestSchema []byte

// ResponseSchema is the JSON Schema for summarize responses
//
//go:embed summarize_response.schema.json
var ResponseSchema []byte
