package jsonx

import "github.com/goccy/go-json"

// Thin wrapper so hot paths can swap JSON implementations in one place.
var (
	Marshal    = json.Marshal
	Unmarshal  = json.Unmarshal
	NewDecoder = json.NewDecoder
)

type RawMessage = json.RawMessage
