package types

import "fmt"

// APIVersion selects one of the two versioned FMP API surfaces.
// Every endpoint path belongs to exactly one version; the dispatcher trusts the caller's choice.
type APIVersion int

const (
	APIVersionV3 APIVersion = iota + 3
	APIVersionV4
)

// DefaultBaseHost is the scheme and host every versioned base path hangs off.
const DefaultBaseHost = "https://financialmodelingprep.com"

// Path returns the fixed version path segment, e.g. "/api/v3/".
func (v APIVersion) Path() string {
	switch v {
	case APIVersionV3:
		return "/api/v3/"
	case APIVersionV4:
		return "/api/v4/"
	default:
		return fmt.Sprintf("/api/v%d/", int(v))
	}
}

// Valid reports whether v is one of the supported API surfaces.
func (v APIVersion) Valid() bool {
	return v == APIVersionV3 || v == APIVersionV4
}

func (v APIVersion) String() string {
	switch v {
	case APIVersionV3:
		return "v3"
	case APIVersionV4:
		return "v4"
	default:
		return fmt.Sprintf("v%d", int(v))
	}
}
