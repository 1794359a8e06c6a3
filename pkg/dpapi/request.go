package dpapi

import "net/http"

// Endpoint describes one API operation: the HTTP verb, the path
// template it lives at, the envelope key its bodies are wrapped
// under, and whether the request carries a body. The four
// constructors below are the only operation shapes the API exposes;
// resource packages declare endpoints with them and contribute no
// protocol logic of their own.
type Endpoint struct {
	Method       string
	PathTemplate string
	Envelope     string
	HasBody      bool
}

// CreateEndpoint declares a creation operation: POST with the
// serialized field set as body, single-object envelope response.
func CreateEndpoint(template, envelope string) Endpoint {
	return Endpoint{
		Method:       http.MethodPost,
		PathTemplate: template,
		Envelope:     envelope,
		HasBody:      true,
	}
}

// GetEndpoint declares a retrieval operation: GET with the identity
// supplied as a path parameter, single-object envelope response.
func GetEndpoint(template, envelope string) Endpoint {
	return Endpoint{
		Method:       http.MethodGet,
		PathTemplate: template,
		Envelope:     envelope,
	}
}

// UpdateEndpoint declares an update operation: PUT with the serialized
// field set as body. The identity is a path parameter, never a body
// field.
func UpdateEndpoint(template, envelope string) Endpoint {
	return Endpoint{
		Method:       http.MethodPut,
		PathTemplate: template,
		Envelope:     envelope,
		HasBody:      true,
	}
}

// ListEndpoint declares a list operation: GET with pagination controls
// and filters as query parameters, array-with-metadata envelope
// response.
func ListEndpoint(template, envelope string) Endpoint {
	return Endpoint{
		Method:       http.MethodGet,
		PathTemplate: template,
		Envelope:     envelope,
	}
}
