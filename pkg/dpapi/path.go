package dpapi

import "strings"

// ResolvePath substitutes the :name placeholders of an endpoint
// template with the supplied identity values, e.g.
// "/creditors/:identity" with {"identity": "CR123"} becomes
// "/creditors/CR123". Values are inserted verbatim; the API issues
// URL-safe identifiers.
//
// A placeholder with no supplied value fails with a *PathError before
// any request is sent.
func ResolvePath(template string, params map[string]string) (string, error) {
	segments := strings.Split(template, "/")

	for i, segment := range segments {
		if !strings.HasPrefix(segment, ":") {
			continue
		}

		name := segment[1:]

		value, ok := params[name]
		if !ok || value == "" {
			return "", &PathError{Template: template, Param: name}
		}

		segments[i] = value
	}

	return strings.Join(segments, "/"), nil
}
