package wms

import "strings"

// BuildCapabilitiesRequest returns the GetCapabilities request URL for a
// service endpoint. Parameters already present in the query string are left
// untouched (detected case-insensitively); missing ones are appended as
// fixed ASCII tokens, so no re-encoding of the URL takes place. version may
// be empty, in which case no VERSION parameter is injected and the server
// answers with its own preferred version.
func BuildCapabilitiesRequest(serviceURL, version string) string {
	u := serviceURL
	if !strings.Contains(u, "?") {
		u += "?"
	}
	if !strings.HasSuffix(u, "?") && !strings.HasSuffix(u, "&") {
		u += "&"
	}

	query := strings.ToLower(u[strings.Index(u, "?")+1:])
	if !strings.Contains(query, "service=") {
		u += "SERVICE=WMS&"
	}
	if !strings.Contains(query, "request=") {
		u += "REQUEST=GetCapabilities&"
	}
	if version != "" && !strings.Contains(query, "version=") {
		u += "VERSION=" + version + "&"
	}

	return strings.TrimRight(u, "&?")
}
