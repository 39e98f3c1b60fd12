package wms

import "testing"

func TestBuildCapabilitiesRequest(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		version string
		want    string
	}{
		{
			name:    "bare URL",
			url:     "http://maps.example.com/wms",
			version: "1.3.0",
			want:    "http://maps.example.com/wms?SERVICE=WMS&REQUEST=GetCapabilities&VERSION=1.3.0",
		},
		{
			name:    "bare URL without version hint",
			url:     "http://maps.example.com/wms",
			version: "",
			want:    "http://maps.example.com/wms?SERVICE=WMS&REQUEST=GetCapabilities",
		},
		{
			name:    "existing query string",
			url:     "http://maps.example.com/wms?map=/etc/mapserver/map.map",
			version: "1.1.1",
			want:    "http://maps.example.com/wms?map=/etc/mapserver/map.map&SERVICE=WMS&REQUEST=GetCapabilities&VERSION=1.1.1",
		},
		{
			name:    "all parameters already present",
			url:     "http://maps.example.com/wms?SERVICE=WMS&REQUEST=GetCapabilities&VERSION=1.1.1",
			version: "1.3.0",
			want:    "http://maps.example.com/wms?SERVICE=WMS&REQUEST=GetCapabilities&VERSION=1.1.1",
		},
		{
			name:    "lowercase parameters detected case-insensitively",
			url:     "http://maps.example.com/wms?service=wms&request=GetCapabilities",
			version: "1.3.0",
			want:    "http://maps.example.com/wms?service=wms&request=GetCapabilities&VERSION=1.3.0",
		},
		{
			name:    "trailing question mark",
			url:     "http://maps.example.com/wms?",
			version: "1.3.0",
			want:    "http://maps.example.com/wms?SERVICE=WMS&REQUEST=GetCapabilities&VERSION=1.3.0",
		},
		{
			name:    "trailing ampersand",
			url:     "http://maps.example.com/wms?map=foo&",
			version: "",
			want:    "http://maps.example.com/wms?map=foo&SERVICE=WMS&REQUEST=GetCapabilities",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BuildCapabilitiesRequest(tt.url, tt.version)
			if got != tt.want {
				t.Errorf("BuildCapabilitiesRequest() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestBuildCapabilitiesRequestIdempotent(t *testing.T) {
	once := BuildCapabilitiesRequest("http://maps.example.com/wms", "1.3.0")
	twice := BuildCapabilitiesRequest(once, "1.3.0")
	if once != twice {
		t.Errorf("second application changed the URL: %s -> %s", once, twice)
	}
}
