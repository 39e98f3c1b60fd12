package wms

import "errors"

// Parse and transport errors. All are fatal to the construction attempt:
// a failed parse never yields a partial model.
var (
	// ErrDownloadFailed is returned when the injected fetcher fails; the
	// underlying cause is wrapped alongside it.
	ErrDownloadFailed = errors.New("could not download capabilities")
	// ErrMissingVersion is returned when the root element has no version
	// attribute.
	ErrMissingVersion = errors.New("capabilities document has no version attribute")
	// ErrUnsupportedVersion is returned for a version attribute outside the
	// recognized set.
	ErrUnsupportedVersion = errors.New("unsupported WMS version")
	// ErrMissingService is returned when the Service section is absent.
	ErrMissingService = errors.New("capabilities document has no Service section")
	// ErrMissingCapability is returned when the Capability section is absent.
	ErrMissingCapability = errors.New("capabilities document has no Capability section")
	// ErrMissingRequest is returned when Capability has no Request node.
	ErrMissingRequest = errors.New("Capability section has no Request node")
	// ErrMissingGetMap is returned when the Request node advertises no GetMap
	// operation.
	ErrMissingGetMap = errors.New("Request section has no GetMap operation")
	// ErrMissingLayer is returned when Capability advertises no layers at all.
	ErrMissingLayer = errors.New("Capability section has no Layer")
	// ErrInvalidBoundingBox is returned when a LatLonBoundingBox carries a
	// bound that does not parse as a number.
	ErrInvalidBoundingBox = errors.New("invalid lat/lon bounding box")
)
