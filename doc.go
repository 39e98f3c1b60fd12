/*
Package mapsui provides client-side discovery for OGC Web Map Services.

# Overview

The module implements the capabilities-negotiation side of a WMS client:
it issues a GetCapabilities request against a service endpoint, validates
the advertised protocol version and builds an immutable, strongly-typed
model of the service's operations, supported coordinate reference systems
and hierarchical layer tree. The parser is deliberately tolerant of the
variance found in real-world servers: missing optional elements, vendor
deviations, multiple root layers, inconsistent namespace usage and mixed
legacy/current attribute spellings all normalize into one consistent model.

# Package Structure

	github.com/productinfo/Mapsui/pkg/wms - capabilities client and parser

# Quick Start

	client := wms.NewClient()
	caps, err := client.GetCapabilities(ctx, "https://maps.example.com/wms")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(caps.Service.Title)

See the pkg/wms package documentation and examples/basic for details.
*/
package mapsui
