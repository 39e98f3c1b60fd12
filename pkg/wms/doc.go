// Package wms implements a client-side capabilities negotiator for the
// OGC Web Map Service discovery protocol.
//
// Given a service endpoint, the client issues a single GetCapabilities
// request, validates the advertised protocol version and builds an
// in-memory model of the service's operations, supported coordinate
// reference systems and hierarchical layer tree.
//
// # Tolerance
//
// Real-world capabilities documents vary widely: optional elements are
// missing, vendors deviate from the schema, servers advertise multiple root
// layers, namespace qualification is inconsistent and legacy attribute
// spellings (SRS vs CRS, LegendUrl vs LegendURL) coexist with current ones.
// The parser normalizes all of this into one strongly-typed model so that
// downstream rendering and query code needs no defensive checks.
//
// # Usage
//
// Fetch and parse in one step:
//
//	client := wms.NewClient()
//	caps, err := client.GetCapabilities(ctx, "https://maps.example.com/wms")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(caps.Service.Title, caps.Layer.Title)
//
// Callers that already hold a document can bypass the fetch:
//
//	doc := etree.NewDocument()
//	if err := doc.ReadFromBytes(data); err != nil { ... }
//	caps, err := wms.ParseCapabilities(doc)
//
// Both paths converge on the same parse pass and produce structurally equal
// models for equivalent input.
//
// # Transport
//
// The document fetch is the only asynchronous operation. It is expressed as
// an injectable FetchFunc; the default performs a plain HTTP GET. Retry,
// caching and authentication belong to a substituted FetchFunc, not to this
// package. A construction attempt performs exactly one fetch, and a fetch
// failure is terminal for that attempt.
//
// # Versions
//
// Versions 1.0.0, 1.1.0, 1.1.1 and 1.3.0 are recognized. Documents for
// 1.3.0 resolve elements against the WMS namespace; earlier documents are
// not namespace-qualified. Any other version fails construction with
// ErrUnsupportedVersion.
package wms
