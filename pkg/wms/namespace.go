package wms

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// XML namespaces used by WMS capabilities documents.
const (
	wmsNamespace   = "http://www.opengis.net/wms"
	xlinkNamespace = "http://www.w3.org/1999/xlink"
	xsiNamespace   = "http://www.w3.org/2001/XMLSchema-instance"
)

// Recognized WMS protocol versions.
const (
	Version100 = "1.0.0"
	Version110 = "1.1.0"
	Version111 = "1.1.1"
	Version130 = "1.3.0"
)

// SupportedVersions lists the protocol versions this client understands.
func SupportedVersions() []string {
	return []string{Version100, Version110, Version111, Version130}
}

// namespaceBindings are the prefix bindings used for element lookups in one
// document. They are resolved once from the document version and passed
// explicitly through the parse; the parser itself holds no state.
//
// Default is always the WMS namespace. Alias is the secondary binding that
// element lookups match against: the WMS namespace for 1.3.0 documents, the
// empty namespace for earlier versions, which were not namespace-qualified.
type namespaceBindings struct {
	Default string
	Alias   string
	XLink   string
	XSI     string
}

func bindNamespaces(version string) (namespaceBindings, error) {
	switch version {
	case Version100, Version110, Version111:
		return namespaceBindings{
			Default: wmsNamespace,
			XLink:   xlinkNamespace,
			XSI:     xsiNamespace,
		}, nil
	case Version130:
		return namespaceBindings{
			Default: wmsNamespace,
			Alias:   wmsNamespace,
			XLink:   xlinkNamespace,
			XSI:     xsiNamespace,
		}, nil
	default:
		return namespaceBindings{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
}

// child returns the first child element of parent whose local name matches
// tag. An element in the bound alias namespace wins over one that is merely
// local-name equal, so documents that mix prefixes, rebind the default
// namespace or omit qualification entirely still resolve.
func (ns namespaceBindings) child(parent *etree.Element, tag string) *etree.Element {
	var loose *etree.Element
	for _, el := range parent.ChildElements() {
		if el.Tag != tag {
			continue
		}
		if el.NamespaceURI() == ns.Alias {
			return el
		}
		if loose == nil {
			loose = el
		}
	}
	return loose
}

// children returns all child elements of parent with the given local name,
// in document order.
func (ns namespaceBindings) children(parent *etree.Element, tag string) []*etree.Element {
	var out []*etree.Element
	for _, el := range parent.ChildElements() {
		if el.Tag == tag {
			out = append(out, el)
		}
	}
	return out
}

// childText returns the trimmed text of the named child, or "" when the
// child is absent.
func (ns namespaceBindings) childText(parent *etree.Element, tag string) string {
	if el := ns.child(parent, tag); el != nil {
		return strings.TrimSpace(el.Text())
	}
	return ""
}

// href resolves the xlink href attribute of el by local attribute name,
// tolerating renamed or undeclared xlink prefixes.
func href(el *etree.Element) string {
	for _, a := range el.Attr {
		if a.Key == "href" {
			return a.Value
		}
	}
	return ""
}
