package wms

import (
	"errors"
	"strings"

	"github.com/beevik/etree"
)

// Capabilities is the parsed model of a WMS service's capabilities document.
// Construction either yields a fully populated value or fails; the value is
// never mutated afterwards and is safe to share across goroutines without
// synchronization.
type Capabilities struct {
	// Version is the protocol version the server advertised.
	Version string

	// Service is the service-level metadata.
	Service ServiceDescription

	// GetMapFormats and GetFeatureInfoFormats list the advertised output
	// formats of the two operations, in document order.
	GetMapFormats         []string
	GetFeatureInfoFormats []string

	// ExceptionFormats lists the formats the server can report errors in.
	ExceptionFormats []string

	// GetMapRequests and GetFeatureInfoRequests hold one OnlineResource per
	// advertised HTTP method of the respective operation.
	GetMapRequests         []OnlineResource
	GetFeatureInfoRequests []OnlineResource

	// Layer is the root of the advertised layer hierarchy.
	Layer *Layer

	// VendorSpecific is the raw VendorSpecificCapabilities subtree, passed
	// through unparsed for callers that understand vendor dialects.
	VendorSpecific *etree.Element
}

// FindLayer returns the first layer with the given name, searching the tree
// depth-first in document order, or nil when no layer matches.
func (c *Capabilities) FindLayer(name string) *Layer {
	return c.Layer.find(name)
}

// ParseCapabilities builds the capabilities model from an already parsed
// document. Client.GetCapabilities converges on this function after
// fetching; both paths produce structurally equal models for equivalent
// input.
func ParseCapabilities(doc *etree.Document) (*Capabilities, error) {
	root := doc.Root()
	if root == nil {
		return nil, errors.New("capabilities document has no root element")
	}

	versionAttr := root.SelectAttr("version")
	if versionAttr == nil {
		return nil, ErrMissingVersion
	}
	version := versionAttr.Value

	ns, err := bindNamespaces(version)
	if err != nil {
		return nil, err
	}

	caps := &Capabilities{Version: version}

	serviceNode := ns.child(root, "Service")
	if serviceNode == nil {
		return nil, ErrMissingService
	}
	caps.Service = parseServiceDescription(ns, serviceNode)

	capabilityNode := ns.child(root, "Capability")
	if capabilityNode == nil {
		return nil, ErrMissingCapability
	}
	if err := caps.parseCapability(ns, capabilityNode); err != nil {
		return nil, err
	}

	return caps, nil
}

func parseServiceDescription(ns namespaceBindings, node *etree.Element) ServiceDescription {
	sd := ServiceDescription{
		Title:             ns.childText(node, "Title"),
		Abstract:          ns.childText(node, "Abstract"),
		Fees:              ns.childText(node, "Fees"),
		AccessConstraints: ns.childText(node, "AccessConstraints"),
		Keywords:          parseKeywords(ns, node),
	}
	if or := ns.child(node, "OnlineResource"); or != nil {
		sd.OnlineResource = href(or)
	}
	if contact := ns.child(node, "ContactInformation"); contact != nil {
		sd.Contact = parseContactInformation(ns, contact)
	}
	return sd
}

// parseKeywords distinguishes an absent KeywordList (nil) from a present but
// empty one (empty non-nil slice).
func parseKeywords(ns namespaceBindings, node *etree.Element) []string {
	list := ns.child(node, "KeywordList")
	if list == nil {
		return nil
	}
	keywords := []string{}
	for _, kw := range ns.children(list, "Keyword") {
		keywords = append(keywords, strings.TrimSpace(kw.Text()))
	}
	return keywords
}

func parseContactInformation(ns namespaceBindings, node *etree.Element) ContactInformation {
	ci := ContactInformation{
		Position:              ns.childText(node, "ContactPosition"),
		VoiceTelephone:        ns.childText(node, "ContactVoiceTelephone"),
		FacsimileTelephone:    ns.childText(node, "ContactFacsimileTelephone"),
		ElectronicMailAddress: ns.childText(node, "ContactElectronicMailAddress"),
	}
	if primary := ns.child(node, "ContactPersonPrimary"); primary != nil {
		ci.Person = ns.childText(primary, "ContactPerson")
		ci.Organization = ns.childText(primary, "ContactOrganization")
	}
	if addr := ns.child(node, "ContactAddress"); addr != nil {
		ci.Address = ContactAddress{
			AddressType:     ns.childText(addr, "AddressType"),
			Address:         ns.childText(addr, "Address"),
			City:            ns.childText(addr, "City"),
			StateOrProvince: ns.childText(addr, "StateOrProvince"),
			PostCode:        ns.childText(addr, "PostCode"),
			Country:         ns.childText(addr, "Country"),
		}
	}
	return ci
}

func (c *Capabilities) parseCapability(ns namespaceBindings, node *etree.Element) error {
	request := ns.child(node, "Request")
	if request == nil {
		return ErrMissingRequest
	}

	getMap := ns.child(request, "GetMap")
	if getMap == nil {
		return ErrMissingGetMap
	}
	c.GetMapFormats = parseFormats(ns, getMap)
	c.GetMapRequests = parseRequestMethods(ns, getMap)

	// GetFeatureInfo is optional; many servers omit it.
	if gfi := ns.child(request, "GetFeatureInfo"); gfi != nil {
		c.GetFeatureInfoFormats = parseFormats(ns, gfi)
		c.GetFeatureInfoRequests = parseRequestMethods(ns, gfi)
	}

	if exception := ns.child(node, "Exception"); exception != nil {
		c.ExceptionFormats = parseFormats(ns, exception)
	}

	c.VendorSpecific = ns.child(node, "VendorSpecificCapabilities")

	layer, err := parseRootLayers(ns, node)
	if err != nil {
		return err
	}
	c.Layer = layer

	return nil
}

func parseFormats(ns namespaceBindings, node *etree.Element) []string {
	var formats []string
	for _, f := range ns.children(node, "Format") {
		formats = append(formats, strings.TrimSpace(f.Text()))
	}
	return formats
}

// parseRequestMethods collects one OnlineResource per advertised HTTP method
// under the operation's DCPType/HTTP node. The child element's tag names the
// method ("Get", "Post") and the nested OnlineResource carries the URL.
func parseRequestMethods(ns namespaceBindings, node *etree.Element) []OnlineResource {
	dcp := ns.child(node, "DCPType")
	if dcp == nil {
		dcp = ns.child(node, "DCP")
	}
	if dcp == nil {
		return nil
	}
	httpNode := ns.child(dcp, "HTTP")
	if httpNode == nil {
		return nil
	}

	var resources []OnlineResource
	for _, method := range httpNode.ChildElements() {
		res := OnlineResource{Type: method.Tag}
		if or := ns.child(method, "OnlineResource"); or != nil {
			res.URL = href(or)
		}
		resources = append(resources, res)
	}
	return resources
}
