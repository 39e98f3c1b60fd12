package wms

// BoundingBox is an axis-aligned extent expressed in a single coordinate
// reference system.
type BoundingBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewBoundingBox creates a bounding box from its four ordered bounds.
func NewBoundingBox(minX, minY, maxX, maxY float64) BoundingBox {
	return BoundingBox{MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY}
}

// Size is an image size in pixels.
type Size struct {
	Width  int
	Height int
}

// OnlineResource is one advertised access method for an operation: the
// resource type (an HTTP method such as "Get" or "Post" for request
// endpoints, a MIME format for legend images) and its URL.
type OnlineResource struct {
	Type string
	URL  string
}

// ServiceDescription holds the service-level metadata of a capabilities
// document. Every field is optional; servers that omit an element leave the
// corresponding field at its zero value.
type ServiceDescription struct {
	Title             string
	OnlineResource    string
	Abstract          string
	Fees              string
	AccessConstraints string
	Keywords          []string
	Contact           ContactInformation
}

// ContactInformation identifies who operates the service.
type ContactInformation struct {
	Person                string
	Organization          string
	Position              string
	Address               ContactAddress
	VoiceTelephone        string
	FacsimileTelephone    string
	ElectronicMailAddress string
}

// ContactAddress is the postal address part of ContactInformation.
type ContactAddress struct {
	AddressType     string
	Address         string
	City            string
	StateOrProvince string
	PostCode        string
	Country         string
}

// LayerStyle describes one advertised rendering style of a layer.
type LayerStyle struct {
	Name     string
	Title    string
	Abstract string

	// Legend references the legend image for this style; LegendSize is set
	// only when the server advertises both pixel dimensions.
	Legend     *OnlineResource
	LegendSize *Size

	// StyleSheet references the style's SLD document, when advertised.
	StyleSheet *OnlineResource
}

// Layer is one node of the service's advertised layer hierarchy. A layer
// without a Name is a pure grouping node and cannot be requested directly.
// Each child is owned exclusively by its parent; the tree is acyclic with a
// single root and sibling order follows document order.
type Layer struct {
	Name      string
	Title     string
	Abstract  string
	Queryable bool

	// Keywords is nil when the source document has no KeywordList, and an
	// empty non-nil slice when the list exists with no entries.
	Keywords []string

	// CRS lists the supported coordinate reference systems: all legacy SRS
	// values followed by all CRS values, in document order.
	CRS []string

	// BoundingBoxes maps a CRS identifier to the layer's extent in that
	// system. On duplicate identifiers the last advertised box wins.
	BoundingBoxes map[string]BoundingBox

	// LatLonBoundingBox is the overall geographic extent, when advertised.
	LatLonBoundingBox *BoundingBox

	Styles   []LayerStyle
	Children []*Layer
}

// SupportsCRS reports whether the layer advertises the given coordinate
// reference system identifier.
func (l *Layer) SupportsCRS(id string) bool {
	for _, crs := range l.CRS {
		if crs == id {
			return true
		}
	}
	return false
}

func (l *Layer) find(name string) *Layer {
	if l == nil {
		return nil
	}
	if l.Name == name {
		return l
	}
	for _, child := range l.Children {
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}
