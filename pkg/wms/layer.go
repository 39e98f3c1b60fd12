package wms

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// RootLayerName is the name given to the synthetic root layer when a server
// illegally advertises more than one top-level layer.
const RootLayerName = "__auto_generated_root_layer__"

func parseRootLayers(ns namespaceBindings, capability *etree.Element) (*Layer, error) {
	nodes := ns.children(capability, "Layer")
	switch len(nodes) {
	case 0:
		return nil, ErrMissingLayer
	case 1:
		return parseLayer(ns, nodes[0])
	}

	// Nonconformant server: multiple root layers. Wrap them in a synthetic
	// root. The root inherits the first sibling's CRS list, bounding boxes,
	// styles and abstract; existing callers depend on this inheritance, so
	// it is kept even though an empty root would be cleaner.
	children := make([]*Layer, 0, len(nodes))
	for _, node := range nodes {
		child, err := parseLayer(ns, node)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}
	first := children[0]
	return &Layer{
		Name:          RootLayerName,
		Abstract:      first.Abstract,
		CRS:           first.CRS,
		BoundingBoxes: first.BoundingBoxes,
		Styles:        first.Styles,
		Children:      children,
	}, nil
}

// parseLayer builds one layer descriptor and recurses into its children in
// document order.
func parseLayer(ns namespaceBindings, node *etree.Element) (*Layer, error) {
	layer := &Layer{
		Name:      ns.childText(node, "Name"),
		Title:     ns.childText(node, "Title"),
		Abstract:  ns.childText(node, "Abstract"),
		Queryable: node.SelectAttrValue("queryable", "") == "1",
		Keywords:  parseKeywords(ns, node),
	}

	// Legacy and current spellings may coexist in one document; both passes
	// run in document order and the results are concatenated as-is.
	for _, el := range ns.children(node, "SRS") {
		layer.CRS = append(layer.CRS, strings.TrimSpace(el.Text()))
	}
	for _, el := range ns.children(node, "CRS") {
		layer.CRS = append(layer.CRS, strings.TrimSpace(el.Text()))
	}

	for _, el := range ns.children(node, "BoundingBox") {
		id := el.SelectAttrValue("CRS", "")
		if id == "" {
			id = el.SelectAttrValue("SRS", "")
		}
		box, ok := parseBounds(el)
		if !ok {
			continue
		}
		if layer.BoundingBoxes == nil {
			layer.BoundingBoxes = make(map[string]BoundingBox)
		}
		layer.BoundingBoxes[id] = box
	}

	for _, el := range ns.children(node, "Style") {
		layer.Styles = append(layer.Styles, parseStyle(ns, el))
	}

	if el := ns.child(node, "LatLonBoundingBox"); el != nil {
		box, ok := parseBounds(el)
		if !ok {
			return nil, fmt.Errorf("%w: layer %q", ErrInvalidBoundingBox, layer.Name)
		}
		layer.LatLonBoundingBox = &box
	}

	for _, el := range ns.children(node, "Layer") {
		child, err := parseLayer(ns, el)
		if err != nil {
			return nil, err
		}
		layer.Children = append(layer.Children, child)
	}

	return layer, nil
}

// parseBounds reads the four bound attributes of a BoundingBox-shaped
// element. ParseFloat is locale-independent, matching the document format.
func parseBounds(el *etree.Element) (BoundingBox, bool) {
	minX, errMinX := strconv.ParseFloat(el.SelectAttrValue("minx", ""), 64)
	minY, errMinY := strconv.ParseFloat(el.SelectAttrValue("miny", ""), 64)
	maxX, errMaxX := strconv.ParseFloat(el.SelectAttrValue("maxx", ""), 64)
	maxY, errMaxY := strconv.ParseFloat(el.SelectAttrValue("maxy", ""), 64)
	if errMinX != nil || errMinY != nil || errMaxX != nil || errMaxY != nil {
		return BoundingBox{}, false
	}
	return NewBoundingBox(minX, minY, maxX, maxY), true
}

func parseStyle(ns namespaceBindings, node *etree.Element) LayerStyle {
	style := LayerStyle{
		Name:     ns.childText(node, "Name"),
		Title:    ns.childText(node, "Title"),
		Abstract: ns.childText(node, "Abstract"),
	}

	// Both LegendURL spellings occur in the wild.
	legend := ns.child(node, "LegendURL")
	if legend == nil {
		legend = ns.child(node, "LegendUrl")
	}
	if legend != nil {
		res := &OnlineResource{Type: ns.childText(legend, "Format")}
		if or := ns.child(legend, "OnlineResource"); or != nil {
			res.URL = href(or)
		}
		style.Legend = res

		widthAttr := legend.SelectAttrValue("width", "")
		heightAttr := legend.SelectAttrValue("height", "")
		if widthAttr != "" && heightAttr != "" {
			width, errW := strconv.Atoi(widthAttr)
			height, errH := strconv.Atoi(heightAttr)
			if errW == nil && errH == nil {
				style.LegendSize = &Size{Width: width, Height: height}
			}
		}
	}

	// Only the reference is read here; the style sheet's Format is not.
	if sheet := ns.child(node, "StyleSheetURL"); sheet != nil {
		if or := ns.child(sheet, "OnlineResource"); or != nil {
			style.StyleSheet = &OnlineResource{URL: href(or)}
		}
	}

	return style
}
