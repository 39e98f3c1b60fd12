package wms

import (
	"errors"
	"testing"

	"github.com/beevik/etree"
)

func TestBindNamespaces(t *testing.T) {
	tests := []struct {
		version   string
		wantAlias string
	}{
		{Version100, ""},
		{Version110, ""},
		{Version111, ""},
		{Version130, wmsNamespace},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			ns, err := bindNamespaces(tt.version)
			if err != nil {
				t.Fatalf("bindNamespaces(%s) error = %v", tt.version, err)
			}
			if ns.Default != wmsNamespace {
				t.Errorf("Default = %q, want %q", ns.Default, wmsNamespace)
			}
			if ns.Alias != tt.wantAlias {
				t.Errorf("Alias = %q, want %q", ns.Alias, tt.wantAlias)
			}
			if ns.XLink != xlinkNamespace {
				t.Errorf("XLink = %q, want %q", ns.XLink, xlinkNamespace)
			}
		})
	}
}

func TestBindNamespacesUnsupported(t *testing.T) {
	for _, version := range []string{"1.2.0", "2.0.0", "abc", ""} {
		_, err := bindNamespaces(version)
		if !errors.Is(err, ErrUnsupportedVersion) {
			t.Errorf("bindNamespaces(%q) error = %v, want ErrUnsupportedVersion", version, err)
		}
	}
}

func TestChildLookupPrefersBoundNamespace(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<root xmlns:v="http://vendor.example.com">` +
		`<v:Service>vendor</v:Service>` +
		`<Service xmlns="http://www.opengis.net/wms">wms</Service>` +
		`</root>`)
	if err != nil {
		t.Fatal(err)
	}

	ns, _ := bindNamespaces(Version130)
	el := ns.child(doc.Root(), "Service")
	if el == nil {
		t.Fatal("child() returned nil")
	}
	if got := el.Text(); got != "wms" {
		t.Errorf("child() selected %q, want the namespace-qualified element", got)
	}
}

func TestChildLookupFallsBackToLocalName(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<root xmlns:v="http://vendor.example.com">` +
		`<v:Service>vendor</v:Service>` +
		`</root>`)
	if err != nil {
		t.Fatal(err)
	}

	// A 1.3.0 binding still resolves a wrongly-qualified element.
	ns, _ := bindNamespaces(Version130)
	el := ns.child(doc.Root(), "Service")
	if el == nil {
		t.Fatal("child() returned nil, want local-name fallback")
	}
	if got := el.Text(); got != "vendor" {
		t.Errorf("child() selected %q", got)
	}
}

func TestHrefToleratesPrefixes(t *testing.T) {
	doc := etree.NewDocument()
	err := doc.ReadFromString(`<r>` +
		`<a xmlns:xlink="http://www.w3.org/1999/xlink" xlink:href="http://a.example.com"/>` +
		`<b href="http://b.example.com"/>` +
		`<c/>` +
		`</r>`)
	if err != nil {
		t.Fatal(err)
	}

	root := doc.Root()
	if got := href(root.ChildElements()[0]); got != "http://a.example.com" {
		t.Errorf("xlink href = %q", got)
	}
	if got := href(root.ChildElements()[1]); got != "http://b.example.com" {
		t.Errorf("unprefixed href = %q", got)
	}
	if got := href(root.ChildElements()[2]); got != "" {
		t.Errorf("missing href = %q, want empty", got)
	}
}
