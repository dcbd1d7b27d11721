package location

import (
	"bytes"
	"io"

	"github.com/antchfx/htmlquery"
	"github.com/antchfx/xpath"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// DefaultOptionLabel is the placeholder kept at index 0 of the filter.
const DefaultOptionLabel = "All Locations"

var (
	// ErrNoSelectElement is returned when parsed markup holds no <select>.
	ErrNoSelectElement = errors.New("no select element found")
	// ErrOptionIndex is returned by RemoveOption for an index past the list.
	ErrOptionIndex = errors.New("option index out of range")
)

var (
	selectExpr = xpath.MustCompile("//select")
	optionExpr = xpath.MustCompile(".//option")
	groupExpr  = xpath.MustCompile(".//optgroup")
)

// HTMLSelect is a SelectControl backed by an HTML <select> element.
type HTMLSelect struct {
	node *html.Node
}

var _ SelectControl = (*HTMLSelect)(nil)

// NewHTMLSelect returns a select named name holding a single default option
// with an empty value.
func NewHTMLSelect(name, defaultLabel string) *HTMLSelect {
	sel := element(atom.Select, html.Attribute{Key: "name", Val: name}, html.Attribute{Key: "id", Val: name})
	sel.AppendChild(newOptionNode("", defaultLabel))
	return &HTMLSelect{node: sel}
}

// ParseHTMLSelect reads markup and returns the first <select> in it.
func ParseHTMLSelect(r io.Reader) (*HTMLSelect, error) {
	doc, err := htmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parse select markup")
	}
	node := htmlquery.QuerySelector(doc, selectExpr)
	if node == nil {
		return nil, ErrNoSelectElement
	}
	node.Parent.RemoveChild(node)
	sel := &HTMLSelect{node: node}
	sel.dropEmptyGroups()
	return sel, nil
}

func (s *HTMLSelect) options() []*html.Node {
	return htmlquery.QuerySelectorAll(s.node, optionExpr)
}

// OptionCount returns the number of options, grouped or not.
func (s *HTMLSelect) OptionCount() int {
	return len(s.options())
}

// RemoveOption removes the option at index. A group left without options
// is removed with it.
func (s *HTMLSelect) RemoveOption(index int) error {
	opts := s.options()
	if index < 0 || index >= len(opts) {
		return errors.Wrapf(ErrOptionIndex, "%d of %d", index, len(opts))
	}
	opt := opts[index]
	opt.Parent.RemoveChild(opt)
	s.dropEmptyGroups()
	return nil
}

// dropEmptyGroups removes every <optgroup> that holds no option.
func (s *HTMLSelect) dropEmptyGroups() {
	for _, g := range htmlquery.QuerySelectorAll(s.node, groupExpr) {
		if htmlquery.QuerySelector(g, optionExpr) == nil && g.Parent != nil {
			g.Parent.RemoveChild(g)
		}
	}
}

// CreateGroup returns a detached <optgroup> labelled label.
func (s *HTMLSelect) CreateGroup(label string) (OptionGroup, error) {
	return &htmlGroup{node: element(atom.Optgroup, html.Attribute{Key: "label", Val: label})}, nil
}

// CreateOption returns a detached <option>.
func (s *HTMLSelect) CreateOption(value, text string) (Option, error) {
	return &htmlOption{node: newOptionNode(value, text)}, nil
}

// AppendGroup appends a group made by CreateGroup to the select.
func (s *HTMLSelect) AppendGroup(group OptionGroup) error {
	g, ok := group.(*htmlGroup)
	if !ok {
		return errors.Wrapf(ErrCapabilityMismatch, "group %T", group)
	}
	s.node.AppendChild(g.node)
	return nil
}

// Render writes the select element and its children as HTML.
func (s *HTMLSelect) Render(w io.Writer) error {
	return errors.WithStack(html.Render(w, s.node))
}

// String returns the rendered markup, or "" if rendering fails.
func (s *HTMLSelect) String() string {
	var buf bytes.Buffer
	if err := s.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

type htmlGroup struct {
	node *html.Node
}

func (g *htmlGroup) Label() string {
	return htmlquery.SelectAttr(g.node, "label")
}

func (g *htmlGroup) AppendOption(opt Option) error {
	o, ok := opt.(*htmlOption)
	if !ok {
		return errors.Wrapf(ErrCapabilityMismatch, "option %T", opt)
	}
	g.node.AppendChild(o.node)
	return nil
}

type htmlOption struct {
	node *html.Node
}

// Value follows the DOM rule: without a value attribute the text is used.
func (o *htmlOption) Value() string {
	for _, a := range o.node.Attr {
		if a.Key == "value" {
			return a.Val
		}
	}
	return htmlquery.InnerText(o.node)
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func newOptionNode(value, text string) *html.Node {
	opt := element(atom.Option, html.Attribute{Key: "value", Val: value})
	opt.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return opt
}
