// Package hcl loads a bill of materials written in HCL into a composite tree.
//
//	name     = "Lucia's PC"
//	currency = "USD"
//
//	assembly "GAMING CPU" {
//	  equipment "Processor" {
//	    price = 1000
//	  }
//	}
//
//	equipment "Pop toy" {
//	  price    = "10"
//	  quantity = 2
//	}
//
// quantity appends the same equipment several times, so it is priced once
// per appearance. It is capped at 10000.
package hcl

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"pattern-catalog/core/composite"
	"pattern-catalog/internal/errors"
)

// Document is a parsed bill of materials.
type Document struct {
	// Root holds every top-level assembly and equipment
	Root *composite.Composite

	// Currency is informational; prices are not converted
	Currency string
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "name"},
		{Name: "currency"},
	},
	Blocks: itemBlocks,
}

var assemblySchema = &hcl.BodySchema{
	Blocks: itemBlocks,
}

var equipmentSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "price", Required: true},
		{Name: "quantity"},
	},
}

var itemBlocks = []hcl.BlockHeaderSchema{
	{Type: "assembly", LabelNames: []string{"name"}},
	{Type: "equipment", LabelNames: []string{"name"}},
}

// Loader parses bill-of-materials files
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a loader
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// LoadFile reads and parses path. The root is named after the file unless
// the document sets name.
func (l *Loader) LoadFile(path string) (*Document, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.TypeInput, "read bill of materials", err).WithContext("path", path)
	}
	return l.Parse(src, path)
}

// Parse parses src; filename is used in diagnostics and as the default root name.
func (l *Loader) Parse(src []byte, filename string) (*Document, error) {
	file, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("parse "+filename, diags)
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, errors.Parsing("decode "+filename, diags)
	}

	var err error
	doc := &Document{Currency: "USD"}
	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))

	if attr, ok := content.Attributes["name"]; ok {
		if name, err = stringAttr(attr); err != nil {
			return nil, err
		}
	}
	if attr, ok := content.Attributes["currency"]; ok {
		if doc.Currency, err = stringAttr(attr); err != nil {
			return nil, err
		}
	}

	doc.Root = composite.New(name)
	if err := addItems(doc.Root, content.Blocks); err != nil {
		return nil, err
	}
	return doc, nil
}

func addItems(parent *composite.Composite, blocks hcl.Blocks) error {
	for _, block := range blocks {
		switch block.Type {
		case "assembly":
			content, diags := block.Body.Content(assemblySchema)
			if diags.HasErrors() {
				return errors.Parsing("decode assembly "+block.Labels[0], diags)
			}
			child := composite.New(block.Labels[0])
			if err := addItems(child, content.Blocks); err != nil {
				return err
			}
			parent.AddComposite(child)

		case "equipment":
			item, quantity, err := equipment(block)
			if err != nil {
				return err
			}
			for i := 0; i < quantity; i++ {
				parent.AddEquipment(item)
			}
		}
	}
	return nil
}

func equipment(block *hcl.Block) (*composite.Equipment, int, error) {
	name := block.Labels[0]
	content, diags := block.Body.Content(equipmentSchema)
	if diags.HasErrors() {
		return nil, 0, errors.Parsing("decode equipment "+name, diags)
	}

	val, diags := content.Attributes["price"].Expr.Value(nil)
	if diags.HasErrors() {
		return nil, 0, errors.Parsing("evaluate price of "+name, diags)
	}
	price, err := ctyDecimal(val)
	if err != nil {
		return nil, 0, errors.Wrap(errors.TypeInput, "price of "+name, err)
	}
	if price.IsNegative() {
		return nil, 0, errors.Input("negative price for " + name).WithContext("price", price.String())
	}

	quantity := 1
	if attr, ok := content.Attributes["quantity"]; ok {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, 0, errors.Parsing("evaluate quantity of "+name, diags)
		}
		if quantity, err = ctyCount(val); err != nil {
			return nil, 0, errors.Wrap(errors.TypeInput, "quantity of "+name, err)
		}
	}

	return composite.NewEquipment(name, price), quantity, nil
}

func stringAttr(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", errors.Parsing("evaluate "+attr.Name, diags)
	}
	s, err := ctyString(val)
	if err != nil {
		return "", errors.Wrap(errors.TypeInput, attr.Name, err)
	}
	return s, nil
}
