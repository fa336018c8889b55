// Package dataset provides the product emission profiles the CLI and
// dashboard operate on: the embedded reference set and profiles loaded from
// YAML, JSON or CSV files.
package dataset

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rshade/carbontrace/internal/emissions"
)

//go:embed fixtures/products.yaml
var embeddedProducts []byte

var (
	// ErrUnknownProduct is returned when a product is not in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
	// ErrNoProducts is returned when a data source defines no products.
	ErrNoProducts = errors.New("no products defined")
	// ErrDuplicateProduct is returned when two products share an id.
	ErrDuplicateProduct = errors.New("duplicate product")
)

// Product is one catalog entry.
type Product struct {
	ID     string             `yaml:"id"             json:"id"`
	Name   string             `yaml:"name"           json:"name"`
	Icon   string             `yaml:"icon,omitempty" json:"icon,omitempty"`
	Stages []emissions.Record `yaml:"stages"         json:"stages"`
}

// Label returns the icon and name, or just the name without an icon.
func (p Product) Label() string {
	if p.Icon == "" {
		return p.Name
	}
	return p.Icon + " " + p.Name
}

// Profile returns the product's emission profile keyed by id.
func (p Product) Profile() emissions.Profile {
	records := make([]emissions.Record, len(p.Stages))
	copy(records, p.Stages)
	return emissions.Profile{Product: p.ID, Records: records}
}

// document is the on-disk shape shared by the YAML and JSON loaders.
type document struct {
	Products []Product `yaml:"products" json:"products"`
}

// Catalog is an immutable, ordered set of products.
type Catalog struct {
	products []Product
}

// New validates products and builds a catalog. Product order is kept.
func New(products []Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	seen := make(map[string]struct{}, len(products))
	out := make([]Product, 0, len(products))
	for i, p := range products {
		p.ID = strings.ToLower(strings.TrimSpace(p.ID))
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: id is required", i)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		seen[p.ID] = struct{}{}
		if p.Name == "" {
			p.Name = displayName(p.ID)
		}
		if err := emissions.Validate(p.Stages); err != nil {
			return nil, fmt.Errorf("product %s: %w", p.ID, err)
		}
		stages := make([]emissions.Record, len(p.Stages))
		copy(stages, p.Stages)
		p.Stages = stages
		out = append(out, p)
	}
	return &Catalog{products: out}, nil
}

// Default returns the embedded reference catalog.
func Default() *Catalog {
	c, err := parseYAML(embeddedProducts)
	if err != nil {
		panic(fmt.Sprintf("embedded products fixture is invalid: %v", err))
	}
	return c
}

// Products returns the catalog entries in declaration order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// IDs returns the product ids in declaration order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.products))
	for _, p := range c.products {
		ids = append(ids, p.ID)
	}
	return ids
}

// Lookup finds a product by id or display name, ignoring case.
func (c *Catalog) Lookup(name string) (Product, error) {
	key := strings.TrimSpace(name)
	for _, p := range c.products {
		if strings.EqualFold(p.ID, key) || strings.EqualFold(p.Name, key) {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %q (available: %s)", ErrUnknownProduct, name, strings.Join(c.IDs(), ", "))
}

// Profile returns the emission profile of a product.
func (c *Catalog) Profile(name string) (emissions.Profile, error) {
	p, err := c.Lookup(name)
	if err != nil {
		return emissions.Profile{}, err
	}
	return p.Profile(), nil
}

// Profiles returns every product profile in declaration order.
func (c *Catalog) Profiles() []emissions.Profile {
	out := make([]emissions.Profile, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p.Profile())
	}
	return out
}

// Comparison totals every product, labelled by display name.
func (c *Catalog) Comparison() []emissions.ComparisonRecord {
	out := make([]emissions.ComparisonRecord, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, emissions.ComparisonRecord{Product: p.Name, TotalEmissions: emissions.Total(p.Stages)})
	}
	return out
}

// WithStage returns a new catalog with r appended to the named product.
// The receiver is unchanged.
func (c *Catalog) WithStage(product string, r emissions.Record) (*Catalog, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	target, err := c.Lookup(product)
	if err != nil {
		return nil, err
	}
	products := c.Products()
	for i := range products {
		if products[i].ID == target.ID {
			products[i].Stages = target.Profile().WithRecord(r).Records
		}
	}
	return &Catalog{products: products}, nil
}

func parseYAML(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing products yaml: %w", err)
	}
	return New(doc.Products)
}
