// Package corpus holds the read-only configuration the analysis engine
// borrows: the per-product approved-claim corpus and the regulatory
// reference table. Both are immutable after construction; the engine
// never copies or mutates them, so one corpus can safely serve any
// number of concurrent analyses.
package corpus

import "strings"

// Product is one entry in the approved-claim corpus. Each approved claim
// string may carry trailing substantiation text (footnote-style study
// citations) after a delimiter; the matcher and the report layer strip
// it to isolate the core marketing sentence.
type Product struct {
	Name           string   `yaml:"name"`
	Description    string   `yaml:"description"`
	ApprovedClaims []string `yaml:"approved_claims"`
}

// Alias maps an informal product mention to a corpus product name
type Alias struct {
	Term    string `yaml:"term"`
	Product string `yaml:"product"`
}

// Corpus is an immutable product → approved-claims mapping with an
// ordered alias table for product auto-detection.
type Corpus struct {
	products map[string]Product
	order    []string
	aliases  []Alias
}

// New builds a corpus from an ordered product list and alias table
func New(products []Product, aliases []Alias) *Corpus {
	c := &Corpus{
		products: make(map[string]Product, len(products)),
		aliases:  aliases,
	}
	for _, p := range products {
		if _, dup := c.products[p.Name]; dup {
			continue
		}
		c.products[p.Name] = p
		c.order = append(c.order, p.Name)
	}
	return c
}

// Names returns product names in corpus order
func (c *Corpus) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Product looks up a product by exact name
func (c *Corpus) Product(name string) (Product, bool) {
	p, ok := c.products[name]
	return p, ok
}

// ApprovedClaims returns the approved claims for a product, or nil when
// the product is unknown. Unknown products are not an error; they simply
// match nothing.
func (c *Corpus) ApprovedClaims(name string) []string {
	if p, ok := c.products[name]; ok {
		return p.ApprovedClaims
	}
	return nil
}

// DetectProduct resolves which product the material is about: first a
// direct case-insensitive product-name match, then the alias table.
// Returns "" when nothing matches.
func (c *Corpus) DetectProduct(text string) string {
	lower := strings.ToLower(text)
	for _, name := range c.order {
		if strings.Contains(lower, strings.ToLower(name)) {
			return name
		}
	}
	for _, a := range c.aliases {
		if strings.Contains(lower, a.Term) {
			return a.Product
		}
	}
	return ""
}

// Default returns the built-in corpus covering the two launch products
func Default() *Corpus {
	return New(defaultProducts, defaultAliases)
}
