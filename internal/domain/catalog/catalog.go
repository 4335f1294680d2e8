package catalog

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"

	"github.com/kailas-cloud/prodex/internal/domain"
	"github.com/kailas-cloud/prodex/internal/domain/product"
)

// Catalog is an immutable, ordered snapshot of products.
type Catalog struct {
	products    []product.Product
	positions   map[int64]int
	fingerprint string
}

// New validates and creates a Catalog. Order is preserved; ids must be unique.
func New(products []product.Product) (*Catalog, error) {
	positions := make(map[int64]int, len(products))
	for i := range products {
		id := products[i].ID()
		if prev, ok := positions[id]; ok {
			return nil, fmt.Errorf("%w: %d at positions %d and %d", domain.ErrDuplicateProduct, id, prev, i)
		}
		positions[id] = i
	}

	owned := make([]product.Product, len(products))
	copy(owned, products)

	return &Catalog{
		products:    owned,
		positions:   positions,
		fingerprint: fingerprint(owned),
	}, nil
}

// Empty returns a catalog with no products.
func Empty() *Catalog {
	c, _ := New(nil)
	return c
}

// Len returns the number of products.
func (c *Catalog) Len() int { return len(c.products) }

// At returns the product at position i in catalog order.
func (c *Catalog) At(i int) product.Product { return c.products[i] }

// Products returns a copy of the products in catalog order.
func (c *Catalog) Products() []product.Product {
	out := make([]product.Product, len(c.products))
	copy(out, c.products)
	return out
}

// IndexOf returns the catalog position of id.
func (c *Catalog) IndexOf(id int64) (int, bool) {
	i, ok := c.positions[id]
	return i, ok
}

// ByID looks up a product by id.
func (c *Catalog) ByID(id int64) (product.Product, bool) {
	i, ok := c.positions[id]
	if !ok {
		return product.Product{}, false
	}
	return c.products[i], true
}

// Texts returns the document text of every product in catalog order.
func (c *Catalog) Texts() []string {
	texts := make([]string, len(c.products))
	for i := range c.products {
		texts[i] = c.products[i].DocumentText()
	}
	return texts
}

// Fingerprint identifies the catalog content. Equal catalogs share a fingerprint.
func (c *Catalog) Fingerprint() string { return c.fingerprint }

func fingerprint(products []product.Product) string {
	h := sha256.New()
	var num [8]byte
	writeString := func(s string) {
		binary.LittleEndian.PutUint64(num[:], uint64(len(s)))
		h.Write(num[:])
		h.Write([]byte(s))
	}
	writeFloat := func(f float64) {
		binary.LittleEndian.PutUint64(num[:], math.Float64bits(f))
		h.Write(num[:])
	}

	for i := range products {
		p := &products[i]
		binary.LittleEndian.PutUint64(num[:], uint64(p.ID()))
		h.Write(num[:])
		writeString(p.Name())
		writeString(p.Category())
		writeFloat(p.Price())
		writeFloat(p.Rating())
		writeString(p.Description())
		tags := p.Tags()
		binary.LittleEndian.PutUint64(num[:], uint64(len(tags)))
		h.Write(num[:])
		for _, t := range tags {
			writeString(t)
		}
		writeString(p.Image())
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
