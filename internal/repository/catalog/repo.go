// Package catalog loads the product catalog from a YAML file.
// JSON is accepted as well, being a subset of YAML. Files ending in
// .parquet are read as Parquet tables with one row per product.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	domcat "github.com/kailas-cloud/prodex/internal/domain/catalog"
	"github.com/kailas-cloud/prodex/internal/domain/product"
)

// Repo reads a catalog file. Every Load re-reads the file, so a reload
// picks up edits made since startup.
type Repo struct {
	path string
}

// New creates a file-backed catalog repository.
func New(path string) *Repo {
	return &Repo{path: path}
}

// Path returns the catalog file path.
func (r *Repo) Path() string { return r.path }

// Load reads, validates and returns the catalog.
func (r *Repo) Load(ctx context.Context) (*domcat.Catalog, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", r.path, err)
	}

	decode := Decode
	if strings.EqualFold(filepath.Ext(r.path), ".parquet") {
		decode = DecodeParquet
	}

	cat, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", r.path, err)
	}
	return cat, nil
}

// Decode parses a catalog document. Unknown fields are rejected so typos
// in the file surface instead of silently dropping data.
func Decode(data []byte) (*domcat.Catalog, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return build(doc.Products)
}

func build(rows []productRow) (*domcat.Catalog, error) {
	products := make([]product.Product, 0, len(rows))
	for i := range rows {
		p, err := productFromRow(i, &rows[i])
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	cat, err := domcat.New(products)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	return cat, nil
}
