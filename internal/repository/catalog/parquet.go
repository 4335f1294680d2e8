package catalog

import (
	"bytes"
	"fmt"

	"github.com/parquet-go/parquet-go"

	domcat "github.com/kailas-cloud/prodex/internal/domain/catalog"
)

// parquetRow is one product in a Parquet catalog. Columns are matched by
// name; extra columns in the file are ignored.
type parquetRow struct {
	ID          *int64   `parquet:"id,optional"`
	Name        string   `parquet:"name,optional"`
	Category    string   `parquet:"category,optional"`
	Price       *float64 `parquet:"price,optional"`
	Rating      *float64 `parquet:"rating,optional"`
	Description string   `parquet:"description,optional"`
	Tags        []string `parquet:"tags,list"`
	Image       string   `parquet:"image,optional"`
}

// DecodeParquet parses a Parquet catalog, rows in file order.
func DecodeParquet(data []byte) (*domcat.Catalog, error) {
	rows, err := parquet.Read[parquetRow](bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("parse parquet: %w", err)
	}

	converted := make([]productRow, len(rows))
	for i := range rows {
		converted[i] = productRow(rows[i])
	}
	return build(converted)
}
