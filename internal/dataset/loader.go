package dataset

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rshade/carbontrace/internal/emissions"
	"github.com/rshade/carbontrace/internal/greenops"
	"github.com/rshade/carbontrace/internal/logging"
)

// ErrUnsupportedFormat is returned for data files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported data file format")

// CSV column positions. The unit column is optional.
const (
	colProduct = iota
	colStage
	colEmissions
	colRecommendation
	colUnit

	minCSVColumns = colRecommendation + 1
)

// LoadFile reads a catalog from path, choosing the parser by extension:
// .yaml/.yml and .json share the products document schema, .csv holds one
// stage per row as product,stage,emissions,recommendation[,unit].
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	log := logging.FromContext(ctx)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading data file: %w", err)
	}

	var cat *Catalog
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cat, err = parseYAML(data)
	case ".json":
		cat, err = parseJSON(data)
	case ".csv":
		cat, err = ParseCSV(strings.NewReader(string(data)))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	log.Debug().
		Str("component", "dataset").
		Str("path", path).
		Int("product_count", len(cat.products)).
		Msg("loaded emission data")
	return cat, nil
}

func parseJSON(data []byte) (*Catalog, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing products json: %w", err)
	}
	return New(doc.Products)
}

// ParseCSV reads stage rows grouped by product. A header row is detected by
// a non-numeric emissions column and skipped. Products keep first-seen
// order and emissions are normalized to kg when a unit column is present.
func ParseCSV(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var products []Product
	index := make(map[string]int)
	line := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing csv: %w", err)
		}
		line++
		if len(row) < minCSVColumns {
			return nil, fmt.Errorf("csv line %d: expected at least %d columns, got %d", line, minCSVColumns, len(row))
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(row[colEmissions]), 64)
		if err != nil {
			if line == 1 {
				continue
			}
			return nil, fmt.Errorf("csv line %d: invalid emissions %q: %w", line, row[colEmissions], err)
		}
		if len(row) > colUnit {
			value, err = greenops.NormalizeToKg(value, strings.TrimSpace(row[colUnit]))
			if err != nil {
				return nil, fmt.Errorf("csv line %d: %w", line, err)
			}
		}

		id := strings.ToLower(strings.TrimSpace(row[colProduct]))
		pos, ok := index[id]
		if !ok {
			pos = len(products)
			index[id] = pos
			products = append(products, Product{ID: id, Name: displayName(id)})
		}
		products[pos].Stages = append(products[pos].Stages, emissions.Record{
			Stage:          strings.TrimSpace(row[colStage]),
			Emissions:      value,
			Recommendation: strings.TrimSpace(row[colRecommendation]),
		})
	}
	return New(products)
}

// displayName title-cases an id such as "green_tea" into "Green Tea".
func displayName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	return cases.Title(language.English).String(strings.Join(words, " "))
}
