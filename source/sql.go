package source

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
	_ "modernc.org/sqlite"

	"storefront/models"
)

// SQL reads the products table over database/sql. Both the postgres driver
// (lib/pq) and the sqlite driver (modernc) are registered.
type SQL struct {
	db    *sql.DB
	query string
}

// OpenSQL opens the pool without connecting: an unreachable database must
// degrade pages to the fallback catalog, not stop the server.
func OpenSQL(driver, dsn, table string) (*SQL, error) {
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	return NewSQL(db, table), nil
}

func NewSQL(db *sql.DB, table string) *SQL {
	return &SQL{
		db:    db,
		query: "SELECT * FROM " + pq.QuoteIdentifier(table),
	}
}

func (s *SQL) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQL) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *SQL) Products(ctx context.Context, limit int) ([]models.Product, error) {
	query := s.query
	if limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	cols, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("column types: %w", err)
	}

	var products []models.Product
	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p, err := productFromRow(cols, vals)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return products, nil
}

// productFromRow maps the columns it knows and ignores the rest, so extra
// columns like created_at do not break the page.
func productFromRow(cols []*sql.ColumnType, vals []any) (models.Product, error) {
	var p models.Product
	for i, col := range cols {
		v := vals[i]
		if v == nil {
			continue
		}
		name := strings.ToLower(col.Name())
		numericCol := isNumericType(col.DatabaseTypeName())
		var err error
		switch name {
		case "id":
			p.ID, err = toID(v, numericCol)
		case "model_name":
			p.ModelName = toText(v)
		case "price":
			p.Price, err = toPrice(v, numericCol)
		case "category":
			p.Category = toText(v)
		case "image_url":
			p.ImageURL = toText(v)
		case "description":
			p.Description = toText(v)
		case "color":
			p.Color = toText(v)
		case "star_rating":
			var f float64
			if f, err = toFloat(v); err == nil {
				p.StarRating = &f
			}
		case "stock_quantity":
			var f float64
			if f, err = toFloat(v); err == nil {
				n := int(f)
				p.StockQuantity = &n
			}
		case "sizes_available":
			p.SizesAvailable, err = toSizes(v)
		}
		if err != nil {
			return models.Product{}, fmt.Errorf("column %s: %w", name, err)
		}
	}
	return p, nil
}

func isNumericType(name string) bool {
	name = strings.ToUpper(name)
	for _, prefix := range []string{"INT", "BIGINT", "SMALLINT", "NUMERIC", "DECIMAL", "FLOAT", "REAL", "DOUBLE"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func toText(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []byte:
		return string(t)
	default:
		return fmt.Sprint(t)
	}
}

func toFloat(v any) (float64, error) {
	switch t := v.(type) {
	case int64:
		return float64(t), nil
	case float64:
		return t, nil
	case []byte, string:
		return strconv.ParseFloat(strings.TrimSpace(toText(t)), 64)
	default:
		return 0, fmt.Errorf("unsupported value %T", v)
	}
}

func toID(v any, numericCol bool) (models.ID, error) {
	switch t := v.(type) {
	case int64:
		return models.IntID(t), nil
	case float64:
		return models.ID{Value: strconv.FormatFloat(t, 'f', -1, 64), Numeric: true}, nil
	case []byte, string:
		s := toText(t)
		if numericCol {
			return models.ID{Value: s, Numeric: true}, nil
		}
		return models.StringID(s), nil
	default:
		return models.ID{}, fmt.Errorf("unsupported value %T", v)
	}
}

func toPrice(v any, numericCol bool) (models.Price, error) {
	switch t := v.(type) {
	case int64, float64:
		f, _ := toFloat(t)
		return models.NumericPrice(f), nil
	case []byte, string:
		if !numericCol {
			return models.TextPrice(toText(t)), nil
		}
		f, err := toFloat(t)
		if err != nil {
			return models.Price{}, err
		}
		return models.NumericPrice(f), nil
	default:
		return models.Price{}, fmt.Errorf("unsupported value %T", v)
	}
}

// toSizes accepts a postgres text[] literal, a JSON array or a comma list.
func toSizes(v any) ([]string, error) {
	raw := bytes.TrimSpace([]byte(toText(v)))
	switch {
	case len(raw) == 0:
		return nil, nil
	case raw[0] == '{':
		var arr pq.StringArray
		if err := arr.Scan(raw); err != nil {
			return nil, err
		}
		return []string(arr), nil
	case raw[0] == '[':
		var arr []string
		if err := json.Unmarshal(raw, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	default:
		parts := strings.Split(string(raw), ",")
		sizes := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				sizes = append(sizes, part)
			}
		}
		return sizes, nil
	}
}
