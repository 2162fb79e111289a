package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"backend/internal/domain"

	"github.com/google/uuid"
)

// Kind tags a column with the coercion/scan behavior of its SQL type.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindFloat
	KindBool
	KindDateTime
	KindDate
	KindTime
	KindUUID
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindDate:
		return "date"
	case KindTime:
		return "time"
	case KindUUID:
		return "uuid"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

// Column describes one scalar field of an entity.
type Column struct {
	Name string
	Kind Kind
	Enum []string // valid values when Kind is KindEnum
}

// Coerce converts a textual filter value into the column's native type.
// Kinds without a defined textual form fail with UnsupportedTypeError;
// values that do not parse fail with ValidationError.
func (c Column) Coerce(raw string) (any, error) {
	switch c.Kind {
	case KindString:
		return raw, nil
	case KindInt:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, domain.ValidationError{Field: c.Name, Msg: "not an integer", Err: err}
		}
		return n, nil
	case KindEnum:
		for _, v := range c.Enum {
			if v == raw {
				return raw, nil
			}
		}
		return nil, domain.ValidationError{Field: c.Name, Msg: "not a valid " + c.Name + " value"}
	case KindDateTime:
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
		}
		return nil, domain.ValidationError{Field: c.Name, Msg: "not an ISO-8601 datetime"}
	case KindDate:
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, domain.ValidationError{Field: c.Name, Msg: "not a YYYY-MM-DD date", Err: err}
		}
		return t, nil
	case KindTime:
		if _, err := time.Parse("15:04:05", raw); err != nil {
			return nil, domain.ValidationError{Field: c.Name, Msg: "not a HH:MM:SS time", Err: err}
		}
		return raw, nil
	case KindBool:
		return strings.EqualFold(raw, "true"), nil
	case KindUUID:
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.ValidationError{Field: c.Name, Msg: "not a UUID", Err: err}
		}
		return id.String(), nil
	}
	return nil, domain.UnsupportedTypeError{Field: c.Name, Kind: c.Kind.String()}
}

func (c Column) isText() bool {
	return c.Kind == KindString
}

// Relation declares a named link to another table for eager loading.
// LocalKey values on the parent are matched against Key on Table.
type Relation struct {
	Name     string
	Table    string
	LocalKey string
	Key      string
	Columns  []Column
	Many     bool
}

// Record is one row keyed by column name; eagerly loaded relations are
// attached under the relation name as Record or []Record.
type Record map[string]any

// Schema is the explicit field registry for one entity type: table,
// typed columns, relations, and the mapping back to the model struct.
type Schema[T any] struct {
	Table      string
	Columns    []Column
	Relations  []Relation
	FromRecord func(Record) T
}

// Column looks up a scalar column by name.
func (s Schema[T]) Column(name string) (Column, bool) {
	for _, c := range s.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

func (s Schema[T]) isRelation(name string) bool {
	for _, r := range s.Relations {
		if r.Name == name {
			return true
		}
	}
	return false
}

func (s Schema[T]) textColumns() []Column {
	out := []Column{}
	for _, c := range s.Columns {
		if c.isText() {
			out = append(out, c)
		}
	}
	return out
}

// holderFor returns a scan destination matching the column kind.
func holderFor(k Kind) any {
	switch k {
	case KindInt:
		return new(sql.NullInt64)
	case KindFloat:
		return new(sql.NullFloat64)
	case KindBool:
		return new(sql.NullBool)
	case KindDateTime, KindDate:
		return new(sql.NullTime)
	default:
		// String, Enum, Time-of-day and UUID all travel as text.
		return new(sql.NullString)
	}
}

func holderValue(h any) any {
	switch v := h.(type) {
	case *sql.NullInt64:
		if v.Valid {
			return v.Int64
		}
	case *sql.NullFloat64:
		if v.Valid {
			return v.Float64
		}
	case *sql.NullBool:
		if v.Valid {
			return v.Bool
		}
	case *sql.NullTime:
		if v.Valid {
			return v.Time
		}
	case *sql.NullString:
		if v.Valid {
			return v.String
		}
	}
	return nil
}

func quote(name string) string {
	return "`" + name + "`"
}

func quoteAll(cols []Column) string {
	parts := make([]string, len(cols))
	for i, c := range cols {
		parts[i] = quote(c.Name)
	}
	return strings.Join(parts, ", ")
}

func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// splitList turns a comma-separated name list into trimmed entries.
func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
