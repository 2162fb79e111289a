package repository

import "strings"

// SortOrder selects the direction applied to every OrderBy field.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Filter is the request-scoped query descriptor for Repository.Filter.
// Zero values disable the corresponding clause.
type Filter struct {
	// Search is OR-matched case-insensitively against every text column.
	Search string
	// SelectColumns is a comma-separated projection list; relation names
	// and unknown names are dropped.
	SelectColumns string
	// Page is 1-based; PerPage below 1 falls back to 10.
	Page    int
	PerPage int
	// OrderBy is a comma-separated field list sorted per SortBy.
	SortBy  SortOrder
	OrderBy string
	// Strict AND-combines equality predicates; nil values and unknown
	// keys are ignored.
	Strict map[string]any
	// LoadRelated eagerly loads every declared relation.
	LoadRelated bool
}

func (f Filter) perPage() int {
	if f.PerPage < 1 {
		return 10
	}
	return f.PerPage
}

func (f Filter) offset() int {
	off := (f.Page - 1) * f.perPage()
	if off < 0 {
		return 0
	}
	return off
}

// projection resolves SelectColumns against the schema: relation names
// cannot be column-projected and unknown names are skipped. An empty
// survivor list means "all columns".
func (s Schema[T]) projection(selectColumns string) []Column {
	names := splitList(selectColumns)
	if len(names) == 0 {
		return s.Columns
	}
	cols := []Column{}
	for _, name := range names {
		if s.isRelation(name) {
			continue
		}
		if c, ok := s.Column(name); ok {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return s.Columns
	}
	return cols
}

// whereClause builds the AND of strict equality predicates and the OR
// group of substring predicates over text columns.
func (s Schema[T]) whereClause(f Filter) (string, []any) {
	conds := []string{}
	args := []any{}

	for _, c := range s.Columns {
		val, ok := f.Strict[c.Name]
		if !ok || val == nil {
			continue
		}
		conds = append(conds, quote(c.Name)+" = ?")
		args = append(args, val)
	}

	if f.Search != "" {
		likes := []string{}
		for _, c := range s.textColumns() {
			likes = append(likes, "LOWER("+quote(c.Name)+") LIKE ?")
			args = append(args, "%"+strings.ToLower(f.Search)+"%")
		}
		// No text columns makes the free-text filter a no-op.
		if len(likes) > 0 {
			conds = append(conds, "("+strings.Join(likes, " OR ")+")")
		}
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// orderClause applies SortBy to every valid OrderBy field; invalid
// names are skipped silently.
func (s Schema[T]) orderClause(f Filter) string {
	parts := []string{}
	for _, name := range splitList(f.OrderBy) {
		if _, ok := s.Column(name); !ok {
			continue
		}
		if f.SortBy == SortDesc {
			parts = append(parts, quote(name)+" DESC")
		} else {
			parts = append(parts, quote(name)+" ASC")
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " ORDER BY " + strings.Join(parts, ", ")
}
