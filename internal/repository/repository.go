package repository

import (
	"database/sql"
	"errors"
	"strings"

	intconfig "backend/internal/config"
	"backend/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
)

const mysqlDupEntry = 1062

// Repository offers a uniform CRUD and query surface over one entity
// type. Every operation borrows a connection from the pool for its own
// round-trips only; mutations auto-commit per statement.
type Repository[T any] struct {
	DB     *sql.DB
	Schema Schema[T]
}

func New[T any](db *sql.DB, schema Schema[T]) Repository[T] {
	return Repository[T]{DB: db, Schema: schema}
}

func (r Repository[T]) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Get fetches by identifier. Absence is not an error: both the row and
// the error are nil when nothing matches.
func (r Repository[T]) Get(id string, loadRelated bool) (*T, error) {
	rec, err := r.firstRecord(r.Schema.Columns, " WHERE `id` = ?", []any{id})
	if err != nil || rec == nil {
		return nil, err
	}
	if loadRelated {
		if err := r.loadRelations([]Record{rec}); err != nil {
			return nil, err
		}
	}
	entity := r.Schema.FromRecord(rec)
	return &entity, nil
}

// GetByID fetches by identifier without relationship control.
func (r Repository[T]) GetByID(id string) (*T, error) {
	return r.Get(id, false)
}

// GetByProps fetches every entity whose named field is in the given
// textual value set, coercing each value to the field's declared kind.
func (r Repository[T]) GetByProps(name string, values []string) ([]T, error) {
	col, ok := r.Schema.Column(name)
	if !ok {
		return nil, domain.ValidationError{Field: name, Msg: "unknown field"}
	}
	args := make([]any, 0, len(values))
	for _, raw := range values {
		v, err := col.Coerce(raw)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	if len(args) == 0 {
		return []T{}, nil
	}
	where := " WHERE " + quote(name) + " IN (" + placeholders(len(args)) + ")"
	return r.list(where, args)
}

// GetByIDs fetches every entity whose identifier is in the given set.
func (r Repository[T]) GetByIDs(ids []string) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	where := " WHERE `id` IN (" + placeholders(len(args)) + ")"
	return r.list(where, args)
}

// GetByAttr returns every entity matching the AND of equality
// predicates built from the keys that are valid fields; unknown keys
// are silently dropped.
func (r Repository[T]) GetByAttr(attr map[string]any) ([]T, error) {
	where, args := r.attrWhere(attr)
	return r.list(where, args)
}

// GetFirstByAttr is GetByAttr limited to the first match; absence
// returns (nil, nil).
func (r Repository[T]) GetFirstByAttr(attr map[string]any) (*T, error) {
	where, args := r.attrWhere(attr)
	rec, err := r.firstRecord(r.Schema.Columns, where, args)
	if err != nil || rec == nil {
		return nil, err
	}
	entity := r.Schema.FromRecord(rec)
	return &entity, nil
}

// Filter runs the general query operation and reports both the page of
// matching rows and the total match count for pagination.
func (r Repository[T]) Filter(f Filter) ([]Record, int64, error) {
	cols := r.Schema.projection(f.SelectColumns)
	where, args := r.Schema.whereClause(f)

	var total int64
	countQuery := "SELECT COUNT(*) FROM " + quote(r.Schema.Table) + where
	if err := r.db().QueryRow(countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + quoteAll(cols) + " FROM " + quote(r.Schema.Table) +
		where + r.Schema.orderClause(f) + " LIMIT ? OFFSET ?"
	pageArgs := append(append([]any{}, args...), f.perPage(), f.offset())

	records, err := r.queryRecords(cols, query, pageArgs)
	if err != nil {
		return nil, 0, err
	}
	if f.LoadRelated {
		if err := r.loadRelations(records); err != nil {
			return nil, 0, err
		}
	}
	return records, total, nil
}

// Create inserts after dropping unknown keys and returns the persisted
// row. A missing identifier is generated. Uniqueness violations map to
// ConflictError; other store errors propagate unchanged.
func (r Repository[T]) Create(obj map[string]any) (*T, error) {
	names, vals := r.filterFields(obj)
	if len(names) == 0 {
		return nil, domain.ValidationError{Msg: "cannot create empty object"}
	}
	names, vals = withoutID(names, vals)

	id := suppliedID(obj)
	if id == "" {
		id = uuid.NewString()
	}
	names = append([]string{"id"}, names...)
	vals = append([]any{id}, vals...)

	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = quote(n)
	}
	query := "INSERT INTO " + quote(r.Schema.Table) +
		" (" + strings.Join(quoted, ", ") + ") VALUES (" + placeholders(len(vals)) + ")"
	if _, err := r.db().Exec(query, vals...); err != nil {
		return nil, r.mapStoreError(err)
	}
	return r.GetByID(id)
}

// CreateMany bulk-inserts after the same per-object field filtering and
// returns the persisted rows. The first object fixes the column set;
// objects missing one of those keys insert NULL for it.
func (r Repository[T]) CreateMany(objs []map[string]any) ([]T, error) {
	if len(objs) == 0 {
		return []T{}, nil
	}
	names, vals := r.filterFields(objs[0])
	if len(names) == 0 {
		return nil, domain.ValidationError{Msg: "cannot create empty object"}
	}
	names, _ = withoutID(names, vals)
	withID := append([]string{"id"}, names...)

	ids := make([]string, 0, len(objs))
	rowsSQL := make([]string, 0, len(objs))
	args := []any{}
	for _, obj := range objs {
		id := suppliedID(obj)
		if id == "" {
			id = uuid.NewString()
		}
		ids = append(ids, id)
		args = append(args, id)
		for _, n := range names {
			args = append(args, obj[n])
		}
		rowsSQL = append(rowsSQL, "("+placeholders(len(withID))+")")
	}

	quoted := make([]string, len(withID))
	for i, n := range withID {
		quoted[i] = quote(n)
	}
	query := "INSERT INTO " + quote(r.Schema.Table) +
		" (" + strings.Join(quoted, ", ") + ") VALUES " + strings.Join(rowsSQL, ", ")
	if _, err := r.db().Exec(query, args...); err != nil {
		return nil, r.mapStoreError(err)
	}
	return r.GetByIDs(ids)
}

// Update applies a filtered partial update by identifier and returns
// the updated row, or (nil, nil) when no row matched. The identifier
// itself is immutable.
func (r Repository[T]) Update(id string, obj map[string]any) (*T, error) {
	names, vals := r.filterFields(obj)
	set := []string{}
	setVals := []any{}
	for i, n := range names {
		if n == "id" {
			continue
		}
		set = append(set, quote(n)+" = ?")
		setVals = append(setVals, vals[i])
	}
	if len(set) == 0 {
		return nil, domain.ValidationError{Msg: "cannot update with empty object"}
	}

	query := "UPDATE " + quote(r.Schema.Table) + " SET " + strings.Join(set, ", ") + " WHERE `id` = ?"
	res, err := r.db().Exec(query, append(setVals, id)...)
	if err != nil {
		return nil, r.mapStoreError(err)
	}
	matched, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if matched == 0 {
		return nil, nil
	}
	return r.GetByID(id)
}

// Delete removes the row and returns it as it was, for auditing or
// undo by the caller. A missing row is NotFoundError.
func (r Repository[T]) Delete(id string) (*T, error) {
	row, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.NotFoundError{Resource: r.Schema.Table}
	}
	if _, err := r.db().Exec("DELETE FROM "+quote(r.Schema.Table)+" WHERE `id` = ?", id); err != nil {
		return nil, err
	}
	return row, nil
}

// DeleteMany bulk-deletes and returns the number of rows removed.
// Empty input is a no-op issuing no statement.
func (r Repository[T]) DeleteMany(ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	res, err := r.db().Exec(
		"DELETE FROM "+quote(r.Schema.Table)+" WHERE `id` IN ("+placeholders(len(args))+")", args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Count reports the total row count for the entity.
func (r Repository[T]) Count() (int64, error) {
	var n int64
	err := r.db().QueryRow("SELECT COUNT(*) FROM " + quote(r.Schema.Table)).Scan(&n)
	return n, err
}

// filterFields keeps only keys that are declared columns, in schema
// order so generated SQL stays deterministic.
func (r Repository[T]) filterFields(obj map[string]any) ([]string, []any) {
	names := []string{}
	vals := []any{}
	for _, c := range r.Schema.Columns {
		if v, ok := obj[c.Name]; ok {
			names = append(names, c.Name)
			vals = append(vals, v)
		}
	}
	return names, vals
}

// withoutID strips the identifier column so insert paths control its
// position themselves and never emit it twice.
func withoutID(names []string, vals []any) ([]string, []any) {
	outNames := make([]string, 0, len(names))
	outVals := make([]any, 0, len(vals))
	for i, n := range names {
		if n == "id" {
			continue
		}
		outNames = append(outNames, n)
		outVals = append(outVals, vals[i])
	}
	return outNames, outVals
}

// suppliedID reads a caller-provided identifier, whether passed as text
// or as a typed UUID.
func suppliedID(obj map[string]any) string {
	switch v := obj["id"].(type) {
	case string:
		return v
	case uuid.UUID:
		return v.String()
	}
	return ""
}

func (r Repository[T]) attrWhere(attr map[string]any) (string, []any) {
	conds := []string{}
	args := []any{}
	for _, c := range r.Schema.Columns {
		if v, ok := attr[c.Name]; ok {
			conds = append(conds, quote(c.Name)+" = ?")
			args = append(args, v)
		}
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func (r Repository[T]) list(where string, args []any) ([]T, error) {
	records, err := r.queryRecords(r.Schema.Columns,
		"SELECT "+quoteAll(r.Schema.Columns)+" FROM "+quote(r.Schema.Table)+where, args)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(records))
	for _, rec := range records {
		out = append(out, r.Schema.FromRecord(rec))
	}
	return out, nil
}

func (r Repository[T]) firstRecord(cols []Column, where string, args []any) (Record, error) {
	records, err := r.queryRecords(cols,
		"SELECT "+quoteAll(cols)+" FROM "+quote(r.Schema.Table)+where+" LIMIT 1", args)
	if err != nil || len(records) == 0 {
		return nil, err
	}
	return records[0], nil
}

func (r Repository[T]) queryRecords(cols []Column, query string, args []any) ([]Record, error) {
	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []Record{}
	for rows.Next() {
		holders := make([]any, len(cols))
		for i, c := range cols {
			holders[i] = holderFor(c.Kind)
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, err
		}
		rec := Record{}
		for i, c := range cols {
			rec[c.Name] = holderValue(holders[i])
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// loadRelations attaches every declared relation to the given records
// with one IN query per relation.
func (r Repository[T]) loadRelations(records []Record) error {
	if len(records) == 0 {
		return nil
	}
	for _, rel := range r.Schema.Relations {
		keys := []any{}
		seen := map[string]bool{}
		for _, rec := range records {
			k, _ := rec[localKey(rel)].(string)
			if k == "" || seen[k] {
				continue
			}
			seen[k] = true
			keys = append(keys, k)
		}
		if len(keys) == 0 {
			continue
		}

		query := "SELECT " + quoteAll(rel.Columns) + " FROM " + quote(rel.Table) +
			" WHERE " + quote(rel.Key) + " IN (" + placeholders(len(keys)) + ")"
		related, err := r.queryRecords(rel.Columns, query, keys)
		if err != nil {
			return err
		}

		byKey := map[string][]Record{}
		for _, rec := range related {
			k, _ := rec[rel.Key].(string)
			byKey[k] = append(byKey[k], rec)
		}
		for _, rec := range records {
			k, _ := rec[localKey(rel)].(string)
			matches := byKey[k]
			if rel.Many {
				rec[rel.Name] = matches
			} else if len(matches) > 0 {
				rec[rel.Name] = matches[0]
			}
		}
	}
	return nil
}

func localKey(rel Relation) string {
	if rel.LocalKey == "" {
		return "id"
	}
	return rel.LocalKey
}

func (r Repository[T]) mapStoreError(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDupEntry {
		return domain.ConflictError{Resource: r.Schema.Table, Msg: "duplicate entry", Err: err}
	}
	// Non-uniqueness integrity failures stay distinguishable.
	return err
}
