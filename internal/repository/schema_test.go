package repository

import (
	"testing"
	"time"

	"backend/internal/domain"
)

func TestCoerceInt(t *testing.T) {
	col := Column{Name: "hard_back_qty", Kind: KindInt}

	v, err := col.Coerce("5")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if v.(int64) != 5 {
		t.Fatalf("expected 5, got %v", v)
	}

	if _, err := col.Coerce("five"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoerceBool(t *testing.T) {
	col := Column{Name: "pdf", Kind: KindBool}

	for raw, want := range map[string]bool{"true": true, "TRUE": true, "false": false, "banana": false} {
		v, err := col.Coerce(raw)
		if err != nil {
			t.Fatalf("coerce %q: %v", raw, err)
		}
		if v.(bool) != want {
			t.Fatalf("coerce %q: expected %v, got %v", raw, want, v)
		}
	}
}

func TestCoerceDateTimeVariants(t *testing.T) {
	col := Column{Name: "placed_at", Kind: KindDateTime}

	for _, raw := range []string{"2025-03-01T10:30:00Z", "2025-03-01T10:30:00", "2025-03-01 10:30:00"} {
		v, err := col.Coerce(raw)
		if err != nil {
			t.Fatalf("coerce %q: %v", raw, err)
		}
		if v.(time.Time).Day() != 1 {
			t.Fatalf("coerce %q: wrong day", raw)
		}
	}

	if _, err := col.Coerce("not-a-date"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoerceDateRejectsGarbage(t *testing.T) {
	col := Column{Name: "published_on", Kind: KindDate}

	if _, err := col.Coerce("2025-03-01"); err != nil {
		t.Fatalf("expected valid date, got %v", err)
	}
	if _, err := col.Coerce("03/01/2025"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoerceEnumMembership(t *testing.T) {
	col := Column{Name: "status", Kind: KindEnum, Enum: []string{"pending", "paid"}}

	if _, err := col.Coerce("paid"); err != nil {
		t.Fatalf("expected member to pass, got %v", err)
	}
	if _, err := col.Coerce("shipped"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoerceUUID(t *testing.T) {
	col := Column{Name: "id", Kind: KindUUID}

	if _, err := col.Coerce("6d7f6b0a-30ff-4e2c-9f9c-0d7a45b7c111"); err != nil {
		t.Fatalf("expected valid uuid, got %v", err)
	}
	if _, err := col.Coerce("nope"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCoerceFloatUnsupported(t *testing.T) {
	col := Column{Name: "total", Kind: KindFloat}

	if _, err := col.Coerce("1.5"); !domain.IsUnsupportedType(err) {
		t.Fatalf("expected unsupported type error, got %v", err)
	}
}

func TestProjectionDropsRelationsAndUnknowns(t *testing.T) {
	cols := Addresses.projection("street, city, user, nickname")
	if len(cols) != 2 {
		t.Fatalf("expected 2 surviving columns, got %d", len(cols))
	}
	if cols[0].Name != "street" || cols[1].Name != "city" {
		t.Fatalf("unexpected projection: %v", cols)
	}
}

func TestProjectionFallsBackToAllColumns(t *testing.T) {
	cols := Addresses.projection("user")
	if len(cols) != len(Addresses.Columns) {
		t.Fatalf("expected all columns when projection empties out, got %d", len(cols))
	}
}

func TestOrderClauseSkipsInvalidNames(t *testing.T) {
	clause := Orders.orderClause(Filter{OrderBy: "placed_at, bogus", SortBy: SortDesc})
	if clause != " ORDER BY `placed_at` DESC" {
		t.Fatalf("unexpected clause: %q", clause)
	}
}
