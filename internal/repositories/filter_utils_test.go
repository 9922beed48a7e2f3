package repositories

import (
	"strings"
	"testing"
)

func TestClampLimit(t *testing.T) {
	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{"zero falls back to default", 0, 12},
		{"negative falls back to default", -5, 12},
		{"within range", 30, 30},
		{"at cap", 100, 100},
		{"above cap", 500, 100},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampLimit(tc.limit); got != tc.want {
				t.Fatalf("clampLimit(%d) = %d, want %d", tc.limit, got, tc.want)
			}
		})
	}
}

func TestPageOffset(t *testing.T) {
	cases := []struct {
		name        string
		page, limit int
		want        int
	}{
		{"first page", 1, 12, 0},
		{"second page", 2, 12, 12},
		{"zero page treated as first", 0, 12, 0},
		{"negative page treated as first", -3, 12, 0},
		{"custom limit", 4, 25, 75},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := pageOffset(tc.page, tc.limit); got != tc.want {
				t.Fatalf("pageOffset(%d, %d) = %d, want %d", tc.page, tc.limit, got, tc.want)
			}
		})
	}
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		name string
		sort string
		want string
	}{
		{"newest", SortNewest, "ORDER BY created_at DESC, id ASC"},
		{"oldest", SortOldest, "ORDER BY created_at ASC, id ASC"},
		{"price ascending", SortPriceAsc, "ORDER BY price ASC, id ASC"},
		{"price descending", SortPriceDesc, "ORDER BY price DESC, id ASC"},
		{"unknown falls back to newest", "alphabetical", "ORDER BY created_at DESC, id ASC"},
		{"empty falls back to newest", "", "ORDER BY created_at DESC, id ASC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := orderClause(tc.sort); got != tc.want {
				t.Fatalf("orderClause(%q) = %q, want %q", tc.sort, got, tc.want)
			}
		})
	}
}

func TestWhereBuilderComposesWithAND(t *testing.T) {
	var b whereBuilder
	b.add("make = $%d", "toyota")
	b.add("price >= $%d", 100000.0)
	b.addRaw("featured = TRUE")

	clause := b.clause()
	if !strings.HasPrefix(clause, "WHERE ") {
		t.Fatalf("clause missing WHERE prefix: %q", clause)
	}
	if clause != "WHERE make = $1 AND price >= $2 AND featured = TRUE" {
		t.Fatalf("unexpected clause: %q", clause)
	}
	if len(b.args) != 2 {
		t.Fatalf("expected 2 bound args, got %d", len(b.args))
	}
	if b.next() != 3 {
		t.Fatalf("expected next placeholder 3, got %d", b.next())
	}
}

func TestWhereBuilderEmpty(t *testing.T) {
	var b whereBuilder
	if got := b.clause(); got != "" {
		t.Fatalf("expected empty clause, got %q", got)
	}
	if b.next() != 1 {
		t.Fatalf("expected next placeholder 1, got %d", b.next())
	}
}
