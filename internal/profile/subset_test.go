package profile

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1024))
}

func TestSubsetBounds(t *testing.T) {
	pool := make([]string, 30)
	for i := range pool {
		pool[i] = fmt.Sprintf("item-%02d", i)
	}

	tests := []struct {
		name     string
		min, max int
	}{
		{"skills", 4, 12},
		{"tech stack", 3, 8},
		{"tags", 2, 6},
		{"exact", 5, 5},
		{"whole pool", 30, 30},
		{"zero allowed", 0, 3},
	}

	r := testRand()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for range 500 {
				got := Subset(r, pool, tt.min, tt.max)
				if len(got) < tt.min || len(got) > tt.max {
					t.Fatalf("size %d outside [%d,%d]", len(got), tt.min, tt.max)
				}
				assertDistinctMembers(t, got, pool)
			}
		})
	}
}

func TestSubsetCoversRange(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	r := testRand()

	sizes := make(map[int]bool)
	for range 1000 {
		sizes[len(Subset(r, pool, 2, 6))] = true
	}
	for n := 2; n <= 6; n++ {
		if !sizes[n] {
			t.Errorf("size %d never drawn in 1000 tries", n)
		}
	}
}

func TestSubsetClampsToPool(t *testing.T) {
	pool := []string{"go", "rust", "zig"}
	r := testRand()

	for range 100 {
		got := Subset(r, pool, 4, 12)
		if len(got) != len(pool) {
			t.Fatalf("size: got %d, want %d (clamped)", len(got), len(pool))
		}
		assertDistinctMembers(t, got, pool)
	}
}

func TestSubsetEmptyPool(t *testing.T) {
	got := Subset(testRand(), nil, 2, 6)
	if got == nil || len(got) != 0 {
		t.Errorf("empty pool: got %#v, want empty non-nil slice", got)
	}
}

func TestSubsetDoesNotMutatePool(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e"}
	orig := slices.Clone(pool)
	r := testRand()
	for range 50 {
		Subset(r, pool, 1, 5)
	}
	if !slices.Equal(pool, orig) {
		t.Errorf("pool mutated: got %v, want %v", pool, orig)
	}
}

func TestSubsetDeterministic(t *testing.T) {
	pool := []string{"a", "b", "c", "d", "e", "f"}
	a := Subset(rand.New(rand.NewPCG(7, 7)), pool, 2, 5)
	b := Subset(rand.New(rand.NewPCG(7, 7)), pool, 2, 5)
	if !slices.Equal(a, b) {
		t.Errorf("same seed gave %v and %v", a, b)
	}
}

func assertDistinctMembers(t *testing.T, got, pool []string) {
	t.Helper()
	seen := make(map[string]bool, len(got))
	for _, v := range got {
		if !slices.Contains(pool, v) {
			t.Fatalf("%q not in pool", v)
		}
		if seen[v] {
			t.Fatalf("duplicate %q in %v", v, got)
		}
		seen[v] = true
	}
}
