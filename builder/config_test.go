// Package builder contains unit tests for builderConfig resolution.
package builder

import (
	"math/rand"
	"testing"
)

// TestIDSchemeOptions verifies that ID scheme options apply in order.
func TestIDSchemeOptions(t *testing.T) {
	t.Parallel()

	if got := newBuilderConfig().idFn(7); got != "7" {
		t.Errorf("default idFn: expected \"7\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs()).idFn(0); got != "A" {
		t.Errorf("WithSymbolIDs: expected \"A\", got %q", got)
	}
	if got := newBuilderConfig(WithExcelColumnIDs()).idFn(27); got != "AB" {
		t.Errorf("WithExcelColumnIDs: expected \"AB\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbNumb("sku-")).idFn(3); got != "sku-3" {
		t.Errorf("WithSymbNumb: expected \"sku-3\", got %q", got)
	}
	if got := newBuilderConfig(WithSymbolIDs(), WithDefaultIDs()).idFn(3); got != "3" {
		t.Errorf("WithDefaultIDs override: expected \"3\", got %q", got)
	}
}

// TestRNGOptions verifies seeding and explicit RNG injection.
func TestRNGOptions(t *testing.T) {
	t.Parallel()

	if newBuilderConfig().rng != nil {
		t.Error("default rng: expected nil")
	}
	a := newBuilderConfig(WithSeed(42)).rng.Int63()
	b := newBuilderConfig(WithSeed(42)).rng.Int63()
	if a != b {
		t.Errorf("WithSeed: expected reproducible draws, got %d and %d", a, b)
	}
	r := rand.New(rand.NewSource(1))
	if newBuilderConfig(WithSeed(7), WithRand(r)).rng != r {
		t.Error("WithRand: later option must win")
	}
}
