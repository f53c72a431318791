package regular

import (
	"context"
	"fmt"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// modulo builds an automaton over the digits accepting decimal numbers
// divisible by n.
func modulo(n int) *AutomatonBuilder {
	b := New(fmt.Sprintf("mod-%d", n)).Ranges("0-9")
	for r := range n {
		b.States(fmt.Sprint(r))
	}
	b.Start("0").Accept("0")
	for r := range n {
		for d := range 10 {
			b.Transition(fmt.Sprint(r), rune('0'+d), fmt.Sprint((r*10+d)%n))
		}
	}
	return b
}

func TestModuloAutomaton(t *testing.T) {
	ctx := context.Background()
	catalog := NewInMemoryCatalog()
	require.NoError(t, modulo(7).Register(ctx, catalog))

	for _, n := range []int{0, 7, 49, 700, 6, 50, 701} {
		ok, err := Accept(ctx, catalog, "mod-7", fmt.Sprint(n))
		require.NoError(t, err)
		require.Equal(t, n%7 == 0, ok, "input %d", n)
	}
}

func BenchmarkAccept(b *testing.B) {
	ctx := context.Background()
	catalog := NewInMemoryCatalog()
	require.NoError(b, modulo(97).Register(ctx, catalog))
	input := strings.Repeat("1234567890", 100)

	// Compile once outside the timed loop.
	_, err := Accept(ctx, catalog, "mod-97", input)
	require.NoError(b, err)

	for b.Loop() {
		if _, err := Accept(ctx, catalog, "mod-97", input); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkIntersection(b *testing.B) {
	ctx := context.Background()
	catalog := NewInMemoryCatalog()
	require.NoError(b, modulo(31).Register(ctx, catalog))
	require.NoError(b, modulo(37).Register(ctx, catalog))

	for b.Loop() {
		if _, err := Intersection(ctx, catalog, "mod-31", "mod-37", "mod-1147"); err != nil {
			b.Fatal(err)
		}
	}
}

// TestMinimalMemoryFootprintUnder5MB verifies that a minimal in-memory
// catalog stays under ~5MB of heap usage.
//
// We force a GC, capture HeapAlloc, create an in-memory catalog, force another
// GC and compare HeapAlloc again. This provides a conservative estimate of
// retained heap usage attributable to catalog initialization.
func TestMinimalMemoryFootprintUnder5MB(t *testing.T) {
	runtime.GC()
	var before runtime.MemStats
	runtime.ReadMemStats(&before)

	catalog := NewInMemoryCatalog()
	// Keep catalog alive until after measurement.
	runtime.KeepAlive(catalog)

	runtime.GC()
	var after runtime.MemStats
	runtime.ReadMemStats(&after)

	const fiveMB = 5 * 1024 * 1024
	used := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	if used < 0 {
		used = 0 // be robust to minor fluctuations
	}

	if used >= fiveMB {
		t.Fatalf("minimal memory footprint too high: %d bytes (>= %d)", used, fiveMB)
	}
}
