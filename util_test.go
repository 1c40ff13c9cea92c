package morph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floating point values, including those nested in points,
// slices and maps, with a small tolerance.
var approx = cmpopts.EquateApprox(0, 1e-9)

func approxEqual(x, y float64) bool {
	return cmp.Equal(x, y, approx)
}
