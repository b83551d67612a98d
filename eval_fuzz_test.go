package lrcalc_test

import (
	"math"
	"testing"

	"github.com/zephyrtronium/lrcalc"
)

func FuzzEval(f *testing.F) {
	f.Add("1 + 2")
	f.Add("3.5*2")
	f.Add("1+-2")
	f.Add("1.2.3 4")
	f.Fuzz(func(t *testing.T, s string) {
		tokens, err := lrcalc.TokenizeString(s)
		if err != nil {
			return
		}
		again, err := lrcalc.TokenizeString(lrcalc.Render(tokens))
		if err != nil {
			t.Fatalf("rendering of %q does not tokenize: %v", s, err)
		}
		if lrcalc.Render(again) != lrcalc.Render(tokens) {
			t.Fatalf("rendering of %q is not stable: %q became %q", s, lrcalc.Render(tokens), lrcalc.Render(again))
		}
		r, err := lrcalc.Evaluate(tokens)
		if err != nil {
			return
		}
		q, err := lrcalc.Evaluate(again)
		if err != nil {
			t.Fatalf("re-evaluating %q: %v", s, err)
		}
		if r != q && !(math.IsNaN(r) && math.IsNaN(q)) {
			t.Fatalf("evaluating %q gave %v then %v", s, r, q)
		}
	})
}
