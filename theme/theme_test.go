package theme

import "testing"

func absDiff(a, b uint8) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

func closeTo(a, b RGB) bool {
	// Luv round trips through float space; allow small 8-bit error.
	for i := range a {
		if absDiff(a[i], b[i]) > 2 {
			return false
		}
	}
	return true
}

func TestBlendEndpoints(t *testing.T) {
	a := RGB{255, 0, 0}
	b := RGB{0, 0, 255}
	if got := Blend(a, b, 0); !closeTo(got, a) {
		t.Fatalf("blend t=0 = %v, want %v", got, a)
	}
	if got := Blend(a, b, 1); !closeTo(got, b) {
		t.Fatalf("blend t=1 = %v, want %v", got, b)
	}
}

func TestDimEndpoints(t *testing.T) {
	c := RGB{0, 255, 0}
	if got := Dim(c, 1); !closeTo(got, c) {
		t.Fatalf("dim f=1 = %v, want %v", got, c)
	}
	if got := Dim(c, 0); !closeTo(got, RGB{0, 0, 0}) {
		t.Fatalf("dim f=0 = %v, want black", got)
	}
	mid := Dim(c, 0.4)
	if int(mid[1]) >= int(c[1]) || mid[1] == 0 {
		t.Fatalf("dim f=0.4 = %v, want strictly between black and %v", mid, c)
	}
}
