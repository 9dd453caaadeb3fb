package life

import "testing"

func TestTransformGroupClosesAndInverts(t *testing.T) {
	all := []Transform{Id, Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag}
	for _, a := range all {
		inv := a.Inverse()
		if got := a.Mul(inv); got != Id {
			t.Errorf("%v.Mul(%v.Inverse()) = %v, want Id", a, a, got)
		}
		if got := inv.Mul(a); got != Id {
			t.Errorf("%v.Inverse().Mul(%v) = %v, want Id", a, a, got)
		}
	}
}

func TestRotate90OrderIsFour(t *testing.T) {
	if got := Rotate90.Order(); got != 4 {
		t.Errorf("Rotate90.Order() = %d, want 4", got)
	}
}

func TestFlipRowOrderIsTwo(t *testing.T) {
	if got := FlipRow.Order(); got != 2 {
		t.Errorf("FlipRow.Order() = %d, want 2", got)
	}
}

func TestActOnRoundTripsUnderInverse(t *testing.T) {
	coord := Coord{X: 1, Y: 2, T: 3}
	for _, tr := range []Transform{Rotate90, Rotate180, Rotate270, FlipRow, FlipCol, FlipDiag, FlipAntidiag} {
		img := tr.ActOn(coord, 5, 5)
		back := tr.Inverse().ActOn(img, 5, 5)
		if back != coord {
			t.Errorf("%v: round trip failed, got %v want %v", tr, back, coord)
		}
	}
}

func TestSymmetryMembersMatchOrder(t *testing.T) {
	cases := []struct {
		sym  Symmetry
		want int
	}{
		{C1, 1}, {C2, 2}, {C4, 4},
		{D2Row, 2}, {D2Col, 2}, {D2Diag, 2}, {D2Antidiag, 2},
		{D4Ortho, 4}, {D4Diag, 4}, {D8, 8},
	}
	for _, c := range cases {
		if got := len(c.sym.Members()); got != c.want {
			t.Errorf("%v.Members() has %d elements, want %d", c.sym, got, c.want)
		}
	}
}

func TestSymmetryCosetsCoverD8(t *testing.T) {
	members := D8.Members()
	for _, sym := range []Symmetry{C1, C2, C4, D2Row, D2Col, D2Diag, D2Antidiag, D4Ortho, D4Diag} {
		cosets := sym.Cosets()
		seen := map[Transform]bool{}
		for _, rep := range cosets {
			for _, m := range sym.Members() {
				seen[rep.Mul(m)] = true
			}
		}
		if len(seen) != len(members) {
			t.Errorf("%v: cosets cover %d transforms, want %d", sym, len(seen), len(members))
		}
	}
}

func TestSymmetryCosetsStartWithIdentity(t *testing.T) {
	for _, sym := range []Symmetry{C1, C2, C4, D2Row, D4Ortho, D8} {
		cosets := sym.Cosets()
		if len(cosets) == 0 || cosets[0] != Id {
			t.Errorf("%v.Cosets()[0] = %v, want Id", sym, cosets[0])
		}
	}
}

func TestIsSubgroupOfReflexiveAndD8Maximal(t *testing.T) {
	all := []Symmetry{C1, C2, C4, D2Row, D2Col, D2Diag, D2Antidiag, D4Ortho, D4Diag, D8}
	for _, s := range all {
		if !s.IsSubgroupOf(s) {
			t.Errorf("%v.IsSubgroupOf(itself) = false, want true", s)
		}
		if !s.IsSubgroupOf(D8) {
			t.Errorf("%v.IsSubgroupOf(D8) = false, want true", s)
		}
	}
}

func TestParseSymmetryRoundTrips(t *testing.T) {
	for _, sym := range []Symmetry{C1, C2, C4, D2Row, D2Col, D2Diag, D2Antidiag, D4Ortho, D4Diag, D8} {
		parsed, ok := ParseSymmetry(sym.String())
		if !ok || parsed != sym {
			t.Errorf("ParseSymmetry(%q) = (%v, %v), want (%v, true)", sym.String(), parsed, ok, sym)
		}
	}
}

func TestParseSymmetryRejectsUnknown(t *testing.T) {
	if _, ok := ParseSymmetry("not-a-symmetry"); ok {
		t.Errorf("ParseSymmetry(garbage) = ok, want rejected")
	}
}

func TestRequireSquareWorldFlagsDiagonalTransforms(t *testing.T) {
	if !FlipDiag.RequireSquareWorld() {
		t.Errorf("FlipDiag.RequireSquareWorld() = false, want true")
	}
	if Rotate180.RequireSquareWorld() {
		t.Errorf("Rotate180.RequireSquareWorld() = true, want false")
	}
}
