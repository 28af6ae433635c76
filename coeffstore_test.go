package resample

import "testing"

func TestCoeffStoreRowLayout(t *testing.T) {
	var s coeffStore[float32]
	s.ensure(4, 1, 3)

	for p := 0; p < 3; p++ {
		row := s.row(p)
		if len(row) != 1*4+overreadElems {
			t.Fatalf("row(%d) length = %d, want %d", p, len(row), 4+overreadElems)
		}
		row[0] = float32(p + 1)
	}
	for p := 0; p < 3; p++ {
		if got := s.row(p)[0]; got != float32(p+1) {
			t.Errorf("row(%d)[0] = %v, want %v (rows overlapping?)", p, got, p+1)
		}
	}
}

func TestCoeffStoreSkipsReallocationWhenLargeEnough(t *testing.T) {
	var s coeffStore[int16]
	s.ensure(8, 2, 10)
	backing := s.data
	s.ensure(4, 2, 5) // smaller in both dimensions: must reuse
	if &s.data[0] != &backing[0] {
		t.Error("ensure reallocated despite existing allocation covering the new dimensions")
	}
	if s.nTaps != 4 || s.phases != 5 {
		t.Errorf("ensure did not update nTaps/phases: got (%d, %d)", s.nTaps, s.phases)
	}
}

func TestCoeffStoreReallocatesWhenTooSmall(t *testing.T) {
	var s coeffStore[int16]
	s.ensure(4, 1, 2)
	s.ensure(64, 1, 2)
	if s.allocTaps < 64 {
		t.Errorf("allocTaps = %d, want >= 64", s.allocTaps)
	}
}

func TestRoundUp32(t *testing.T) {
	cases := map[int]int{0: 0, 1: 32, 31: 32, 32: 32, 33: 64}
	for in, want := range cases {
		if got := roundUp32(in); got != want {
			t.Errorf("roundUp32(%d) = %d, want %d", in, got, want)
		}
	}
}
