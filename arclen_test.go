package sketchpath

import (
	"math"
	"math/rand/v2"
	"testing"
)

func randomPolyline(rng *rand.Rand, n int) Polyline {
	pl := make(Polyline, n)
	for i := range pl {
		pl[i] = Pt3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)
	}
	return pl
}

var testPolylines = []Polyline{
	{Pt3(0, 0, 0)},
	{Pt3(0, 0, 0), Pt3(2, 0, 0)},
	{Pt3(0, 0, 0), Pt3(0, 0, 0), Pt3(1, 0, 0)},
	{Pt3(1, 1, 1), Pt3(1, 1, 1), Pt3(1, 1, 1)},
	{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 1, 0), Pt3(1, 1, 1), Pt3(0, 1, 1)},
	{Pt3(0, 0, 0), Pt3(3, 4, 0), Pt3(3, 4, 0), Pt3(3, 4, 12)},
}

func TestArclenIndexMonotonic(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	paths := append([]Polyline(nil), testPolylines...)
	for range 20 {
		paths = append(paths, randomPolyline(rng, 2+rng.IntN(30)))
	}

	for _, pl := range paths {
		idx := BuildArclenIndex(pl)
		if idx.Len() != len(pl) {
			t.Fatalf("got %d entries for %d points", idx.Len(), len(pl))
		}
		if idx.Lengths[0] != 0 {
			t.Errorf("first entry is %g, want 0", idx.Lengths[0])
		}
		for i := 1; i < idx.Len(); i++ {
			if idx.Lengths[i] < idx.Lengths[i-1] {
				t.Errorf("index decreases at %d: %v", i, idx.Lengths)
			}
		}
		if d := math.Abs(idx.Total - pl.Length()); d > 1e-9 {
			t.Errorf("total %g differs from summed length %g", idx.Total, pl.Length())
		}
		if idx.Total != idx.Lengths[len(idx.Lengths)-1] {
			t.Errorf("total %g is not the last entry %g", idx.Total, idx.Lengths[len(idx.Lengths)-1])
		}
	}
}

func TestArclenIndexSinglePoint(t *testing.T) {
	idx := BuildArclenIndex(Polyline{Pt3(4, 5, 6)})
	diff(t, ArclenIndex{Lengths: []float64{0}, Total: 0}, idx)
	if p := idx.Param(0); p != 0 {
		t.Errorf("got param %g, want 0", p)
	}
}

func TestArclenIndexEmpty(t *testing.T) {
	idx := BuildArclenIndex(nil)
	if idx.Len() != 0 || idx.Total != 0 {
		t.Errorf("got %v, want empty index", idx)
	}
}

func TestArclenIndexValues(t *testing.T) {
	pl := Polyline{Pt3(0, 0, 0), Pt3(3, 4, 0), Pt3(3, 4, 0), Pt3(3, 4, 12)}
	idx := BuildArclenIndex(pl)
	diff(t, ArclenIndex{Lengths: []float64{0, 5, 5, 17}, Total: 17}, idx, approx(1e-12))
	diff(t, []float64{0, 5.0 / 17, 5.0 / 17, 1}, []float64{idx.Param(0), idx.Param(1), idx.Param(2), idx.Param(3)}, approx(1e-12))
}

func TestSampleAtEndpoints(t *testing.T) {
	const epsilon = 1e-9
	rng := rand.New(rand.NewPCG(3, 4))
	paths := append([]Polyline(nil), testPolylines...)
	for range 20 {
		paths = append(paths, randomPolyline(rng, 2+rng.IntN(30)))
	}
	for _, pl := range paths {
		idx := BuildArclenIndex(pl)
		assertNear(t, SampleAt(pl, idx, 0), pl[0], epsilon)
		assertNear(t, SampleAt(pl, idx, 1), pl[len(pl)-1], epsilon)
	}
}

func TestSampleAtInterpolates(t *testing.T) {
	const epsilon = 1e-12
	pl := Polyline{Pt3(0, 0, 0), Pt3(2, 0, 0), Pt3(2, 2, 0)}
	idx := BuildArclenIndex(pl)
	assertNear(t, SampleAt(pl, idx, 0.25), Pt3(1, 0, 0), epsilon)
	assertNear(t, SampleAt(pl, idx, 0.5), Pt3(2, 0, 0), epsilon)
	assertNear(t, SampleAt(pl, idx, 0.75), Pt3(2, 1, 0), epsilon)
}

func TestSampleAtZeroLengthSegment(t *testing.T) {
	const epsilon = 1e-12
	pl := Polyline{Pt3(0, 0, 0), Pt3(0, 0, 0), Pt3(1, 0, 0)}
	idx := BuildArclenIndex(pl)
	for _, tc := range []struct {
		t    float64
		want Point3
	}{
		{0, Pt3(0, 0, 0)},
		{1e-300, Pt3(1e-300, 0, 0)},
		{0.5, Pt3(0.5, 0, 0)},
		{1, Pt3(1, 0, 0)},
	} {
		got := SampleAt(pl, idx, tc.t)
		if !got.IsFinite() {
			t.Fatalf("t=%g: got non-finite point %s", tc.t, got)
		}
		assertNear(t, got, tc.want, epsilon)
	}

	// A path made only of coincident points has no length at all.
	still := Polyline{Pt3(1, 2, 3), Pt3(1, 2, 3), Pt3(1, 2, 3)}
	stillIdx := BuildArclenIndex(still)
	for _, ts := range []float64{0, 0.5, 1} {
		diff(t, Pt3(1, 2, 3), SampleAt(still, stillIdx, ts))
	}
}

func TestSampleAtOutOfRange(t *testing.T) {
	pl := Polyline{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 1, 0)}
	idx := BuildArclenIndex(pl)
	diff(t, pl[len(pl)-1], SampleAt(pl, idx, 1.5))
	diff(t, pl[len(pl)-1], SampleAt(pl, idx, math.NaN()))
	// Negative t continues the first segment backwards.
	assertNear(t, SampleAt(pl, idx, -0.5), Pt3(-1, 0, 0), 1e-12)
	zeroFirst := Polyline{Pt3(0, 0, 0), Pt3(0, 0, 0), Pt3(1, 0, 0)}
	diff(t, zeroFirst[0], SampleAt(zeroFirst, BuildArclenIndex(zeroFirst), -0.5))

	// Simulate rounding that leaves the target just above the total.
	rounded := idx
	rounded.Total = math.Nextafter(idx.Total, math.Inf(1))
	diff(t, pl[len(pl)-1], SampleAt(pl, rounded, 1))
}

func TestSampleAtMismatchedIndexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	SampleAt(Polyline{Pt3(0, 0, 0), Pt3(1, 0, 0)}, ArclenIndex{Lengths: []float64{0}}, 0.5)
}

// arclenPosition returns the arc length from the start of pl to pt, which
// must lie on pl.
func arclenPosition(t *testing.T, pl Polyline, idx ArclenIndex, pt Point3) float64 {
	t.Helper()
	for i := 1; i < len(pl); i++ {
		seg := Line3{pl[i-1], pl[i]}
		if distSq, u := seg.Nearest(pt); distSq < 1e-18 {
			return idx.Lengths[i-1] + u*seg.Length()
		}
	}
	t.Fatalf("%s does not lie on the polyline", pt)
	return 0
}

func TestSampleAtMonotonic(t *testing.T) {
	pl := Polyline{Pt3(0, 0, 0), Pt3(1, 0, 0), Pt3(1, 2, 0), Pt3(1, 2, 0), Pt3(-1, 2, 3)}
	idx := BuildArclenIndex(pl)
	prev := -1.0
	const n = 200
	for i := range n + 1 {
		ts := float64(i) / n
		pos := arclenPosition(t, pl, idx, SampleAt(pl, idx, ts))
		if pos < prev-1e-9 {
			t.Fatalf("t=%g: arc length position %g is before previous %g", ts, pos, prev)
		}
		if d := math.Abs(pos - ts*idx.Total); d > 1e-9 {
			t.Errorf("t=%g: arc length position %g, want %g", ts, pos, ts*idx.Total)
		}
		prev = pos
	}
}

func TestSampler(t *testing.T) {
	if _, err := NewSampler(nil); err != ErrEmptyPath {
		t.Fatalf("got error %v, want ErrEmptyPath", err)
	}
	s, err := NewSampler(Polyline{Pt3(0, 0, 0), Pt3(0, 4, 0)})
	if err != nil {
		t.Fatal(err)
	}
	if s.Total() != 4 {
		t.Errorf("got total %g, want 4", s.Total())
	}
	assertNear(t, s.At(0.25), Pt3(0, 1, 0), 1e-12)
	if s.Index().Len() != 2 {
		t.Errorf("got index of %d entries, want 2", s.Index().Len())
	}
}
