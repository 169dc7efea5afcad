package stats

import (
	"math"
	"testing"
)

func TestValueInsertTracksMeanAndRange(t *testing.T) {
	var v Value
	for _, x := range []float64{1, 2, 3, 4, 5} {
		v = v.Insert(x)
	}
	if v.Mean() != 3 {
		t.Errorf("Mean() = %f, want 3", v.Mean())
	}
	if v.Max() != 5 || v.Min() != 1 {
		t.Errorf("Max/Min = %f/%f, want 5/1", v.Max(), v.Min())
	}
	if v.Len() != 5 {
		t.Errorf("Len() = %d, want 5", v.Len())
	}
}

func TestValueMergeMatchesSequentialInsert(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9}

	var sequential Value
	for _, x := range data {
		sequential = sequential.Insert(x)
	}

	var a, b Value
	for _, x := range data[:4] {
		a = a.Insert(x)
	}
	for _, x := range data[4:] {
		b = b.Insert(x)
	}
	merged := a.Merge(b)

	if math.Abs(merged.Mean()-sequential.Mean()) > 1e-9 {
		t.Errorf("Merge mean = %f, want %f", merged.Mean(), sequential.Mean())
	}
	if math.Abs(merged.Variance()-sequential.Variance()) > 1e-9 {
		t.Errorf("Merge variance = %f, want %f", merged.Variance(), sequential.Variance())
	}
	if merged.Len() != sequential.Len() {
		t.Errorf("Merge len = %d, want %d", merged.Len(), sequential.Len())
	}
}

func TestValueMergeWithEmptyIsIdentity(t *testing.T) {
	var a Value
	a = a.Insert(1).Insert(2).Insert(3)
	var empty Value

	if got := a.Merge(empty); got.Mean() != a.Mean() || got.Len() != a.Len() {
		t.Errorf("Merge(empty) = %+v, want %+v", got, a)
	}
	if got := empty.Merge(a); got.Mean() != a.Mean() || got.Len() != a.Len() {
		t.Errorf("empty.Merge(a) = %+v, want %+v", got, a)
	}
}
