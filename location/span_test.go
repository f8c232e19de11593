package location

import "testing"

var testSource = MustNewSourceID("test://unit")

func TestPoint(t *testing.T) {
	s := Point(testSource, 10, 5)

	if s.Source != testSource {
		t.Error("Source mismatch")
	}
	if s.Start.Line != 10 || s.Start.Column != 5 {
		t.Errorf("Start = %v; want {10, 5, -1}", s.Start)
	}
	if s.Start.Byte != -1 {
		t.Error("Point should have Byte = -1")
	}
	if !s.IsPoint() {
		t.Error("Point should report IsPoint() == true")
	}
}

func TestRange(t *testing.T) {
	s := Range(testSource, 10, 5, 10, 15)

	if s.Start.Line != 10 || s.Start.Column != 5 {
		t.Errorf("Start = %v; want {10, 5, -1}", s.Start)
	}
	if s.End.Line != 10 || s.End.Column != 15 {
		t.Errorf("End = %v; want {10, 15, -1}", s.End)
	}
	if s.IsPoint() {
		t.Error("Range should not be a point")
	}
}

func TestRange_PanicsEndBeforeStart(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Range with end before start should panic")
		}
	}()
	Range(testSource, 10, 15, 10, 5)
}

func TestSpan_IsGeometricallySafe(t *testing.T) {
	safe := Span{Source: testSource, Start: NewPosition(1, 1, 0), End: NewPosition(1, 5, 4)}
	if !safe.IsGeometricallySafe() {
		t.Error("expected safe span")
	}

	unsafeSpan := Span{Source: testSource, Start: NewPosition(1, 5, 4), End: NewPosition(1, 1, 0)}
	if unsafeSpan.IsGeometricallySafe() {
		t.Error("expected unsafe span")
	}
}

func TestSpan_Contains(t *testing.T) {
	s := Range(testSource, 1, 1, 1, 10)
	if !s.Contains(NewPosition(1, 5, -1)) {
		t.Error("expected span to contain midpoint")
	}
	if s.Contains(NewPosition(1, 10, -1)) {
		t.Error("half-open span should not contain End")
	}
}

func TestMerge_PanicsOnSourceMismatch(t *testing.T) {
	other := MustNewSourceID("test://other")
	a := Point(testSource, 1, 1)
	b := Point(other, 1, 1)

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on source mismatch")
		}
	}()
	Merge(a, b)
}

func TestMergeSafe_SourceMismatch(t *testing.T) {
	other := MustNewSourceID("test://other")
	a := Point(testSource, 1, 1)
	b := Point(other, 1, 1)

	_, ok := MergeSafe(a, b)
	if ok {
		t.Error("expected ok=false on source mismatch")
	}
}

func TestCompare(t *testing.T) {
	a := Point(testSource, 1, 1)
	b := Point(testSource, 2, 1)
	if Compare(a, b) != -1 {
		t.Error("expected a < b")
	}
	if Compare(b, a) != 1 {
		t.Error("expected b > a")
	}
	if Compare(a, a) != 0 {
		t.Error("expected equal spans to compare 0")
	}
}
