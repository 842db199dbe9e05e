package geometry

import (
	"testing"
)

func TestBoundingBoxExtend(t *testing.T) {
	bbox := NewBoundingBox()

	bbox.Extend(NewVector3(1, 2, 3))
	bbox.Extend(NewVector3(4, 5, 6))
	bbox.Extend(NewVector3(-1, 0, 2))

	expectedMin := NewVector3(-1, 0, 2)
	expectedMax := NewVector3(4, 5, 6)

	if bbox.Min != expectedMin {
		t.Errorf("Min failed: expected %v, got %v", expectedMin, bbox.Min)
	}
	if bbox.Max != expectedMax {
		t.Errorf("Max failed: expected %v, got %v", expectedMax, bbox.Max)
	}
}

func TestBoundingBoxEmpty(t *testing.T) {
	bbox := NewBoundingBox()
	if !bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: new box should be empty")
	}
	if padded := bbox.Pad(1); !padded.IsEmpty() {
		t.Errorf("Pad failed: padding an empty box should keep it empty")
	}

	bbox.Extend(NewVector3(0, 0, 0))
	if bbox.IsEmpty() {
		t.Errorf("IsEmpty failed: box with one point is not empty")
	}
}

func TestBoundingBoxCenterAndPad(t *testing.T) {
	bbox := NewBoundingBox()
	bbox.Extend(NewVector3(0, 0, 0))
	bbox.Extend(NewVector3(10, 20, 30))

	if center := bbox.Center(); center != NewVector3(5, 10, 15) {
		t.Errorf("Center failed: expected %v, got %v", NewVector3(5, 10, 15), center)
	}

	padded := bbox.Pad(1)
	if padded.Size() != NewVector3(12, 22, 32) {
		t.Errorf("Pad failed: expected %v, got %v", NewVector3(12, 22, 32), padded.Size())
	}
}
