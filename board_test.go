package jigsaw

import (
	"errors"
	"math/rand"
	"testing"
)

func TestTracker(t *testing.T) {
	data, err := Generate(testConfig(), WithRand(rand.New(rand.NewSource(6))))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	tr := NewTracker(data)
	if tr.Placed() != 0 || tr.Solved() {
		t.Fatalf("fresh tracker: placed=%d solved=%v, want 0/false", tr.Placed(), tr.Solved())
	}
	if tr.Remaining() != len(data.Pieces) {
		t.Fatalf("Remaining() = %d, want %d", tr.Remaining(), len(data.Pieces))
	}

	for i, p := range data.Pieces {
		placed, err := tr.Place(p.ID)
		if err != nil {
			t.Fatalf("Place(%q) error: %v", p.ID, err)
		}
		if !placed {
			t.Fatalf("Place(%q) = false, want true for first placement", p.ID)
		}
		if tr.Placed() != i+1 {
			t.Fatalf("after %d placements Placed() = %d", i+1, tr.Placed())
		}
		if solved := i == len(data.Pieces)-1; tr.Solved() != solved {
			t.Fatalf("after %d placements Solved() = %v, want %v", i+1, tr.Solved(), solved)
		}
	}
}

func TestTracker_PlaceIdempotent(t *testing.T) {
	data, err := Generate(testConfig(), WithRand(rand.New(rand.NewSource(7))))
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTracker(data)
	id := data.Pieces[0].ID

	if placed, err := tr.Place(id); err != nil || !placed {
		t.Fatalf("first Place(%q) = %v, %v", id, placed, err)
	}
	placed, err := tr.Place(id)
	if err != nil {
		t.Fatalf("second Place(%q) error: %v", id, err)
	}
	if placed {
		t.Errorf("second Place(%q) = true, want false", id)
	}
	if tr.Placed() != 1 {
		t.Errorf("Placed() = %d after double placement, want 1", tr.Placed())
	}
}

func TestTracker_UnknownPiece(t *testing.T) {
	data, err := Generate(testConfig(), WithRand(rand.New(rand.NewSource(8))))
	if err != nil {
		t.Fatal(err)
	}
	tr := NewTracker(data)

	if _, err := tr.Place("99-99"); !errors.Is(err, ErrUnknownPiece) {
		t.Errorf("Place(unknown) error = %v, want ErrUnknownPiece", err)
	}
	if tr.Placed() != 0 {
		t.Errorf("Placed() = %d after failed placement, want 0", tr.Placed())
	}
}
