package snapshot

import "testing"

func TestSide_Other(t *testing.T) {
	if SideLeft.Other() != SideRight {
		t.Error("expected the opposite of left to be right")
	}
	if SideRight.Other() != SideLeft {
		t.Error("expected the opposite of right to be left")
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" {
		t.Errorf("expected \"left\", got %q", SideLeft.String())
	}
	if SideRight.String() != "right" {
		t.Errorf("expected \"right\", got %q", SideRight.String())
	}
}
