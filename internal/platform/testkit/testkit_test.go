package testkit

import (
	"testing"
	"time"
)

var seam = func() string { return "real" }

func TestSwap_RestoresOnCleanup(t *testing.T) {
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &seam, func() string { return "fake" })
		if seam() != "fake" {
			t.Fatal("seam not swapped")
		}
	})
	if seam() != "real" {
		t.Fatal("seam not restored")
	}
}

func TestDayAndClock(t *testing.T) {
	d := Day(2024, time.February, 29)
	if d.Hour() != 0 || d.Location() != time.UTC || d.Day() != 29 {
		t.Fatalf("unexpected day %v", d)
	}
	if !Clock(d)().Equal(d) {
		t.Fatal("clock should return fixed instant")
	}
	MustPanic(t, func() { panic("boom") })
}
