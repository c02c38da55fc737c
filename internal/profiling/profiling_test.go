package profiling

import (
	"testing"
	"time"
)

func TestTopNOrdersByDuration(t *testing.T) {
	tm := New()
	tm.Add("meshing.Hexaflake", 4200*time.Microsecond)
	tm.Add("flake.Upload", 300*time.Microsecond)
	tm.Add("renderer.Render", 2*time.Millisecond)
	tm.Add("flake.Upload", 200*time.Microsecond)

	if got, want := tm.TopN(2), "meshing.Hexaflake:4.2ms, renderer.Render:2ms"; got != want {
		t.Fatalf("TopN(2) = %q, want %q", got, want)
	}
	if got, want := tm.TopN(10), "meshing.Hexaflake:4.2ms, renderer.Render:2ms, flake.Upload:0.5ms"; got != want {
		t.Fatalf("TopN(10) = %q, want %q", got, want)
	}
	if got := tm.Total(); got != 6700*time.Microsecond {
		t.Fatalf("Total = %v", got)
	}
}

func TestTrackRecords(t *testing.T) {
	tm := New()
	stop := tm.Track("phase")
	time.Sleep(time.Millisecond)
	stop()

	snap := tm.Snapshot()
	if snap["phase"] < time.Millisecond {
		t.Fatalf("phase recorded %v, want >= 1ms", snap["phase"])
	}
	// snapshot is a copy
	snap["phase"] = 0
	if tm.Snapshot()["phase"] == 0 {
		t.Fatal("Snapshot returned internal map")
	}
}

func TestNilTimings(t *testing.T) {
	var tm *Timings
	tm.Track("x")()
	tm.Add("x", time.Second)
	if tm.TopN(3) != "" || tm.Total() != 0 || tm.Snapshot() != nil {
		t.Fatal("nil Timings should record nothing")
	}
}
