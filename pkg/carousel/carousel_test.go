package carousel

import "testing"

func TestOpen_StartsAtOverview(t *testing.T) {
	var c Controller
	ds := c.Open("ev_3")

	if c.Phase != PhaseOverview {
		t.Errorf("phase = %v, want overview", c.Phase)
	}
	if !c.IsOpen() || c.EventID != "ev_3" {
		t.Errorf("carousel should be open on ev_3")
	}
	if len(ds) != 3 {
		t.Fatalf("armed %d disclosures, want 3", len(ds))
	}
	if ds[0].Phase != PhaseDescription || ds[1].Phase != PhaseResponsible || ds[2].Phase != PhaseOverview {
		t.Errorf("disclosure phases = %v %v %v", ds[0].Phase, ds[1].Phase, ds[2].Phase)
	}
	if !(ds[0].After < ds[1].After && ds[1].After < ds[2].After) {
		t.Errorf("disclosure delays should increase: %v %v %v", ds[0].After, ds[1].After, ds[2].After)
	}
}

func TestAdvance_WrapsAround(t *testing.T) {
	var c Controller
	c.Open("ev_1")

	c.Advance(1)
	c.Advance(1)
	c.Advance(1)
	if c.Phase != PhaseOverview {
		t.Errorf("three advances should return to overview, got %v", c.Phase)
	}

	c.Advance(-1)
	if c.Phase != PhaseResponsible {
		t.Errorf("backward from overview should reach responsible, got %v", c.Phase)
	}
}

func TestAdvance_CancelsPendingDisclosures(t *testing.T) {
	var c Controller
	ds := c.Open("ev_1")

	c.Advance(1)
	// All disclosures armed before the manual advance are now stale.
	for _, d := range ds {
		if changed, _ := c.Apply(d); changed {
			t.Errorf("stale disclosure %v applied after manual advance", d.Phase)
		}
	}
	if c.Phase != PhaseDescription {
		t.Errorf("phase = %v, want description after one advance", c.Phase)
	}
}

func TestApply_AutoAdvanceCycle(t *testing.T) {
	var c Controller
	ds := c.Open("ev_2")

	if changed, _ := c.Apply(ds[0]); !changed || c.Phase != PhaseDescription {
		t.Fatalf("first disclosure should advance to description")
	}
	if changed, _ := c.Apply(ds[1]); !changed || c.Phase != PhaseResponsible {
		t.Fatalf("second disclosure should advance to responsible")
	}

	// The restart disclosure returns to overview and re-arms the cycle
	// under a fresh generation.
	changed, next := c.Apply(ds[2])
	if !changed || c.Phase != PhaseOverview {
		t.Fatalf("restart disclosure should return to overview")
	}
	if len(next) != 3 {
		t.Fatalf("restart should re-arm 3 disclosures, got %d", len(next))
	}
	if next[0].Gen == ds[0].Gen {
		t.Errorf("re-armed disclosures should carry a new generation")
	}

	// The old round is dead.
	if changed, _ := c.Apply(ds[0]); changed {
		t.Errorf("disclosure from a previous generation applied")
	}
}

func TestApply_WrongEventIsNoOp(t *testing.T) {
	var c Controller
	ds := c.Open("ev_1")
	c.Open("ev_2") // supersedes ev_1

	for _, d := range ds {
		if changed, _ := c.Apply(d); changed {
			t.Errorf("disclosure for superseded event applied")
		}
	}
}

func TestClose_InvalidatesTimers(t *testing.T) {
	var c Controller
	ds := c.Open("ev_1")
	c.Close()

	if c.IsOpen() || c.Phase != PhaseOverview {
		t.Errorf("close should clear the carousel")
	}
	for _, d := range ds {
		if changed, _ := c.Apply(d); changed {
			t.Errorf("disclosure applied after close")
		}
	}
}

func TestAdvance_ClosedIsNoOp(t *testing.T) {
	var c Controller
	c.Advance(1)
	if c.Phase != PhaseOverview {
		t.Errorf("advance on closed carousel should do nothing")
	}
}
