package carousel

import "testing"

// drive a full drag gesture with a single delta and release it
func dragRelease(p *Pager, dx, dy, pageSize float32) Settle {
	p.Drag(dx, dy)
	s, _ := p.DragEnd(pageSize)
	return s
}

func TestPager_AdvanceCommit(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// threshold 0.1 of 300 = 30; |−40| > 30 → next page
	s := dragRelease(p, -40, 0, 300)
	if s.Delta != 1 {
		t.Fatalf("Expected delta +1, got %d", s.Delta)
	}
	if s.Target.X != -300 {
		t.Errorf("Expected settle target X=-300, got %f", s.Target.X)
	}

	p.FinishSettle(s)
	if p.Current() != 4 {
		t.Errorf("Expected current index 4, got %d", p.Current())
	}
	if !p.Offset().IsZero() {
		t.Errorf("Offset should be zero at rest, got %+v", p.Offset())
	}
	if p.State() != StateIdle {
		t.Errorf("Expected Idle after settle, got %v", p.State())
	}
	if p.Axis() != AxisNone {
		t.Errorf("Axis should unlock after settle, got %v", p.Axis())
	}
}

func TestPager_BelowThresholdSnapsBack(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// |−20| < 30 → snap back, index unchanged
	s := dragRelease(p, -20, 0, 300)
	if s.Delta != 0 {
		t.Fatalf("Expected no advance, got delta %d", s.Delta)
	}
	if !s.Target.IsZero() {
		t.Errorf("Snap-back target should be zero, got %+v", s.Target)
	}

	p.FinishSettle(s)
	if p.Current() != 3 {
		t.Errorf("Expected current index 3, got %d", p.Current())
	}
}

func TestPager_BoundaryBlocksPrevious(t *testing.T) {
	p := NewPager(8, DefaultConfig())

	// positive translation = previous; index 0 blocks it regardless of size
	s := dragRelease(p, 250, 0, 300)
	if s.Delta != 0 {
		t.Fatalf("Boundary should block previous advance, got delta %d", s.Delta)
	}
	p.FinishSettle(s)
	if p.Current() != 0 {
		t.Errorf("Expected index to stay at 0, got %d", p.Current())
	}
}

func TestPager_BoundaryBlocksNext(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(7)

	s := dragRelease(p, -250, 0, 300)
	if s.Delta != 0 {
		t.Fatalf("Boundary should block next advance, got delta %d", s.Delta)
	}
	p.FinishSettle(s)
	if p.Current() != 7 {
		t.Errorf("Expected index to stay at 7, got %d", p.Current())
	}
}

func TestPager_SingleItemBlocksBothDirections(t *testing.T) {
	p := NewPager(1, DefaultConfig())

	for _, dx := range []float32{-250, 250} {
		s := dragRelease(p, dx, 0, 300)
		if s.Delta != 0 {
			t.Errorf("N=1 must block advance for dx=%f, got delta %d", dx, s.Delta)
		}
		p.FinishSettle(s)
		if p.Current() != 0 {
			t.Errorf("Expected index 0, got %d", p.Current())
		}
	}
}

func TestPager_ZeroTranslationRelease(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// a degenerate gesture: net translation of exactly zero at release
	p.Drag(15, 0)
	p.Drag(-15, 0)
	s, ok := p.DragEnd(300)
	if !ok {
		t.Fatal("Release of a live gesture must start a settle")
	}
	if s.Delta != 0 || !s.Target.IsZero() {
		t.Fatalf("Zero translation must settle in place, got %+v", s)
	}
	p.FinishSettle(s)
	if p.Current() != 3 {
		t.Errorf("Expected index unchanged at 3, got %d", p.Current())
	}
}

func TestPager_IndexStaysInRange(t *testing.T) {
	p := NewPager(5, DefaultConfig())

	// hammer next far past the end, then previous far past the start
	for i := 0; i < 20; i++ {
		s := dragRelease(p, -200, 0, 300)
		p.FinishSettle(s)
		if c := p.Current(); c < 0 || c > 4 {
			t.Fatalf("Index escaped range after next #%d: %d", i, c)
		}
	}
	if p.Current() != 4 {
		t.Errorf("Expected to stop at last index 4, got %d", p.Current())
	}

	for i := 0; i < 20; i++ {
		s := dragRelease(p, 200, 0, 300)
		p.FinishSettle(s)
		if c := p.Current(); c < 0 || c > 4 {
			t.Fatalf("Index escaped range after previous #%d: %d", i, c)
		}
	}
	if p.Current() != 0 {
		t.Errorf("Expected to stop at index 0, got %d", p.Current())
	}
}

func TestPager_CumulativeTranslation(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// deltas accumulate without damping
	p.Drag(-10, 0)
	p.Drag(-10, 0)
	p.Drag(-15, 0)
	if got := p.Offset().X; got != -35 {
		t.Fatalf("Expected offset X=-35 during drag, got %f", got)
	}

	s, _ := p.DragEnd(300)
	if s.Delta != 1 {
		t.Errorf("Cumulative -35 should advance at threshold 30, got delta %d", s.Delta)
	}
}

func TestPager_AxisLockHorizontalDefault(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// single-axis variant ignores the vertical component entirely
	p.Drag(-5, 40)
	if p.Axis() != AxisHorizontal {
		t.Fatalf("Expected horizontal axis lock, got %v", p.Axis())
	}
	if p.Offset().Y != 0 {
		t.Errorf("Vertical offset must stay zero in single-axis mode, got %f", p.Offset().Y)
	}
}

func TestPager_FreeAxisLocksDominant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FreeAxis = true
	cfg.AdvanceThreshold = BidirectionalAdvanceThreshold
	p := NewPager(8, cfg)
	p.JumpTo(3)

	// vertical dominates the first delta, later horizontal jitter is ignored
	p.Drag(-5, -30)
	if p.Axis() != AxisVertical {
		t.Fatalf("Expected vertical axis lock, got %v", p.Axis())
	}
	p.Drag(-50, -80)
	if p.Offset().X != 0 {
		t.Errorf("Cross-axis offset must stay zero, got %f", p.Offset().X)
	}
	if p.Offset().Y != -110 {
		t.Errorf("Expected offset Y=-110, got %f", p.Offset().Y)
	}

	// |−110| > 300*0.3 → next page along the vertical axis
	s, _ := p.DragEnd(300)
	if s.Delta != 1 {
		t.Fatalf("Expected delta +1, got %d", s.Delta)
	}
	if s.Target.Y != -300 || s.Target.X != 0 {
		t.Errorf("Expected vertical settle target, got %+v", s.Target)
	}
}

func TestPager_DragDuringSettleIsDropped(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	s := dragRelease(p, -40, 0, 300)
	p.Drag(-100, 0)
	if p.State() != StateSettling {
		t.Fatalf("Drag during settle must not restart the gesture, state %v", p.State())
	}
	p.FinishSettle(s)
	if p.Current() != 4 {
		t.Errorf("Expected index 4 after settle, got %d", p.Current())
	}
}

func TestPager_ReleaseDuringSettleStartsNoSecondSettle(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	s := dragRelease(p, -40, 0, 300)

	// the toolkit can deliver a release for a gesture whose deltas were
	// dropped during settle; it must not start another settle
	if _, ok := p.DragEnd(300); ok {
		t.Fatal("DragEnd outside a live gesture must not start a settle")
	}

	p.FinishSettle(s)
	if p.Current() != 4 {
		t.Errorf("Expected index 4 after the original settle, got %d", p.Current())
	}
}

func TestPager_FinishSettleIgnoredWhenNotSettling(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	// a stray commit with no settle in flight must not move the index
	p.FinishSettle(Settle{Delta: 1})
	if p.Current() != 3 {
		t.Fatalf("Stray commit moved the index to %d", p.Current())
	}

	// a duplicate commit after the settle completed is a no-op too
	s := dragRelease(p, -40, 0, 300)
	p.FinishSettle(s)
	p.FinishSettle(s)
	if p.Current() != 4 {
		t.Errorf("Expected index 4 after a single commit, got %d", p.Current())
	}
}

func TestPager_SettleOffsetFrames(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(3)

	s := dragRelease(p, -40, 0, 300)
	p.SetSettleOffset(Offset{X: -150})
	if p.Offset().X != -150 {
		t.Errorf("Settle frame not applied, offset %f", p.Offset().X)
	}
	p.FinishSettle(s)

	// once idle, settle frames are ignored
	p.SetSettleOffset(Offset{X: -10})
	if !p.Offset().IsZero() {
		t.Errorf("Idle pager must hold zero offset, got %+v", p.Offset())
	}
}

func TestPager_JumpToResetsOffset(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.Drag(-40, 0)
	if p.Offset().IsZero() {
		t.Fatal("Expected nonzero offset during drag")
	}

	// externally driven index change: immediate, no animation
	p.JumpTo(6)
	if p.Current() != 6 {
		t.Errorf("Expected index 6, got %d", p.Current())
	}
	if !p.Offset().IsZero() {
		t.Errorf("JumpTo must zero the offset, got %+v", p.Offset())
	}
	if p.State() != StateIdle {
		t.Errorf("Expected Idle after JumpTo, got %v", p.State())
	}
}

func TestPager_Page(t *testing.T) {
	p := NewPager(3, DefaultConfig())

	s, ok := p.Page(1, 300)
	if !ok {
		t.Fatal("Page(+1) should be allowed at index 0")
	}
	if s.Target.X != -300 || s.Delta != 1 {
		t.Errorf("Unexpected settle %+v", s)
	}
	p.FinishSettle(s)
	if p.Current() != 1 {
		t.Errorf("Expected index 1, got %d", p.Current())
	}

	if _, ok := p.Page(-1, 300); !ok {
		t.Error("Page(-1) should be allowed at index 1")
	}
}

func TestPager_PageBlockedAtBoundary(t *testing.T) {
	p := NewPager(3, DefaultConfig())

	if _, ok := p.Page(-1, 300); ok {
		t.Error("Page(-1) must be blocked at index 0")
	}
	p.JumpTo(2)
	if _, ok := p.Page(1, 300); ok {
		t.Error("Page(+1) must be blocked at the last index")
	}
}

func TestPager_SetCountClampsCurrent(t *testing.T) {
	p := NewPager(8, DefaultConfig())
	p.JumpTo(7)

	p.SetCount(3)
	if p.Current() != 2 {
		t.Errorf("Expected current clamped to 2, got %d", p.Current())
	}

	p.SetCount(0)
	if p.Current() != 0 {
		t.Errorf("Expected current 0 for empty collection, got %d", p.Current())
	}
}

func TestPager_ObserversNotifiedSynchronously(t *testing.T) {
	p := NewPager(8, DefaultConfig())

	notified := 0
	p.OnChange(func() { notified++ })

	p.Drag(-10, 0)
	if notified != 1 {
		t.Fatalf("Expected 1 notification after drag, got %d", notified)
	}

	s, _ := p.DragEnd(300)
	p.FinishSettle(s)
	if notified != 2 {
		t.Errorf("Expected 2 notifications after settle commit, got %d", notified)
	}
}
