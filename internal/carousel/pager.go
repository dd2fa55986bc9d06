package carousel

import "time"

// Axis identifies the gesture axis a drag is locked to
type Axis int

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the string representation of Axis
func (a Axis) String() string {
	switch a {
	case AxisHorizontal:
		return "Horizontal"
	case AxisVertical:
		return "Vertical"
	default:
		return "None"
	}
}

// State identifies the pager's gesture phase
type State int

const (
	// StateIdle means no gesture: the visual offset is exactly zero
	StateIdle State = iota

	// StateDragging means the offset tracks the live gesture delta
	StateDragging

	// StateSettling means the offset is animating toward its resting value
	StateSettling
)

// Default tuning values
const (
	DefaultAdvanceThreshold       = 0.1
	DefaultBufferRadius           = 1
	DefaultSpringResponse         = 250 * time.Millisecond
	BidirectionalAdvanceThreshold = 0.3
)

// Offset is a 2D visual displacement in rendering units
type Offset struct {
	X float32
	Y float32
}

// IsZero returns true when both components are zero
func (o Offset) IsZero() bool {
	return o.X == 0 && o.Y == 0
}

// Along returns the offset component on the given axis
func (o Offset) Along(a Axis) float32 {
	if a == AxisVertical {
		return o.Y
	}
	return o.X
}

// Config tunes the paging behavior. The zero value is not usable; use
// DefaultConfig and adjust.
type Config struct {
	// AdvanceThreshold is the fraction of the page size a drag must cover
	// to commit a page change.
	AdvanceThreshold float64

	// BufferRadius is the number of neighbor items pre-rendered each side.
	BufferRadius int

	// SpringResponse is the settle animation duration.
	SpringResponse time.Duration

	// FreeAxis enables bidirectional paging with per-gesture axis locking.
	// When false the pager always drags on the horizontal axis.
	FreeAxis bool
}

// DefaultConfig returns the single-axis defaults
func DefaultConfig() Config {
	return Config{
		AdvanceThreshold: DefaultAdvanceThreshold,
		BufferRadius:     DefaultBufferRadius,
		SpringResponse:   DefaultSpringResponse,
	}
}

// Settle describes what the settle animation must do after a gesture ends:
// move the visual offset to Target, then commit Delta to the current index.
type Settle struct {
	Target Offset
	Delta  int
}

// Pager owns the carousel paging state: current index, in-flight visual
// offset, and the gesture phase. All methods must be called from one
// goroutine; registered observers are notified synchronously within the
// mutating call.
type Pager struct {
	cfg   Config
	count int

	current     int
	offset      Offset
	translation Offset
	axis        Axis
	state       State

	observers []func()
}

// NewPager creates a pager over count items
func NewPager(count int, cfg Config) *Pager {
	if cfg.AdvanceThreshold <= 0 {
		cfg.AdvanceThreshold = DefaultAdvanceThreshold
	}
	if cfg.BufferRadius < 0 {
		cfg.BufferRadius = DefaultBufferRadius
	}
	if cfg.SpringResponse <= 0 {
		cfg.SpringResponse = DefaultSpringResponse
	}
	if count < 0 {
		count = 0
	}
	return &Pager{cfg: cfg, count: count}
}

// Config returns the active configuration
func (p *Pager) Config() Config {
	return p.cfg
}

// Current returns the current index, always within [0, count-1] (0 when empty)
func (p *Pager) Current() int {
	return p.current
}

// Offset returns the in-flight visual offset
func (p *Pager) Offset() Offset {
	return p.offset
}

// State returns the gesture phase
func (p *Pager) State() State {
	return p.state
}

// Axis returns the locked gesture axis, AxisNone outside a gesture
func (p *Pager) Axis() Axis {
	return p.axis
}

// Count returns the number of items
func (p *Pager) Count() int {
	return p.count
}

// VisibleIndices returns the window of renderable indices around the
// current index.
func (p *Pager) VisibleIndices() []int {
	return VisibleIndices(p.current, p.cfg.BufferRadius, p.count)
}

// OnChange registers an observer invoked synchronously after every state
// mutation.
func (p *Pager) OnChange(fn func()) {
	if fn != nil {
		p.observers = append(p.observers, fn)
	}
}

// SetCount updates the item count, clamping the current index into the new
// range. Used by append-only growth; shrinking below the current index snaps
// to the new last item.
func (p *Pager) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	p.count = count
	if p.current > count-1 {
		p.current = count - 1
	}
	if p.current < 0 {
		p.current = 0
	}
	p.notify()
}

// Drag feeds one gesture delta. The first delta of a gesture locks the axis:
// the dominant component wins in FreeAxis mode, horizontal otherwise. The
// lock holds for the whole gesture so mid-drag jitter cannot flip axes.
func (p *Pager) Drag(dx, dy float32) {
	if p.state == StateSettling {
		// Gesture events during settle are dropped; the animation owns
		// the offset until it commits.
		return
	}

	if p.state == StateIdle {
		p.state = StateDragging
		p.translation = Offset{}
		p.axis = AxisHorizontal
		if p.cfg.FreeAxis {
			p.axis = dominantAxis(dx, dy)
		}
	}

	p.translation.X += dx
	p.translation.Y += dy

	// Offset tracks the cumulative translation along the locked axis 1:1,
	// the cross component stays zero.
	switch p.axis {
	case AxisVertical:
		p.offset = Offset{Y: p.translation.Y}
	default:
		p.offset = Offset{X: p.translation.X}
	}
	p.notify()
}

// DragEnd terminates the gesture and decides the settle. pageSize is the
// viewport extent along the locked axis, read at release time. A drag past
// pageSize*AdvanceThreshold commits a page change unless blocked at a
// boundary; anything else snaps back. The caller animates the offset to
// Target and then calls FinishSettle with the returned value. Returns false
// when no gesture was in progress, for instance a release delivered while an
// earlier settle still animates; no second settle starts then.
func (p *Pager) DragEnd(pageSize float32) (Settle, bool) {
	if p.state != StateDragging {
		return Settle{}, false
	}
	p.state = StateSettling

	t := p.translation.Along(p.axis)

	// translation == 0 carries no direction; decide "no advance" before
	// any sign arithmetic.
	if t == 0 || pageSize <= 0 {
		return Settle{}, true
	}

	if !p.shouldAdvance(t, pageSize) {
		return Settle{}, true
	}

	// Negative translation moves content toward higher indices.
	delta := 1
	dir := float32(-1)
	if t > 0 {
		delta = -1
		dir = 1
	}

	target := Offset{X: dir * pageSize}
	if p.axis == AxisVertical {
		target = Offset{Y: dir * pageSize}
	}
	return Settle{Target: target, Delta: delta}, true
}

// shouldAdvance applies the threshold and boundary rules
func (p *Pager) shouldAdvance(translation, pageSize float32) bool {
	mag := translation
	if mag < 0 {
		mag = -mag
	}
	if float64(mag) <= float64(pageSize)*p.cfg.AdvanceThreshold {
		return false
	}

	// Index 0 blocks a previous advance, the last index blocks next.
	if translation > 0 && p.current == 0 {
		return false
	}
	if translation < 0 && p.current >= p.count-1 {
		return false
	}
	return true
}

// SetSettleOffset positions the offset during the settle animation. Calls
// outside StateSettling are ignored.
func (p *Pager) SetSettleOffset(o Offset) {
	if p.state != StateSettling {
		return
	}
	p.offset = o
	p.notify()
}

// FinishSettle commits a completed settle: applies the index delta clamped
// to [0, count-1], zeroes the offset, unlocks the axis, and returns to Idle.
// Commits outside StateSettling are ignored so a stale animation frame cannot
// re-apply a delta.
func (p *Pager) FinishSettle(s Settle) {
	if p.state != StateSettling {
		return
	}
	p.current += s.Delta
	if p.current > p.count-1 {
		p.current = p.count - 1
	}
	if p.current < 0 {
		p.current = 0
	}
	p.offset = Offset{}
	p.translation = Offset{}
	p.axis = AxisNone
	p.state = StateIdle
	p.notify()
}

// Page starts a programmatic page change by delta (±1), as if a full drag
// had just been released: it transitions to Settling and returns the settle
// the caller must animate. Returns false when blocked at a boundary or when
// a gesture is in progress.
func (p *Pager) Page(delta int, pageSize float32) (Settle, bool) {
	if p.state != StateIdle || delta == 0 {
		return Settle{}, false
	}
	next := p.current + delta
	if next < 0 || next > p.count-1 {
		return Settle{}, false
	}

	dir := float32(-1)
	if delta < 0 {
		dir = 1
	}
	p.state = StateSettling
	p.axis = AxisHorizontal
	return Settle{Target: Offset{X: dir * pageSize}, Delta: delta}, true
}

// JumpTo moves directly to index i with no animation. Any externally driven
// index change resets the visual offset to zero immediately.
func (p *Pager) JumpTo(i int) {
	if i > p.count-1 {
		i = p.count - 1
	}
	if i < 0 {
		i = 0
	}
	p.current = i
	p.offset = Offset{}
	p.translation = Offset{}
	p.axis = AxisNone
	p.state = StateIdle
	p.notify()
}

// notify invokes all registered observers
func (p *Pager) notify() {
	for _, fn := range p.observers {
		fn()
	}
}

// dominantAxis picks the axis whose first-delta magnitude wins
func dominantAxis(dx, dy float32) Axis {
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ay > ax {
		return AxisVertical
	}
	return AxisHorizontal
}
