package ui

import (
	"context"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/photo-carousel/internal/cache"
	"github.com/swipekit/photo-carousel/internal/carousel"
	"github.com/swipekit/photo-carousel/internal/model"
)

// Placeholder fill for slots whose payload is not resident
var placeholderColor = color.RGBA{R: 24, G: 24, B: 24, A: 255}

// Carousel is the paginated, gesture-driven image widget. It renders the
// current item full-size, pre-renders the neighbor window off-screen, and
// feeds drag deltas into the paging state machine. Arrow keys page when the
// widget has focus.
type Carousel struct {
	widget.BaseWidget

	gallery *model.Gallery
	pager   *carousel.Pager
	cache   *cache.WindowCache

	anim    *fyne.Animation
	focused bool
}

// NewCarousel creates the widget over the given collection. cache may be
// nil for galleries whose items render without lazy payloads.
func NewCarousel(gallery *model.Gallery, pager *carousel.Pager, imageCache *cache.WindowCache) *Carousel {
	c := &Carousel{
		gallery: gallery,
		pager:   pager,
		cache:   imageCache,
	}
	c.ExtendBaseWidget(c)

	pager.OnChange(c.Refresh)
	c.windowChanged()
	return c
}

// Pager exposes the paging state machine for chrome (index labels, buttons)
func (c *Carousel) Pager() *carousel.Pager {
	return c.pager
}

// Dragged feeds one gesture delta into the pager
func (c *Carousel) Dragged(e *fyne.DragEvent) {
	c.pager.Drag(e.Dragged.DX, e.Dragged.DY)
}

// DragEnd releases the gesture: the pager decides commit or snap-back and
// the widget animates the offset to its resting value. Releases that did not
// start a settle, like one delivered while an earlier settle still animates,
// are ignored.
func (c *Carousel) DragEnd() {
	s, ok := c.pager.DragEnd(c.pageSize())
	if !ok {
		return
	}
	c.animateSettle(s)
}

// Page starts a programmatic page change by delta (±1), honoring boundaries
func (c *Carousel) Page(delta int) {
	s, ok := c.pager.Page(delta, c.pageSize())
	if !ok {
		return
	}
	c.animateSettle(s)
}

// JumpTo moves directly to index i with no animation
func (c *Carousel) JumpTo(i int) {
	if c.anim != nil {
		c.anim.Stop()
		c.anim = nil
	}
	c.pager.JumpTo(i)
	c.windowChanged()
}

// Tapped focuses the widget so arrow keys work after a click
func (c *Carousel) Tapped(_ *fyne.PointEvent) {
	if cv := fyne.CurrentApp().Driver().CanvasForObject(c); cv != nil {
		cv.Focus(c)
	}
}

// FocusGained implements fyne.Focusable
func (c *Carousel) FocusGained() {
	c.focused = true
}

// FocusLost implements fyne.Focusable
func (c *Carousel) FocusLost() {
	c.focused = false
}

// TypedRune implements fyne.Focusable
func (c *Carousel) TypedRune(_ rune) {}

// TypedKey pages on arrow keys
func (c *Carousel) TypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyRight:
		c.Page(1)
	case fyne.KeyLeft:
		c.Page(-1)
	}
}

// animateSettle drives the offset from its current value to the settle
// target with the spring curve, then commits.
func (c *Carousel) animateSettle(s carousel.Settle) {
	from := c.pager.Offset()
	anim := fyne.NewAnimation(c.pager.Config().SpringResponse, func(t float32) {
		c.pager.SetSettleOffset(carousel.Offset{
			X: from.X + (s.Target.X-from.X)*t,
			Y: from.Y + (s.Target.Y-from.Y)*t,
		})
		if t >= 1 {
			c.anim = nil
			c.pager.FinishSettle(s)
			c.windowChanged()
		}
	})
	anim.Curve = springCurve
	c.anim = anim
	anim.Start()
}

// windowChanged re-evaluates the retention window after an index change
func (c *Carousel) windowChanged() {
	if c.cache != nil {
		c.cache.OnWindowChanged(c.gallery, c.pager.Current())
	}
	c.Refresh()
}

// pageSize returns the viewport extent along the locked axis
func (c *Carousel) pageSize() float32 {
	if c.pager.Axis() == carousel.AxisVertical {
		return c.Size().Height
	}
	return c.Size().Width
}

// CreateRenderer creates the widget renderer
func (c *Carousel) CreateRenderer() fyne.WidgetRenderer {
	r := &carouselRenderer{
		carousel: c,
		bg:       canvas.NewRectangle(color.Black),
	}
	r.rebuildSlots()
	return r
}

// slot is one pre-rendered layer of the offset stack
type slot struct {
	index int
	view  fyne.CanvasObject
}

// carouselRenderer renders the carousel as a stack of offset layers
type carouselRenderer struct {
	carousel *Carousel
	bg       *canvas.Rectangle
	slots    []slot
}

// rebuildSlots recreates one layer per index in the render window
func (r *carouselRenderer) rebuildSlots() {
	c := r.carousel
	indices := c.pager.VisibleIndices()

	r.slots = r.slots[:0]
	for _, i := range indices {
		item, ok := c.gallery.ItemAt(i)
		if !ok {
			// Transient out-of-range: render nothing for this slot.
			continue
		}
		r.slots = append(r.slots, slot{index: i, view: r.slotView(item)})
	}
}

// slotView builds the layer for one item: its image when resident, a
// placeholder otherwise. Requesting the payload here makes every render
// pass an opportunistic retry for failed loads.
func (r *carouselRenderer) slotView(item model.Item) fyne.CanvasObject {
	c := r.carousel
	if c.cache != nil {
		c.cache.EnsureLoaded(context.Background(), item)
		if img, ok := c.cache.Image(item.ID); ok {
			view := canvas.NewImageFromImage(img)
			view.FillMode = canvas.ImageFillContain
			return view
		}
	}

	rect := canvas.NewRectangle(placeholderColor)
	label := widget.NewLabel(item.GetDisplayTitle())
	label.Alignment = fyne.TextAlignCenter
	return container.NewStack(rect, container.NewCenter(label))
}

// Layout positions each layer at (index-current)*pageSize plus the live
// visual offset along the locked axis.
func (r *carouselRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	r.bg.Move(fyne.NewPos(0, 0))

	c := r.carousel
	current := c.pager.Current()
	offset := c.pager.Offset()

	for _, s := range r.slots {
		span := float32(s.index - current)
		var pos fyne.Position
		if c.pager.Axis() == carousel.AxisVertical {
			pos = fyne.NewPos(0, span*size.Height+offset.Y)
		} else {
			pos = fyne.NewPos(span*size.Width+offset.X, offset.Y)
		}
		s.view.Resize(size)
		s.view.Move(pos)
	}
}

// MinSize returns the minimum size
func (r *carouselRenderer) MinSize() fyne.Size {
	return fyne.NewSize(CarouselMinWidth, CarouselMinHeight)
}

// Refresh rebuilds the layers and repositions them
func (r *carouselRenderer) Refresh() {
	r.rebuildSlots()
	r.Layout(r.carousel.Size())
	r.bg.Refresh()
	for _, s := range r.slots {
		s.view.Refresh()
	}
}

// Objects returns the background and the layer stack
func (r *carouselRenderer) Objects() []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(r.slots)+1)
	objects = append(objects, r.bg)
	for _, s := range r.slots {
		objects = append(objects, s.view)
	}
	return objects
}

// Destroy cleans up the renderer
func (r *carouselRenderer) Destroy() {}
