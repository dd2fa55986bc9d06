package ui

import (
	"fmt"
	"image"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/photo-carousel/internal/cache"
	"github.com/swipekit/photo-carousel/internal/carousel"
	"github.com/swipekit/photo-carousel/internal/config"
	"github.com/swipekit/photo-carousel/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings
	gallery  *model.Gallery
	fetcher  cache.Fetcher

	carouselWidget *Carousel
	carouselHolder *fyne.Container
	imageCache     *cache.WindowCache
	indexLabel     *widget.Label
	titleLabel     *widget.Label
	content        *fyne.Container
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, gallery *model.Gallery, fetcher cache.Fetcher) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
		gallery:  gallery,
		fetcher:  fetcher,
	}

	log.Printf("RootUI initialized with %d items", gallery.Len())

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.indexLabel = widget.NewLabel(DashPlaceholder)
	ui.indexLabel.TextStyle = fyne.TextStyle{Monospace: true}

	ui.titleLabel = widget.NewLabel("")
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	ui.titleLabel.Truncation = fyne.TextTruncateEllipsis

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	prevBtn := widget.NewButton(IconPrev, func() { ui.carouselWidget.Page(-1) })
	prevBtn.Importance = widget.LowImportance
	nextBtn := widget.NewButton(IconNext, func() { ui.carouselWidget.Page(1) })
	nextBtn.Importance = widget.LowImportance

	ui.buildCarousel()

	// The holder stays in the content tree across rebuilds; only its child
	// is swapped when settings change.
	ui.carouselHolder = container.NewStack(ui.carouselWidget)

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(prevBtn, nextBtn, ui.indexLabel),
		settingsBtn,
		ui.titleLabel,
	)

	ui.content = container.NewBorder(
		topPanel, // top
		nil,      // bottom
		nil,      // left
		nil,      // right
		ui.carouselHolder,
	)

	ui.window.SetContent(ui.content)
	ui.refreshChrome()
}

// buildCarousel creates the pager, cache, and widget from current settings
func (ui *RootUI) buildCarousel() {
	cfg := carousel.Config{
		AdvanceThreshold: ui.settings.GetAdvanceThreshold(),
		BufferRadius:     ui.settings.GetBufferRadius(),
		SpringResponse:   time.Duration(ui.settings.GetSpringResponseMS()) * time.Millisecond,
		FreeAxis:         ui.settings.GetFreeAxis(),
	}

	pager := carousel.NewPager(ui.gallery.Len(), cfg)
	pager.OnChange(ui.refreshChrome)

	ui.imageCache = cache.NewWindowCache(
		ui.fetcher,
		cfg.BufferRadius,
		CacheBufferSlack,
		image.Pt(TargetImageWidth, TargetImageHeight),
	)
	ui.carouselWidget = NewCarousel(ui.gallery, pager, ui.imageCache)

	// Load completions arrive on fetch goroutines; repaint on the UI thread.
	widgetRef := ui.carouselWidget
	ui.imageCache.SetOnLoaded(func(id string) {
		fyne.Do(widgetRef.Refresh)
	})
}

// rebuildCarousel swaps the carousel after a settings change, keeping the
// current position.
func (ui *RootUI) rebuildCarousel() {
	current := ui.carouselWidget.Pager().Current()
	ui.imageCache.Clear()

	ui.buildCarousel()
	ui.carouselWidget.JumpTo(current)

	ui.carouselHolder.Objects = []fyne.CanvasObject{ui.carouselWidget}
	ui.carouselHolder.Refresh()
	ui.refreshChrome()
}

// AppendItems grows the gallery in chunks, refreshing the chrome at each
// yield point so the index indicator tracks the growing collection.
func (ui *RootUI) AppendItems(items []model.Item, batchSize int) {
	ui.gallery.AppendBatches(items, batchSize, func(appended int) {
		ui.carouselWidget.Pager().SetCount(ui.gallery.Len())
		log.Printf("Appended %d items, gallery now %d", appended, ui.gallery.Len())
	})
}

// refreshChrome updates the index indicator and title for the current item
func (ui *RootUI) refreshChrome() {
	if ui.carouselWidget == nil {
		return
	}
	pager := ui.carouselWidget.Pager()
	if pager.Count() == 0 {
		ui.indexLabel.SetText(DashPlaceholder)
		ui.titleLabel.SetText("")
		return
	}

	ui.indexLabel.SetText(fmt.Sprintf("%d%s%d", pager.Current()+1, IndexSeparator, pager.Count()))
	if item, ok := ui.gallery.ItemAt(pager.Current()); ok {
		ui.titleLabel.SetText(item.GetDisplayTitle())
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window, func() {
		log.Printf("Settings saved, rebuilding carousel")
		ui.rebuildCarousel()
	}).Show()
}
