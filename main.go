package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/swipekit/photo-carousel/internal/cache"
	"github.com/swipekit/photo-carousel/internal/config"
	"github.com/swipekit/photo-carousel/internal/model"
	"github.com/swipekit/photo-carousel/internal/source"
	"github.com/swipekit/photo-carousel/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.swipekit.photo-carousel"
	AppName = "Photo Carousel"

	WindowWidth  = 1000
	WindowHeight = 700

	// Demo gallery shown when no image folder is configured
	DemoItemCount   = 24
	DemoImageURL    = "https://picsum.photos/id/%d/1600/1000"
	DemoAppendBatch = 8
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply gallery theme
	myApp.Settings().SetTheme(ui.NewGalleryTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Pick the item source: a configured folder, or the remote demo gallery
	settings := config.NewSettings(myApp)
	items, fetcher := loadItems(settings)

	// Create and setup UI, growing the gallery in batches
	gallery := model.NewGallery()
	rootUI := ui.NewRootUI(myWindow, myApp, gallery, fetcher)
	rootUI.AppendItems(items, DemoAppendBatch)

	// Show and run
	myWindow.ShowAndRun()
}

// loadItems resolves the gallery contents and the matching fetcher
func loadItems(settings *config.Settings) ([]model.Item, cache.Fetcher) {
	if dir := settings.GetImageDirectory(); dir != "" {
		dirSource := source.NewDirectorySource(dir)
		items, err := dirSource.Scan()
		if err != nil {
			log.Printf("Failed to scan image directory %s: %v, using demo gallery", dir, err)
		} else if len(items) == 0 {
			log.Printf("No images in %s, using demo gallery", dir)
		} else {
			log.Printf("Loaded %d images from %s", len(items), dir)
			return items, dirSource
		}
	}

	items := make([]model.Item, 0, DemoItemCount)
	for i := 0; i < DemoItemCount; i++ {
		title := fmt.Sprintf("Demo photo %d", i+1)
		items = append(items, model.NewRemoteItem(title, fmt.Sprintf(DemoImageURL, i*10)))
	}
	return items, source.NewHTTPSource()
}
