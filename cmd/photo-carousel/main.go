package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/swipekit/photo-carousel/internal/model"
	"github.com/swipekit/photo-carousel/internal/source"
	"github.com/swipekit/photo-carousel/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.swipekit.photo-carousel")
	myWindow := myApp.NewWindow("Photo Carousel")
	myWindow.Resize(fyne.NewSize(1000, 700))

	// Minimal harness: current directory as the photo folder
	dirSource := source.NewDirectorySource(".")
	items, err := dirSource.Scan()
	if err != nil {
		items = nil
	}

	// Create and setup UI
	gallery := model.NewGallery(items...)
	ui.NewRootUI(myWindow, myApp, gallery, dirSource)

	// Show and run
	myWindow.ShowAndRun()
}
