package ui

// Package ui contains the Fyne-based user interface: the carousel widget
// that turns drag gestures into page changes, the settle animation, and the
// window chrome wiring the widget to the gallery, cache, and settings.
