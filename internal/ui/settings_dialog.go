package ui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/swipekit/photo-carousel/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog
	onSaved  func()

	// UI components
	imageDirEntry  *widget.Entry
	radiusEntry    *widget.Entry
	thresholdEntry *widget.Entry
	springEntry    *widget.Entry
	freeAxisCheck  *widget.Check
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after a
// confirmed save so callers can rebuild the carousel with the new tuning.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
		onSaved:  onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.imageDirEntry = widget.NewEntry()
	sd.imageDirEntry.SetPlaceHolder("Folder with photos (empty = demo gallery)")

	browseDirBtn := widget.NewButton("Browse", sd.onBrowseDirectory)
	imageDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.imageDirEntry)

	sd.radiusEntry = widget.NewEntry()
	sd.radiusEntry.SetPlaceHolder("1-5")

	sd.thresholdEntry = widget.NewEntry()
	sd.thresholdEntry.SetPlaceHolder("0.05-0.9")

	sd.springEntry = widget.NewEntry()
	sd.springEntry.SetPlaceHolder("50-2000")

	sd.freeAxisCheck = widget.NewCheck("Allow vertical paging (axis locks per gesture)", nil)

	form := container.NewVBox(
		widget.NewLabel("Gallery"),
		widget.NewSeparator(),

		widget.NewLabel("Image Folder:"),
		imageDirRow,

		widget.NewSeparator(),
		widget.NewLabel("Paging"),
		widget.NewSeparator(),

		widget.NewLabel("Pre-rendered neighbors per side:"),
		sd.radiusEntry,

		widget.NewLabel("Swipe distance to turn a page (fraction):"),
		sd.thresholdEntry,

		widget.NewLabel("Settle animation (ms):"),
		sd.springEntry,

		sd.freeAxisCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.imageDirEntry.SetText(sd.settings.GetImageDirectory())
	sd.radiusEntry.SetText(strconv.Itoa(sd.settings.GetBufferRadius()))
	sd.thresholdEntry.SetText(strconv.FormatFloat(sd.settings.GetAdvanceThreshold(), 'f', 2, 64))
	sd.springEntry.SetText(strconv.Itoa(sd.settings.GetSpringResponseMS()))
	sd.freeAxisCheck.SetChecked(sd.settings.GetFreeAxis())
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.imageDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	sd.settings.SetImageDirectory(sd.imageDirEntry.Text)

	if radius, err := strconv.Atoi(sd.radiusEntry.Text); err == nil {
		sd.settings.SetBufferRadius(radius)
	}

	if threshold, err := strconv.ParseFloat(sd.thresholdEntry.Text, 64); err == nil {
		sd.settings.SetAdvanceThreshold(threshold)
	}

	if ms, err := strconv.Atoi(sd.springEntry.Text); err == nil {
		sd.settings.SetSpringResponseMS(ms)
	}

	sd.settings.SetFreeAxis(sd.freeAxisCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
