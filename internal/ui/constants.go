package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPrev     = "◀"
	IconNext     = "▶"
)

// Text fragments
const (
	IndexSeparator  = " / "
	DashPlaceholder = "—"
)

// Carousel sizing
const (
	CarouselMinWidth  float32 = 320
	CarouselMinHeight float32 = 240
)

// Decode target for fetched payloads; larger sources are downscaled to
// bound per-item memory.
const (
	TargetImageWidth  = 1920
	TargetImageHeight = 1080
)

// Window retention slack beyond the render radius before eviction kicks in
const (
	CacheBufferSlack = 1
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 320
)
