package carousel

// Package carousel implements the paging core: the windowed index provider
// and the drag-driven paging state machine. It is rendering-agnostic and
// confined to a single goroutine; the ui package supplies gestures, viewport
// size, and the settle animation.
