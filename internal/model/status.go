package model

// LoadStatus represents the status of an item's pixel payload
type LoadStatus string

const (
	// StatusUnloaded means no payload is held for the item
	StatusUnloaded LoadStatus = "Unloaded"

	// StatusLoading means a fetch is in flight
	StatusLoading LoadStatus = "Loading"

	// StatusLoaded means the payload is resident in memory
	StatusLoaded LoadStatus = "Loaded"
)

// String returns the string representation of LoadStatus
func (ls LoadStatus) String() string {
	return string(ls)
}

// IsLoaded returns true if the payload is resident
func (ls LoadStatus) IsLoaded() bool {
	return ls == StatusLoaded
}

// IsPending returns true if a fetch is in flight
func (ls LoadStatus) IsPending() bool {
	return ls == StatusLoading
}
