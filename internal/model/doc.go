package model

// Package model defines domain data structures used across the app: gallery
// items, the ordered item collection, and load status enums. Structures are
// designed for direct use by the carousel core and explicit state transitions.
