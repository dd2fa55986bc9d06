package model

import "testing"

func TestLoadStatus_String(t *testing.T) {
	tests := []struct {
		status   LoadStatus
		expected string
	}{
		{StatusUnloaded, "Unloaded"},
		{StatusLoading, "Loading"},
		{StatusLoaded, "Loaded"},
	}

	for _, test := range tests {
		if test.status.String() != test.expected {
			t.Errorf("String() = %s, expected %s", test.status.String(), test.expected)
		}
	}
}

func TestLoadStatus_IsLoaded(t *testing.T) {
	if !StatusLoaded.IsLoaded() {
		t.Error("StatusLoaded should report IsLoaded")
	}
	if StatusLoading.IsLoaded() || StatusUnloaded.IsLoaded() {
		t.Error("Only StatusLoaded should report IsLoaded")
	}
}

func TestLoadStatus_IsPending(t *testing.T) {
	if !StatusLoading.IsPending() {
		t.Error("StatusLoading should report IsPending")
	}
	if StatusLoaded.IsPending() || StatusUnloaded.IsPending() {
		t.Error("Only StatusLoading should report IsPending")
	}
}
