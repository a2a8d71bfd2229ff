package core

import "testing"

func TestDebugOutputGating(t *testing.T) {
	var got []string
	SetDebugWriter(func(s string) { got = append(got, s) })
	defer func() {
		SetDebugWriter(func(string) {})
		SetDebugEnabled(false)
	}()

	SetDebugEnabled(false)
	if IsDebugEnabled() {
		t.Error("Expected debug disabled by default")
	}
	DebugPrintln("hidden")

	SetDebugEnabled(true)
	if !IsDebugEnabled() {
		t.Error("Expected debug enabled after SetDebugEnabled(true)")
	}
	DebugPrintln("shown")

	if len(got) != 1 || got[0] != "shown" {
		t.Errorf("Expected only the enabled message, got %v", got)
	}
}
