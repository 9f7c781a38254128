package bindings

import (
	"runtime"
	"testing"
)

func TestLoadIsIdempotent(t *testing.T) {
	err1 := Load()
	err2 := Load()

	if (err1 == nil) != (err2 == nil) {
		t.Fatalf("Load results diverged: first=%v second=%v", err1, err2)
	}
	if IsLoaded() != (err1 == nil) {
		t.Errorf("IsLoaded() = %v, inconsistent with Load error %v", IsLoaded(), err1)
	}
}

func TestLoadFailsWithoutRuntime(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("host has an objc runtime")
	}
	if err := Load(); err == nil {
		t.Error("Load should fail without an objc runtime")
	}
}
