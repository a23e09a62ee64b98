package msg

import (
	"errors"
	"testing"
	"time"
)

func TestFrame(t *testing.T) {
	cmd := Frame(7, 10*time.Millisecond)
	if cmd == nil {
		t.Fatal("Frame() returned nil command")
	}

	start := time.Now()
	result := cmd()
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("Frame() returned too quickly: %v", elapsed)
	}

	frame, ok := result.(FrameMsg)
	if !ok {
		t.Fatalf("Frame() returned %T, want FrameMsg", result)
	}
	if frame.Generation != 7 {
		t.Errorf("Generation = %d, want 7", frame.Generation)
	}
	if frame.Time.IsZero() {
		t.Error("Time should be set")
	}
}

func TestErr(t *testing.T) {
	if cmd := Err(nil); cmd != nil {
		t.Error("Err(nil) should return nil")
	}

	boom := errors.New("boom")
	got, ok := Err(boom)().(ErrMsg)
	if !ok || !errors.Is(got.Err, boom) {
		t.Errorf("Err() produced %v, want ErrMsg wrapping boom", got)
	}
}
