package xrpointer

import (
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{"invalid json", `{"steps": [`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`, "unknown action"},
		{"button out of range", `{"steps": [{"action": "press", "button": 3}]}`, "out of range"},
		{"negative button", `{"steps": [{"action": "press", "button": -1}]}`, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.script), NewScriptedDevice(IdentityPose))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadTestScript([]byte(`{"steps": [{"action": "wait"}]}`), nil); err == nil {
		t.Error("nil device should fail")
	}
}

// runScript steps the runner the way a frame loop does, consuming one
// device frame per step, and returns the raw button 2 state per frame.
func runScript(t *testing.T, r *TestRunner, dev *ScriptedDevice, limit int) []bool {
	t.Helper()
	var held []bool
	for i := 0; i < limit && !r.Done(); i++ {
		r.Step()
		dev.Pose()
		held = append(held, dev.Button(2))
	}
	if !r.Done() {
		t.Fatalf("runner not done after %d frames", limit)
	}
	return held
}

func TestTestRunnerClick(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "aim", "from": [0, 0, 0], "at": [1, 0, 0]},
		{"action": "click", "button": 2}
	]}`), dev)
	if err != nil {
		t.Fatal(err)
	}

	r.Step()
	pose, _ := dev.Pose()
	if !approxVec3(pose.Forward(), mgl64.Vec3{1, 0, 0}) {
		t.Errorf("aim forward = %v, want +X", pose.Forward())
	}

	held := runScript(t, r, dev, 10)
	if len(held) < 2 || !held[0] || held[1] {
		t.Errorf("click frames = %v, want press then release", held)
	}
}

func TestTestRunnerWaitsForQueue(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "drag", "button": 2, "toFrom": [0, 0, 0], "toAt": [0, 1, 1], "frames": 4},
		{"action": "press", "button": 0}
	]}`), dev)
	if err != nil {
		t.Fatal(err)
	}

	r.Step()
	if dev.Pending() != 4 {
		t.Fatalf("drag queued %d frames, want 4", dev.Pending())
	}
	// The next step is held back until the drag drains.
	for i := 0; i < 3; i++ {
		dev.Pose()
		r.Step()
		if dev.Button(0) {
			t.Fatal("press ran before the drag finished")
		}
	}
	dev.Pose()
	r.Step()
	dev.Pose()
	if !dev.Button(0) {
		t.Error("press should run once the drag drained")
	}
	r.Step()
	if !r.Done() {
		t.Error("runner should be done after the last step drained")
	}
}

func TestTestRunnerWait(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "mark", "label": "after"}
	]}`), dev)
	if err != nil {
		t.Fatal(err)
	}
	marked := -1
	frame := 0
	r.OnMark = func(label string) {
		if label == "after" {
			marked = frame
		}
	}
	for ; frame < 10 && !r.Done(); frame++ {
		r.Step()
	}
	if marked != 3 {
		t.Errorf("mark ran at frame %d, want 3", marked)
	}
}

func TestTestRunnerDisconnect(t *testing.T) {
	dev := NewScriptedDevice(IdentityPose)
	r, err := LoadTestScript([]byte(`{"steps": [
		{"action": "disconnect"},
		{"action": "scroll", "dy": 1},
		{"action": "connect"}
	]}`), dev)
	if err != nil {
		t.Fatal(err)
	}

	var tracked []bool
	var scrolled []bool
	for i := 0; i < 10 && !r.Done(); i++ {
		r.Step()
		if dev.Pending() == 0 {
			continue
		}
		_, ok := dev.Pose()
		tracked = append(tracked, ok)
		scrolled = append(scrolled, !dev.ScrollDelta().IsZero())
	}
	wantTracked := []bool{false, false, true}
	wantScroll := []bool{false, true, false}
	for i := range wantTracked {
		if i >= len(tracked) || tracked[i] != wantTracked[i] || scrolled[i] != wantScroll[i] {
			t.Fatalf("tracked = %v scrolled = %v", tracked, scrolled)
		}
	}
}

func TestTestRunnerDrivesModule(t *testing.T) {
	r := newRig(t)
	btn := handle(NewUIObject("btn", nil), EventPointerDown, EventPointerClick)
	r.aimUI(btn, 10, 10)

	runner, err := LoadTestScript([]byte(`{"steps": [
		{"action": "click", "button": 2},
		{"action": "wait", "frames": 1},
		{"action": "click", "button": 2}
	]}`), r.device)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 20 && !runner.Done(); i++ {
		runner.Step()
		r.frame()
	}
	r.expectEvents(
		"pointer-down:btn", "pointer-click:btn",
		"pointer-down:btn", "pointer-click:btn",
	)
	if got := r.module.EventData(1000).ClickCount; got != 2 {
		t.Errorf("ClickCount = %d, want 2", got)
	}
}
