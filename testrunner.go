package xrpointer

import (
	"encoding/json"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string     `json:"action"`
	Label  string     `json:"label,omitempty"`
	Button int        `json:"button,omitempty"`
	From   mgl64.Vec3 `json:"from,omitempty"`
	At     mgl64.Vec3 `json:"at,omitempty"`
	ToFrom mgl64.Vec3 `json:"toFrom,omitempty"`
	ToAt   mgl64.Vec3 `json:"toAt,omitempty"`
	DX     float64    `json:"dx,omitempty"`
	DY     float64    `json:"dy,omitempty"`
	Frames int        `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"aim": true, "press": true, "release": true, "click": true, "drag": true,
	"scroll": true, "wait": true, "disconnect": true, "connect": true, "mark": true,
}

// TestRunner sequences scripted device frames for automated interaction
// tests. Call Step once per frame before InputModule.Process.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	device    *ScriptedDevice

	// OnMark is called with the label of each "mark" step.
	OnMark func(label string)
}

// LoadTestScript parses a JSON test script and returns a TestRunner driving
// device.
func LoadTestScript(jsonData []byte, device *ScriptedDevice) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		if st.Button < 0 || st.Button >= MaxButtons {
			return nil, fmt.Errorf("parse test script: step %d: button %d out of range", i, st.Button)
		}
	}
	if device == nil {
		return nil, fmt.Errorf("parse test script: nil device")
	}
	return &TestRunner{steps: script.Steps, device: device}, nil
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame.
func (r *TestRunner) Step() {
	if r.done {
		return
	}
	// Wait for queued frames to drain before advancing.
	if r.device.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "aim":
		r.device.Aim(LookAt(st.From, st.At))
	case "press":
		r.device.Press(st.Button)
	case "release":
		r.device.Release(st.Button)
	case "click":
		r.device.Click(st.Button)
	case "drag":
		r.device.Drag(st.Button, LookAt(st.ToFrom, st.ToAt), st.Frames)
	case "scroll":
		r.device.Scroll(Vec2{st.DX, st.DY})
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "disconnect":
		r.device.Disconnect()
	case "connect":
		r.device.Connect()
	case "mark":
		if r.OnMark != nil {
			r.OnMark(st.Label)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && r.device.Pending() == 0 {
		r.done = true
	}
}
