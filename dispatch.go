package xrpointer

// processPointerEvent dispatches every button of p for this frame in the
// order press, drag, move and scroll (primary button only), release.
func (m *InputModule) processPointerEvent(p Pointer) {
	count := p.ButtonCount()
	if count == 0 {
		m.cancelInteractions(p)
		return
	}
	for i := 0; i < count; i++ {
		data := m.getEventData(p, i)
		state := p.StateOf(Button(i))

		if state == Pressed {
			m.processPress(data)
		}
		m.processDrag(data)
		if data.Button == ButtonLeft {
			m.processMove(data)
			m.processScroll(data)
		}
		if state == Released {
			m.processRelease(data)
		}
	}
}

// GetButtonDown reports whether logical button b of p went down this frame.
func GetButtonDown(p Pointer, b Button) bool {
	return p.StateOf(b) == Pressed
}

// GetButtonUp reports whether logical button b of p went up this frame.
func GetButtonUp(p Pointer, b Button) bool {
	return p.StateOf(b) == Released
}

// getEventData returns the context for button i of p refreshed from the
// pointer's current hit.
func (m *InputModule) getEventData(p Pointer, i int) *EventData {
	hit := p.HitInfo()
	data, created := m.cache.get(p.ID() + i)
	if created {
		data.Position = hit.ScreenPosition
		data.CurrentRaycast = hit
		if m.debug {
			m.stats.created++
		}
	}
	data.Reset()
	data.Pointer = p
	data.ButtonID = i
	data.PointerID = p.ID() + i
	data.Button = p.ButtonMapping(i)
	data.IsUIObject = hit.Object != nil && hit.Object.UI
	data.Delta3D = hit.WorldPosition.Sub(data.CurrentRaycast.WorldPosition)
	data.Delta = hit.ScreenPosition.Sub(data.Position)
	data.Position = hit.ScreenPosition
	data.ScrollDelta = p.ScrollDelta()
	data.CurrentRaycast = hit
	return data
}

func (m *InputModule) processPress(data *EventData) {
	hitObject := data.CurrentRaycast.Object

	data.EligibleForClick = true
	data.Delta = Vec2{}
	data.Dragging = false
	data.UseDragThreshold = true
	data.PressPosition = data.Position
	data.PressRaycast = data.CurrentRaycast

	m.deselectIfSelectionChanged(hitObject, data)

	pressHandler := m.executeHierarchy(hitObject, data, EventPointerDown)
	if pressHandler == nil {
		pressHandler = m.events.GetEventHandler(hitObject, EventPointerClick)
	}

	now := m.clock()
	if pressHandler == data.LastPress && now-data.ClickTime < data.Pointer.ClickTimeThreshold() {
		data.ClickCount++
	} else {
		data.ClickCount = 1
	}
	data.ClickTime = now

	data.SetPointerPress(pressHandler)
	data.RawPointerPress = hitObject

	data.PointerDrag = m.events.GetEventHandler(hitObject, EventDrag)
	if data.PointerDrag != nil {
		m.execute(data.PointerDrag, data, EventInitializePotentialDrag)
	}
}

func (m *InputModule) processDrag(data *EventData) {
	if data.PointerDrag == nil {
		return
	}
	if !data.Dragging && m.shouldStartDrag(data) {
		m.execute(data.PointerDrag, data, EventBeginDrag)
		data.Dragging = true
	}
	if !data.Dragging || !(data.IsPointerMoving3D() || data.IsScrolling()) {
		return
	}
	// The press target stops tracking once a different object takes the drag.
	if data.PointerPress != data.PointerDrag {
		m.execute(data.PointerPress, data, EventPointerUp)
		data.EligibleForClick = false
		data.SetPointerPress(nil)
		data.RawPointerPress = nil
	}
	m.execute(data.PointerDrag, data, EventDrag)
}

// shouldStartDrag applies the pixel threshold to UI targets only. World
// targets start dragging in the press frame.
func (m *InputModule) shouldStartDrag(data *EventData) bool {
	if !data.IsUIObject || !data.UseDragThreshold {
		return true
	}
	return dragThresholdMet(data.PressPosition, data.Position, m.events.PixelDragThreshold())
}

func dragThresholdMet(press, cur Vec2, threshold float64) bool {
	return cur.Sub(press).LenSqr() >= threshold*threshold
}

func (m *InputModule) processMove(data *EventData) {
	m.handlePointerExitAndEnter(data, data.CurrentRaycast.Object)
	if !data.IsPointerMoving() {
		return
	}
	for _, o := range data.Hovered {
		m.execute(o, data, EventPointerMove)
	}
}

func (m *InputModule) processScroll(data *EventData) {
	if !data.IsScrolling() || !data.IsUIObject {
		return
	}
	handler := m.events.GetEventHandler(data.CurrentRaycast.Object, EventScroll)
	m.executeHierarchy(handler, data, EventScroll)
}

func (m *InputModule) processRelease(data *EventData) {
	hitObject := data.CurrentRaycast.Object
	sincePress := m.clock() - data.ClickTime

	m.execute(data.PointerPress, data, EventPointerUp)

	clickHandler := m.events.GetEventHandler(hitObject, EventPointerClick)
	if data.EligibleForClick &&
		(data.PointerPress == clickHandler || sincePress < data.Pointer.ClickTimeThreshold()) {
		m.execute(data.PointerPress, data, EventPointerClick)
	} else if data.PointerDrag != nil {
		m.executeHierarchy(hitObject, data, EventDrop)
	}

	data.EligibleForClick = false
	data.SetPointerPress(nil)
	data.RawPointerPress = nil

	if data.PointerDrag != nil && data.Dragging {
		m.execute(data.PointerDrag, data, EventEndDrag)
	}
	data.Dragging = false
	data.PointerDrag = nil

	if hitObject != data.PointerEnter {
		m.handlePointerExitAndEnter(data, nil)
		m.handlePointerExitAndEnter(data, hitObject)
	}
}

// handlePointerExitAndEnter moves the hover from data.PointerEnter to
// newEnter. Objects up to the common ancestor receive exit, and objects from
// newEnter up to it receive enter.
func (m *InputModule) handlePointerExitAndEnter(data *EventData, newEnter *Object) {
	if newEnter == nil || data.PointerEnter == nil {
		for _, o := range data.Hovered {
			m.execute(o, data, EventPointerExit)
		}
		data.Hovered = data.Hovered[:0]
		if newEnter == nil {
			data.PointerEnter = nil
			return
		}
	}
	if data.PointerEnter == newEnter {
		return
	}

	root := commonAncestor(data.PointerEnter, newEnter)
	for o := data.PointerEnter; o != nil && o != root; o = o.Parent {
		m.execute(o, data, EventPointerExit)
		data.Hovered = removeObject(data.Hovered, o)
	}

	data.PointerEnter = newEnter
	for o := newEnter; o != nil && o != root; o = o.Parent {
		m.execute(o, data, EventPointerEnter)
		data.Hovered = append(data.Hovered, o)
	}
	if m.debug {
		debugCheckHoverDepth(data)
	}
}

func (m *InputModule) deselectIfSelectionChanged(hit *Object, data *EventData) {
	if m.events.GetEventHandler(hit, EventSelect) != m.selected {
		m.SetSelected(nil, data)
	}
}

// cancelInteractions drops press and drag state of a pointer whose buttons
// are unavailable. Nothing is dispatched.
func (m *InputModule) cancelInteractions(p Pointer) {
	for i := 0; i < MaxButtons; i++ {
		data := m.cache.lookup(p.ID() + i)
		if data == nil {
			continue
		}
		data.EligibleForClick = false
		data.Dragging = false
		data.PointerDrag = nil
		data.RawPointerPress = nil
		data.SetPointerPress(nil)
	}
}

func removeObject(list []*Object, o *Object) []*Object {
	for i, e := range list {
		if e == o {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}
