package xrpointer

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a 2D vector used for screen positions, deltas and canvas-local
// coordinates.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// LenSqr returns the squared length of v.
func (v Vec2) LenSqr() float64 { return v.X*v.X + v.Y*v.Y }

// IsZero reports whether both components are approximately zero.
func (v Vec2) IsZero() bool {
	return math.Abs(v.X) < epsilon && math.Abs(v.Y) < epsilon
}

const epsilon = 1e-9

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Pose is a world-space position and orientation. The forward axis of a pose
// is +Z rotated by Rotation.
type Pose struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat
}

// IdentityPose is a pose at the origin looking down +Z.
var IdentityPose = Pose{Rotation: mgl64.QuatIdent()}

// Forward returns the pose's unit forward direction.
func (p Pose) Forward() mgl64.Vec3 {
	return p.rotation().Rotate(mgl64.Vec3{0, 0, 1})
}

// Up returns the pose's unit up direction.
func (p Pose) Up() mgl64.Vec3 {
	return p.rotation().Rotate(mgl64.Vec3{0, 1, 0})
}

// Ray returns the ray starting at the pose position along its forward axis.
func (p Pose) Ray() Ray {
	return Ray{Origin: p.Position, Direction: p.Forward()}
}

// rotation treats the zero quaternion as identity so zero-value poses are usable.
func (p Pose) rotation() mgl64.Quat {
	if p.Rotation.W == 0 && p.Rotation.V.Len() == 0 {
		return mgl64.QuatIdent()
	}
	return p.Rotation
}

// Ray is a half-line in world space. Direction is expected to be normalized.
type Ray struct {
	Origin    mgl64.Vec3
	Direction mgl64.Vec3
}

// Point returns the position at distance d along the ray.
func (r Ray) Point(d float64) mgl64.Vec3 {
	return r.Origin.Add(r.Direction.Mul(d))
}

// Button identifies a logical pointer button. Values match the order in which
// a device reports its raw buttons.
type Button uint8

const (
	ButtonLeft   Button = iota // logical index 0; the primary button after remapping
	ButtonRight                // logical index 1
	ButtonMiddle               // logical index 2
)

// MaxButtons is the number of logical buttons a pointer can expose.
const MaxButtons = 3

func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// FramePressState is the edge transition of a button between two frames.
type FramePressState uint8

const (
	NotChanged FramePressState = iota // no transition this frame
	Pressed                           // went from up to down
	Released                          // went from down to up
)

func (s FramePressState) String() string {
	switch s {
	case Pressed:
		return "pressed"
	case Released:
		return "released"
	default:
		return "not-changed"
	}
}

// HitSource records which raycast produced the merged hit.
type HitSource uint8

const (
	SourceNone  HitSource = iota // nothing was hit
	SourceWorld                  // the 3D physics query won
	SourceUI                     // a UI raycaster won
)

// EventType identifies a kind of handler invocation.
type EventType uint8

const (
	EventPointerEnter            EventType = iota // pointer starts hovering an object
	EventPointerExit                              // pointer stops hovering an object
	EventPointerMove                              // primary pointer moved over a hovered object
	EventPointerDown                              // button pressed over an object
	EventPointerUp                                // button released; sent to the press target
	EventPointerClick                             // press and release resolved to a click
	EventInitializePotentialDrag                  // press landed on a drag handler
	EventBeginDrag                                // drag threshold passed
	EventDrag                                     // pointer moved while dragging
	EventEndDrag                                  // button released after dragging
	EventDrop                                     // drag released over an object
	EventScroll                                   // scroll delta present
	EventSelect                                   // object became selected
	EventDeselect                                 // object lost selection

	eventTypeCount
)

var eventTypeNames = [eventTypeCount]string{
	"pointer-enter", "pointer-exit", "pointer-move", "pointer-down", "pointer-up",
	"pointer-click", "initialize-potential-drag", "begin-drag", "drag", "end-drag",
	"drop", "scroll", "select", "deselect",
}

func (e EventType) String() string {
	if e < eventTypeCount {
		return eventTypeNames[e]
	}
	return "unknown"
}

// LayerMask selects physics layers by bit. Layer n is bit 1<<n.
type LayerMask uint32

// AllLayers matches every layer.
const AllLayers LayerMask = ^LayerMask(0)

// Has reports whether layer is included in the mask.
func (m LayerMask) Has(layer int) bool {
	if layer < 0 || layer > 31 {
		return false
	}
	return m&(1<<uint(layer)) != 0
}
