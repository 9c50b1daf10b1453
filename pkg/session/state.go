package session

// Mode is the host editor's interaction mode.
type Mode int

const (
	ObjectMode Mode = iota
	EditMode
	PoseMode
)

func (m Mode) String() string {
	switch m {
	case ObjectMode:
		return "object"
	case EditMode:
		return "edit"
	case PoseMode:
		return "pose"
	}
	return "unknown"
}

// ObjectKind is the kind of the host's active object.
type ObjectKind int

const (
	KindNone ObjectKind = iota
	KindMesh
	KindArmature
)

func (k ObjectKind) String() string {
	switch k {
	case KindNone:
		return "nothing"
	case KindMesh:
		return "mesh"
	case KindArmature:
		return "armature"
	}
	return "unknown"
}

// EditState describes the host editor state an operator runs against.
// Operator preconditions are explicit checks on this value; the
// processing code never reads host state on its own, and the selection
// always travels by value.
type EditState struct {
	Mode             Mode
	ActiveKind       ObjectKind
	SelectedVertices []int
}
