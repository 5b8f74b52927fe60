package entity

// Portal function ids. The table is closed: ids outside it are rejected
// when a level is loaded.
const (
	FuncGravityUp    = 0
	FuncGravityDown  = 1
	FuncArrow        = 2
	FuncFreeFall     = 3
	FuncGravityBall  = 4
	FuncTeleportUp   = 6
	FuncTeleportDown = 7
	FuncHover        = 8
	FuncSpeedFast    = 9
	FuncSpeedNormal  = 10
)

// Ring function ids.
const (
	RingJump    = 0
	RingGravity = 1
)

// ValidPortalFunction reports whether id is a known portal function.
func ValidPortalFunction(id int) bool {
	switch id {
	case FuncGravityUp, FuncGravityDown, FuncArrow, FuncFreeFall, FuncGravityBall,
		FuncTeleportUp, FuncTeleportDown, FuncHover, FuncSpeedFast, FuncSpeedNormal:
		return true
	}
	return false
}

// PortalFunctionName returns a short label for a portal function id.
func PortalFunctionName(id int) string {
	switch id {
	case FuncGravityUp:
		return "gravity-up"
	case FuncGravityDown:
		return "gravity-down"
	case FuncArrow:
		return "arrow"
	case FuncFreeFall:
		return "free-fall"
	case FuncGravityBall:
		return "gravity-ball"
	case FuncTeleportUp:
		return "teleport-up"
	case FuncTeleportDown:
		return "teleport-down"
	case FuncHover:
		return "hover"
	case FuncSpeedFast:
		return "speed-fast"
	case FuncSpeedNormal:
		return "speed-normal"
	default:
		return "unknown"
	}
}
