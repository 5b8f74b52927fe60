package sim

import "github.com/vovakirdan/tui-dash/internal/core"

// Clock arbitrates between the fixed-rate tick driver and the per-frame
// build pump. Exactly one driver is active; a step called on the inactive
// driver is a no-op, so a handoff takes effect at a step boundary and no
// frame is processed twice.
type Clock struct {
	active core.Driver
	gen    uint64
}

// Active returns the driver allowed to advance the simulation.
func (c *Clock) Active() core.Driver {
	return c.active
}

// Generation identifies the current run. Messages scheduled under an older
// generation must be dropped by the host.
func (c *Clock) Generation() uint64 {
	return c.gen
}

// Handoff makes to the active driver. The caller finishes its current step
// before the host schedules the other driver.
func (c *Clock) Handoff(to core.Driver) {
	c.active = to
}

// Cancel invalidates every in-flight message and returns control to the tick driver.
func (c *Clock) Cancel() {
	c.gen++
	c.active = core.DriverTick
}
