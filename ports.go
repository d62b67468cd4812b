package mpu3

// Device is the port interface every peripheral implements: a single store
// (write) and a single load (read) per bound port. Multi-port devices
// register one Device value per consecutive slot, sharing their internal
// state rather than holding a back-pointer to the bus — see the
// multiplier/divider/timer/pixel-display devices for the pattern.
type Device interface {
	Store(v byte) error
	Load() byte
}

// PortBus is the 256-slot I/O port bus. Bindings are established once
// during construction (via TryBind) and are immutable thereafter; nothing
// in the core rebinds a port mid-run.
type PortBus struct {
	slots [PortCount]Device
}

// TryBind binds device to port. Succeeds only if the slot is currently
// empty.
func (b *PortBus) TryBind(port int, device Device) bool {
	if b.slots[port] != nil {
		return false
	}
	b.slots[port] = device
	return true
}

// Read loads from port, delegating to the bound device. An unmapped port
// is a fault — callers that want the permissive "unmapped read returns
// zero" policy should check IsMapped first instead of
// calling Read.
func (b *PortBus) Read(port int) (byte, error) {
	dev := b.slots[port]
	if dev == nil {
		return 0, fault(FaultUnmappedPort, port, "load from unmapped port")
	}
	return dev.Load(), nil
}

// Write stores v to port, delegating to the bound device. An unmapped port
// is a fault for PST/DPS.
func (b *PortBus) Write(port int, v byte) error {
	dev := b.slots[port]
	if dev == nil {
		return fault(FaultUnmappedPort, port, "store to unmapped port")
	}
	return dev.Store(v)
}

// IsMapped reports whether port has a bound device.
func (b *PortBus) IsMapped(port int) bool {
	return b.slots[port] != nil
}
