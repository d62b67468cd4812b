package mpu3

// Devices is a handle to every built-in peripheral constructed by
// BuildDefaultBus, retained for inspection or capability wiring beyond what
// the port interface itself exposes (e.g. the pixel display's GetPixel and
// the console's buffered bytes when no sink was supplied).
type Devices struct {
	Display *pixelDisplay
	Console *bufferConsoleSink // nil if a ConsoleSink was supplied
}

// BuildDefaultBus constructs a PortBus wired exactly per the default
// hardware configuration: a multiplier at ports 0-1, a divider at 2-3, an
// RNG at 4, a timer at 5-8, a pixel display at 11-15, console output at 32,
// and a keyboard at 33 when keys is non-nil. A nil console uses the headless
// buffering sink and a nil pixels uses a no-op sink; a nil keys leaves port
// 33 unbound.
func BuildDefaultBus(console ConsoleSink, keys KeyboardPoller, pixels PixelSink) (*PortBus, *Devices) {
	bus := &PortBus{}
	devs := &Devices{}

	mulLow, mulHigh := newMultiplier()
	mustBind(bus, 0, mulLow)
	mustBind(bus, 1, mulHigh)

	divQ, divR := newDivider()
	mustBind(bus, 2, divQ)
	mustBind(bus, 3, divR)

	mustBind(bus, 4, newRNG())

	timerPorts := newTimer()
	for i, p := range timerPorts {
		mustBind(bus, 5+i, p)
	}

	pixelPorts, display := newPixelPorts(pixels)
	devs.Display = display
	for i, p := range pixelPorts {
		mustBind(bus, 11+i, p)
	}

	consoleDevice, buf := newConsole(console)
	devs.Console = buf
	mustBind(bus, 32, consoleDevice)

	if keys != nil {
		mustBind(bus, 33, newKeyboard(keys))
	}

	return bus, devs
}

// mustBind binds device to port and panics if the slot was already
// occupied. BuildDefaultBus only ever binds each fixed port once, so a
// failure here indicates a bug in the wiring table itself, not a runtime
// fault a caller can recover from.
func mustBind(bus *PortBus, port int, device Device) {
	if !bus.TryBind(port, device) {
		panic("mpu3: default port map bound the same port twice")
	}
}
