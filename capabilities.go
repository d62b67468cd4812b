package mpu3

// ConsoleSink receives the bytes stored to the console device, one at a
// time. A host typically writes them to a terminal or an in-memory buffer.
type ConsoleSink interface {
	Write(b byte)
}

// KeyboardPoller reports the key codes currently held down, from the host's
// perspective. The keyboard device is responsible for FIFO/dedup semantics;
// a poller just answers "what's down right now".
type KeyboardPoller interface {
	Pressed() []byte
}

// PixelSink is notified whenever the pixel display commits a pixel. It is a
// secondary surface for a renderer; the display device's own get_pixel
// state is authoritative.
type PixelSink interface {
	Commit(x, y int, r, g, b byte)
}

// bufferConsoleSink is the headless ConsoleSink used when no host sink is
// supplied: it buffers every byte in memory for later inspection.
type bufferConsoleSink struct {
	bytes []byte
}

func (s *bufferConsoleSink) Write(b byte) {
	s.bytes = append(s.bytes, b)
}

// Bytes returns the bytes written so far, in order.
func (s *bufferConsoleSink) Bytes() []byte {
	return s.bytes
}

// noopKeyboardPoller reports no keys ever down; used when no host poller is
// supplied.
type noopKeyboardPoller struct{}

func (noopKeyboardPoller) Pressed() []byte { return nil }

// noopPixelSink discards commits; used when no host sink is supplied. The
// pixel display's own internal grid remains queryable regardless.
type noopPixelSink struct{}

func (noopPixelSink) Commit(x, y int, r, g, b byte) {}
