// Package hostio provides concrete, optional implementations of the
// mpu3 capability interfaces (ConsoleSink, KeyboardPoller, PixelSink),
// built on real terminal and windowing backends. The core mpu3 package
// never imports this package or any of its dependencies; a caller wires
// these adapters in at the edge, the way the teacher project keeps its
// GUI/terminal backends out of its CPU core.
package hostio
