package mpu3

import "time"

// timer is a 4-port, read-only device. Each load returns one little-endian
// byte of a 32-bit millisecond counter measured from the device's
// construction. Stores are ignored.
type timer struct {
	start time.Time
}

type timerPort struct {
	t     *timer
	index uint
}

func (p timerPort) Store(v byte) error { return nil }

func (p timerPort) Load() byte {
	elapsed := uint32(time.Since(p.t.start).Milliseconds())
	return byte(elapsed >> (8 * p.index))
}

// newTimer returns the four Device slots for a timer, sharing one start
// time.
func newTimer() [4]Device {
	t := &timer{start: time.Now()}
	var ports [4]Device
	for i := uint(0); i < 4; i++ {
		ports[i] = timerPort{t: t, index: i}
	}
	return ports
}
