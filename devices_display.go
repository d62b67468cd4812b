package mpu3

// pixelDisplay backs the 5-port pixel display device: three read/write
// color ports (R, G, B) and two coordinate ports (X, Y). Writing a
// coordinate stores its low 7 bits; if the written byte's high bit is set,
// the pixel at the current (X, Y) is committed using the current R, G, B.
// Out-of-range coordinates are fatal.
type pixelDisplay struct {
	r, g, b byte
	x, y    byte
	sink    PixelSink
	grid    [DisplayHeight][DisplayWidth][3]byte
}

func newPixelDisplay(sink PixelSink) *pixelDisplay {
	if sink == nil {
		sink = noopPixelSink{}
	}
	return &pixelDisplay{sink: sink}
}

// GetPixel returns the committed RGB value at (x, y), per the observable
// side-effect surface's get_pixel hook.
func (d *pixelDisplay) GetPixel(x, y int) (r, g, b byte) {
	c := d.grid[y][x]
	return c[0], c[1], c[2]
}

func (d *pixelDisplay) commit() error {
	x, y := int(d.x), int(d.y)
	if x < 0 || x >= DisplayWidth {
		return fault(FaultPixelOutOfRange, x, "pixel x coordinate out of range")
	}
	if y < 0 || y >= DisplayHeight {
		return fault(FaultPixelOutOfRange, y, "pixel y coordinate out of range")
	}
	d.grid[y][x] = [3]byte{d.r, d.g, d.b}
	d.sink.Commit(x, y, d.r, d.g, d.b)
	return nil
}

type pixelColorPort struct {
	d         *pixelDisplay
	component int
}

func (p pixelColorPort) Store(v byte) error {
	switch p.component {
	case 0:
		p.d.r = v
	case 1:
		p.d.g = v
	case 2:
		p.d.b = v
	}
	return nil
}

func (p pixelColorPort) Load() byte {
	switch p.component {
	case 0:
		return p.d.r
	case 1:
		return p.d.g
	default:
		return p.d.b
	}
}

type pixelCoordPort struct {
	d   *pixelDisplay
	isY bool
}

func (p pixelCoordPort) Store(v byte) error {
	coord := v & 0x7F
	if p.isY {
		p.d.y = coord
	} else {
		p.d.x = coord
	}
	if v&0x80 != 0 {
		return p.d.commit()
	}
	return nil
}

func (p pixelCoordPort) Load() byte {
	if p.isY {
		return p.d.y
	}
	return p.d.x
}

// newPixelPorts returns the five Device slots for a pixel display, in
// R, G, B, X, Y order, sharing one underlying display state, plus the
// display itself for GetPixel inspection.
func newPixelPorts(sink PixelSink) ([5]Device, *pixelDisplay) {
	d := newPixelDisplay(sink)
	return [5]Device{
		pixelColorPort{d: d, component: 0},
		pixelColorPort{d: d, component: 1},
		pixelColorPort{d: d, component: 2},
		pixelCoordPort{d: d, isY: false},
		pixelCoordPort{d: d, isY: true},
	}, d
}
