package hostio

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"
	"golang.org/x/image/draw"
)

const (
	gridWidth  = 128
	gridHeight = 128
)

// EbitenDisplay is an ebiten.Game that renders the CPU's 128x128 pixel grid
// scaled up to a window, and doubles as a KeyboardPoller. Grounded on the
// teacher's EbitenOutput: a mutex-guarded frame buffer written from Commit
// (the pixel device's call) and read back in Draw, plus the same
// Ctrl+Shift+V clipboard-paste-as-keys shortcut.
type EbitenDisplay struct {
	mu    sync.Mutex
	grid  [gridHeight][gridWidth][3]byte
	scale int

	pasteQueue []byte

	clipboardOnce sync.Once
	clipboardOK   bool
}

// NewEbitenDisplay returns a display scaled by factor (e.g. 4 for a 512x512
// window showing the 128x128 grid).
func NewEbitenDisplay(scale int) *EbitenDisplay {
	if scale < 1 {
		scale = 1
	}
	return &EbitenDisplay{scale: scale}
}

// Commit implements mpu3.PixelSink.
func (d *EbitenDisplay) Commit(x, y int, r, g, b byte) {
	d.mu.Lock()
	d.grid[y][x] = [3]byte{r, g, b}
	d.mu.Unlock()
}

// Pressed implements mpu3.KeyboardPoller: characters typed and special keys
// newly pressed in the current tick, plus any bytes queued by a clipboard
// paste since the last call.
func (d *EbitenDisplay) Pressed() []byte {
	var out []byte
	for _, r := range ebiten.AppendInputChars(nil) {
		if r > 0 && r <= 0xFF {
			out = append(out, byte(r))
		}
	}
	for key, seq := range specialKeySequences {
		if inpututil.IsKeyJustPressed(key) {
			out = append(out, seq...)
		}
	}

	d.mu.Lock()
	if len(d.pasteQueue) > 0 {
		out = append(out, d.pasteQueue...)
		d.pasteQueue = nil
	}
	d.mu.Unlock()

	return out
}

var specialKeySequences = map[ebiten.Key][]byte{
	ebiten.KeyEnter:     {'\n'},
	ebiten.KeyBackspace: {'\b'},
	ebiten.KeyTab:       {'\t'},
	ebiten.KeyEscape:    {0x1B},
}

// Update implements ebiten.Game: it only watches for the clipboard-paste
// shortcut, since keyboard polling itself happens lazily from Pressed.
func (d *EbitenDisplay) Update() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	shift := ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight)
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		d.handleClipboardPaste()
	}
	return nil
}

func (d *EbitenDisplay) handleClipboardPaste() {
	d.clipboardOnce.Do(func() {
		d.clipboardOK = clipboard.Init() == nil
	})
	if !d.clipboardOK {
		return
	}
	data := clipboard.Read(clipboard.FmtText)
	if len(data) == 0 {
		return
	}
	d.mu.Lock()
	d.pasteQueue = append(d.pasteQueue, data...)
	d.mu.Unlock()
}

// Draw implements ebiten.Game: the 128x128 grid is rendered into an
// intermediate image, then scaled onto screen with x/image/draw.
func (d *EbitenDisplay) Draw(screen *ebiten.Image) {
	frame := ebiten.NewImage(gridWidth, gridHeight)
	pix := make([]byte, gridWidth*gridHeight*4)

	d.mu.Lock()
	for y := 0; y < gridHeight; y++ {
		for x := 0; x < gridWidth; x++ {
			c := d.grid[y][x]
			i := (y*gridWidth + x) * 4
			pix[i] = c[0]
			pix[i+1] = c[1]
			pix[i+2] = c[2]
			pix[i+3] = 0xFF
		}
	}
	d.mu.Unlock()

	frame.WritePixels(pix)

	dst := screen.SubImage(screen.Bounds()).(draw.Image)
	draw.NearestNeighbor.Scale(dst, screen.Bounds(), frame, frame.Bounds(), draw.Over, nil)
}

// Layout implements ebiten.Game.
func (d *EbitenDisplay) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gridWidth * d.scale, gridHeight * d.scale
}
