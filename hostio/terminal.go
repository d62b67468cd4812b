package hostio

import (
	"fmt"
	"os"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Terminal is a raw-mode stdin/stdout host adapter: it satisfies mpu3's
// ConsoleSink by writing straight to stdout, and its KeyboardPoller by
// draining bytes typed at stdin since the last poll. Modelled on the
// teacher's TerminalHost: a background goroutine reads stdin a byte at a
// time in raw, non-blocking mode, so no line buffering or local echo gets
// in the way of a program that wants to read keys one at a time.
type Terminal struct {
	mu      sync.Mutex
	pending []byte

	fd           int
	stopCh       chan struct{}
	done         chan struct{}
	stopped      sync.Once
	nonblockSet  bool
	oldTermState *term.State
}

// NewTerminal returns a Terminal adapter. Call Start before using it as a
// KeyboardPoller, and Stop when done to restore the terminal.
func NewTerminal() *Terminal {
	return &Terminal{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
}

// Write implements mpu3.ConsoleSink.
func (t *Terminal) Write(b byte) {
	os.Stdout.Write([]byte{b})
}

// Pressed implements mpu3.KeyboardPoller: it returns every byte typed since
// the previous call, then clears its buffer. A terminal has no notion of
// "currently held down", so each typed byte surfaces exactly once.
func (t *Terminal) Pressed() []byte {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := t.pending
	t.pending = nil
	return out
}

// Start puts stdin into raw, non-blocking mode and begins reading it on a
// background goroutine.
func (t *Terminal) Start() {
	t.fd = int(os.Stdin.Fd())

	oldState, err := term.MakeRaw(t.fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hostio: failed to set raw mode: %v\n", err)
		close(t.done)
		return
	}
	t.oldTermState = oldState

	if err := syscall.SetNonblock(t.fd, true); err != nil {
		fmt.Fprintf(os.Stderr, "hostio: failed to set nonblocking stdin: %v\n", err)
		_ = term.Restore(t.fd, t.oldTermState)
		t.oldTermState = nil
		close(t.done)
		return
	}
	t.nonblockSet = true

	go func() {
		defer close(t.done)
		buf := make([]byte, 1)
		for {
			select {
			case <-t.stopCh:
				return
			default:
			}
			n, err := syscall.Read(t.fd, buf)
			if n > 0 {
				t.mu.Lock()
				t.pending = append(t.pending, buf[0])
				t.mu.Unlock()
			}
			if err == syscall.EAGAIN || err == syscall.EWOULDBLOCK {
				time.Sleep(5 * time.Millisecond)
				continue
			}
			if err != nil {
				return
			}
			if n == 0 {
				time.Sleep(5 * time.Millisecond)
			}
		}
	}()
}

// Stop terminates the reader goroutine and restores the terminal to its
// original mode.
func (t *Terminal) Stop() {
	t.stopped.Do(func() {
		close(t.stopCh)
	})
	<-t.done
	if t.nonblockSet {
		_ = syscall.SetNonblock(t.fd, false)
		t.nonblockSet = false
	}
	if t.oldTermState != nil {
		_ = term.Restore(t.fd, t.oldTermState)
		t.oldTermState = nil
	}
}
