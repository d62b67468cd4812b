// Command mpu3run builds one of a handful of named programs directly as
// decoded instructions (there is no text assembler in this module) and
// runs it to completion on a default-wired CPU, printing the resulting
// state. In the spirit of the teacher project's small cmd/ tools built on
// top of its CPU core.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/Makon324/M-PU-3"
	"github.com/Makon324/M-PU-3/hostio"
)

func main() {
	name := flag.String("program", "add-and-store", "program to run: add-and-store, jump-skip, call-return, multiplier, divider-zero, pixel-commit")
	interactive := flag.Bool("interactive", false, "use the terminal for console output and the ebiten adapter as keyboard poller and pixel sink instead of headless adapters (no window is opened)")
	flag.Parse()

	prog, ok := programs[*name]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown program %q\n", *name)
		os.Exit(2)
	}

	if *interactive {
		runInteractive(prog)
		return
	}
	runHeadless(prog)
}

func runHeadless(prog mpu3.Program) {
	bus, devs := mpu3.BuildDefaultBus(nil, nil, nil)
	ctx := mpu3.NewContext(bus)
	pipeline := mpu3.NewPipeline(prog)

	if err := pipeline.Run(ctx); err != nil {
		log.Fatalf("mpu3run: %v", err)
	}

	printState(ctx, devs)
}

func runInteractive(prog mpu3.Program) {
	term := hostio.NewTerminal()
	term.Start()
	defer term.Stop()

	display := hostio.NewEbitenDisplay(4)

	bus, devs := mpu3.BuildDefaultBus(term, display, display)
	ctx := mpu3.NewContext(bus)
	pipeline := mpu3.NewPipeline(prog)

	group, _ := errgroup.WithContext(context.Background())
	group.Go(func() error {
		return pipeline.Run(ctx)
	})

	if err := group.Wait(); err != nil {
		log.Fatalf("mpu3run: %v", err)
	}
	printState(ctx, devs)
}

func printState(ctx *mpu3.Context, devs *mpu3.Devices) {
	fmt.Printf("halted=%v z=%v c=%v pc=%d sp=%d\n", ctx.Halted, ctx.Z, ctx.C, ctx.PC.Value(), ctx.SP.Value())
	for i := 0; i < mpu3.RegisterCount; i++ {
		fmt.Printf("R%d=%d ", i, ctx.Registers.Read(i))
	}
	fmt.Println()
	if devs.Display != nil {
		r, g, b := devs.Display.GetPixel(5, 10)
		fmt.Printf("pixel(5,10)=(%d,%d,%d)\n", r, g, b)
	}
}

var programs = map[string]mpu3.Program{
	"add-and-store": {
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(10)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(2), mpu3.Num(20)}},
		{Mnemonic: "ADD", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Reg(1), mpu3.Reg(2)}},
		{Mnemonic: "MST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(0x00)}},
		{Mnemonic: "HLT"},
	},
	"jump-skip": {
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(10)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(2), mpu3.Num(20)}},
		{Mnemonic: "JMP", Operands: []mpu3.Operand{mpu3.Addr(5)}},
		{Mnemonic: "ADD", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Reg(1), mpu3.Reg(2)}},
		{Mnemonic: "HLT"},
		{Mnemonic: "MOV", Operands: []mpu3.Operand{mpu3.Reg(3), mpu3.Reg(1)}},
		{Mnemonic: "HLT"},
	},
	"call-return": {
		{Mnemonic: "CAL", Operands: []mpu3.Operand{mpu3.Addr(3)}},
		{Mnemonic: "HLT"},
		{Mnemonic: "HLT"},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(7)}},
		{Mnemonic: "RET", Operands: []mpu3.Operand{mpu3.Num(0)}},
	},
	"multiplier": {
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(100)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(0)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(200)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(1)}},
		{Mnemonic: "PLD", Operands: []mpu3.Operand{mpu3.Reg(2), mpu3.Num(0)}},
		{Mnemonic: "PLD", Operands: []mpu3.Operand{mpu3.Reg(3), mpu3.Num(1)}},
		{Mnemonic: "HLT"},
	},
	"divider-zero": {
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(0)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(2)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(5)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(3)}},
		{Mnemonic: "PLD", Operands: []mpu3.Operand{mpu3.Reg(2), mpu3.Num(2)}},
		{Mnemonic: "PLD", Operands: []mpu3.Operand{mpu3.Reg(3), mpu3.Num(3)}},
		{Mnemonic: "HLT"},
	},
	"pixel-commit": {
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(255)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(11)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(128)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(12)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(64)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(13)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(10)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(15)}},
		{Mnemonic: "LDI", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(5 | 0x80)}},
		{Mnemonic: "PST", Operands: []mpu3.Operand{mpu3.Reg(1), mpu3.Num(14)}},
		{Mnemonic: "HLT"},
	},
}
