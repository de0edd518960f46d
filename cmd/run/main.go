// Command run loads a raw 6502 binary image, resets a core against it,
// and executes until the core halts or a step budget is exhausted,
// printing the final register and flag state.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dogue/moscore/cpu"
	"github.com/dogue/moscore/memory"
)

func main() {
	app := &cli.App{
		Name:      "run",
		Usage:     "run a raw 6502 ROM image against the core",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "max-steps",
				Usage: "stop after this many instructions even if the core hasn't halted (0 = unlimited)",
				Value: 1_000_000,
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return cli.Exit("exactly one ROM file argument is required", 1)
	}
	path := ctx.Args().First()
	prog, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	m := memory.NewRAM()
	if err := m.LoadROM(prog); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	c, err := cpu.Init(&cpu.ChipDef{Bus: m})
	if err != nil {
		return fmt.Errorf("initializing core: %w", err)
	}

	max := ctx.Int("max-steps")
	var runErr error
	if max <= 0 {
		runErr = c.Run()
	} else {
		runErr = c.RunN(max)
	}

	var halt cpu.HaltOpcode
	switch {
	case errors.As(runErr, &halt):
		fmt.Printf("halted on opcode 0x%02X at PC=0x%04X\n", halt.Opcode, c.PC)
	case runErr != nil:
		return runErr
	default:
		fmt.Printf("step budget (%d) exhausted, still running at PC=0x%04X\n", max, c.PC)
	}

	fmt.Printf("A=%02X X=%02X Y=%02X S=%02X P=%02X PC=%04X\n",
		c.A, c.X, c.Y, c.S, c.AsByte(), c.PC)
	return nil
}
