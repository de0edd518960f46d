// Command disasm disassembles a raw 6502 binary image, one documented
// instruction per line, starting at a chosen address.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dogue/moscore/disassemble"
	"github.com/dogue/moscore/memory"
)

func main() {
	app := &cli.App{
		Name:      "disasm",
		Usage:     "disassemble a raw 6502 ROM image",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "start",
				Usage: "address to start disassembling at",
				Value: 0x8000,
			},
			&cli.UintFlag{
				Name:  "count",
				Usage: "number of instructions to print",
				Value: 32,
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

	pc := uint16(ctx.Uint("start"))
	count := ctx.Uint("count")
	for i := uint(0); i < count; i++ {
		text, n := disassemble.Step(pc, m)
		fmt.Println(text)
		pc += uint16(n)
	}
	return nil
}
