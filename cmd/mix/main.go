// Package main provides the entry point for the MIX emulator.
package main

import (
	"fmt"
	"os"
	"strings"

	cli "github.com/urfave/cli/v2"

	"github.com/mixvm/mix/asm"
	"github.com/mixvm/mix/emu"
	"github.com/mixvm/mix/loader"
)

func main() {
	app := cli.NewApp()
	app.Name = "mix"
	app.Usage = "run MIXAL programs and binary images on Knuth's MIX"
	app.Commands = []*cli.Command{
		{
			Name:      "run",
			Usage:     "load and run a program",
			ArgsUsage: "<path>",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verbose",
					Usage: "print path and entry point before running, instruction and cycle counts after halting",
				},
			},
			Action: runAction,
		},
	}
	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func runAction(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("no program given", 1)
	}
	verbose := c.Bool("verbose")

	emulator := emu.NewEmulator()
	mem := emulator.Memory()
	var entry int32

	if strings.HasSuffix(path, ".mixal") {
		src, err := os.ReadFile(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("could not read %s: %v", path, err), 1)
		}
		img, err := asm.NewAssembler().Assemble(string(src))
		if err != nil {
			return cli.Exit(fmt.Sprintf("assembly failed: %v", err), 1)
		}
		if err := img.LoadInto(mem); err != nil {
			return cli.Exit(fmt.Sprintf("could not load assembled image: %v", err), 1)
		}
		entry = img.EntryPoint
	} else {
		prog, err := loader.Load(path)
		if err != nil {
			return cli.Exit(fmt.Sprintf("could not load %s: %v", path, err), 1)
		}
		if err := prog.LoadInto(mem); err != nil {
			return cli.Exit(fmt.Sprintf("could not load image: %v", err), 1)
		}
		entry = prog.EntryPoint
	}

	emulator.RegFile().PC = int(entry)

	if verbose {
		fmt.Printf("program:      %s\n", path)
		fmt.Printf("entry point:  %d\n", entry)
	}

	if err := emulator.Run(); err != nil {
		// Run has already written the fault to stderr.
		return cli.Exit("", 1)
	}

	if verbose {
		fmt.Printf("instructions: %d\n", emulator.InstructionCount())
		fmt.Printf("cycles:       %d\n", emulator.TotalCycles())
	}

	return nil
}
