// conetool is a headless CLI for inspecting the cone meshes and replaying
// finger input through the rotation mapper.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Faultbox/touchcone/internal/engine/mesh"
	"github.com/Faultbox/touchcone/internal/engine/scene"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "stats":
		err = cmdStats(os.Stdout, args)
	case "dump":
		err = cmdDump(os.Stdout, args)
	case "touch", "replay":
		err = cmdTouch(os.Stdout, os.Stdin, args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`conetool - TouchCone mesh and touch utility

Usage:
  conetool <command> [options]

Commands:
  stats [-slices N] [-radius R] [-height H]             Vertex and index counts for both backends
  dump  [-backend strip|indexed] [-slices N] ...         Write the mesh as YAML
  touch [-width W] [-height H] [file]                    Replay finger events (stdin if no file)

Replay format, one event per line (finger defaults to 0):
  down X Y [finger]
  move X Y [finger]
  up X Y [finger]

Examples:
  conetool stats
  conetool dump -backend indexed -slices 8
  echo "down 300 240" | conetool touch -width 320 -height 480`)
}

// meshFlags registers the geometry flags shared by stats and dump.
func meshFlags(fs *flag.FlagSet) *mesh.Params {
	p := mesh.DefaultParams()
	fs.IntVar(&p.Slices, "slices", p.Slices, "Number of cone slices")
	fs.Func("radius", "Base radius", float32Setter(&p.Radius))
	fs.Func("height", "Apex height", float32Setter(&p.Height))
	return &p
}

func float32Setter(dst *float32) func(string) error {
	return func(s string) error {
		var v float32
		if _, err := fmt.Sscan(s, &v); err != nil {
			return err
		}
		*dst = v
		return nil
	}
}

func backendFlag(fs *flag.FlagSet) *scene.Backend {
	b := scene.BackendStrip
	fs.TextVar(&b, "backend", b, "Backend: strip or indexed")
	return &b
}

func newFlagSet(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}
