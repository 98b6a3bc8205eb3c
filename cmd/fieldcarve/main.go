// Command fieldcarve renders a scalar field expression to a grayscale
// image by building its adaptive octree and rasterizing a single
// z=0 slice through it.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/fieldcarve/fieldcarve/config"
	"github.com/fieldcarve/fieldcarve/diag"
	"github.com/fieldcarve/fieldcarve/eval"
	"github.com/fieldcarve/fieldcarve/expr"
	"github.com/fieldcarve/fieldcarve/group"
	"github.com/fieldcarve/fieldcarve/mesh"
	"github.com/fieldcarve/fieldcarve/octree"
	"github.com/fieldcarve/fieldcarve/parser"
	"github.com/fieldcarve/fieldcarve/tape"
	"github.com/fieldcarve/fieldcarve/worker"
)

func main() {
	var (
		inPath  = flag.String("in", "", "input expression file (s-expression field definition)")
		outPath = flag.String("out", "out.pgm", "output image path (PGM)")
		size    = flag.Int("size", 128, "output image width and height, in pixels")
		depth   = flag.Int("depth", 6, "maximum octree subdivision depth")
		threads = flag.Int("threads", 0, "worker thread count (0 uses GOMAXPROCS)")
		verbose = flag.Int("verbose", 0, "log verbosity (commonlog convention)")
	)
	flag.Parse()

	diag.Configure(*verbose)
	log := diag.New("cli")

	if err := run(*inPath, *outPath, *size, *depth, *threads, log); err != nil {
		color.Red("fieldcarve: %s", err.Error())
		os.Exit(1)
	}
	color.Green("wrote %s", *outPath)
}

func run(inPath, outPath string, size, depth, threads int, log *diag.Logger) error {
	if inPath == "" {
		return fmt.Errorf("fieldcarve: -in is required")
	}

	source, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("fieldcarve: open input: %w", err)
	}

	g, err := parser.Parse(bytes.NewReader(source))
	if err != nil {
		fmt.Fprintln(os.Stderr, parser.FormatParseError(string(source), err))
		return fmt.Errorf("fieldcarve: parse: %w", err)
	}
	log.Info("parsed expression", diag.F("nodes", g.Len()), diag.F("choices", g.NumChoices()))

	root, ok := g.Root()
	if !ok {
		return fmt.Errorf("fieldcarve: graph has no root")
	}

	stage1, err := group.Analyze(g)
	if err != nil {
		return fmt.Errorf("fieldcarve: analyze: %w", err)
	}
	included := make(map[expr.NodeIndex]bool, g.Len())
	for _, grp := range stage1.Groups {
		for _, n := range grp.Nodes {
			included[n] = true
		}
	}
	log.Debug("source analysis complete", diag.F("groups", len(stage1.Groups)))

	tp, err := tape.Build(g, included, root)
	if err != nil {
		return fmt.Errorf("fieldcarve: build tape: %w", err)
	}

	backend, err := eval.NewInterpreter(tp)
	if err != nil {
		return fmt.Errorf("fieldcarve: build interpreter: %w", err)
	}
	evalGroup := eval.NewGroup(backend, tp, g.NumChoices())

	opts := []config.Option{config.WithMaxDepth(depth)}
	if threads > 0 {
		opts = append(opts, config.WithThreads(threads))
	}
	settings, err := config.Resolve(opts...)
	if err != nil {
		return fmt.Errorf("fieldcarve: resolve settings: %w", err)
	}

	extractor := mesh.NewExtractor(settings)
	sched := worker.NewScheduler(settings, extractor, nil)

	log.Info("building octree", diag.F("threads", settings.Threads), diag.F("maxDepth", settings.MaxDepth))
	cells, err := sched.Run(evalGroup)
	if err != nil {
		return fmt.Errorf("fieldcarve: build octree: %w", err)
	}
	log.Info("octree built", diag.F("cells", len(cells)))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("fieldcarve: create output: %w", err)
	}
	defer out.Close()

	return writePGM(out, cells, size)
}

// sliceInside reports whether the z=0 point (x, y, 0) falls inside a
// Full or Leaf cell, walking the merged octree from its root.
func sliceInside(cells []octree.Cell, x, y float64) bool {
	bounds := octree.RootBox
	index := 0
	point := [3]float64{x, y, 0}

	for {
		cell := cells[index]
		switch cell.Kind {
		case octree.CellEmpty:
			return false
		case octree.CellFull, octree.CellLeaf:
			return true
		case octree.CellBranch:
			child := 0
			for axis := 0; axis < 3; axis++ {
				mid := (bounds.Min[axis] + bounds.Max[axis]) / 2
				if point[axis] >= mid {
					child |= 1 << axis
				}
			}
			bounds = bounds.Child(child)
			index = cell.Index + child
		default:
			return false
		}
	}
}

// writePGM rasterizes a size x size z=0 slice of the octree's field to
// an ASCII PGM (P2) image: 255 inside the surface, 0 outside.
func writePGM(w *os.File, cells []octree.Cell, size int) error {
	if _, err := fmt.Fprintf(w, "P2\n%d %d\n255\n", size, size); err != nil {
		return err
	}
	for row := 0; row < size; row++ {
		y := 1 - 2*float64(row)/float64(size-1)
		for col := 0; col < size; col++ {
			x := -1 + 2*float64(col)/float64(size-1)
			v := 0
			if sliceInside(cells, x, y) {
				v = 255
			}
			sep := " "
			if col == size-1 {
				sep = "\n"
			}
			if _, err := fmt.Fprintf(w, "%d%s", v, sep); err != nil {
				return err
			}
		}
	}
	return nil
}
