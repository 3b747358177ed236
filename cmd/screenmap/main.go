package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/screencam/camera"
	"github.com/milk9111/screencam/event"
	"github.com/milk9111/screencam/levels"
	"github.com/milk9111/screencam/prefabs"
	"github.com/milk9111/screencam/screen"
	"gopkg.in/yaml.v3"
)

const (
	walkDt    = 1.0 / 60
	walkSteps = 8
)

var errUsage = errors.New("screenmap: usage")

func main() {
	log.SetFlags(0)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("screenmap", flag.ContinueOnError)
	fs.SetOutput(out)
	levelName := fs.String("level", "", "level name in levels/ (extension optional)")
	file := fs.String("file", "", "level file on disk (.yaml, .yml or .tmx)")
	list := fs.Bool("list", false, "list embedded levels and exit")
	walk := fs.String("walk", "", `player path as "x,y;x,y;..." in world units; "auto" visits every navigable screen`)
	dump := fs.Bool("yaml", false, "print the resolved level as yaml")
	guard := fs.Bool("guard", false, "enable the crossing guard for -walk")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	if *list {
		names, err := levels.Names()
		if err != nil {
			return err
		}
		for _, n := range names {
			fmt.Fprintln(out, n)
		}
		return nil
	}

	var (
		spec levels.Spec
		err  error
	)
	switch {
	case *file != "":
		spec, err = levels.LoadFile(*file)
	case *levelName != "":
		spec, err = levels.Load(*levelName)
	default:
		fs.Usage()
		return errUsage
	}
	if err != nil {
		return err
	}

	grid, err := spec.Grid()
	if err != nil {
		return err
	}

	if *dump {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(spec); err != nil {
			return fmt.Errorf("screenmap: encode %s: %w", spec.Name, err)
		}
		return enc.Close()
	}

	printGrid(out, spec.Name, grid)

	if *walk == "" {
		return nil
	}
	path, err := parseWalk(*walk, grid)
	if err != nil {
		return err
	}

	cfg := camera.DefaultConfig()
	if camSpec, err := prefabs.LoadCameraSpec(); err == nil {
		cfg = camSpec.Config()
	} else {
		log.Printf("camera spec: %v (using defaults)", err)
	}
	cfg.CrossingGuard = *guard
	printWalk(out, spec.Name, grid, cfg, path)
	return nil
}

func printGrid(out io.Writer, name string, g *screen.Grid) {
	fmt.Fprintf(out, "level %s: %dx%d screens of %dx%d\n", name, g.Cols(), g.Rows(), g.ScreenWidth(), g.ScreenHeight())
	fmt.Fprintln(out, g.String())
	fmt.Fprintln(out)
	for _, s := range g.Screens() {
		c := s.Center()
		fmt.Fprintf(out, "(%d,%d) %c x=%s y=%s centre=(%g,%g) %s\n", s.Col, s.Row, s.Symbol(), s.XRange, s.YRange, c.X, c.Y, s.Transition)
	}
}

// parseWalk reads "x,y;x,y". The special value "auto" walks from the start
// screen through the centre of every navigable screen in template order.
func parseWalk(raw string, g *screen.Grid) ([]cp.Vector, error) {
	if strings.TrimSpace(raw) == "auto" {
		path := []cp.Vector{g.Start().Center()}
		for _, s := range g.Screens() {
			if s.Navigable && !s.Start {
				path = append(path, s.Center())
			}
		}
		return path, nil
	}

	var path []cp.Vector
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		xs, ys, ok := strings.Cut(pair, ",")
		if !ok {
			return nil, fmt.Errorf("screenmap: walk point %q: want x,y", pair)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("screenmap: walk point %q: %w", pair, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("screenmap: walk point %q: %w", pair, err)
		}
		path = append(path, cp.Vector{X: x, Y: y})
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("screenmap: empty walk")
	}
	return path, nil
}

// printWalk moves a grounded player along path, interpolating between
// waypoints, and prints where the camera ends up at each waypoint.
func printWalk(out io.Writer, name string, g *screen.Grid, cfg camera.Config, path []cp.Vector) {
	rig := camera.NewRig(cfg)
	rig.Events().Push(event.LevelLoaded(name, g))
	rig.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "walk:")
	prev := path[0]
	for i, p := range path {
		var view camera.View
		steps := walkSteps
		if i == 0 {
			steps = 1
		}
		for k := 1; k <= steps; k++ {
			player := prev.Lerp(p, float64(k)/float64(steps))
			view = rig.Update(camera.Input{Player: player, Dt: walkDt})
		}
		where := "off grid"
		if view.OnGrid {
			where = fmt.Sprintf("screen (%d,%d)", view.Screen.Col, view.Screen.Row)
		}
		fmt.Fprintf(out, "player (%g,%g) camera (%g,%g) offset %g %s\n", p.X, p.Y, view.Position.X, view.Position.Y, rig.State().VerticalOffset, where)
		prev = p
	}
}
