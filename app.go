package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/memmaker/raycaster/engine/raycast"
	"github.com/memmaker/raycaster/engine/scene"
	"github.com/memmaker/raycaster/engine/util"
	"golang.org/x/term"
)

type castOptions struct {
	scenePath string
	demoPath  string
	origin    string
	direction string
	maxDist   float64
	skip      string
	strategy  string
	verbose   bool
	asJSON    bool
}

func main() {
	options := castOptions{}
	flag.StringVar(&options.scenePath, "scene", "", "scene file to cast into")
	flag.StringVar(&options.demoPath, "write-demo", "", "write a demo scene file and exit")
	flag.StringVar(&options.origin, "origin", "0,0,0", "ray origin as x,y,z")
	flag.StringVar(&options.direction, "dir", "1,0,0", "ray direction as x,y,z")
	flag.Float64Var(&options.maxDist, "max", 100, "max distance the ray travels")
	flag.StringVar(&options.skip, "skip", "", "comma separated object names the ray passes through")
	flag.StringVar(&options.strategy, "strategy", string(scene.StrategySorted), "candidate strategy: list, sorted or ordered")
	flag.BoolVar(&options.verbose, "v", false, "debug logging")
	flag.BoolVar(&options.asJSON, "json", !term.IsTerminal(int(os.Stdout.Fd())), "print the result as JSON")
	flag.Parse()

	if options.verbose {
		util.GLOBAL_LOG_LEVEL = util.LogLevelDebug
	}
	if err := run(options, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func run(options castOptions, out io.Writer) error {
	if options.demoPath != "" {
		if err := scene.Save(options.demoPath, demoScene()); err != nil {
			return err
		}
		fmt.Fprintf(out, "wrote %s\n", options.demoPath)
		return nil
	}
	if options.scenePath == "" {
		return fmt.Errorf("missing -scene")
	}
	origin, ok := util.ParseVec(options.origin)
	if !ok {
		return fmt.Errorf("invalid -origin %q", options.origin)
	}
	direction, ok := util.ParseVec(options.direction)
	if !ok {
		return fmt.Errorf("invalid -dir %q", options.direction)
	}
	objects, err := scene.Load(options.scenePath)
	if err != nil {
		return err
	}
	caster, ok := scene.NewRaycast(scene.Strategy(options.strategy), objects)
	if !ok {
		return fmt.Errorf("unknown -strategy %q", options.strategy)
	}
	var skipped []string
	if options.skip != "" {
		skipped = strings.Split(options.skip, ",")
	}
	result := caster.CastFrom(origin, direction, options.maxDist, scene.Skip(skipped...))
	if options.asJSON {
		return json.NewEncoder(out).Encode(newCastReport(result))
	}
	printResult(out, result)
	return nil
}

type castReport struct {
	Hit         bool        `json:"hit"`
	Object      string      `json:"object,omitempty"`
	Distance    float64     `json:"distance"`
	In          [3]float64  `json:"in"`
	Out         *[3]float64 `json:"out,omitempty"`
	Normal      *[3]float64 `json:"normal,omitempty"`
	Penetration float64     `json:"penetration"`
}

func newCastReport(result raycast.Result[*scene.Object]) castReport {
	report := castReport{
		Hit:         result.HasHit,
		Distance:    result.Distance,
		In:          result.In,
		Penetration: result.Penetration,
	}
	if object, ok := result.Object(); ok {
		report.Object = object.Name
		exit := [3]float64(result.Out)
		normal := [3]float64(result.Normal)
		report.Out = &exit
		report.Normal = &normal
	}
	return report
}

func printResult(out io.Writer, result raycast.Result[*scene.Object]) {
	object, ok := result.Object()
	if !ok {
		fmt.Fprintf(out, "no hit, ray ends at %s after %.4g\n", util.FormatVec(result.In), result.Distance)
		return
	}
	fmt.Fprintf(out, "hit %s\n", object.ToString())
	fmt.Fprintf(out, "  distance    %.4g\n", result.Distance)
	fmt.Fprintf(out, "  in          %s\n", util.FormatVec(result.In))
	fmt.Fprintf(out, "  out         %s\n", util.FormatVec(result.Out))
	fmt.Fprintf(out, "  normal      %s\n", util.FormatVec(result.Normal))
	fmt.Fprintf(out, "  penetration %.4g\n", result.Penetration)
}

func demoScene() scene.Definition {
	return scene.Definition{
		Objects: []scene.ObjectDefinition{
			scene.Place("crate", mgl64.Vec3{5, 0, 0}, scene.BoxShape(mgl64.Vec3{-0.5, -0.5, -0.5}, mgl64.Vec3{0.5, 0.5, 0.5}, 0)),
			scene.Place("pillar", mgl64.Vec3{10, 0, 0}, scene.BoxShape(mgl64.Vec3{-0.5, 0, -0.5}, mgl64.Vec3{0.5, 3, 0.5}, 45)),
			scene.Place("ball", mgl64.Vec3{0, 0, 8}, scene.SphereShape(mgl64.Vec3{}, 1.5)),
			scene.Place("stairs", mgl64.Vec3{0, 0, -6}, scene.CompoundShape(
				scene.BoxShape(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0.5, 1}, 0),
				scene.BoxShape(mgl64.Vec3{0, 0.5, 0.5}, mgl64.Vec3{1, 1, 1}, 0),
			)),
		},
	}
}
