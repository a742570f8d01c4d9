// Command genproblem generates a random Rover problem instance in the
// planner's problem-file format, with an optional JSON side-dump of the
// same structure for debugging generator runs.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math/rand"
	"os"
)

// params mirrors the generator's command-line surface.
type params struct {
	Rovers     int
	Waypoints  int
	Cameras    int
	Stores     int
	Objectives int
	Seed       int64
	Out        string
	DumpJSON   string
}

// instance is the generator's internal representation, dumped verbatim to
// JSON when --dump-json is set.
type instance struct {
	Rovers     []rover     `json:"rovers"`
	Waypoints  []waypoint  `json:"waypoints"`
	Cameras    []camera    `json:"cameras"`
	Stores     []store     `json:"stores"`
	Objectives []objective `json:"objectives"`
	LanderAt   int         `json:"lander_at"`
	Goal       goal        `json:"goal"`
}

type rover struct {
	ID              int   `json:"id"`
	Position        int   `json:"position"`
	Energy          int   `json:"energy"`
	EquippedSoil    bool  `json:"equipped_soil"`
	EquippedRock    bool  `json:"equipped_rock"`
	EquippedImaging bool  `json:"equipped_imaging"`
	CanTraverse     [][2]int `json:"can_traverse"`
}

type waypoint struct {
	ID            int   `json:"id"`
	HasSoilSample bool  `json:"has_soil_sample"`
	HasRockSample bool  `json:"has_rock_sample"`
	InSun         bool  `json:"in_sun"`
	Visible       []int `json:"visible"`
}

type camera struct {
	ID                 int   `json:"id"`
	RoverID            int   `json:"rover_id"`
	CalibrationTargets []int `json:"calibration_targets"`
	ModesSupported     []int `json:"modes_supported"`
}

type store struct {
	ID      int `json:"id"`
	RoverID int `json:"rover_id"`
}

type objective struct {
	ID      int   `json:"id"`
	Visible []int `json:"visible"`
}

type goal struct {
	Soil  []int   `json:"soil"`
	Rock  []int   `json:"rock"`
	Image [][2]int `json:"image"` // [objective, mode]
}

func main() {
	p := parseFlags()
	rng := rand.New(rand.NewSource(p.Seed))

	inst := generate(p, rng)

	f, err := os.Create(p.Out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := writeProblem(f, inst); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if p.DumpJSON != "" {
		j, err := os.Create(p.DumpJSON)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer j.Close()
		enc := json.NewEncoder(j)
		enc.SetIndent("", "  ")
		if err := enc.Encode(inst); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}

func parseFlags() params {
	p := params{}
	flag.IntVar(&p.Rovers, "rovers", 2, "number of rovers")
	flag.IntVar(&p.Waypoints, "waypoints", 6, "number of waypoints")
	flag.IntVar(&p.Cameras, "cameras", 2, "number of cameras")
	flag.IntVar(&p.Stores, "stores", 2, "number of stores")
	flag.IntVar(&p.Objectives, "objectives", 2, "number of objectives")
	flag.Int64Var(&p.Seed, "seed", 1, "random seed")
	flag.StringVar(&p.Out, "out", "problem.pddl", "output problem file path")
	flag.StringVar(&p.DumpJSON, "dump-json", "", "optional JSON debug dump path")
	flag.Parse()
	return p
}

// generate builds a connected waypoint graph (a random spanning tree plus
// extra edges), then derives visibility, traversal, equipment, and a single
// soil goal from it. Every rover can reach every waypoint, but equipment
// and starting energy are drawn at random, so an instance is not
// guaranteed to be solvable (for example, no rover may be soil-equipped).
func generate(p params, rng *rand.Rand) instance {
	inst := instance{}

	// Spanning tree over waypoints guarantees connectivity.
	type edge struct{ a, b int }
	var edges []edge
	for w := 1; w < p.Waypoints; w++ {
		parent := rng.Intn(w)
		edges = append(edges, edge{parent, w})
	}
	// A handful of extra random edges for branching routes.
	extra := p.Waypoints / 2
	for i := 0; i < extra; i++ {
		a, b := rng.Intn(p.Waypoints), rng.Intn(p.Waypoints)
		if a != b {
			edges = append(edges, edge{a, b})
		}
	}

	inst.Waypoints = make([]waypoint, p.Waypoints)
	for i := range inst.Waypoints {
		inst.Waypoints[i] = waypoint{ID: i, InSun: rng.Intn(3) == 0}
	}
	visible := make([][]bool, p.Waypoints)
	for i := range visible {
		visible[i] = make([]bool, p.Waypoints)
	}
	for _, e := range edges {
		visible[e.a][e.b] = true
		visible[e.b][e.a] = true
	}
	for a := range visible {
		for b, v := range visible[a] {
			if v {
				inst.Waypoints[a].Visible = append(inst.Waypoints[a].Visible, b)
			}
		}
	}

	inst.LanderAt = rng.Intn(p.Waypoints)

	inst.Rovers = make([]rover, p.Rovers)
	for i := range inst.Rovers {
		r := &inst.Rovers[i]
		r.ID = i
		r.Position = rng.Intn(p.Waypoints)
		r.Energy = 40 + rng.Intn(40)
		r.EquippedSoil = rng.Intn(2) == 0
		r.EquippedRock = rng.Intn(2) == 0
		r.EquippedImaging = rng.Intn(2) == 0
		for _, e := range edges {
			r.CanTraverse = append(r.CanTraverse, [2]int{e.a, e.b}, [2]int{e.b, e.a})
		}
	}

	inst.Stores = make([]store, p.Stores)
	for i := range inst.Stores {
		inst.Stores[i] = store{ID: i, RoverID: i % p.Rovers}
	}

	inst.Objectives = make([]objective, p.Objectives)
	for i := range inst.Objectives {
		w := rng.Intn(p.Waypoints)
		inst.Objectives[i] = objective{ID: i, Visible: []int{w}}
	}

	inst.Cameras = make([]camera, p.Cameras)
	for i := range inst.Cameras {
		c := &inst.Cameras[i]
		c.ID = i
		c.RoverID = i % p.Rovers
		c.CalibrationTargets = []int{rng.Intn(p.Objectives)}
		c.ModesSupported = []int{rng.Intn(3)}
	}

	soilWaypoint := rng.Intn(p.Waypoints)
	inst.Waypoints[soilWaypoint].HasSoilSample = true
	inst.Goal.Soil = []int{soilWaypoint}

	return inst
}

func writeProblem(f *os.File, inst instance) error {
	w := func(format string, args ...any) error {
		_, err := fmt.Fprintf(f, format, args...)
		return err
	}

	if err := w(":objects\n"); err != nil {
		return err
	}
	if err := writeObjectLine(f, "rover", len(inst.Rovers)); err != nil {
		return err
	}
	if err := writeObjectLine(f, "waypoint", len(inst.Waypoints)); err != nil {
		return err
	}
	if err := writeObjectLine(f, "camera", len(inst.Cameras)); err != nil {
		return err
	}
	if err := writeObjectLine(f, "store", len(inst.Stores)); err != nil {
		return err
	}
	if err := writeObjectLine(f, "objective", len(inst.Objectives)); err != nil {
		return err
	}
	if err := w("colour high_res low_res - mode\n"); err != nil {
		return err
	}

	if err := w(":init\n"); err != nil {
		return err
	}
	for _, wp := range inst.Waypoints {
		for _, v := range wp.Visible {
			if err := w("(visible waypoint%d waypoint%d)\n", wp.ID, v); err != nil {
				return err
			}
		}
		if wp.HasSoilSample {
			if err := w("(at_soil_sample waypoint%d)\n", wp.ID); err != nil {
				return err
			}
		}
		if wp.InSun {
			if err := w("(in_sun waypoint%d)\n", wp.ID); err != nil {
				return err
			}
		}
	}
	if err := w("(at_lander lander0 waypoint%d)\n(channel_free)\n", inst.LanderAt); err != nil {
		return err
	}
	for _, r := range inst.Rovers {
		if err := w("(in rover%d waypoint%d)\n(available rover%d)\n(= (energy rover%d) %d)\n",
			r.ID, r.Position, r.ID, r.ID, r.Energy); err != nil {
			return err
		}
		if r.EquippedSoil {
			if err := w("(equipped_for_soil_analysis rover%d)\n", r.ID); err != nil {
				return err
			}
		}
		if r.EquippedRock {
			if err := w("(equipped_for_rock_analysis rover%d)\n", r.ID); err != nil {
				return err
			}
		}
		if r.EquippedImaging {
			if err := w("(equipped_for_imaging rover%d)\n", r.ID); err != nil {
				return err
			}
		}
		for _, e := range r.CanTraverse {
			if err := w("(can_traverse rover%d waypoint%d waypoint%d)\n", r.ID, e[0], e[1]); err != nil {
				return err
			}
		}
	}
	for _, st := range inst.Stores {
		if err := w("(store_of store%d rover%d)\n(empty store%d)\n", st.ID, st.RoverID, st.ID); err != nil {
			return err
		}
	}
	for _, obj := range inst.Objectives {
		for _, v := range obj.Visible {
			if err := w("(visible_from objective%d waypoint%d)\n", obj.ID, v); err != nil {
				return err
			}
		}
	}
	for _, c := range inst.Cameras {
		if err := w("(on_board camera%d rover%d)\n", c.ID, c.RoverID); err != nil {
			return err
		}
		for _, t := range c.CalibrationTargets {
			if err := w("(calibration_target camera%d objective%d)\n", c.ID, t); err != nil {
				return err
			}
		}
		for _, m := range c.ModesSupported {
			if err := w("(supports camera%d %s)\n", c.ID, modeName(m)); err != nil {
				return err
			}
		}
	}
	if err := w("(= (recharges) 0)\n"); err != nil {
		return err
	}

	if err := w(":goal\n"); err != nil {
		return err
	}
	for _, wp := range inst.Goal.Soil {
		if err := w("(communicated_soil_data waypoint%d)\n", wp); err != nil {
			return err
		}
	}
	for _, wp := range inst.Goal.Rock {
		if err := w("(communicated_rock_data waypoint%d)\n", wp); err != nil {
			return err
		}
	}
	for _, pair := range inst.Goal.Image {
		if err := w("(communicated_image_data objective%d %s)\n", pair[0], modeName(pair[1])); err != nil {
			return err
		}
	}
	return nil
}

func writeObjectLine(f *os.File, typ string, count int) error {
	if count == 0 {
		return nil
	}
	names := ""
	for i := 0; i < count; i++ {
		if i > 0 {
			names += " "
		}
		names += fmt.Sprintf("%s%d", typ, i)
	}
	_, err := fmt.Fprintf(f, "%s - %s\n", names, typ)
	return err
}

func modeName(m int) string {
	switch m {
	case 0:
		return "colour"
	case 1:
		return "high_res"
	default:
		return "low_res"
	}
}
