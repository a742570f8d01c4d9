package core

// Rover is a mobile agent. CanTraverse is immutable after parse and shared
// by reference across clones.
type Rover struct {
	ID              int
	Position        int
	Energy          int
	Available       bool
	EquippedSoil    bool
	EquippedRock    bool
	EquippedImaging bool

	HasSoilAnalysis []bool // indexed by waypoint
	HasRockAnalysis []bool // indexed by waypoint
	HaveImage       [][]bool // [objective][mode]

	CanTraverse [][]bool // [from][to], immutable
}

func (r *Rover) clone() Rover {
	c := *r
	c.HasSoilAnalysis = append([]bool(nil), r.HasSoilAnalysis...)
	c.HasRockAnalysis = append([]bool(nil), r.HasRockAnalysis...)
	c.HaveImage = make([][]bool, len(r.HaveImage))
	for i, row := range r.HaveImage {
		c.HaveImage[i] = append([]bool(nil), row...)
	}
	// CanTraverse is immutable: share the backing slices.
	return c
}

// Waypoint is a discrete location. VisibleWaypoints is immutable after parse.
type Waypoint struct {
	ID               int
	HasSoilSample    bool
	HasRockSample    bool
	CommunicatedSoil bool
	CommunicatedRock bool
	InSun            bool
	VisibleWaypoints []bool // immutable
}

func (w *Waypoint) clone() Waypoint {
	c := *w
	return c
}

// Camera belongs to exactly one rover (RoverID, immutable).
type Camera struct {
	ID                 int
	Calibrated         bool
	RoverID            int      // immutable
	CalibrationTargets []bool   // immutable, indexed by objective
	ModesSupported     []bool   // immutable, indexed by mode
}

func (c *Camera) clone() Camera {
	return *c
}

// Store belongs to exactly one rover (RoverID, immutable).
type Store struct {
	ID      int
	IsFull  bool
	RoverID int // immutable
}

// Objective is a remote imaging target observed from specific waypoints.
type Objective struct {
	ID                int
	CommunicatedImage []bool // indexed by mode
	VisibleWaypoints  []bool // immutable
}

func (o *Objective) clone() Objective {
	c := *o
	c.CommunicatedImage = append([]bool(nil), o.CommunicatedImage...)
	return c
}

// Lander is the fixed relay station.
type Lander struct {
	Position    int // immutable
	ChannelFree bool
}

// Goal is the process-wide, read-only target predicate set.
type Goal struct {
	Soil  []bool   // indexed by waypoint
	Rock  []bool   // indexed by waypoint
	Image [][]bool // [objective][mode]
}

// IsEmpty reports whether the goal has no outstanding predicates at all.
func (g *Goal) IsEmpty() bool {
	for _, v := range g.Soil {
		if v {
			return false
		}
	}
	for _, v := range g.Rock {
		if v {
			return false
		}
	}
	for _, row := range g.Image {
		for _, v := range row {
			if v {
				return false
			}
		}
	}
	return true
}

// State is the full mutable world snapshot.
type State struct {
	Rovers     []Rover
	Waypoints  []Waypoint
	Cameras    []Camera
	Stores     []Store
	Objectives []Objective
	Lander     Lander
	Recharges  int
}

// Clone deep-copies every mutable field; immutable adjacency/visibility
// slices are shared by reference. Cloning, not undoing, is the mutation
// strategy throughout the search: states are small enough that copying
// beats maintaining an undo log.
func (s *State) Clone() *State {
	c := &State{
		Rovers:     make([]Rover, len(s.Rovers)),
		Waypoints:  make([]Waypoint, len(s.Waypoints)),
		Cameras:    make([]Camera, len(s.Cameras)),
		Stores:     append([]Store(nil), s.Stores...),
		Objectives: make([]Objective, len(s.Objectives)),
		Lander:     s.Lander,
		Recharges:  s.Recharges,
	}
	for i := range s.Rovers {
		c.Rovers[i] = s.Rovers[i].clone()
	}
	for i := range s.Waypoints {
		c.Waypoints[i] = s.Waypoints[i].clone()
	}
	for i := range s.Cameras {
		c.Cameras[i] = s.Cameras[i].clone()
	}
	for i := range s.Objectives {
		c.Objectives[i] = s.Objectives[i].clone()
	}
	return c
}

// IsGoal reports whether every predicate the goal sets is also set in state.
func (s *State) IsGoal(g *Goal) bool {
	for w, want := range g.Soil {
		if want && !s.Waypoints[w].CommunicatedSoil {
			return false
		}
	}
	for w, want := range g.Rock {
		if want && !s.Waypoints[w].CommunicatedRock {
			return false
		}
	}
	for o, modes := range g.Image {
		for m, want := range modes {
			if want && !s.Objectives[o].CommunicatedImage[m] {
				return false
			}
		}
	}
	return true
}
