package core

// Action names a grounded action kind and its parameter ids. Parameter
// order is fixed per kind and matches the domain's written solution syntax:
//
//	navigate:               [rover, from, to]
//	recharge:                [rover, waypoint]
//	sample_soil/sample_rock: [rover, store, waypoint]
//	drop:                    [rover, store]
//	calibrate:               [rover, camera, objective, waypoint]
//	take_image:              [rover, waypoint, objective, camera, mode]
//	communicate_soil/rock:   [rover, sample_waypoint, rover_waypoint, lander_waypoint]
//	communicate_image:       [rover, objective, mode, rover_waypoint, lander_waypoint]
type Action struct {
	Kind   ActionKind
	Params []int
}

// Apply checks the preconditions of action against state and, if they hold,
// returns the successor state and the energy spent. ok is false if any
// precondition fails; state is left untouched either way. goal gates the
// data-gathering and communication actions: the domain only permits
// sampling, imaging, or communicating data that some goal predicate asks
// for, and only while that predicate is still outstanding.
func Apply(state *State, goal *Goal, action Action) (next *State, cost int, ok bool) {
	switch action.Kind {
	case Navigate:
		return applyNavigate(state, action.Params)
	case Recharge:
		return applyRecharge(state, action.Params)
	case SampleSoil:
		return applySample(state, goal, action.Params, true)
	case SampleRock:
		return applySample(state, goal, action.Params, false)
	case Drop:
		return applyDrop(state, action.Params)
	case Calibrate:
		return applyCalibrate(state, action.Params)
	case TakeImage:
		return applyTakeImage(state, goal, action.Params)
	case CommunicateSoilData:
		return applyCommunicate(state, goal, action.Params, true)
	case CommunicateRockData:
		return applyCommunicate(state, goal, action.Params, false)
	case CommunicateImageData:
		return applyCommunicateImage(state, goal, action.Params)
	default:
		return nil, 0, false
	}
}

func applyNavigate(state *State, params []int) (*State, int, bool) {
	rid, from, to := params[0], params[1], params[2]
	r := &state.Rovers[rid]

	if !r.Available || r.Energy < NavigateCost || r.Position != from || from == to {
		return nil, 0, false
	}
	if !state.Waypoints[from].VisibleWaypoints[to] {
		return nil, 0, false
	}
	if !r.CanTraverse[from][to] {
		return nil, 0, false
	}

	next := state.Clone()
	next.Rovers[rid].Position = to
	next.Rovers[rid].Energy -= NavigateCost
	return next, NavigateCost, true
}

func applyRecharge(state *State, params []int) (*State, int, bool) {
	rid, wp := params[0], params[1]
	r := &state.Rovers[rid]

	if r.Position != wp || r.Energy >= RechargeEnergyFloor || !state.Waypoints[wp].InSun {
		return nil, 0, false
	}

	next := state.Clone()
	next.Rovers[rid].Energy += RechargeEnergyGain
	next.Recharges++
	return next, 0, true
}

func applySample(state *State, goal *Goal, params []int, soil bool) (*State, int, bool) {
	rid, sid, wp := params[0], params[1], params[2]
	r := &state.Rovers[rid]
	s := &state.Stores[sid]
	w := &state.Waypoints[wp]

	cost := SampleSoilCost
	equipped := r.EquippedSoil
	hasSample := w.HasSoilSample
	communicated := w.CommunicatedSoil
	wanted := goal.Soil[wp]
	if !soil {
		cost = SampleRockCost
		equipped = r.EquippedRock
		hasSample = w.HasRockSample
		communicated = w.CommunicatedRock
		wanted = goal.Rock[wp]
	}

	if r.Position != wp || r.Energy < cost || !hasSample || !equipped {
		return nil, 0, false
	}
	if s.RoverID != rid || s.IsFull || !wanted || communicated {
		return nil, 0, false
	}

	next := state.Clone()
	next.Stores[sid].IsFull = true
	next.Rovers[rid].Energy -= cost
	if soil {
		next.Rovers[rid].HasSoilAnalysis[wp] = true
		next.Waypoints[wp].HasSoilSample = false
	} else {
		next.Rovers[rid].HasRockAnalysis[wp] = true
		next.Waypoints[wp].HasRockSample = false
	}
	return next, cost, true
}

func applyDrop(state *State, params []int) (*State, int, bool) {
	rid, sid := params[0], params[1]
	s := &state.Stores[sid]

	if s.RoverID != rid || !s.IsFull {
		return nil, 0, false
	}

	next := state.Clone()
	next.Stores[sid].IsFull = false
	return next, 0, true
}

func applyCalibrate(state *State, params []int) (*State, int, bool) {
	rid, cid, oid, wp := params[0], params[1], params[2], params[3]
	r := &state.Rovers[rid]
	cam := &state.Cameras[cid]
	obj := &state.Objectives[oid]

	if !r.EquippedImaging || r.Energy < CalibrateCost || r.Position != wp {
		return nil, 0, false
	}
	if cam.RoverID != rid || !cam.CalibrationTargets[oid] || !obj.VisibleWaypoints[wp] {
		return nil, 0, false
	}

	next := state.Clone()
	next.Cameras[cid].Calibrated = true
	next.Rovers[rid].Energy -= CalibrateCost
	return next, CalibrateCost, true
}

func applyTakeImage(state *State, goal *Goal, params []int) (*State, int, bool) {
	rid, wp, oid, cid, mode := params[0], params[1], params[2], params[3], params[4]
	r := &state.Rovers[rid]
	cam := &state.Cameras[cid]
	obj := &state.Objectives[oid]

	if !cam.Calibrated || cam.RoverID != rid || !r.EquippedImaging {
		return nil, 0, false
	}
	if !cam.ModesSupported[mode] || !obj.VisibleWaypoints[wp] || r.Position != wp {
		return nil, 0, false
	}
	if r.Energy < TakeImageCost || !goal.Image[oid][mode] || obj.CommunicatedImage[mode] {
		return nil, 0, false
	}

	next := state.Clone()
	next.Rovers[rid].HaveImage[oid][mode] = true
	next.Cameras[cid].Calibrated = false
	next.Rovers[rid].Energy -= TakeImageCost
	return next, TakeImageCost, true
}

func applyCommunicate(state *State, goal *Goal, params []int, soil bool) (*State, int, bool) {
	rid, sampleWP, roverWP, landerWP := params[0], params[1], params[2], params[3]
	r := &state.Rovers[rid]
	lander := &state.Lander

	cost := CommunicateSoilCost
	if !soil {
		cost = CommunicateRockCost
	}

	if r.Position != roverWP || lander.Position != landerWP {
		return nil, 0, false
	}
	if !state.Waypoints[roverWP].VisibleWaypoints[landerWP] {
		return nil, 0, false
	}
	if !r.Available || !lander.ChannelFree || r.Energy < cost {
		return nil, 0, false
	}

	if soil {
		if !goal.Soil[sampleWP] || !r.HasSoilAnalysis[sampleWP] || state.Waypoints[sampleWP].CommunicatedSoil {
			return nil, 0, false
		}
	} else {
		if !goal.Rock[sampleWP] || !r.HasRockAnalysis[sampleWP] || state.Waypoints[sampleWP].CommunicatedRock {
			return nil, 0, false
		}
	}

	next := state.Clone()
	next.Rovers[rid].Energy -= cost
	if soil {
		next.Waypoints[sampleWP].CommunicatedSoil = true
	} else {
		next.Waypoints[sampleWP].CommunicatedRock = true
	}
	return next, cost, true
}

func applyCommunicateImage(state *State, goal *Goal, params []int) (*State, int, bool) {
	rid, oid, mode, roverWP, landerWP := params[0], params[1], params[2], params[3], params[4]
	r := &state.Rovers[rid]
	lander := &state.Lander
	obj := &state.Objectives[oid]

	if r.Position != roverWP || lander.Position != landerWP {
		return nil, 0, false
	}
	if !state.Waypoints[roverWP].VisibleWaypoints[landerWP] {
		return nil, 0, false
	}
	if !r.Available || !lander.ChannelFree || r.Energy < CommunicateImageCost {
		return nil, 0, false
	}
	if !goal.Image[oid][mode] || !r.HaveImage[oid][mode] || obj.CommunicatedImage[mode] {
		return nil, 0, false
	}

	next := state.Clone()
	next.Rovers[rid].Energy -= CommunicateImageCost
	next.Objectives[oid].CommunicatedImage[mode] = true
	return next, CommunicateImageCost, true
}
