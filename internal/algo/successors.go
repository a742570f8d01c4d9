package algo

import "github.com/elektrokombinacija/roverplan/internal/core"

// GenerateActions enumerates the grounded actions applicable from state
// under goal, per rover, in the fixed order: recharge, sample_soil,
// sample_rock, calibrate/take_image, communicate_*, drop, navigate. This
// order is part of the search's observable behaviour: it determines
// heap tie-breaking among equal-priority children and therefore which
// plan a given run produces. The static guards mirror each action's
// preconditions so the caller's core.Apply call is expected to succeed;
// Apply is still the source of truth and is always consulted.
func GenerateActions(s *core.State, g *core.Goal) []core.Action {
	var actions []core.Action

	for ri := range s.Rovers {
		r := &s.Rovers[ri]
		if !r.Available {
			continue
		}
		p := r.Position

		if s.Waypoints[p].InSun && r.Energy < core.RechargeEnergyFloor {
			actions = append(actions, core.Action{Kind: core.Recharge, Params: []int{ri, p}})
		}

		if r.EquippedSoil && r.Energy >= core.SampleSoilCost && g.Soil[p] &&
			!s.Waypoints[p].CommunicatedSoil && s.Waypoints[p].HasSoilSample {
			for si, st := range s.Stores {
				if st.RoverID == ri && !st.IsFull {
					actions = append(actions, core.Action{Kind: core.SampleSoil, Params: []int{ri, si, p}})
				}
			}
		}

		if r.EquippedRock && r.Energy >= core.SampleRockCost && g.Rock[p] &&
			!s.Waypoints[p].CommunicatedRock && s.Waypoints[p].HasRockSample {
			for si, st := range s.Stores {
				if st.RoverID == ri && !st.IsFull {
					actions = append(actions, core.Action{Kind: core.SampleRock, Params: []int{ri, si, p}})
				}
			}
		}

		for ci, cam := range s.Cameras {
			if cam.RoverID != ri {
				continue
			}
			for oi, obj := range s.Objectives {
				if !cam.CalibrationTargets[oi] || !obj.VisibleWaypoints[p] {
					continue
				}
				if r.EquippedImaging && r.Energy >= core.CalibrateCost {
					actions = append(actions, core.Action{Kind: core.Calibrate, Params: []int{ri, ci, oi, p}})
				}
				if cam.Calibrated && r.EquippedImaging && r.Energy >= core.TakeImageCost {
					for m := range cam.ModesSupported {
						if !cam.ModesSupported[m] || !g.Image[oi][m] || obj.CommunicatedImage[m] {
							continue
						}
						actions = append(actions, core.Action{Kind: core.TakeImage, Params: []int{ri, p, oi, ci, m}})
					}
				}
			}
		}

		if s.Lander.ChannelFree && s.Waypoints[p].VisibleWaypoints[s.Lander.Position] && r.Available {
			landerWP := s.Lander.Position

			for w := range s.Waypoints {
				if g.Soil[w] && !s.Waypoints[w].CommunicatedSoil && r.HasSoilAnalysis[w] && r.Energy >= core.CommunicateSoilCost {
					actions = append(actions, core.Action{Kind: core.CommunicateSoilData, Params: []int{ri, w, p, landerWP}})
				}
			}
			for w := range s.Waypoints {
				if g.Rock[w] && !s.Waypoints[w].CommunicatedRock && r.HasRockAnalysis[w] && r.Energy >= core.CommunicateRockCost {
					actions = append(actions, core.Action{Kind: core.CommunicateRockData, Params: []int{ri, w, p, landerWP}})
				}
			}
			for oi, obj := range s.Objectives {
				for m := range obj.CommunicatedImage {
					if g.Image[oi][m] && !obj.CommunicatedImage[m] && r.HaveImage[oi][m] && r.Energy >= core.CommunicateImageCost {
						actions = append(actions, core.Action{Kind: core.CommunicateImageData, Params: []int{ri, oi, m, p, landerWP}})
					}
				}
			}
		}

		for si, st := range s.Stores {
			if st.RoverID == ri && st.IsFull {
				actions = append(actions, core.Action{Kind: core.Drop, Params: []int{ri, si}})
			}
		}

		if r.Energy >= core.NavigateCost {
			for w := range s.Waypoints {
				if w == p {
					continue
				}
				if s.Waypoints[p].VisibleWaypoints[w] && r.CanTraverse[p][w] {
					actions = append(actions, core.Action{Kind: core.Navigate, Params: []int{ri, p, w}})
				}
			}
		}
	}

	return actions
}
