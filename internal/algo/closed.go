package algo

import (
	"strconv"
	"strings"

	"github.com/elektrokombinacija/roverplan/internal/core"
)

// Fingerprint is a lossy canonical encoding of a state used for duplicate
// detection: two states with the same fingerprint are treated as equal by
// the closed set, even if they differ in fields the fingerprint drops.
type Fingerprint string

// MakeFingerprint packs the fields the domain's reference closed set keyed
// on, in the same order: rover positions and energy; soil/rock analysis
// bitmaps OR'd across rovers (which rover holds the analysis doesn't
// distinguish states); each rover's own have_image bitmap (this one stays
// per-rover); per-waypoint sample/communicated bitmaps; camera calibration
// bitmap; store-full bitmap; objective communicated-image bitmap collapsed
// over modes; and the recharges counter, which discriminates
// otherwise-identical states reached via a different number of recharges.
func MakeFingerprint(s *core.State) Fingerprint {
	var b strings.Builder

	for _, r := range s.Rovers {
		b.WriteByte('p')
		b.WriteString(strconv.Itoa(r.Position))
		b.WriteByte('e')
		b.WriteString(strconv.Itoa(r.Energy))
	}
	b.WriteByte(';')

	for w := range s.Waypoints {
		soil, rock := false, false
		for _, r := range s.Rovers {
			if r.HasSoilAnalysis[w] {
				soil = true
			}
			if r.HasRockAnalysis[w] {
				rock = true
			}
		}
		b.WriteByte(bitByte(soil))
		b.WriteByte(bitByte(rock))
	}
	b.WriteByte(';')

	for _, r := range s.Rovers {
		for _, row := range r.HaveImage {
			for _, v := range row {
				b.WriteByte(bitByte(v))
			}
		}
	}
	b.WriteByte(';')

	for _, w := range s.Waypoints {
		b.WriteByte(bitByte(w.HasSoilSample))
		b.WriteByte(bitByte(w.HasRockSample))
		b.WriteByte(bitByte(w.CommunicatedSoil))
		b.WriteByte(bitByte(w.CommunicatedRock))
	}
	b.WriteByte(';')

	for _, c := range s.Cameras {
		b.WriteByte(bitByte(c.Calibrated))
	}
	b.WriteByte(';')

	for _, st := range s.Stores {
		b.WriteByte(bitByte(st.IsFull))
	}
	b.WriteByte(';')

	for _, o := range s.Objectives {
		collapsed := false
		for _, v := range o.CommunicatedImage {
			if v {
				collapsed = true
				break
			}
		}
		b.WriteByte(bitByte(collapsed))
	}
	b.WriteByte(';')

	b.WriteString(strconv.Itoa(s.Recharges))

	return Fingerprint(b.String())
}

func bitByte(b bool) byte {
	if b {
		return '1'
	}
	return '0'
}

// ClosedSet is a set of fingerprints with amortised O(1) insert/lookup,
// backed by a Go map (the idiomatic replacement for the reference
// implementation's uthash table; a Bloom filter fast path is not needed
// since a map lookup here is already O(1)).
type ClosedSet struct {
	seen map[Fingerprint]struct{}
}

// NewClosedSet returns an empty closed set.
func NewClosedSet() *ClosedSet {
	return &ClosedSet{seen: make(map[Fingerprint]struct{})}
}

// Insert adds state's fingerprint if not already present. Returns true if
// the state was new (and now recorded), false if it was a duplicate.
func (c *ClosedSet) Insert(s *core.State) bool {
	fp := MakeFingerprint(s)
	if _, ok := c.seen[fp]; ok {
		return false
	}
	c.seen[fp] = struct{}{}
	return true
}

// Len returns the number of distinct fingerprints recorded.
func (c *ClosedSet) Len() int {
	return len(c.seen)
}
