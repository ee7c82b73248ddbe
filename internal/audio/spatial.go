package audio

import (
	"github.com/iburimskiy/zen-garden/internal/vmath"
)

// Inverse distance model, same parameters as a browser PannerNode set to
// refDistance 1, maxDistance 10, rolloffFactor 1.
const (
	refDistance = 1.0
	maxDistance = 10.0
	rolloff     = 1.0
)

// Listener is the ear position and facing used to place sounds
type Listener struct {
	Position vmath.Vec3
	Forward  vmath.Vec3
}

// DefaultListener sits at the default camera looking at the garden.
func DefaultListener() Listener {
	return Listener{
		Position: vmath.V3(0, 2, 8),
		Forward:  vmath.V3(0, 0, -1),
	}
}

// distanceGain attenuates by distance d using the inverse model.
func distanceGain(d float64) float64 {
	if d > maxDistance {
		d = maxDistance
	}
	if d <= refDistance {
		return 1
	}
	return refDistance / (refDistance + rolloff*(d-refDistance))
}

// Place returns the gain and stereo pan (-1 left, 1 right) for a source at pos.
func (l Listener) Place(pos vmath.Vec3) (gain, pan float64) {
	dir := pos.Sub(l.Position)
	gain = distanceGain(dir.Len())

	fwd := l.Forward
	if fwd == (vmath.Vec3{}) {
		fwd = vmath.V3(0, 0, -1)
	}
	right := fwd.Cross(vmath.V3(0, 1, 0)).Normalize()
	if right == (vmath.Vec3{}) {
		right = vmath.V3(1, 0, 0)
	}
	pan = vmath.Clamp(dir.Normalize().Dot(right), -1, 1)
	return gain, pan
}
