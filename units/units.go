// Package units converts measurements between the units used by the imaging
// tools: distances between pixels and physical lengths via the camera pixel
// pitch, and times between frames and seconds via the frame exposure.
package units

import "fmt"

// DistanceUnit identifies a spatial unit.
type DistanceUnit int

const (
	Pixel DistanceUnit = iota
	Micron
	Nanometre
)

func (u DistanceUnit) String() string {
	switch u {
	case Pixel:
		return "px"
	case Micron:
		return "um"
	case Nanometre:
		return "nm"
	default:
		return fmt.Sprintf("DistanceUnit(%d)", int(u))
	}
}

// ConvertDistance converts v between distance units. pixelPitch is the size
// of one pixel in microns and must be positive when converting to or from
// pixels.
func ConvertDistance(v float64, from, to DistanceUnit, pixelPitch float64) (float64, error) {
	if from == to {
		return v, nil
	}
	if (from == Pixel || to == Pixel) && pixelPitch <= 0 {
		return 0, fmt.Errorf("units: pixel pitch must be positive, got %g", pixelPitch)
	}

	// Normalise to microns, then to the target unit.
	var um float64
	switch from {
	case Pixel:
		um = v * pixelPitch
	case Micron:
		um = v
	case Nanometre:
		um = v / 1000
	default:
		return 0, fmt.Errorf("units: unknown distance unit %v", from)
	}
	switch to {
	case Pixel:
		return um / pixelPitch, nil
	case Micron:
		return um, nil
	case Nanometre:
		return um * 1000, nil
	default:
		return 0, fmt.Errorf("units: unknown distance unit %v", to)
	}
}

// TimeUnit identifies a temporal unit.
type TimeUnit int

const (
	Frame TimeUnit = iota
	Second
	Millisecond
)

func (u TimeUnit) String() string {
	switch u {
	case Frame:
		return "frame"
	case Second:
		return "s"
	case Millisecond:
		return "ms"
	default:
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
}

// ConvertTime converts v between time units. exposure is the duration of one
// frame in seconds and must be positive when converting to or from frames.
func ConvertTime(v float64, from, to TimeUnit, exposure float64) (float64, error) {
	if from == to {
		return v, nil
	}
	if (from == Frame || to == Frame) && exposure <= 0 {
		return 0, fmt.Errorf("units: frame exposure must be positive, got %g", exposure)
	}

	// Normalise to seconds, then to the target unit.
	var s float64
	switch from {
	case Frame:
		s = v * exposure
	case Second:
		s = v
	case Millisecond:
		s = v / 1000
	default:
		return 0, fmt.Errorf("units: unknown time unit %v", from)
	}
	switch to {
	case Frame:
		return s / exposure, nil
	case Second:
		return s, nil
	case Millisecond:
		return s * 1000, nil
	default:
		return 0, fmt.Errorf("units: unknown time unit %v", to)
	}
}
