package hermite

import "github.com/npillmayer/curvemaker"

// DefaultSplit is the number of line pieces a segment is sampled into for
// drawing.
const DefaultSplit = 100

// SampleSegment evaluates segment i at split+1 equidistant x-coordinates,
// starting at point i and ending at point i+1.
func (spl *Spline) SampleSegment(i int, split int) []curvemaker.Pair {
	if split < 1 {
		split = 1
	}
	x1 := spl.points[i].Coord.X()
	x2 := spl.points[i+1].Coord.X()
	step := (x2 - x1) / float64(split)
	samples := make([]curvemaker.Pair, split+1)
	for j := 0; j < split; j++ {
		x := x1 + float64(j)*step
		samples[j] = curvemaker.P(x, spl.curves[i].Eval(x))
	}
	samples[split] = curvemaker.P(x2, spl.curves[i].Eval(x2))
	return samples
}

// Sample evaluates all segments of the spline and returns a polyline from
// the first to the last control point. Joints between segments appear once.
func (spl *Spline) Sample(split int) []curvemaker.Pair {
	var line []curvemaker.Pair
	for i := 0; i < spl.Segments(); i++ {
		samples := spl.SampleSegment(i, split)
		if i > 0 {
			samples = samples[1:]
		}
		line = append(line, samples...)
	}
	return line
}
