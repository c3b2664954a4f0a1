package score

import "math"

// Confidence estimates extraction quality from the volume of classified
// facts and the average relevance of the contributing blocks. Returns beyond
// six eligibility facts and four document facts diminish to nothing, and the
// ceiling of 0.98 reflects that a heuristic pass is never certain.
func Confidence(eligibility, documents []string, top []Scored) float64 {
	base := math.Min(0.6,
		0.15*math.Min(6, float64(len(eligibility)))+
			0.1*math.Min(4, float64(len(documents))))

	avg := 0.0
	if len(top) > 0 {
		sum := 0.0
		for _, s := range top {
			sum += s.Score
		}
		avg = sum / float64(len(top))
	}

	if len(eligibility) == 0 && len(documents) == 0 {
		// Floor for pages where nothing classified, lifted slightly by any
		// structural signal the scorer still found.
		return 0.12 + avg*0.1
	}
	return math.Min(0.98, base+0.4*avg)
}
