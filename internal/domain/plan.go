package domain

// ConversionPlan is the enumerated work of a run before any file is
// touched.
type ConversionPlan struct {
	Paths      ResolvedPaths
	Candidates []Candidate
}

// Outcome classifies what happened to a single candidate.
type Outcome int

const (
	Converted Outcome = iota
	Skipped
	Failed
)

// RunCounters accumulates per-candidate outcomes. The sum of the three
// fields always equals the number of candidates processed.
type RunCounters struct {
	Successful int
	Failed     int
	Skipped    int
}

func (c *RunCounters) Record(o Outcome) {
	switch o {
	case Converted:
		c.Successful++
	case Skipped:
		c.Skipped++
	case Failed:
		c.Failed++
	}
}

func (c RunCounters) Processed() int {
	return c.Successful + c.Failed + c.Skipped
}
