package core

const (
	IdleLabel      = "Idle"
	SchedulerLabel = "Scheduler"
)

// Segment is a maximal run of one label over the half-open tick range
// [Start, End).
type Segment struct {
	Start int    `json:"start"`
	End   int    `json:"end"`
	Label string `json:"label"`
}

func (s Segment) Len() int { return s.End - s.Start }

// Timeline is the per-tick occupancy log of one run.
type Timeline struct {
	labels []string
}

func (t *Timeline) Record(label string) {
	t.labels = append(t.labels, label)
}

func (t *Timeline) Len() int { return len(t.labels) }

// Labels returns a copy of the per-tick log.
func (t *Timeline) Labels() []string {
	return append([]string(nil), t.labels...)
}

// Count returns the number of ticks recorded with label.
func (t *Timeline) Count(label string) int {
	n := 0
	for _, l := range t.labels {
		if l == label {
			n++
		}
	}
	return n
}

func (t *Timeline) Compress() []Segment {
	return Compress(t.labels)
}

// Compress run-length encodes a per-tick label sequence.
func Compress(labels []string) []Segment {
	if len(labels) == 0 {
		return nil
	}
	var segments []Segment
	start := 0
	for i := 1; i < len(labels); i++ {
		if labels[i] != labels[start] {
			segments = append(segments, Segment{Start: start, End: i, Label: labels[start]})
			start = i
		}
	}
	return append(segments, Segment{Start: start, End: len(labels), Label: labels[start]})
}

// Expand is the inverse of Compress.
func Expand(segments []Segment) []string {
	var labels []string
	for _, s := range segments {
		for i := s.Start; i < s.End; i++ {
			labels = append(labels, s.Label)
		}
	}
	return labels
}
