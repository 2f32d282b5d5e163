package services

import "time"

const (
	msgStartOverlaps = "The selected start date overlaps with an existing booking."
	msgEndOverlaps   = "The selected end date overlaps with an existing booking."
	msgEncloses      = "The selected dates enclose an existing booking."
)

// Interval is a half-open [Start, End) time range.
type Interval struct {
	Start time.Time
	End   time.Time
}

func (a Interval) overlaps(b Interval) bool {
	return a.Start.Before(b.End) && a.End.After(b.Start)
}

// Overlap describes how a candidate interval collides with the existing ones.
type Overlap struct {
	StartOverlaps bool
	EndOverlaps   bool
	// Encloses is set when the candidate swallows an existing interval whole,
	// which neither boundary check sees.
	Encloses bool
}

func (o Overlap) Conflict() bool {
	return o.StartOverlaps || o.EndOverlaps || o.Encloses
}

func (o Overlap) Messages() []string {
	var msgs []string
	if o.StartOverlaps {
		msgs = append(msgs, msgStartOverlaps)
	}
	if o.EndOverlaps {
		msgs = append(msgs, msgEndOverlaps)
	}
	if o.Encloses {
		msgs = append(msgs, msgEncloses)
	}
	return msgs
}

// HasConflict reports whether candidate overlaps any of existing.
func HasConflict(candidate Interval, existing []Interval) bool {
	for _, e := range existing {
		if candidate.overlaps(e) {
			return true
		}
	}
	return false
}

// CheckOverlap classifies every collision between candidate and existing,
// for building messages once HasConflict has rejected the candidate.
func CheckOverlap(candidate Interval, existing []Interval) Overlap {
	var o Overlap
	for _, e := range existing {
		if !candidate.overlaps(e) {
			continue
		}

		start := !candidate.Start.Before(e.Start) && candidate.Start.Before(e.End)
		end := candidate.End.After(e.Start) && !candidate.End.After(e.End)

		o.StartOverlaps = o.StartOverlaps || start
		o.EndOverlaps = o.EndOverlaps || end
		o.Encloses = o.Encloses || (!start && !end)
	}
	return o
}
