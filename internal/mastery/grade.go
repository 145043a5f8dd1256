package mastery

import "math"

// Grade is a letter grade summarizing module accuracy.
type Grade string

const (
	GradeSPlus Grade = "S+"
	GradeS     Grade = "S"
	GradeA     Grade = "A"
	GradeBPlus Grade = "B+"
	GradeB     Grade = "B"
	GradeCPlus Grade = "C+"
	GradeC     Grade = "C"
	GradeD     Grade = "D"
	GradeF     Grade = "F"
)

// gradeCutoff pairs a grade with its inclusive lower accuracy bound.
type gradeCutoff struct {
	grade Grade
	min   int
}

// gradeCutoffs lists grades from highest to lowest. The boundaries are
// fixed product constants; changing them breaks established learner
// expectations.
var gradeCutoffs = []gradeCutoff{
	{GradeSPlus, 97},
	{GradeS, 95},
	{GradeA, 90},
	{GradeBPlus, 85},
	{GradeB, 80},
	{GradeCPlus, 75},
	{GradeC, 70},
	{GradeD, 60},
}

// Assessment is the mastery picture for a module.
type Assessment struct {
	AccuracyPct int
	Grade       Grade
}

// Assess computes the accuracy percentage and letter grade from lifetime
// counters. Pure function; a zero total yields 0% and an F.
func Assess(correct, total int) Assessment {
	pct := 0
	if total > 0 {
		pct = int(math.Round(100 * float64(correct) / float64(total)))
	}
	return Assessment{AccuracyPct: pct, Grade: GradeFor(pct)}
}

// GradeFor maps an accuracy percentage to its letter grade.
func GradeFor(accuracyPct int) Grade {
	for _, c := range gradeCutoffs {
		if accuracyPct >= c.min {
			return c.grade
		}
	}
	return GradeF
}
