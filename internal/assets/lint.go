package assets

import (
	"fmt"
	"strings"
)

// Severity of a Problem.
type Severity int

const (
	SeverityWarning Severity = iota
	SeverityError
)

func (s Severity) String() string {
	if s == SeverityError {
		return "error"
	}
	return "warning"
}

// Problem is a finding reported by Lint.
type Problem struct {
	Severity Severity
	// Group is the dotted path of the group the problem was found in.
	Group   string
	Message string
}

// Lint inspects a tree built with the "ignore" collision policy and reports
// identifier collisions, names that are not C identifiers and groups without
// any sprite below them.
func Lint(g Group) []Problem {
	var problems []Problem
	lint(g, g.Name, true, &problems)
	return problems
}

func lint(g Group, path string, reportEmpty bool, problems *[]Problem) {
	for _, d := range duplicates(g) {
		*problems = append(*problems, Problem{
			Severity: SeverityError,
			Group:    path,
			Message:  fmt.Sprintf("identifier %q is used by %s", d.Name, strings.Join(d.Paths, ", ")),
		})
	}
	for _, s := range g.Sprites {
		if !IsIdentifier(s.Name) {
			*problems = append(*problems, Problem{
				Severity: SeverityError,
				Group:    path,
				Message:  fmt.Sprintf("sprite %q (%s) is not a valid identifier", s.Name, s.Path),
			})
		}
	}
	if !IsIdentifier(g.Name) {
		*problems = append(*problems, Problem{
			Severity: SeverityError,
			Group:    path,
			Message:  fmt.Sprintf("group %q (%s) is not a valid identifier", g.Name, g.Path),
		})
	}
	empty := CountSprites(g) == 0
	if empty && reportEmpty {
		*problems = append(*problems, Problem{
			Severity: SeverityWarning,
			Group:    path,
			Message:  fmt.Sprintf("no sprites below %s", g.Path),
		})
	}
	for _, c := range g.Groups {
		// Only the topmost empty group is reported.
		lint(c, path+"."+c.Name, reportEmpty && !empty, problems)
	}
}

// ErrorCount returns the number of error-level problems.
func ErrorCount(problems []Problem) int {
	n := 0
	for _, p := range problems {
		if p.Severity == SeverityError {
			n++
		}
	}
	return n
}
