package exam

import (
	"sort"

	"github.com/shiken-app/shiken/internal/domain/problem"
)

// NumberedProblem pairs a problem with its display number within an exam.
type NumberedProblem struct {
	Number  int
	Problem *problem.Problem
}

// NumberProblems computes display numbering for a mock exam's problems.
// Numbers are never stored: the problems are grouped by type in the canonical
// section order, sorted within each type by the canonical subtype order, and
// numbered sequentially from 1 across the whole concatenation. Ties inside a
// subtype break by id so repeated reads are stable regardless of fetch order.
func NumberProblems(problems []*problem.Problem) []NumberedProblem {
	ordered := append([]*problem.Problem(nil), problems...)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ra, rb := a.Type().Rank(), b.Type().Rank(); ra != rb {
			return ra < rb
		}
		if ra, rb := a.SubType().RankWithin(a.Type()), b.SubType().RankWithin(b.Type()); ra != rb {
			return ra < rb
		}
		return a.ID() < b.ID()
	})

	numbered := make([]NumberedProblem, len(ordered))
	for i, p := range ordered {
		numbered[i] = NumberedProblem{Number: i + 1, Problem: p}
	}
	return numbered
}
