package gacha

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// TrialGoal selects what the simulation measures per trial.
type TrialGoal string

const (
	// Rolls until the first ★3 student.
	GoalFirstThreeStar TrialGoal = "first_three_star"
	// Rolls until the first priority (rate-up) student.
	GoalFirstPriority TrialGoal = "first_priority"
	// Given a fixed budget of rolls, count ★3 students.
	GoalFixedBudget TrialGoal = "fixed_budget"
)

// maxRollsPerTrial bounds open-ended goals.
const maxRollsPerTrial = 1_000_000

var (
	ErrUnknownGoal = errors.New("unknown simulation goal")
	ErrNoPriority  = errors.New("banner has no priority students")
)

// SimBudget controls the number of rolls used in GoalFixedBudget.
type SimBudget struct {
	NumRolls int
}

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// raw samples for callers that want histograms
	Samples []int `json:"-"`
}

// calcStats computes mean, population variance and interpolated percentiles.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	percentile := func(p float64) float64 {
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		if i+1 >= n {
			return float64(sorted[n-1])
		}
		f := pos - float64(i)
		return float64(sorted[i])*(1-f) + float64(sorted[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}

// Priority lists the rate-up students of the gacha.
func (g *Gacha) Priority() []Priority {
	var out []Priority
	for _, t := range Rarities {
		out = append(out, g.tiers[t].priority...)
	}
	return out
}

func rollsUntil(g *Gacha, match func(Student) bool) (int, error) {
	for rolls := 1; rolls <= maxRollsPerTrial; rolls++ {
		if match(g.Roll()) {
			return rolls, nil
		}
	}
	return 0, fmt.Errorf("no match within %d rolls", maxRollsPerTrial)
}

// simulateOne returns the metric of one trial for the goal.
func simulateOne(g *Gacha, goal TrialGoal, budget *SimBudget) (int, error) {
	switch goal {
	case GoalFirstThreeStar:
		return rollsUntil(g, func(s Student) bool { return s.Rarity == Three })

	case GoalFirstPriority:
		featured := make(map[int]bool)
		for _, p := range g.Priority() {
			featured[p.Student.ID] = true
		}
		if len(featured) == 0 {
			return 0, ErrNoPriority
		}
		return rollsUntil(g, func(s Student) bool { return featured[s.ID] })

	case GoalFixedBudget:
		if budget == nil || budget.NumRolls <= 0 {
			return 0, nil
		}
		count := 0
		for i := 0; i < budget.NumRolls; i++ {
			if g.Roll().Rarity == Three {
				count++
			}
		}
		return count, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
}

// RunMonteCarlo repeats trials against g and returns summary stats.
func RunMonteCarlo(g *Gacha, goal TrialGoal, trials int, budget *SimBudget) (Stats, error) {
	if trials <= 0 {
		return Stats{}, nil
	}
	samples := make([]int, trials)
	for i := range samples {
		v, err := simulateOne(g, goal, budget)
		if err != nil {
			return Stats{}, err
		}
		samples[i] = v
	}
	return calcStats(samples), nil
}
