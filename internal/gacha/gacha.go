package gacha

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrRates     = errors.New("invalid rates; each tier must be >= 0 and the total must be 100")
	ErrEmptyTier = errors.New("tier has a positive rate but no students")
	ErrPriority  = errors.New("invalid priority students")
)

// rateEpsilon absorbs float noise when summing percentages such as 79 + 18.5 + 2.5.
const rateEpsilon = 1e-6

// TenRollSize is the number of students returned by Roll10.
const TenRollSize = 10

// Rates are per-tier percentages, e.g. {79, 18.5, 2.5}.
type Rates struct {
	One   float64
	Two   float64
	Three float64
}

// Of returns the rate of a tier.
func (r Rates) Of(t Rarity) float64 {
	switch t {
	case One:
		return r.One
	case Two:
		return r.Two
	case Three:
		return r.Three
	}
	return 0
}

func (r Rates) Validate() error {
	var sum float64
	for _, t := range Rarities {
		v := r.Of(t)
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return fmt.Errorf("%w: %s rate %v", ErrRates, t, v)
		}
		sum += v
	}
	if math.Abs(sum-100) > rateEpsilon {
		return fmt.Errorf("%w: total %v", ErrRates, sum)
	}
	return nil
}

// Priority is a rate-up student with an absolute rate in percent. The rate is
// carved out of the student's tier; the rest of the tier shares what remains.
type Priority struct {
	Student Student
	Rate    float64
}

type tier struct {
	regular  []Student
	priority []Priority
	// weights has one entry per priority student and a trailing entry for the
	// regular students as a group.
	weights []float64
}

// Gacha draws students from a tiered pool. It is immutable once built and safe
// for concurrent use as long as its RandomSource is.
type Gacha struct {
	rates     Rates
	tiers     map[Rarity]*tier
	weights   []float64 // one weight per tier, index = Rarity-1
	guarantee []float64 // tier weights for the last slot of a ten-roll without a ★2+; nil if disabled
	rng       RandomSource
}

// NewGacha validates rates against the pool and builds a Gacha.
// Priority students are removed from the uniform part of their tier.
func NewGacha(rates Rates, pool []Student, priority []Priority, rng RandomSource) (*Gacha, error) {
	if err := rates.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = DefaultRNG()
	}

	prioritized := make(map[int]bool, len(priority))
	tiers := make(map[Rarity]*tier, len(Rarities))
	for _, t := range Rarities {
		tiers[t] = &tier{}
	}
	for _, p := range priority {
		if !p.Student.Rarity.Valid() {
			return nil, fmt.Errorf("%w: %s has %s", ErrPriority, p.Student, p.Student.Rarity)
		}
		if math.IsNaN(p.Rate) || math.IsInf(p.Rate, 0) || p.Rate <= 0 {
			return nil, fmt.Errorf("%w: %s rate %v", ErrPriority, p.Student, p.Rate)
		}
		if prioritized[p.Student.ID] {
			return nil, fmt.Errorf("%w: %s listed twice", ErrPriority, p.Student)
		}
		prioritized[p.Student.ID] = true
		tiers[p.Student.Rarity].priority = append(tiers[p.Student.Rarity].priority, p)
	}
	for _, s := range pool {
		if !s.Rarity.Valid() {
			return nil, fmt.Errorf("student %s has %s", s, s.Rarity)
		}
		if prioritized[s.ID] {
			continue
		}
		tiers[s.Rarity].regular = append(tiers[s.Rarity].regular, s)
	}

	g := &Gacha{rates: rates, tiers: tiers, rng: rng}
	for _, t := range Rarities {
		rate := rates.Of(t)
		tr := tiers[t]
		var carved float64
		for _, p := range tr.priority {
			carved += p.Rate
			tr.weights = append(tr.weights, p.Rate)
		}
		rest := rate - carved
		if rest < -rateEpsilon {
			return nil, fmt.Errorf("%w: %s priority total %v exceeds tier rate %v", ErrPriority, t, carved, rate)
		}
		if rest <= rateEpsilon || len(tr.regular) == 0 {
			rest = 0
		}
		if rate > 0 && rest == 0 && carved+rateEpsilon < rate {
			return nil, fmt.Errorf("%w: %s", ErrEmptyTier, t)
		}
		tr.weights = append(tr.weights, rest)
		g.weights = append(g.weights, rate)
	}

	if rates.Two > 0 && len(tiers[Two].regular)+len(tiers[Two].priority) > 0 {
		g.guarantee = []float64{0, rates.One + rates.Two, rates.Three}
	}
	return g, nil
}

// Rates returns the tier percentages the gacha was built with.
func (g *Gacha) Rates() Rates { return g.rates }

// Roll draws one student.
func (g *Gacha) Roll() Student {
	return g.roll(g.weights)
}

// Roll10 draws ten students. If none of the first nine is ★2 or better, the
// tenth slot folds the ★1 rate into ★2.
func (g *Gacha) Roll10() [TenRollSize]Student {
	var out [TenRollSize]Student
	guaranteed := g.guarantee == nil
	for i := 0; i < TenRollSize-1; i++ {
		out[i] = g.Roll()
		if out[i].Rarity >= Two {
			guaranteed = true
		}
	}
	if guaranteed {
		out[TenRollSize-1] = g.Roll()
	} else {
		out[TenRollSize-1] = g.roll(g.guarantee)
	}
	return out
}

func (g *Gacha) roll(tierWeights []float64) Student {
	idx, err := pick(tierWeights, g.rng)
	if err != nil {
		// weights were validated in NewGacha
		panic(fmt.Sprintf("gacha: %v", err))
	}
	tr := g.tiers[Rarities[idx]]
	i, err := pick(tr.weights, g.rng)
	if err != nil {
		panic(fmt.Sprintf("gacha: %s: %v", Rarities[idx], err))
	}
	if i < len(tr.priority) {
		return tr.priority[i].Student
	}
	j := int(g.rng.Float64() * float64(len(tr.regular)))
	if j >= len(tr.regular) {
		j = len(tr.regular) - 1
	}
	return tr.regular[j]
}
