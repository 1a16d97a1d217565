package gacha

import (
	"errors"
	"testing"
)

func TestRatesValidate(t *testing.T) {
	cases := []struct {
		name  string
		rates Rates
		ok    bool
	}{
		{"standard", standardRates, true},
		{"short", Rates{One: 79, Two: 18.5, Three: 2}, false},
		{"negative", Rates{One: 101, Two: -1, Three: 0}, false},
		{"all three star", Rates{Three: 100}, true},
	}
	for _, tc := range cases {
		err := tc.rates.Validate()
		if tc.ok && err != nil {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && !errors.Is(err, ErrRates) {
			t.Fatalf("%s: want ErrRates, got %v", tc.name, err)
		}
	}
}

func TestNewGachaRejectsEmptyTier(t *testing.T) {
	pool := []Student{student(1, "a", One), student(2, "b", Two)}
	_, err := NewGacha(standardRates, pool, nil, NewSeededRNG(1))
	if !errors.Is(err, ErrEmptyTier) {
		t.Fatalf("want ErrEmptyTier, got %v", err)
	}
}

func TestNewGachaRejectsOversizedPriority(t *testing.T) {
	pool := testPool(3)
	pri := []Priority{{Student: pool[len(pool)-1], Rate: 3}}
	_, err := NewGacha(standardRates, pool, pri, NewSeededRNG(1))
	if !errors.Is(err, ErrPriority) {
		t.Fatalf("want ErrPriority, got %v", err)
	}
}

func TestRollTierFrequencies(t *testing.T) {
	g, err := NewGacha(standardRates, testPool(5), nil, NewSeededRNG(42))
	if err != nil {
		t.Fatal(err)
	}
	const n = 200000
	counts := map[Rarity]int{}
	for i := 0; i < n; i++ {
		counts[g.Roll().Rarity]++
	}
	for _, r := range Rarities {
		want := standardRates.Of(r) / 100
		got := float64(counts[r]) / n
		if diff := got - want; diff > 0.01 || diff < -0.01 {
			t.Fatalf("%s: freq=%f want≈%f", r, got, want)
		}
	}
}

func TestPriorityStudentRate(t *testing.T) {
	pool := testPool(5)
	featured := pool[len(pool)-1] // a ★3
	g, err := NewGacha(standardRates, pool, []Priority{{Student: featured, Rate: 0.7}}, NewSeededRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	const n = 400000
	hits, otherThree := 0, 0
	for i := 0; i < n; i++ {
		s := g.Roll()
		switch {
		case s.ID == featured.ID:
			hits++
		case s.Rarity == Three:
			otherThree++
		}
	}
	if got := float64(hits) / n; got < 0.006 || got > 0.008 {
		t.Fatalf("featured freq=%f want≈0.007", got)
	}
	if got := float64(otherThree) / n; got < 0.017 || got > 0.019 {
		t.Fatalf("other ★3 freq=%f want≈0.018", got)
	}
}

func TestRoll10GuaranteesTwoStar(t *testing.T) {
	// ★1 at 99% makes an all-★1 first nine the common case.
	rates := Rates{One: 99, Two: 0.5, Three: 0.5}
	g, err := NewGacha(rates, testPool(3), nil, NewSeededRNG(3))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 2000; i++ {
		res := g.Roll10()
		if MaxRarity(res[:]) < Two {
			t.Fatalf("ten-roll %d has no ★2+: %v", i, res)
		}
	}
}

func TestRoll10WithoutTwoStarTierIsUnguaranteed(t *testing.T) {
	pool := []Student{student(1, "a", One), student(3, "c", Three)}
	g, err := NewGacha(Rates{One: 97.5, Three: 2.5}, pool, nil, NewSeededRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	res := g.Roll10()
	if len(res) != TenRollSize {
		t.Fatalf("len=%d", len(res))
	}
}
