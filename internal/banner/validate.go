package banner

import (
	"fmt"
	"math"
	"strings"

	"github.com/xtding233/arona/internal/gacha"
	"golang.org/x/text/language"
)

// ValidateRaw checks a merged RawBanner against the catalog.
func ValidateRaw(cfg RawBanner, cat *Catalog) error {
	var errs []string

	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, "name is required")
	}
	for key := range cfg.Translations {
		if _, err := language.Parse(key); err != nil {
			errs = append(errs, fmt.Sprintf("translations: bad language %q", key))
		}
	}

	// rates
	if cfg.Rates == nil || cfg.Rates.One == nil || cfg.Rates.Two == nil || cfg.Rates.Three == nil {
		errs = append(errs, "rates.one, rates.two and rates.three are required")
	} else {
		sum := 0.0
		rates := []struct {
			key string
			v   float64
		}{{"one", *cfg.Rates.One}, {"two", *cfg.Rates.Two}, {"three", *cfg.Rates.Three}}
		for _, r := range rates {
			if !(r.v >= 0 && r.v <= 100) {
				errs = append(errs, fmt.Sprintf("rates.%s must be in [0,100]", r.key))
			}
			sum += r.v
		}
		if math.Abs(sum-100) > 1e-6 {
			errs = append(errs, fmt.Sprintf("rates must sum to 100, got %v", sum))
		}
	}

	// pool
	inPool := make(map[int]bool)
	if cfg.Pool.All {
		if len(cfg.Pool.One)+len(cfg.Pool.Two)+len(cfg.Pool.Three) > 0 {
			errs = append(errs, "pool.all cannot be combined with tier lists")
		}
		for _, name := range cfg.Pool.Exclude {
			if _, ok := cat.Lookup(name); !ok {
				errs = append(errs, fmt.Sprintf("pool.exclude: unknown student %q", name))
			}
		}
		for _, s := range resolvePool(cfg.Pool, cat) {
			inPool[s.ID] = true
		}
	} else {
		if len(cfg.Pool.Exclude) > 0 {
			errs = append(errs, "pool.exclude requires pool.all")
		}
		tiers := []struct {
			key    string
			rarity gacha.Rarity
			names  []string
		}{
			{"three", gacha.Three, cfg.Pool.Three},
			{"two", gacha.Two, cfg.Pool.Two},
			{"one", gacha.One, cfg.Pool.One},
		}
		for _, tier := range tiers {
			for _, name := range tier.names {
				s, ok := cat.Lookup(name)
				switch {
				case !ok:
					errs = append(errs, fmt.Sprintf("pool.%s: unknown student %q", tier.key, name))
				case s.Rarity != tier.rarity:
					errs = append(errs, fmt.Sprintf("pool.%s: %q is %s", tier.key, name, s.Rarity))
				case inPool[s.ID]:
					errs = append(errs, fmt.Sprintf("pool.%s: %q listed twice", tier.key, name))
				default:
					inPool[s.ID] = true
				}
			}
		}
	}
	if len(inPool) == 0 {
		errs = append(errs, "pool is empty")
	}

	// priority
	for i, p := range cfg.Priority {
		s, ok := cat.Lookup(p.Name)
		if !ok {
			errs = append(errs, fmt.Sprintf("priority[%d]: unknown student %q", i, p.Name))
			continue
		}
		if !inPool[s.ID] {
			errs = append(errs, fmt.Sprintf("priority[%d]: %q is not in the pool", i, p.Name))
		}
		if !(p.Rate > 0 && p.Rate <= 100) {
			errs = append(errs, fmt.Sprintf("priority[%d].rate must be in (0,100]", i))
		}
	}

	// sparkable
	for i, name := range cfg.Sparkable {
		s, ok := cat.Lookup(name)
		if !ok {
			errs = append(errs, fmt.Sprintf("sparkable[%d]: unknown student %q", i, name))
			continue
		}
		if !inPool[s.ID] {
			errs = append(errs, fmt.Sprintf("sparkable[%d]: %q is not in the pool", i, name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
