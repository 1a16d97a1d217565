// types.go
package banner

// RawBanner is a banner file as written in YAML, before name resolution.
type RawBanner struct {
	Name         string            `yaml:"name"`
	Translations map[string]string `yaml:"translations,omitempty"` // BCP 47 tag -> title
	ImageURL     string            `yaml:"image_url,omitempty"`
	Rates        *RatesConfig      `yaml:"rates,omitempty"`
	Pool         PoolConfig        `yaml:"pool"`
	Priority     []PriorityConfig  `yaml:"priority,omitempty"`
	Sparkable    []string          `yaml:"sparkable,omitempty"`
}

// RatesConfig holds tier percentages. Nil fields inherit from default.yaml.
type RatesConfig struct {
	One   *float64 `yaml:"one"`
	Two   *float64 `yaml:"two"`
	Three *float64 `yaml:"three"`
}

// PoolConfig lists students by tier, or takes the whole catalog when All is set.
type PoolConfig struct {
	All     bool     `yaml:"all,omitempty"`
	Exclude []string `yaml:"exclude,omitempty"`
	Three   []string `yaml:"three,omitempty"`
	Two     []string `yaml:"two,omitempty"`
	One     []string `yaml:"one,omitempty"`
}

type PriorityConfig struct {
	Name string  `yaml:"name"`
	Rate float64 `yaml:"rate"` // absolute percent
}

// rawCatalog mirrors data/students.yaml.
type rawCatalog struct {
	Students []rawStudent `yaml:"students"`
}

type rawStudent struct {
	ID     int               `yaml:"id"`
	Rarity int               `yaml:"rarity"`
	Names  map[string]string `yaml:"names"`
}
