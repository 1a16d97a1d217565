package gacha

import (
	"fmt"
	"strings"
)

// Rarity is the star tier of a student. Tiers are ordered: One < Two < Three.
type Rarity int

const (
	One Rarity = iota + 1
	Two
	Three
)

// Rarities lists every tier in ascending order.
var Rarities = [...]Rarity{One, Two, Three}

func (r Rarity) Valid() bool { return r >= One && r <= Three }

// Stars renders the tier as Discord star emoji, e.g. ":star::star:".
func (r Rarity) Stars() string {
	if !r.Valid() {
		return ""
	}
	return strings.Repeat(":star:", int(r))
}

// Color returns the embed colour for the tier as 0xRRGGBB.
func (r Rarity) Color() int {
	switch r {
	case Two:
		return rgb(255, 248, 124)
	case Three:
		return rgb(253, 198, 229)
	default:
		return rgb(227, 234, 240)
	}
}

func (r Rarity) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Rarity(%d)", int(r))
	}
	return fmt.Sprintf("%d★", int(r))
}

// MaxRarity returns the highest tier among students, One for an empty slice.
func MaxRarity(students []Student) Rarity {
	max := One
	for _, s := range students {
		if s.Rarity > max {
			max = s.Rarity
		}
	}
	return max
}

func rgb(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}
