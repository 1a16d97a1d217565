package gacha

import "golang.org/x/text/language"

// Student is one recruitable character. Loaded once, never mutated.
type Student struct {
	ID     int
	Names  map[language.Tag]string
	Rarity Rarity
}

// Name returns the display name in the given language.
func (s Student) Name(tag language.Tag) (string, bool) {
	n, ok := s.Names[tag]
	return n, ok && n != ""
}

// String is the Japanese name, the canonical key in banner configs.
func (s Student) String() string {
	n, _ := s.Name(language.Japanese)
	return n
}
