package gacha

import "golang.org/x/text/language"

// Banner is a recruitment event: a named gacha plus the students that can be
// exchanged for recruitment points (sparked).
type Banner struct {
	ID           string
	Name         string // Japanese title
	Translations map[language.Tag]string
	ImageURL     string
	Gacha        *Gacha
	Sparkable    []Student
}

// NameIn returns the banner title in tag, falling back to the Japanese title.
func (b *Banner) NameIn(tag language.Tag) string {
	if n, ok := b.Translations[tag]; ok && n != "" {
		return n
	}
	return b.Name
}

func (b *Banner) Roll() Student { return b.Gacha.Roll() }

func (b *Banner) Roll10() [TenRollSize]Student { return b.Gacha.Roll10() }

// IsSparkable reports whether s can be picked with recruitment points.
func (b *Banner) IsSparkable(s Student) bool {
	for _, sp := range b.Sparkable {
		if sp.ID == s.ID {
			return true
		}
	}
	return false
}
