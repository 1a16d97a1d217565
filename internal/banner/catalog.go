package banner

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xtding233/arona/internal/gacha"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// Catalog is the fixed roster of students, indexed by every display name.
type Catalog struct {
	students []gacha.Student
	byName   map[string]gacha.Student
}

// ParseCatalog decodes students.yaml.
func ParseCatalog(b []byte) (*Catalog, error) {
	var raw rawCatalog
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	var errs []string
	c := &Catalog{byName: make(map[string]gacha.Student)}
	seenID := make(map[int]bool)
	for i, rs := range raw.Students {
		if seenID[rs.ID] {
			errs = append(errs, fmt.Sprintf("students[%d]: duplicate id %d", i, rs.ID))
			continue
		}
		seenID[rs.ID] = true

		s := gacha.Student{ID: rs.ID, Rarity: gacha.Rarity(rs.Rarity), Names: make(map[language.Tag]string)}
		if !s.Rarity.Valid() {
			errs = append(errs, fmt.Sprintf("students[%d]: rarity must be 1..3", i))
		}
		for key, name := range rs.Names {
			tag, err := language.Parse(key)
			if err != nil {
				errs = append(errs, fmt.Sprintf("students[%d]: bad language %q", i, key))
				continue
			}
			s.Names[tag] = name
		}
		if _, ok := s.Name(language.Japanese); !ok {
			errs = append(errs, fmt.Sprintf("students[%d]: missing ja name", i))
		}
		if _, ok := s.Name(language.English); !ok {
			errs = append(errs, fmt.Sprintf("students[%d]: missing en name", i))
		}
		for _, name := range s.Names {
			if prev, ok := c.byName[name]; ok && prev.ID != s.ID {
				errs = append(errs, fmt.Sprintf("students[%d]: name %q already used by id %d", i, name, prev.ID))
				continue
			}
			c.byName[name] = s
		}
		c.students = append(c.students, s)
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("catalog validation failed: %s", strings.Join(errs, "; "))
	}
	sort.Slice(c.students, func(i, j int) bool { return c.students[i].ID < c.students[j].ID })
	return c, nil
}

// Lookup finds a student by any of its display names.
func (c *Catalog) Lookup(name string) (gacha.Student, bool) {
	s, ok := c.byName[strings.TrimSpace(name)]
	return s, ok
}

// Students returns the roster ordered by id.
func (c *Catalog) Students() []gacha.Student {
	return append([]gacha.Student(nil), c.students...)
}
