package banner

import (
	"strings"
	"testing"

	"github.com/xtding233/arona/internal/gacha"
	"golang.org/x/text/language"
)

func TestParseCatalog_LookupByAnyName(t *testing.T) {
	c, err := ParseCatalog([]byte(testCatalog))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ja, ok := c.Lookup("ジュンコ")
	if !ok {
		t.Fatalf("ja lookup failed")
	}
	en, ok := c.Lookup(" Junko ")
	if !ok || en.ID != ja.ID {
		t.Fatalf("en lookup = %v,%v want id %d", en, ok, ja.ID)
	}
	if ja.Rarity != gacha.Two {
		t.Fatalf("rarity=%v want ★2", ja.Rarity)
	}
	if name, _ := ja.Name(language.English); name != "Junko" {
		t.Fatalf("en name=%q", name)
	}
	if _, ok := c.Lookup("nobody"); ok {
		t.Fatalf("unexpected hit")
	}
}

func TestParseCatalog_SortedByID(t *testing.T) {
	c, err := ParseCatalog([]byte(`
students:
  - {id: 9, rarity: 1, names: {ja: B, en: Bee}}
  - {id: 2, rarity: 1, names: {ja: A, en: Ay}}
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := c.Students()
	if len(s) != 2 || s[0].ID != 2 || s[1].ID != 9 {
		t.Fatalf("order=%v", s)
	}
}

func TestParseCatalog_CollectsErrors(t *testing.T) {
	_, err := ParseCatalog([]byte(`
students:
  - {id: 1, rarity: 4, names: {ja: A, en: A1}}
  - {id: 1, rarity: 1, names: {ja: B, en: B1}}
  - {id: 2, rarity: 1, names: {ja: C}}
  - {id: 3, rarity: 1, names: {ja: A, en: D1}}
`))
	if err == nil {
		t.Fatalf("expected error")
	}
	for _, want := range []string{"rarity must be 1..3", "duplicate id 1", "missing en name", `name "A" already used`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q missing %q", err, want)
		}
	}
}
