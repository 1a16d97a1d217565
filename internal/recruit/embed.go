package recruit

import (
	"fmt"
	"strings"

	"github.com/xtding233/arona/internal/bot"
	"github.com/xtding233/arona/internal/gacha"
	"golang.org/x/text/language"
)

const (
	DefaultCDNRoot = "https://rerollcdn.com/BlueArchive"
	characterPage  = "https://www.thearchive.gg/characters/"
	footerText     = "Image Source: https://thearchive.gg"

	ResultFile   = "result.jpeg"
	FailureReply = "アロナ failed to perform your 10-roll. Please try again"
)

// URLName is the English name as used in CDN paths. The CDN spells Junko "Zunko".
func URLName(s gacha.Student) string {
	name, ok := s.Name(language.English)
	if !ok {
		name = s.String()
	}
	if name == "Junko" {
		return "Zunko"
	}
	return name
}

func (f *Flow) cdnRoot() string {
	if f.CDNRoot == "" {
		return DefaultCDNRoot
	}
	return strings.TrimSuffix(f.CDNRoot, "/")
}

// CharacterImageURL is the portrait of s on the CDN.
func (f *Flow) CharacterImageURL(s gacha.Student) string {
	return fmt.Sprintf("%s/Characters/%s.png", f.cdnRoot(), URLName(s))
}

func (f *Flow) footer() *bot.Footer {
	return &bot.Footer{Text: footerText, IconURL: f.cdnRoot() + "/Icons/icon-brand.png"}
}

func (f *Flow) studentEmbed(s gacha.Student) bot.Embed {
	en, _ := s.Name(language.English)
	return bot.Embed{
		Title:       s.String(),
		Description: fmt.Sprintf("%s\t%s", en, s.Rarity.Stars()),
		URL:         characterPage + URLName(s),
		ImageURL:    f.CharacterImageURL(s),
		Color:       s.Rarity.Color(),
		Footer:      f.footer(),
	}
}

func (f *Flow) tenRollEmbed(b *gacha.Banner, students []gacha.Student) bot.Embed {
	return bot.Embed{
		Title:       fmt.Sprintf("%s 10-roll", b.Name),
		Description: b.NameIn(language.English),
		ImageURL:    "attachment://" + ResultFile,
		Color:       gacha.MaxRarity(students).Color(),
		Footer:      f.footer(),
	}
}

func bannerEmbed(b *gacha.Banner) bot.Embed {
	e := bot.Embed{
		Title:       b.Name,
		Description: b.NameIn(language.English),
		ImageURL:    b.ImageURL,
		Color:       bot.BlueArchiveBlue,
	}
	if len(b.Sparkable) > 0 {
		e.Fields = append(e.Fields, bot.Field{Name: "Sparkable", Value: studentList(b.Sparkable)})
	}
	return e
}

// studentList renders "ホシノ (Hoshino), シロコ (Shiroko)".
func studentList(students []gacha.Student) string {
	parts := make([]string, 0, len(students))
	for _, s := range students {
		en, _ := s.Name(language.English)
		parts = append(parts, fmt.Sprintf("%s (%s)", s, en))
	}
	return strings.Join(parts, ", ")
}
