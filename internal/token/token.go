package token

// Token defines how many units of a currency are spent per recruitment.
type Token struct {
	Name       string // e.g. "Pyroxene"
	PerDraw    int    // units per single roll
	PerTenDraw int    // optional; if 0 -> 10 * PerDraw
}

// Pyroxene is the premium currency spent on Blue Archive recruitment.
var Pyroxene = Token{Name: "Pyroxene", PerDraw: 120, PerTenDraw: 1200}

// TokensForDraws returns how many tokens are required for n rolls, buying as
// many ten-rolls as possible.
func (t Token) TokensForDraws(n int) int {
	if n <= 0 {
		return 0
	}
	if t.PerTenDraw > 0 && n >= 10 {
		tens := n / 10
		rem := n % 10
		return tens*t.PerTenDraw + rem*t.PerDraw
	}
	return n * t.PerDraw
}
