package gacha

import (
	"fmt"

	"golang.org/x/text/language"
)

func student(id int, name string, r Rarity) Student {
	return Student{
		ID:     id,
		Names:  map[language.Tag]string{language.Japanese: name, language.English: name + "-en"},
		Rarity: r,
	}
}

// testPool builds n students per tier with ids 100*tier + i.
func testPool(n int) []Student {
	var pool []Student
	for _, r := range Rarities {
		for i := 0; i < n; i++ {
			pool = append(pool, student(100*int(r)+i, fmt.Sprintf("s%d-%d", r, i), r))
		}
	}
	return pool
}

var standardRates = Rates{One: 79, Two: 18.5, Three: 2.5}
