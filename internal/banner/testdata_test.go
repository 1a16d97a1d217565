package banner

import "testing/fstest"

const testCatalog = `
students:
  - {id: 1, rarity: 3, names: {ja: ヒナ, en: Hina}}
  - {id: 2, rarity: 3, names: {ja: イズナ, en: Izuna}}
  - {id: 3, rarity: 2, names: {ja: ジュンコ, en: Junko}}
  - {id: 4, rarity: 2, names: {ja: シズコ, en: Shizuko}}
  - {id: 5, rarity: 1, names: {ja: チナツ, en: Chinatsu}}
  - {id: 6, rarity: 1, names: {ja: ハルカ, en: Haruka}}
`

const testDefault = `
rates: {one: 79, two: 18.5, three: 2.5}
image_url: https://example.com/default.jpg
`

const testBanner = `
name: テスト
translations: {en: Test}
pool:
  three: [ヒナ, イズナ]
  two: [ジュンコ, シズコ]
  one: [チナツ, ハルカ]
priority:
  - {name: イズナ, rate: 0.7}
sparkable: [イズナ]
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"students.yaml":        {Data: []byte(testCatalog)},
		"banners/default.yaml": {Data: []byte(testDefault)},
		"banners/test.yaml":    {Data: []byte(testBanner)},
	}
}
