package curriculum

import (
	"fmt"
	"sort"
)

// units is the built-in curriculum, ordered by level then slug. Levels mirror
// the usual introduction order: radicals first, then the kanji built from
// them, then vocabulary using those kanji, then grammar.
var units = []Unit{
	// Level 1
	{ID: "rad-ichi", Level: 1, Kind: KindRadical, Character: "一", Meaning: "ground",
		Mnemonic: "A single flat line: the ground you stand on."},
	{ID: "rad-hito", Level: 1, Kind: KindRadical, Character: "人", Meaning: "person",
		Mnemonic: "Two legs walking: a person."},
	{ID: "rad-kuchi", Level: 1, Kind: KindRadical, Character: "口", Meaning: "mouth",
		Mnemonic: "An open square: a wide-open mouth."},
	{ID: "rad-ki", Level: 1, Kind: KindRadical, Character: "木", Meaning: "tree",
		Mnemonic: "A trunk with branches and roots: a tree."},
	{ID: "rad-hi", Level: 1, Kind: KindRadical, Character: "日", Meaning: "sun",
		Mnemonic: "A window with the sun shining through it."},
	{ID: "kanji-ichi", Level: 1, Kind: KindKanji, Character: "一", Meaning: "one", Reading: "いち",
		Mnemonic: "One line, the number one. Reads いち."},
	{ID: "kanji-ni", Level: 1, Kind: KindKanji, Character: "二", Meaning: "two", Reading: "に",
		Mnemonic: "Two lines, the number two. Reads に."},
	{ID: "kanji-san", Level: 1, Kind: KindKanji, Character: "三", Meaning: "three", Reading: "さん",
		Mnemonic: "Three lines, the number three. Reads さん."},
	{ID: "kanji-hito", Level: 1, Kind: KindKanji, Character: "人", Meaning: "person", Reading: "じん",
		Mnemonic: "The person radical is the person kanji. Reads じん as in 日本人."},
	{ID: "kanji-hi", Level: 1, Kind: KindKanji, Character: "日", Meaning: "day", Reading: "にち",
		Mnemonic: "The sun rises once a day. Reads にち."},
	{ID: "vocab-ichi", Level: 1, Kind: KindVocabulary, Character: "一", Meaning: "one", Reading: "いち",
		Mnemonic: "The word for one, counted いち."},
	{ID: "vocab-hito", Level: 1, Kind: KindVocabulary, Character: "人", Meaning: "person", Reading: "ひと",
		Mnemonic: "On its own the person kanji reads ひと."},
	{ID: "gram-wa", Level: 1, Kind: KindGrammar, Character: "〜は", Meaning: "topic marker",
		SentenceJA: "わたし___がくせいです。", ClozeAnswer: "は",
		Mnemonic: "は marks the topic: as for me, I am a student."},

	// Level 2
	{ID: "rad-mizu", Level: 2, Kind: KindRadical, Character: "水", Meaning: "water",
		Mnemonic: "A stream splashing to both sides: water."},
	{ID: "rad-onna", Level: 2, Kind: KindRadical, Character: "女", Meaning: "woman",
		Mnemonic: "A figure in mid-curtsy: a woman."},
	{ID: "kanji-yama", Level: 2, Kind: KindKanji, Character: "山", Meaning: "mountain", Reading: "さん",
		Mnemonic: "Three peaks rising: a mountain. Reads さん like Mt. Fuji-san."},
	{ID: "kanji-kawa", Level: 2, Kind: KindKanji, Character: "川", Meaning: "river", Reading: "かわ",
		Mnemonic: "Three streams flowing down: a river. Reads かわ."},
	{ID: "kanji-mizu", Level: 2, Kind: KindKanji, Character: "水", Meaning: "water", Reading: "すい",
		Mnemonic: "The water radical as a kanji. Reads すい as in 水曜日."},
	{ID: "kanji-onna", Level: 2, Kind: KindKanji, Character: "女", Meaning: "woman", Reading: "じょ",
		Mnemonic: "The woman radical as a kanji. Reads じょ."},
	{ID: "kanji-moku", Level: 2, Kind: KindKanji, Character: "木", Meaning: "tree", Reading: "もく",
		Mnemonic: "The tree radical as a kanji. Reads もく as in 木曜日."},
	{ID: "vocab-yama", Level: 2, Kind: KindVocabulary, Character: "山", Meaning: "mountain", Reading: "やま",
		Mnemonic: "On its own the mountain kanji reads やま."},
	{ID: "vocab-kawa", Level: 2, Kind: KindVocabulary, Character: "川", Meaning: "river", Reading: "かわ",
		Mnemonic: "The word for river, かわ."},
	{ID: "vocab-mizu", Level: 2, Kind: KindVocabulary, Character: "水", Meaning: "water", Reading: "みず",
		Mnemonic: "The word for water, みず."},
	{ID: "gram-no", Level: 2, Kind: KindGrammar, Character: "〜の", Meaning: "possessive particle",
		SentenceJA: "わたし___ほんです。", ClozeAnswer: "の",
		Mnemonic: "の links owner and owned: my book."},
	{ID: "gram-o", Level: 2, Kind: KindGrammar, Character: "〜を", Meaning: "object marker",
		SentenceJA: "みず___のみます。", ClozeAnswer: "を",
		Mnemonic: "を marks what the verb acts on: drink water."},

	// Level 3
	{ID: "kanji-ue", Level: 3, Kind: KindKanji, Character: "上", Meaning: "above", Reading: "うえ",
		Mnemonic: "A sprout growing above the ground line. Reads うえ."},
	{ID: "kanji-shita", Level: 3, Kind: KindKanji, Character: "下", Meaning: "below", Reading: "した",
		Mnemonic: "A root reaching below the ground line. Reads した."},
	{ID: "kanji-naka", Level: 3, Kind: KindKanji, Character: "中", Meaning: "middle", Reading: "なか",
		Mnemonic: "A line through the middle of a mouth. Reads なか."},
	{ID: "kanji-dai", Level: 3, Kind: KindKanji, Character: "大", Meaning: "big", Reading: "だい",
		Mnemonic: "A person stretching arms wide: big. Reads だい."},
	{ID: "kanji-shou", Level: 3, Kind: KindKanji, Character: "小", Meaning: "small", Reading: "しょう",
		Mnemonic: "A thing shrinking to a point: small. Reads しょう."},
	{ID: "vocab-ueshita", Level: 3, Kind: KindVocabulary, Character: "上下", Meaning: "up and down", Reading: "じょうげ",
		Mnemonic: "Above and below together: up and down, じょうげ."},
	{ID: "vocab-naka", Level: 3, Kind: KindVocabulary, Character: "中", Meaning: "inside", Reading: "なか",
		Mnemonic: "On its own 中 is the inside of something, なか."},
	{ID: "vocab-daigaku", Level: 3, Kind: KindVocabulary, Character: "大学", Meaning: "university", Reading: "だいがく",
		Mnemonic: "Big learning: a university, だいがく."},
	{ID: "gram-ni", Level: 3, Kind: KindGrammar, Character: "〜に", Meaning: "direction particle",
		SentenceJA: "がっこう___いきます。", ClozeAnswer: "に",
		Mnemonic: "に points the verb somewhere: go to school."},
	{ID: "gram-de", Level: 3, Kind: KindGrammar, Character: "〜で", Meaning: "location of action",
		SentenceJA: "としょかん___べんきょうします。", ClozeAnswer: "で",
		Mnemonic: "で marks where the action happens: study at the library."},
}

var byID map[string]*Unit

func init() {
	byID = make(map[string]*Unit, len(units))
	for i := range units {
		u := &units[i]
		if _, dup := byID[u.ID]; dup {
			panic(fmt.Sprintf("curriculum: duplicate unit id %q", u.ID))
		}
		byID[u.ID] = u
	}
}

// Get returns the unit with the given ID.
func Get(id string) (Unit, error) {
	if u, ok := byID[id]; ok {
		return *u, nil
	}
	return Unit{}, fmt.Errorf("curriculum: unknown unit %q", id)
}

// All returns every unit, ordered by level then ID.
func All() []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	sortUnits(out)
	return out
}

// ByLevel returns the units at the given level, ordered by ID.
func ByLevel(level int) []Unit {
	var out []Unit
	for _, u := range units {
		if u.Level == level {
			out = append(out, u)
		}
	}
	sortUnits(out)
	return out
}

// MaxLevel returns the highest level present in the curriculum.
func MaxLevel() int {
	max := 0
	for _, u := range units {
		if u.Level > max {
			max = u.Level
		}
	}
	return max
}

// Count returns the total number of units.
func Count() int {
	return len(units)
}

func sortUnits(us []Unit) {
	sort.Slice(us, func(i, j int) bool {
		if us[i].Level != us[j].Level {
			return us[i].Level < us[j].Level
		}
		return us[i].ID < us[j].ID
	})
}
