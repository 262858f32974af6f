// Package schedule maps calendar days onto a cyclic two-chapter reading plan
// over the Pauline epistles. It is a pure library: no I/O, no package state.
package schedule

import (
	"github.com/epistleapp/epistle/internal/entities"
)

// Work is one source work of the plan with its chapter count.
type Work struct {
	Book     entities.LocalizedText
	Chapters int
}

// PaulineEpistles is the fixed, ordered work list the corpus expands from.
// The order follows the presumed order of writing, not canonical order.
var PaulineEpistles = []Work{
	{Book: entities.LocalizedText{Ko: "갈라디아서", En: "Galatians"}, Chapters: 6},
	{Book: entities.LocalizedText{Ko: "데살로니가전서", En: "1 Thessalonians"}, Chapters: 5},
	{Book: entities.LocalizedText{Ko: "데살로니가후서", En: "2 Thessalonians"}, Chapters: 3},
	{Book: entities.LocalizedText{Ko: "고린도전서", En: "1 Corinthians"}, Chapters: 16},
	{Book: entities.LocalizedText{Ko: "고린도후서", En: "2 Corinthians"}, Chapters: 13},
	{Book: entities.LocalizedText{Ko: "로마서", En: "Romans"}, Chapters: 16},
	{Book: entities.LocalizedText{Ko: "골로새서", En: "Colossians"}, Chapters: 4},
	{Book: entities.LocalizedText{Ko: "빌레몬서", En: "Philemon"}, Chapters: 1},
	{Book: entities.LocalizedText{Ko: "에베소서", En: "Ephesians"}, Chapters: 6},
	{Book: entities.LocalizedText{Ko: "빌립보서", En: "Philippians"}, Chapters: 4},
	{Book: entities.LocalizedText{Ko: "디모데전서", En: "1 Timothy"}, Chapters: 6},
	{Book: entities.LocalizedText{Ko: "디도서", En: "Titus"}, Chapters: 3},
	{Book: entities.LocalizedText{Ko: "디모데후서", En: "2 Timothy"}, Chapters: 4},
}

// Unit is one (work, chapter) reading unit of the expanded corpus.
type Unit struct {
	Book    entities.LocalizedText
	Chapter int
}

// BuildCorpus expands a work list into one unit per chapter, preserving work
// order and chapter order. The expansion is identical across languages; only
// the book-name localisation differs at display time.
func BuildCorpus(works []Work) []Unit {
	var corpus []Unit
	for _, w := range works {
		for ch := 1; ch <= w.Chapters; ch++ {
			corpus = append(corpus, Unit{Book: w.Book, Chapter: ch})
		}
	}
	return corpus
}
