package scripture

import "strings"

// bookIndex maps 3-letter book codes to the source's numeric book index.
var bookIndex = map[string]int{
	"gen": 1, "exo": 2, "lev": 3, "num": 4, "deu": 5, "jos": 6, "jdg": 7, "rut": 8, "sa1": 9, "sa2": 10,
	"ki1": 11, "ki2": 12, "ch1": 13, "ch2": 14, "ezr": 15, "neh": 16, "est": 17, "job": 18, "psa": 19, "pro": 20,
	"ecc": 21, "sol": 22, "isa": 23, "jer": 24, "lam": 25, "eze": 26, "dan": 27, "hos": 28, "joe": 29, "amo": 30,
	"oba": 31, "jon": 32, "mic": 33, "nah": 34, "hab": 35, "zep": 36, "hag": 37, "zec": 38, "mal": 39,
	"mat": 40, "mar": 41, "luk": 42, "joh": 43, "act": 44, "rom": 45, "co1": 46, "co2": 47, "gal": 48, "eph": 49,
	"phi": 50, "col": 51, "th1": 52, "th2": 53, "ti1": 54, "ti2": 55, "tit": 56, "phm": 57, "heb": 58, "jam": 59,
	"pe1": 60, "pe2": 61, "jo1": 62, "jo2": 63, "jo3": 64, "jud": 65, "rev": 66,
}

// bookCodes maps English book names to their 3-letter code.
var bookCodes = map[string]string{
	"Genesis": "gen", "Exodus": "exo", "Leviticus": "lev", "Numbers": "num", "Deuteronomy": "deu",
	"Joshua": "jos", "Judges": "jdg", "Ruth": "rut", "1 Samuel": "sa1", "2 Samuel": "sa2",
	"1 Kings": "ki1", "2 Kings": "ki2", "1 Chronicles": "ch1", "2 Chronicles": "ch2",
	"Ezra": "ezr", "Nehemiah": "neh", "Esther": "est", "Job": "job", "Psalms": "psa",
	"Proverbs": "pro", "Ecclesiastes": "ecc", "Song of Solomon": "sol", "Isaiah": "isa",
	"Jeremiah": "jer", "Lamentations": "lam", "Ezekiel": "eze", "Daniel": "dan",
	"Hosea": "hos", "Joel": "joe", "Amos": "amo", "Obadiah": "oba", "Jonah": "jon",
	"Micah": "mic", "Nahum": "nah", "Habakkuk": "hab", "Zephaniah": "zep", "Haggai": "hag",
	"Zechariah": "zec", "Malachi": "mal", "Matthew": "mat", "Mark": "mar", "Luke": "luk",
	"John": "joh", "Acts": "act", "Romans": "rom", "1 Corinthians": "co1", "2 Corinthians": "co2",
	"Galatians": "gal", "Ephesians": "eph", "Philippians": "phi", "Colossians": "col",
	"1 Thessalonians": "th1", "2 Thessalonians": "th2", "1 Timothy": "ti1", "2 Timothy": "ti2",
	"Titus": "tit", "Philemon": "phm", "Hebrews": "heb", "James": "jam", "1 Peter": "pe1",
	"2 Peter": "pe2", "1 John": "jo1", "2 John": "jo2", "3 John": "jo3", "Jude": "jud",
	"Revelation": "rev",
}

// BookCode returns the 3-letter code for an English book name, falling back
// to the lowercased first three letters for unmapped names.
func BookCode(englishName string) string {
	if code, ok := bookCodes[englishName]; ok {
		return code
	}
	name := strings.ToLower(englishName)
	if len(name) > 3 {
		name = name[:3]
	}
	return name
}
