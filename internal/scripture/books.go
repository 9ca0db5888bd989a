package scripture

import "strings"

// BookID is the canonical code for one of the 66 books.
type BookID string

type Book struct {
	ID       BookID `json:"id"`
	Name     string `json:"name"`
	Order    int    `json:"order"`
	Chapters int    `json:"chapters"`
	Abbrevs  []string
}

// AllBooks lists every canonical book in canonical order, with the chapter
// count used for reference validation and the accepted abbreviations.
var AllBooks = []Book{
	{"GEN", "Genesis", 1, 50, []string{"Gen", "Ge", "Gn"}},
	{"EXO", "Exodus", 2, 40, []string{"Exod", "Exo", "Ex"}},
	{"LEV", "Leviticus", 3, 27, []string{"Lev", "Le", "Lv"}},
	{"NUM", "Numbers", 4, 36, []string{"Num", "Nu", "Nm"}},
	{"DEU", "Deuteronomy", 5, 34, []string{"Deut", "Deu", "Dt"}},
	{"JOS", "Joshua", 6, 24, []string{"Josh", "Jos"}},
	{"JDG", "Judges", 7, 21, []string{"Judg", "Jdg", "Jdgs"}},
	{"RUT", "Ruth", 8, 4, []string{"Rut", "Ru"}},
	{"1SA", "1 Samuel", 9, 31, []string{"1Sam", "1Sa", "1Sm", "1S"}},
	{"2SA", "2 Samuel", 10, 24, []string{"2Sam", "2Sa", "2Sm", "2S"}},
	{"1KI", "1 Kings", 11, 22, []string{"1Kgs", "1Ki", "1Kin"}},
	{"2KI", "2 Kings", 12, 25, []string{"2Kgs", "2Ki", "2Kin"}},
	{"1CH", "1 Chronicles", 13, 29, []string{"1Chr", "1Ch", "1Chron"}},
	{"2CH", "2 Chronicles", 14, 36, []string{"2Chr", "2Ch", "2Chron"}},
	{"EZR", "Ezra", 15, 10, []string{"Ezr"}},
	{"NEH", "Nehemiah", 16, 13, []string{"Neh", "Ne"}},
	{"EST", "Esther", 17, 10, []string{"Esth", "Est", "Es"}},
	{"JOB", "Job", 18, 42, []string{"Jb"}},
	{"PSA", "Psalms", 19, 150, []string{"Ps", "Psa", "Psalm", "Pss"}},
	{"PRO", "Proverbs", 20, 31, []string{"Prov", "Pro", "Pr"}},
	{"ECC", "Ecclesiastes", 21, 12, []string{"Eccl", "Ecc", "Ec"}},
	{"SNG", "Song of Solomon", 22, 8, []string{"Song", "Song of Songs", "SoS", "Canticles"}},
	{"ISA", "Isaiah", 23, 66, []string{"Isa", "Is"}},
	{"JER", "Jeremiah", 24, 52, []string{"Jer", "Je"}},
	{"LAM", "Lamentations", 25, 5, []string{"Lam", "La"}},
	{"EZK", "Ezekiel", 26, 48, []string{"Ezek", "Eze", "Ezk"}},
	{"DAN", "Daniel", 27, 12, []string{"Dan", "Da", "Dn"}},
	{"HOS", "Hosea", 28, 14, []string{"Hos", "Ho"}},
	{"JOL", "Joel", 29, 3, []string{"Joe", "Jl"}},
	{"AMO", "Amos", 30, 9, []string{"Amo", "Am"}},
	{"OBA", "Obadiah", 31, 1, []string{"Obad", "Oba", "Ob"}},
	{"JON", "Jonah", 32, 4, []string{"Jon", "Jnh"}},
	{"MIC", "Micah", 33, 7, []string{"Mic", "Mi"}},
	{"NAM", "Nahum", 34, 3, []string{"Nah", "Na"}},
	{"HAB", "Habakkuk", 35, 3, []string{"Hab", "Hb"}},
	{"ZEP", "Zephaniah", 36, 3, []string{"Zeph", "Zep", "Zp"}},
	{"HAG", "Haggai", 37, 2, []string{"Hag", "Hg"}},
	{"ZEC", "Zechariah", 38, 14, []string{"Zech", "Zec", "Zc"}},
	{"MAL", "Malachi", 39, 4, []string{"Mal", "Ml"}},
	{"MAT", "Matthew", 40, 28, []string{"Matt", "Mat", "Mt"}},
	{"MRK", "Mark", 41, 16, []string{"Mar", "Mrk", "Mk"}},
	{"LUK", "Luke", 42, 24, []string{"Luk", "Lk"}},
	{"JHN", "John", 43, 21, []string{"Joh", "Jhn", "Jn"}},
	{"ACT", "Acts", 44, 28, []string{"Act", "Ac"}},
	{"ROM", "Romans", 45, 16, []string{"Rom", "Ro", "Rm"}},
	{"1CO", "1 Corinthians", 46, 16, []string{"1Cor", "1Co"}},
	{"2CO", "2 Corinthians", 47, 13, []string{"2Cor", "2Co"}},
	{"GAL", "Galatians", 48, 6, []string{"Gal", "Ga"}},
	{"EPH", "Ephesians", 49, 6, []string{"Eph", "Ep"}},
	{"PHP", "Philippians", 50, 4, []string{"Phil", "Php", "Pp"}},
	{"COL", "Colossians", 51, 4, []string{"Col", "Co"}},
	{"1TH", "1 Thessalonians", 52, 5, []string{"1Thess", "1Thes", "1Th"}},
	{"2TH", "2 Thessalonians", 53, 3, []string{"2Thess", "2Thes", "2Th"}},
	{"1TI", "1 Timothy", 54, 6, []string{"1Tim", "1Ti"}},
	{"2TI", "2 Timothy", 55, 4, []string{"2Tim", "2Ti"}},
	{"TIT", "Titus", 56, 3, []string{"Tit", "Ti"}},
	{"PHM", "Philemon", 57, 1, []string{"Phlm", "Phm", "Pm"}},
	{"HEB", "Hebrews", 58, 13, []string{"Heb"}},
	{"JAS", "James", 59, 5, []string{"Jas", "Jam", "Jm"}},
	{"1PE", "1 Peter", 60, 5, []string{"1Pet", "1Pe", "1Pt"}},
	{"2PE", "2 Peter", 61, 3, []string{"2Pet", "2Pe", "2Pt"}},
	{"1JN", "1 John", 62, 5, []string{"1John", "1Jn", "1Jhn"}},
	{"2JN", "2 John", 63, 1, []string{"2John", "2Jn", "2Jhn"}},
	{"3JN", "3 John", 64, 1, []string{"3John", "3Jn", "3Jhn"}},
	{"JUD", "Jude", 65, 1, []string{"Jud", "Jde"}},
	{"REV", "Revelation", 66, 22, []string{"Rev", "Re", "Apocalypse"}},
}

var (
	booksByID   = make(map[BookID]*Book, len(AllBooks))
	booksByName = make(map[string]*Book, len(AllBooks)*8)
)

func init() {
	for i := range AllBooks {
		b := &AllBooks[i]
		booksByID[b.ID] = b

		for _, name := range append([]string{b.Name, string(b.ID)}, b.Abbrevs...) {
			for _, key := range nameKeys(name) {
				booksByName[key] = b
			}
		}
	}
}

// nameKeys returns the normalized lookup keys for one spelling of a book
// name. Numeric-prefixed books get both the spaced and unspaced form, so
// "1 Corinthians", "1Corinthians", "1Co" and "1 Co" all resolve.
func nameKeys(name string) []string {
	key := normalizeBookName(name)
	if key == "" {
		return nil
	}

	keys := []string{key}
	if len(key) > 1 && key[0] >= '1' && key[0] <= '3' {
		if key[1] == ' ' {
			keys = append(keys, key[:1]+key[2:])
		} else {
			keys = append(keys, key[:1]+" "+key[1:])
		}
	}
	return keys
}

// normalizeBookName lowercases, trims, drops a trailing period and collapses
// internal whitespace.
func normalizeBookName(name string) string {
	name = strings.TrimSuffix(strings.TrimSpace(name), ".")
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ResolveBookID resolves a full name, canonical code or abbreviation to a
// book id. Matching is case-insensitive.
func ResolveBookID(name string) (BookID, bool) {
	b, ok := booksByName[normalizeBookName(name)]
	if !ok {
		return "", false
	}
	return b.ID, true
}

// BookByID returns the book metadata for a canonical id.
func BookByID(id BookID) (*Book, bool) {
	b, ok := booksByID[id]
	return b, ok
}

// ChapterCount returns the fixed chapter count for a book, or 0 for an
// unknown id.
func ChapterCount(id BookID) int {
	if b, ok := booksByID[id]; ok {
		return b.Chapters
	}
	return 0
}
