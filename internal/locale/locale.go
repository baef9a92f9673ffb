// Package locale holds the static per-language label tables used to render
// hazardous-substance registry workbooks. Tables are read-only after init;
// unknown language codes fall back to the default language.
package locale

import "sort"

// DefaultLanguage is used when a requested language has no table.
const DefaultLanguage = "en"

// ScaleEntry is one row of the probability or severity definition table.
type ScaleEntry struct {
	Level       string
	Description string
}

// LevelKeywords maps each risk band to the substrings that identify it in
// rendered level text. Cell coloring keys off these, not off the numeric
// band, so the sets must cover whatever label text the language table emits.
type LevelKeywords struct {
	Acceptable   []string
	Tolerable    []string
	Significant  []string
	Unacceptable []string
}

// Strings is the complete label set for one output language.
type Strings struct {
	Code string
	Name string // language name as written into prompts, e.g. "magyar"

	MainTitle      string
	PreparedBy     string
	PrepDate       string
	ProcessedCount string
	LegalBG        string
	LegalRefs      []string
	SheetsContent  string
	SheetNames     [6]string
	SheetDesc      [6]string
	Markings       string
	EmptyCells     string

	RiskMatrixTitle string
	Severity        [4]string
	Probability     [4]string
	RiskLevelsTitle string
	RiskLevels      [4]string
	GHSTitle        string
	GHSSymbols      [9]string
	GHSDesc         [9]string
	ProbScaleTitle  string
	ProbScale       [4]ScaleEntry
	SevScaleTitle   string
	SevScale        [4]ScaleEntry

	DBHeaders     []string // 85 columns
	RiskHeaders   []string // 29 columns
	ExpHeaders    []string // 18 columns
	ExpNote       string
	ActionHeaders []string // 9 columns

	UseLocation  string
	CompanyFills string
	Employer     string
	InProgress   string
	ErrorMarker  string

	// GenericPPETerms flag hand-protection text that names the equipment
	// without specifying material/thickness/standard.
	GenericPPETerms []string

	Keywords LevelKeywords
}

// For returns the label set for a language code, falling back to the
// default language when the code is not in the table.
func For(code string) Strings {
	if s, ok := tables[code]; ok {
		return s
	}
	return tables[DefaultLanguage]
}

// Supported reports whether a language code has its own table.
func Supported(code string) bool {
	_, ok := tables[code]
	return ok
}

// Codes returns all supported language codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(tables))
	for c := range tables {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
