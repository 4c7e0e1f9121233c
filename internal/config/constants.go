package config

// Tournament constants - edit these before generating a report for a
// different tournament. There are deliberately no CLI flags for them.
const (
	TournamentYear = 2025
	TournamentName = "Kordun Jesen"

	// ReferenceDate is the fixed calendar date used for age calculations,
	// in ISO yyyy-mm-dd form.
	ReferenceDate = "2025-09-20"
)

// CSV schema constants
const (
	RawCSVName     = "jesen.csv"
	CleanedCSVName = "cleaned_jesen.csv"

	ColumnSection   = "Sekcija"
	ColumnName      = "ImePrezime"
	ColumnBirthDate = "DatumRođenja"
	DayColumnPrefix = "Dan"

	// TextColumnCount is the number of leading non-numeric columns.
	TextColumnCount = 3

	// NASymbol marks empty text cells in the cleaned CSV.
	NASymbol = "N/A"

	// Day values are small non-negative counts; anything outside this
	// range is coerced to zero during cleaning.
	DayValueMin = 0
	DayValueMax = 99
)

// Date layouts
const (
	// BirthDateLayout is the normalized dd.mm.yyyy form used in the CSV.
	BirthDateLayout = "02.01.2006"

	// ReferenceDateLayout is the ISO form of the reference date constant.
	ReferenceDateLayout = "2006-01-02"
)

// Output constants
const (
	ChartDPI = 150

	// TopRankSize is the cutoff for "top N" ranking charts; entries tied
	// with the last place are always included.
	TopRankSize = 10
)

// Log settings
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)
