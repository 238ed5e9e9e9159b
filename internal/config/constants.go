package config

const SourceFileExt = ".dl"

// SourceFileExtensions are all recognized source file extensions
var SourceFileExtensions = []string{".dl", ".datelang"}

// ASTFileExtensions are extensions of AST interchange documents
var ASTFileExtensions = []string{".yaml", ".yml"}

// ConfigEnvVar names the config file the CLI falls back to
const ConfigEnvVar = "DATELANG_CONFIG"

// Date attribute names
const (
	AttrDay     = "day"
	AttrMonth   = "month"
	AttrYear    = "year"
	AttrWeekday = "weekday"
	AttrWeeknum = "weeknum"
)

// ReadableDateAttrs may appear in d'attr
var ReadableDateAttrs = []string{AttrDay, AttrMonth, AttrYear, AttrWeekday, AttrWeeknum}

// WritableDateAttrs may appear in d.attr = v; the rest are derived
var WritableDateAttrs = []string{AttrDay, AttrMonth, AttrYear}

// Declarable type names for formals and return types
var DeclarableTypeNames = []string{"int", "date"}

// MaxIntLiteral bounds the magnitude of integer literals (exclusive)
const MaxIntLiteral int64 = 1_000_000_000_000

// MaxDayShift bounds the day count added to or subtracted from a date
// (inclusive), a little over ten thousand years.
const MaxDayShift int64 = 3_660_000

// IsReadableDateAttr reports whether name may be read from a date.
func IsReadableDateAttr(name string) bool {
	return contains(ReadableDateAttrs, name)
}

// IsWritableDateAttr reports whether name may be assigned on a date.
func IsWritableDateAttr(name string) bool {
	return contains(WritableDateAttrs, name)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
