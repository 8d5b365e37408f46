package locale

const (
	// EN is English.
	EN = "en"
	// DE is German.
	DE = "de"
	// SR is Serbian.
	SR = "sr"
)

// Supported lists the languages the site is translated into, default first.
var Supported = []string{EN, DE, SR}

// DefaultLang is used when a request names no supported language.
const DefaultLang = EN
