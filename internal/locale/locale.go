// Package locale translates the handful of fixed terms that figure
// annotations and legends emit. English is the fallback for every term.
package locale

import "sync"

var (
	mu      sync.RWMutex
	current = "en"
)

// terms maps locale -> english term -> translation.
var terms = map[string]map[string]string{
	"fr": {
		"time":                   "temps",
		"location":               "site",
		"latitude":               "latitude",
		"longitude":              "longitude",
		"min-max range":          "étendue min-max",
		"%sth-%sth percentiles":  "%se-%se percentiles",
		"observations":           "observations",
		"reference":              "référence",
		"standard deviation":     "écart-type",
		"correlation":            "corrélation",
		"variability":            "variabilité",
		"lead time (years from)": "horizon (années depuis)",
		"uncertainty fraction":   "fraction de l'incertitude",
	},
}

// Set switches the active locale ("en", "fr"). Unknown locales fall back to
// English term by term.
func Set(locale string) {
	mu.Lock()
	current = locale
	mu.Unlock()
}

// Current returns the active locale.
func Current() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Term translates an English term into the active locale, returning the
// input unchanged when no translation exists.
func Term(english string) string {
	mu.RLock()
	defer mu.RUnlock()
	if tr, ok := terms[current][english]; ok {
		return tr
	}
	return english
}
