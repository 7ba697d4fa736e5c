package output

// T is the minimal i18n contract for user-facing text: message lookup plus
// templating for a given locale. Command replies and the warning message
// both render through it.
type T interface {
	// T renders the message identified by key for the given locale.
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
