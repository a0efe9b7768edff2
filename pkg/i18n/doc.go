// Package i18n localizes validation messages.
//
// A Translator holds per-language catalogs of message templates keyed by
// message id (the Key carried on every validation leaf, e.g.
// "validation.minimum"). Templates substitute named parameters in the form
// %{name}; unresolved placeholders are left intact. A missing language or
// key falls back to the key itself by default, so localization never turns a
// present error into an empty message.
//
// Catalogs load from a Source: a static map, JSON, or YAML. DefaultCatalog
// returns the built-in English templates covering every built-in rule.
//
// Language selection from Accept-Language headers goes through Match, which
// wraps golang.org/x/text language matching.
package i18n
