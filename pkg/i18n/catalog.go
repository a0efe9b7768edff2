package i18n

// DefaultCatalog returns English templates for every built-in rule's message
// id. Parameter names match the parameters each rule attaches to its leaf,
// so a leaf's Args feed straight into T.
//
// Applications extend or replace the catalog by merging their own templates
// and languages before constructing the translator.
func DefaultCatalog() Catalog {
	return Catalog{
		"en": {
			"validation.minimum":          "the number must be >= %{minimum}.",
			"validation.maximum":          "the number must be <= %{maximum}.",
			"validation.exclusiveMinimum": "the number must be > %{exclusiveMinimum}.",
			"validation.exclusiveMaximum": "the number must be < %{exclusiveMaximum}.",
			"validation.multipleOf":       "the value must be multiple of %{multipleOf}.",
			"validation.minLength":        "the length of the value must be >= %{minLength}.",
			"validation.maxLength":        "the length of the value must be <= %{maxLength}.",
			"validation.pattern":          `the value must match the pattern of "%{pattern}".`,
			"validation.minItems":         "the length of the items must be >= %{minItems}.",
			"validation.maxItems":         "the length of the items must be <= %{maxItems}.",
			"validation.uniqueItems":      "the items must be unique.",
			"validation.minProperties":    "the size of the properties must be >= %{minProperties}.",
			"validation.maxProperties":    "the size of the properties must be <= %{maxProperties}.",
			"validation.enum":             "the value must be in %{enum}.",
			"validation.format":           "the value must be a valid %{format}.",
			"validation.custom":           "%{message}",
		},
	}
}
