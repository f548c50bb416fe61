package i18n

// Locale identifies a supported UI language. The string value is the
// canonical BCP 47 projection used in URLs and in the persisted preference.
type Locale string

const (
	LocaleEn     Locale = "en"
	LocaleZhHans Locale = "zh-Hans"
	LocaleZhHant Locale = "zh-Hant"
)

// DefaultLocale is used whenever no explicit or persisted preference exists.
const DefaultLocale = LocaleEn

// ParseLocale maps a locale token to a supported Locale. Bare "zh" and
// "zh-CN" normalize to Simplified Chinese, "zh-TW" to Traditional Chinese;
// anything unrecognized falls back to English rather than failing.
func ParseLocale(s string) Locale {
	switch s {
	case "zh-Hans", "zh-CN", "zh":
		return LocaleZhHans
	case "zh-Hant", "zh-TW":
		return LocaleZhHant
	case "en":
		return LocaleEn
	default:
		return DefaultLocale
	}
}

// String returns the canonical locale code.
func (l Locale) String() string {
	return string(l)
}

// Supported lists every locale the embedded translation documents cover.
func Supported() []Locale {
	return []Locale{LocaleEn, LocaleZhHans, LocaleZhHant}
}
