// Package i18n selects the response locale from the Accept-Language
// header and translates user-facing strings. The supported set and its
// order mirror the registry UI: Japanese, Japanese (Japan), English.
package i18n

import (
	"golang.org/x/text/language"
)

const DefaultLocale = "en"

var locales = []string{"ja", "ja_JP", "en"}

var matcher = language.NewMatcher([]language.Tag{
	language.Japanese,
	language.MustParse("ja-JP"),
	language.English,
})

// SelectLocale returns the best supported locale for the given
// Accept-Language header, or the default when nothing matches.
func SelectLocale(acceptLanguage string) string {
	if acceptLanguage == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return DefaultLocale
	}
	return locales[idx]
}

// catalogs hold page-facing strings. API message contracts
// ("Success", "Fail", "Header Error") are intentionally absent so they
// pass through unchanged in every locale.
var catalogs = map[string]map[string]string{
	"ja": {
		"Item Type Registration":                    "アイテムタイプ登録",
		"Item Type Mapping":                         "アイテムタイプマッピング",
		"Property Definitions":                      "プロパティ定義",
		"No item types found.":                      "アイテムタイプが見つかりません。",
		"You do not have a permission for itemtype": "アイテムタイプへの権限がありません",
	},
}

func init() {
	catalogs["ja_JP"] = catalogs["ja"]
}

// T translates key for the given locale, falling back to the key
// itself.
func T(locale, key string) string {
	if catalog, ok := catalogs[locale]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	return key
}
