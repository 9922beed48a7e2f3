package models

// Settings category names. Every site setting lives in exactly one of these
// five groups and each group is replaceable independently of the others.
const (
	SettingsLogo        = "logo"
	SettingsSocialMedia = "socialMedia"
	SettingsTheme       = "theme"
	SettingsContact     = "contact"
	SettingsSiteInfo    = "siteInfo"
)

// SiteSettings is the process-wide site configuration: five categories of
// string key/value pairs. All leaf values are strings (URLs, colors, text).
type SiteSettings map[string]map[string]string

func IsValidSettingsCategory(category string) bool {
	switch category {
	case SettingsLogo, SettingsSocialMedia, SettingsTheme, SettingsContact, SettingsSiteInfo:
		return true
	}
	return false
}

// DefaultSettings returns the configuration the site starts with before any
// admin edits.
func DefaultSettings() SiteSettings {
	return SiteSettings{
		SettingsLogo: {
			"url": "/images/logo.png",
			"alt": "ClutchZone Logo",
		},
		SettingsSocialMedia: {
			"facebook":  "",
			"twitter":   "",
			"instagram": "",
			"linkedin":  "",
			"youtube":   "",
			"whatsapp":  "01500978111",
		},
		SettingsTheme: {
			"primaryColor":    "#3B82F6",
			"secondaryColor":  "#1E40AF",
			"accentColor":     "#F59E0B",
			"backgroundColor": "#FFFFFF",
			"textColor":       "#1F2937",
			"headerColor":     "#111827",
			"footerColor":     "#374151",
		},
		SettingsContact: {
			"phone":   "01500978111",
			"email":   "clutchzone97@gmail.com",
			"address": "",
		},
		SettingsSiteInfo: {
			"title":       "ClutchZone",
			"description": "منصة شراء وبيع السيارات والعقارات",
			"keywords":    "سيارات, عقارات, بيع, شراء",
		},
	}
}

// Clone deep-copies the settings so readers never share maps with the store.
func (s SiteSettings) Clone() SiteSettings {
	out := make(SiteSettings, len(s))
	for category, values := range s {
		copied := make(map[string]string, len(values))
		for k, v := range values {
			copied[k] = v
		}
		out[category] = copied
	}
	return out
}
