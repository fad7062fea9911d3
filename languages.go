package studiolingo

// LanguageEntry describes one language the host platform can carry metadata
// in. Entries are immutable once registered; Code is the unique key.
type LanguageEntry struct {
	Code        string // BCP 47-ish code the host platform uses (e.g. "pt-BR")
	DisplayName string // Human-readable name shown in the UI and in prompts
	Flag        string // Emoji flag for display
}

// CustomFlag is the placeholder flag assigned to user-defined languages.
const CustomFlag = "🏳️"

// ProtectedLanguages are subscription entries that can never be removed and
// always occupy the head of the subscription list, in this relative order.
var ProtectedLanguages = []string{"id", "en"}

// DefaultSubscription is the language list seeded for new users: the
// protected pair followed by the default target set, A-Z by language name.
var DefaultSubscription = []string{
	"id", "en",
	"ar", "da", "nl", "en-AU", "en-GB", "fi", "fr", "de",
	"it", "ja", "ko", "no", "pt-BR", "ru", "es", "sv",
}

// builtinLanguages is the full host-platform language table.
var builtinLanguages = []LanguageEntry{
	// English variants
	{"en", "English (US)", "🇺🇸"},
	{"en-GB", "English (UK)", "🇬🇧"},
	{"en-AU", "English (Australia)", "🇦🇺"},
	{"en-CA", "English (Canada)", "🇨🇦"},
	{"en-IE", "English (Ireland)", "🇮🇪"},
	{"en-IN", "English (India)", "🇮🇳"},
	{"en-NZ", "English (New Zealand)", "🇳🇿"},
	{"en-SG", "English (Singapore)", "🇸🇬"},
	{"en-ZA", "English (South Africa)", "🇿🇦"},
	// Southeast Asian
	{"id", "Indonesian", "🇮🇩"},
	{"ms", "Malay", "🇲🇾"},
	{"tl", "Filipino/Tagalog", "🇵🇭"},
	{"vi", "Vietnamese", "🇻🇳"},
	{"th", "Thai", "🇹🇭"},
	{"my", "Burmese/Myanmar", "🇲🇲"},
	{"km", "Khmer", "🇰🇭"},
	{"lo", "Lao", "🇱🇦"},
	{"jv", "Javanese", "🇮🇩"},
	{"su", "Sundanese", "🇮🇩"},
	// East Asian
	{"ja", "Japanese", "🇯🇵"},
	{"ko", "Korean", "🇰🇷"},
	{"zh-Hans", "Chinese (Simplified)", "🇨🇳"},
	{"zh-Hant", "Chinese (Traditional)", "🇹🇼"},
	{"zh-HK", "Chinese (Hong Kong)", "🇭🇰"},
	{"mn", "Mongolian", "🇲🇳"},
	// South Asian
	{"hi", "Hindi", "🇮🇳"},
	{"bn", "Bengali", "🇧🇩"},
	{"pa", "Punjabi", "🇮🇳"},
	{"gu", "Gujarati", "🇮🇳"},
	{"ta", "Tamil", "🇮🇳"},
	{"te", "Telugu", "🇮🇳"},
	{"kn", "Kannada", "🇮🇳"},
	{"ml", "Malayalam", "🇮🇳"},
	{"mr", "Marathi", "🇮🇳"},
	{"or", "Odia", "🇮🇳"},
	{"as", "Assamese", "🇮🇳"},
	{"ne", "Nepali", "🇳🇵"},
	{"si", "Sinhala", "🇱🇰"},
	{"ur", "Urdu", "🇵🇰"},
	// Middle Eastern
	{"ar", "Arabic", "🇸🇦"},
	{"fa", "Persian/Farsi", "🇮🇷"},
	{"he", "Hebrew", "🇮🇱"},
	{"tr", "Turkish", "🇹🇷"},
	{"ku", "Kurdish", "🇮🇶"},
	// European - Western
	{"fr", "French", "🇫🇷"},
	{"fr-CA", "French (Canada)", "🇨🇦"},
	{"de", "German", "🇩🇪"},
	{"de-AT", "German (Austria)", "🇦🇹"},
	{"de-CH", "German (Switzerland)", "🇨🇭"},
	{"nl", "Dutch", "🇳🇱"},
	{"nl-BE", "Dutch (Belgium)", "🇧🇪"},
	// European - Southern
	{"es", "Spanish (Spain)", "🇪🇸"},
	{"es-419", "Spanish (Latin America)", "🇲🇽"},
	{"es-US", "Spanish (US)", "🇺🇸"},
	{"pt", "Portuguese (Portugal)", "🇵🇹"},
	{"pt-BR", "Portuguese (Brazil)", "🇧🇷"},
	{"it", "Italian", "🇮🇹"},
	{"ca", "Catalan", "🇪🇸"},
	{"gl", "Galician", "🇪🇸"},
	{"eu", "Basque", "🇪🇸"},
	{"el", "Greek", "🇬🇷"},
	{"mt", "Maltese", "🇲🇹"},
	// European - Northern
	{"sv", "Swedish", "🇸🇪"},
	{"no", "Norwegian", "🇳🇴"},
	{"da", "Danish", "🇩🇰"},
	{"fi", "Finnish", "🇫🇮"},
	{"is", "Icelandic", "🇮🇸"},
	// European - Eastern
	{"pl", "Polish", "🇵🇱"},
	{"cs", "Czech", "🇨🇿"},
	{"sk", "Slovak", "🇸🇰"},
	{"hu", "Hungarian", "🇭🇺"},
	{"ro", "Romanian", "🇷🇴"},
	{"bg", "Bulgarian", "🇧🇬"},
	{"uk", "Ukrainian", "🇺🇦"},
	{"ru", "Russian", "🇷🇺"},
	{"be", "Belarusian", "🇧🇾"},
	{"sr", "Serbian", "🇷🇸"},
	{"hr", "Croatian", "🇭🇷"},
	{"bs", "Bosnian", "🇧🇦"},
	{"sl", "Slovenian", "🇸🇮"},
	{"mk", "Macedonian", "🇲🇰"},
	{"sq", "Albanian", "🇦🇱"},
	// Baltic
	{"lt", "Lithuanian", "🇱🇹"},
	{"lv", "Latvian", "🇱🇻"},
	{"et", "Estonian", "🇪🇪"},
	// Caucasus & Central Asia
	{"ka", "Georgian", "🇬🇪"},
	{"hy", "Armenian", "🇦🇲"},
	{"az", "Azerbaijani", "🇦🇿"},
	{"kk", "Kazakh", "🇰🇿"},
	{"uz", "Uzbek", "🇺🇿"},
	{"ky", "Kyrgyz", "🇰🇬"},
	{"tg", "Tajik", "🇹🇯"},
	{"tk", "Turkmen", "🇹🇲"},
	// African
	{"sw", "Swahili", "🇰🇪"},
	{"af", "Afrikaans", "🇿🇦"},
	{"zu", "Zulu", "🇿🇦"},
	{"xh", "Xhosa", "🇿🇦"},
	{"am", "Amharic", "🇪🇹"},
	{"ha", "Hausa", "🇳🇬"},
	{"ig", "Igbo", "🇳🇬"},
	{"yo", "Yoruba", "🇳🇬"},
	{"rw", "Kinyarwanda", "🇷🇼"},
	{"so", "Somali", "🇸🇴"},
	// Celtic
	{"ga", "Irish", "🇮🇪"},
	{"cy", "Welsh", "🏴󠁧󠁢󠁷󠁬󠁳󠁿"},
	{"gd", "Scottish Gaelic", "🏴󠁧󠁢󠁳󠁣󠁴󠁿"},
	// Others
	{"eo", "Esperanto", "🌍"},
	{"la", "Latin", "🏛️"},
	{"haw", "Hawaiian", "🇺🇸"},
	{"mi", "Maori", "🇳🇿"},
	{"sm", "Samoan", "🇼🇸"},
	{"fil", "Filipino", "🇵🇭"},
}

// NameVariations maps a language code to the label spellings the host page
// may render for it: English name, native name, and translations seen in
// supported UI locales. Used when matching picker entries and table rows.
// The table is approximate; codes not listed here fall back to their
// catalog display name.
var NameVariations = map[string][]string{
	// Southeast Asian
	"id": {"Indonesian", "Bahasa Indonesia", "Indonesia", "bahasa Indonesia", "Indonesian (Indonesia)"},
	"ms": {"Malay", "Bahasa Melayu", "Melayu", "Malaysia", "Malay (Malaysia)"},
	"tl": {"Filipino", "Tagalog", "Pilipino", "Filipino (Philippines)"},
	"vi": {"Vietnamese", "Tiếng Việt", "tiếng việt", "Vietnam", "Vietnamese (Vietnam)"},
	"th": {"Thai", "ไทย", "Thailand", "Thai (Thailand)"},
	// European
	"es":    {"Spanish", "Español", "español", "Spanyol", "Spanish (Spain)", "Spanish (Latin America)"},
	"pt":    {"Portuguese", "Português", "português", "Portugis", "Portuguese (Brazil)", "Portuguese (Portugal)"},
	"pt-BR": {"Portuguese (Brazil)", "Português (Brasil)", "Portugis (Brasil)", "Brazilian Portuguese"},
	"fr":    {"French", "Français", "français", "Prancis", "French (France)"},
	"de":    {"German", "Deutsch", "deutsch", "Jerman", "German (Germany)"},
	"it":    {"Italian", "Italiano", "italiano", "Italia", "Italian (Italy)"},
	"nl":    {"Dutch", "Nederlands", "Belanda", "Dutch (Netherlands)"},
	"pl":    {"Polish", "Polski", "polski", "Polandia", "Polish (Poland)"},
	"sv":    {"Swedish", "Svenska", "Swedia", "Swedish (Sweden)"},
	"no":    {"Norwegian", "Norsk", "Norwegia", "Norwegian (Norway)"},
	"da":    {"Danish", "Dansk", "Denmark", "Danish (Denmark)"},
	"fi":    {"Finnish", "Suomi", "Finlandia", "Finnish (Finland)"},
	// East Asian
	"ja":      {"Japanese", "日本語", "にほんご", "Jepang", "Japanese (Japan)"},
	"ko":      {"Korean", "한국어", "韓國語", "Korea", "Korean (Korea)"},
	"zh-Hans": {"Chinese (Simplified)", "中文（简体）", "简体中文", "Mandarin (S)", "Chinese", "中文"},
	"zh-Hant": {"Chinese (Traditional)", "中文（繁體）", "繁體中文", "Mandarin (T)", "Chinese", "中文"},
	// Others
	"ru": {"Russian", "Русский", "русский", "Rusia", "Russian (Russia)"},
	"ar": {"Arabic", "العربية", "عربي", "Arab", "Arabic (Saudi Arabia)"},
	"hi": {"Hindi", "हिन्दी", "हिंदी", "Hindi (India)"},
	"tr": {"Turkish", "Türkçe", "türkçe", "Turki", "Turkish (Turkey)"},
	// English variants
	"en":    {"English", "English (US)", "Inggris", "English (United States)"},
	"en-GB": {"English (UK)", "English (United Kingdom)", "British English", "Inggris (UK)"},
	"en-AU": {"English (Australia)", "Australian English", "Inggris (Australia)"},
}
