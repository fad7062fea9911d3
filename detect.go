package studiolingo

import (
	"regexp"
	"strings"
)

// Script-range checks run before keyword checks because scripts are
// unambiguous. Keyword lists are ordered by specificity (largest first) to
// reduce false positives between close languages such as Indonesian and
// Malay.
var (
	hanRe      = regexp.MustCompile(`\p{Han}`)
	kanaRe     = regexp.MustCompile(`[\x{3040}-\x{309f}\x{30a0}-\x{30ff}]`)
	hangulRe   = regexp.MustCompile(`[\x{ac00}-\x{d7af}]`)
	cyrillicRe = regexp.MustCompile(`[\x{0400}-\x{04ff}]`)
	arabicRe   = regexp.MustCompile(`[\x{0600}-\x{06ff}]`)
	thaiRe     = regexp.MustCompile(`[\x{0e00}-\x{0e7f}]`)
	vietRe     = regexp.MustCompile(`(?i)[àáạảãâầấậẩẫăằắặẳẵèéẹẻẽêềếệểễìíịỉĩòóọỏõôồốộổỗơờớợởỡùúụủũưừứựửữỳýỵỷỹđ]`)
)

var indonesianWords = []string{
	// Common words
	"dan", "yang", "untuk", "dengan", "ini", "itu", "adalah", "akan", "bisa", "tidak",
	"ada", "saya", "kamu", "sudah", "belum", "juga", "atau", "karena", "sangat", "lebih",
	"banyak", "dari", "ke", "di", "pada", "oleh", "apa", "siapa", "bagaimana", "mengapa",
	// Video title words
	"cara", "tutorial", "review", "unboxing", "terbaru", "terbaik", "termurah", "gratis",
	"rahasia", "tips", "trik", "mudah", "cepat", "gampang", "simpel", "lengkap",
	"wajib", "harus", "jangan", "sampai", "ketinggalan", "banget", "parah", "gila",
	"kejutan", "heboh", "viral", "trending", "populer", "hits", "keren", "mantap",
	// Verbs
	"buat", "bikin", "dapat", "dapatkan", "lihat", "tonton", "coba", "cobain",
	"beli", "jual", "harga", "murah", "mahal", "diskon", "promo", "sale",
	"jatuh", "naik", "turun", "drastis", "melonjak", "anjlok",
	// Adjectives
	"baru", "lama", "bagus", "jelek", "cantik", "ganteng", "lucu", "sedih",
	"senang", "marah", "takut", "berani", "pintar", "bodoh", "kaya", "miskin",
	// Question words
	"kenapa", "gimana", "kapan", "dimana", "kemana", "berapa",
	// Pronouns
	"aku", "kita", "kami", "mereka", "dia", "kalian", "gue", "gw", "lo", "lu",
	// Time words
	"hari", "minggu", "bulan", "tahun", "sekarang", "nanti", "kemarin", "besok",
	// Currency context
	"ribu", "juta", "miliar", "rupiah", "rp",
}

var malayWords = []string{
	"saya", "awak", "kamu", "anda", "mereka", "kami", "kita", "hendak", "mahu", "boleh",
	"perlu", "harus", "sedang", "telah", "akan", "sudah", "belum", "masih", "sahaja", "pun",
	"lagi", "juga", "tetapi", "namun", "walau", "kerana", "sebab", "oleh", "untuk", "kepada",
	"daripada", "dengan", "tanpa", "dalam", "luar", "atas", "bawah", "sini", "sana", "mana",
	"bila", "bagaimana", "mengapa", "siapa", "apa",
}

var spanishWords = []string{
	"el", "la", "los", "las", "un", "una", "de", "en", "que", "y", "es", "por", "con",
	"para", "como", "más", "pero", "su", "todo", "esta", "esto", "ese", "esa", "muy",
	"bien", "mal", "ahora", "siempre", "nunca", "también", "porque", "cuando", "donde",
	"quien", "cual", "sin", "sobre", "entre", "hasta", "desde", "durante", "según",
	"hacia", "contra", "tras",
}

var germanWords = []string{
	"der", "die", "das", "und", "ist", "von", "zu", "den", "mit", "sich", "des", "auf",
	"für", "nicht", "ein", "eine", "dem", "als", "auch", "werden", "aus", "hat", "dass",
	"nach", "wird", "bei", "einer", "einem", "eines", "noch", "wie", "sein", "über",
	"zum", "kann", "nur", "ihr", "seine", "oder", "diese", "dieser", "dieses", "wenn",
	"mehr", "durch", "schon", "vor", "immer", "sehr", "hier", "doch", "vom", "haben",
	"machen", "gehen", "kommen", "sehen", "wissen", "müssen", "können", "wollen",
	"sollen", "dürfen", "mögen",
}

var frenchWords = []string{
	"le", "la", "les", "de", "du", "des", "un", "une", "et", "est", "en", "que", "qui",
	"dans", "ce", "il", "elle", "ne", "pas", "plus", "pour", "sur", "avec", "tout",
	"tous", "toute", "toutes", "son", "sa", "ses", "leur", "leurs", "mon", "ma", "mes",
	"notre", "nos", "votre", "vos", "je", "tu", "nous", "vous", "ils", "elles", "on",
	"se", "lui", "eux", "moi", "toi", "dont", "où", "quand", "comment", "pourquoi",
	"quel", "quelle", "si", "mais", "ou", "donc", "car", "ni", "parce", "comme",
	"très", "bien", "beaucoup", "trop", "assez", "aussi", "encore", "déjà", "toujours",
	"jamais", "souvent", "maintenant", "hier", "demain", "ici", "voici", "voilà",
	"être", "avoir", "faire", "dire", "aller", "voir", "savoir", "pouvoir", "vouloir",
	"devoir", "venir", "prendre", "mettre",
}

var portugueseWords = []string{
	"o", "os", "as", "um", "uma", "em", "é", "com", "mais", "mas", "seu", "sua",
	"todo", "esse", "essa", "isso", "isto", "aquele", "aquela", "aquilo", "muito",
	"bem", "mal", "agora", "sempre", "nunca", "também", "porque", "quando", "onde",
	"quem", "qual", "sem", "sobre", "entre", "até", "desde", "durante", "segundo",
	"após", "através", "além", "dentro", "fora", "acima", "abaixo", "antes",
	"depois", "junto", "perto", "longe", "aqui", "ali", "lá", "cá", "aonde",
	"quanto", "quantos", "quais", "cujo", "cuja",
}

// keywordChecks pairs a language code with its word list. Order matters:
// Indonesian before Malay (the lists overlap, Indonesian's is far larger
// and more specific), Romance languages last.
var keywordChecks = []struct {
	code  string
	words []string
}{
	{"id", indonesianWords},
	{"ms", malayWords},
	{"es", spanishWords},
	{"de", germanWords},
	{"fr", frenchWords},
	{"pt", portugueseWords},
}

// DetectFromText classifies a text sample into a language code. It applies
// script-range checks first, then whole-word keyword checks, and falls back
// to "en". Pure and deterministic: identical input yields identical output.
func DetectFromText(sample string) string {
	if strings.TrimSpace(sample) == "" {
		return "en"
	}

	if hanRe.MatchString(sample) {
		// Kana presence means Japanese even with Han characters mixed in.
		if kanaRe.MatchString(sample) {
			return "ja"
		}
		return "zh"
	}
	if kanaRe.MatchString(sample) {
		return "ja"
	}
	if hangulRe.MatchString(sample) {
		return "ko"
	}
	if cyrillicRe.MatchString(sample) {
		return "ru"
	}
	if arabicRe.MatchString(sample) {
		return "ar"
	}
	if thaiRe.MatchString(sample) {
		return "th"
	}
	if vietRe.MatchString(sample) {
		return "vi"
	}

	words := tokenize(sample)
	for _, check := range keywordChecks {
		if matchesAny(words, check.words) {
			return check.code
		}
	}
	return "en"
}

// DetectFromLabel resolves a UI-scraped label to a catalog code when
// possible. Unrecognized labels are returned unchanged: downstream AI
// prompting can interpret natural-language names directly, which avoids a
// mapping table for every UI locale.
func (c *Catalog) DetectFromLabel(rawLabel string) string {
	label := strings.TrimSpace(rawLabel)
	if label == "" {
		return label
	}
	if c.Has(label) {
		return label
	}
	lower := strings.ToLower(label)
	for code := range c.entries {
		if strings.ToLower(c.DisplayName(code)) == lower {
			return code
		}
		for _, v := range NameVariations[code] {
			if strings.ToLower(v) == lower {
				return code
			}
		}
	}
	return rawLabel
}

func tokenize(sample string) map[string]bool {
	fields := strings.FieldsFunc(strings.ToLower(sample), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r > 127)
	})
	out := make(map[string]bool, len(fields))
	for _, f := range fields {
		out[f] = true
	}
	return out
}

func matchesAny(words map[string]bool, list []string) bool {
	for _, w := range list {
		if words[w] {
			return true
		}
	}
	return false
}
