package studiolingo

import "testing"

func TestDetectFromText(t *testing.T) {
	tests := []struct {
		name     string
		sample   string
		expected string
	}{
		{"chinese", "你好世界", "zh"},
		{"japanese kana", "こんにちは、元気ですか", "ja"},
		{"japanese mixed han and kana", "日本語を勉強する", "ja"},
		{"korean", "안녕하세요 여러분", "ko"},
		{"russian", "Привет мир, как дела", "ru"},
		{"arabic", "مرحبا بالعالم", "ar"},
		{"thai", "สวัสดีครับ", "th"},
		{"vietnamese", "Xin chào các bạn", "vi"},
		{"indonesian", "Halo, apa kabar? Tutorial cara membuat video viral", "id"},
		{"malay", "Awak hendak pergi mana", "ms"},
		{"spanish", "Esto es muy bien para todos", "es"},
		{"german", "Das ist ein sehr gutes Video für alle", "de"},
		{"french", "Bonjour tout le monde, voici ma nouvelle chanson", "fr"},
		{"portuguese", "Isso muito bem, obrigado depois", "pt"},
		{"english prose", "How to build a birdhouse in ten minutes", "en"},
		{"gibberish falls back to english", "asdfgh qwerty zxcvb", "en"},
		{"empty falls back to english", "", "en"},
		{"whitespace falls back to english", "   \n\t  ", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectFromText(tt.sample)
			if got != tt.expected {
				t.Errorf("DetectFromText(%q) = %q, want %q", tt.sample, got, tt.expected)
			}
		})
	}
}

func TestDetectFromTextDeterministic(t *testing.T) {
	sample := "cara membuat video tutorial terbaru"
	first := DetectFromText(sample)
	for i := 0; i < 10; i++ {
		if got := DetectFromText(sample); got != first {
			t.Fatalf("iteration %d: %q != %q", i, got, first)
		}
	}
}

func TestDetectFromLabel(t *testing.T) {
	c := NewCatalog()

	tests := []struct {
		name     string
		label    string
		expected string
	}{
		{"exact code", "ja", "ja"},
		{"display name", "Japanese", "ja"},
		{"display name case-insensitive", "jAPANESE", "ja"},
		{"native variation", "日本語", "ja"},
		{"german native", "Deutsch", "de"},
		{"german lowercase variation", "deutsch", "de"},
		{"whitespace trimmed", "  Japanese  ", "ja"},
		{"unrecognized passthrough", "Klingon (Qo'noS)", "Klingon (Qo'noS)"},
		{"empty passthrough", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.DetectFromLabel(tt.label)
			if got != tt.expected {
				t.Errorf("DetectFromLabel(%q) = %q, want %q", tt.label, got, tt.expected)
			}
		})
	}
}
