package studiolingo

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashText computes the SHA-256 hash of the trimmed text.
func HashText(text string) string {
	trimmed := strings.TrimSpace(text)
	sum := sha256.Sum256([]byte(trimmed))
	return hex.EncodeToString(sum[:])
}

// CacheKey generates a translation cache key from a source-text hash and the
// source/target language pair.
func CacheKey(hash, sourceLang, targetLang string) string {
	return hash + ":" + sourceLang + ":" + targetLang
}
