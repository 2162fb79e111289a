package utils

import (
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

const upperAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// RandomString returns size characters drawn from uppercase letters
// plus the hex digits of one freshly generated UUID. Sufficiently
// unique as a label; not a security primitive.
func RandomString(size int) string {
	if size <= 0 {
		return ""
	}
	pool := upperAlphabet + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	var b strings.Builder
	b.Grow(size)
	for i := 0; i < size; i++ {
		b.WriteByte(pool[rand.Intn(len(pool))])
	}
	return b.String()
}

// GenerateOrderID prefixes a random token with the order tag.
func GenerateOrderID(size int) string {
	return "IW-" + RandomString(size)
}

// NewUUID returns a fresh random unique identifier.
func NewUUID() uuid.UUID {
	return uuid.New()
}

// NewUUIDString returns a fresh random identifier as hex text without
// dashes.
func NewUUIDString() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// MakeSlug builds a URL-safe slug from a name plus a random suffix so
// two products with the same title never collide.
func MakeSlug(name string, randomLen int) string {
	base := strings.NewReplacer(" ", "-", "_", "-").Replace(name)
	if len(base) > 30 {
		base = base[:30]
	}
	return strings.ToLower(base + "-" + strings.TrimSpace(RandomString(randomLen)))
}
