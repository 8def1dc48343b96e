// Package cipher seals the engine's persisted JSON blobs. The envelope
// carries a strength-level marker and a plaintext checksum so a decryptor
// can detect which key-derivation schedule was used and whether the payload
// survived storage intact:
//
//	<levelMarker><crc32Hex>:<base64(nonce || AES-256-GCM ciphertext)>
//
// Decrypt is deliberately forgiving: analytics data is a best-effort
// enhancement, so a malformed or tampered envelope degrades to an empty
// dataset instead of failing the caller.
package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"hash/crc32"
	"os"
	"strings"
)

// Level selects the key-strengthening schedule.
type Level string

const (
	LevelStandard Level = "standard"
	LevelEnhanced Level = "enhanced"
)

const (
	markerStandard = 'S'
	markerEnhanced = 'E'

	iterStandard = 3
	iterEnhanced = 10

	checksumLen = 8 // crc32 as fixed-width hex

	// EmptyFallback is returned whenever an envelope can't be opened.
	EmptyFallback = "[]"
)

// Encrypt seals plaintext under the device secret at the given level.
func Encrypt(plaintext, secret string, level Level) (string, error) {
	key := deriveKey(secret, level)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := stdcipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("nonce: %w", err)
	}

	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	sum := crc32.ChecksumIEEE([]byte(plaintext))

	return fmt.Sprintf("%c%08x:%s",
		markerFor(level), sum, base64.StdEncoding.EncodeToString(sealed)), nil
}

// Decrypt opens an envelope produced by Encrypt. The level is read from the
// envelope marker, so callers don't need to remember which preferences were
// active at write time. A malformed or unopenable envelope yields
// EmptyFallback; a checksum mismatch on an otherwise valid payload only
// warns, since GCM already authenticated the ciphertext.
func Decrypt(encoded, secret string) string {
	level, sumHex, payload, ok := splitEnvelope(encoded)
	if !ok {
		warnf("cipher: malformed envelope, returning empty dataset")
		return EmptyFallback
	}

	sealed, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		warnf("cipher: bad payload encoding: %v", err)
		return EmptyFallback
	}

	key := deriveKey(secret, level)
	block, err := aes.NewCipher(key)
	if err != nil {
		warnf("cipher: %v", err)
		return EmptyFallback
	}
	gcm, err := stdcipher.NewGCM(block)
	if err != nil {
		warnf("cipher: %v", err)
		return EmptyFallback
	}
	if len(sealed) < gcm.NonceSize() {
		warnf("cipher: payload shorter than nonce")
		return EmptyFallback
	}

	nonce, ct := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plain, err := gcm.Open(nil, nonce, ct, nil)
	if err != nil {
		warnf("cipher: open failed: %v", err)
		return EmptyFallback
	}

	if fmt.Sprintf("%08x", crc32.ChecksumIEEE(plain)) != sumHex {
		warnf("cipher: checksum mismatch, payload may be corrupted")
	}
	return string(plain)
}

// deriveKey strengthens the device secret by iterated hashing. The iteration
// count is the only thing the level changes; both levels end at a 32-byte
// AES-256 key.
func deriveKey(secret string, level Level) []byte {
	iters := iterStandard
	if level == LevelEnhanced {
		iters = iterEnhanced
	}
	sum := sha256.Sum256([]byte(secret))
	for i := 1; i < iters; i++ {
		sum = sha256.Sum256(sum[:])
	}
	return sum[:]
}

func markerFor(level Level) byte {
	if level == LevelEnhanced {
		return markerEnhanced
	}
	return markerStandard
}

// splitEnvelope parses "<marker><crc32hex>:<payload>".
func splitEnvelope(encoded string) (Level, string, string, bool) {
	if len(encoded) < 1+checksumLen+1 {
		return "", "", "", false
	}

	var level Level
	switch encoded[0] {
	case markerStandard:
		level = LevelStandard
	case markerEnhanced:
		level = LevelEnhanced
	default:
		return "", "", "", false
	}

	rest := encoded[1:]
	i := strings.IndexByte(rest, ':')
	if i != checksumLen {
		return "", "", "", false
	}
	return level, rest[:checksumLen], rest[checksumLen+1:], true
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
