package privacy

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// tokenLen is the length of the printable token kept after folding.
const tokenLen = 16

// Anonymize maps a raw identifier to an opaque token by chaining two keyed
// hashes under independent device salts. Deterministic for a given device:
// the same raw id always folds to the same token, so repeated events from
// one learner stay linkable without the raw id ever being stored. Reversal
// would require both device secrets.
func Anonymize(rawID string, secrets SecretMaterial) string {
	first := keyedDigest(rawID, secrets.PrimaryAnonKey)
	second := keyedDigest(first, secrets.SecondaryAnonKey)
	return second[:tokenLen]
}

func keyedDigest(msg, key string) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(msg))
	return hex.EncodeToString(mac.Sum(nil))
}
