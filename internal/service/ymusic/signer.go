package ymusic

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // The storage signature is defined over MD5.
	"crypto/rand"
	"crypto/sha1" //nolint:gosec // The storage signature is defined over HMAC-SHA1.
	"encoding/hex"
	"fmt"
	"unicode/utf8"
)

const (
	// storageSignKey is the service key prepended to every signed secret.
	storageSignKey = "XGRlBW9FXlekgbPrRHuSiA"
	// defaultHMACKeySize is the size of a generated HMAC key, one SHA-1 block.
	defaultHMACKeySize = 64
)

// Signer computes download link signatures. It is immutable and safe for concurrent use.
type Signer struct {
	key []byte
}

// NewSigner creates a signer keyed with a copy of key.
// An empty key makes the signer generate a random 64-byte key once.
func NewSigner(key []byte) (*Signer, error) {
	if len(key) == 0 {
		key = make([]byte, defaultHMACKeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate signer key: %w", err)
		}

		return &Signer{key: key}, nil
	}

	return &Signer{key: append([]byte(nil), key...)}, nil
}

// Sign returns the lowercase hex signature of a storage path and salt:
// HMAC-SHA1 over MD5(service key + path without its first character + salt).
func (s *Signer) Sign(path, salt string) string {
	_, size := utf8.DecodeRuneInString(path)

	secret := storageSignKey + path[size:] + salt
	digest := md5.Sum([]byte(secret)) //nolint:gosec // See import.

	mac := hmac.New(sha1.New, s.key)
	mac.Write(digest[:])

	return hex.EncodeToString(mac.Sum(nil))
}
