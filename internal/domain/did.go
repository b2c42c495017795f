package domain

import (
	"crypto/ed25519"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
)

// DIDPrefix is the method prefix for all HAID decentralized identifiers.
const DIDPrefix = "did:haid:"

// didHashLength is the number of hex characters of the public key hash
// kept in the identifier.
const didHashLength = 32

var didPattern = regexp.MustCompile(`^did:haid:[a-f0-9]{32}$`)

// DID represents a decentralized identifier naming a beneficiary.
// It is a deterministic function of the beneficiary's public key.
type DID string

// NewDID derives a DID from an ed25519 public key: the did:haid: prefix
// followed by the first 32 hex characters of the key's SHA-256 hash.
func NewDID(publicKey ed25519.PublicKey) DID {
	hash := sha256.Sum256(publicKey)
	return DID(fmt.Sprintf("%s%s", DIDPrefix, hex.EncodeToString(hash[:])[:didHashLength]))
}

// Valid reports whether the DID is well-formed.
func (d DID) Valid() bool {
	return didPattern.MatchString(string(d))
}

// String returns the string representation of the DID.
func (d DID) String() string {
	return string(d)
}
