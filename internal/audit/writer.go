package audit

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// GenesisHash is the hash_prev of the first event in a log.
	GenesisHash = "sha256:genesis"

	hashPrefix = "sha256:"
)

// Writer persists audit events.
//
// Implementations MUST return an error when the event could not be made
// durable, set HashPrev/Hash to extend the chain, and never write
// extension value bytes.
type Writer interface {
	Write(event *Event) error
	Close() error
	LastHash() string
}

// NopWriter discards all events. It is used while audit logging is off.
type NopWriter struct{}

var _ Writer = NopWriter{}

func (NopWriter) Write(*Event) error { return nil }
func (NopWriter) Close() error       { return nil }
func (NopWriter) LastHash() string   { return GenesisHash }

// chainHash computes SHA256(canonical || prevHash).
func chainHash(canonical []byte, prevHash string) string {
	h := sha256.New()
	_, _ = h.Write(canonical)
	_, _ = h.Write([]byte(prevHash))
	return hashPrefix + hex.EncodeToString(h.Sum(nil))
}

// seal links event to prevHash and sets its Hash.
func seal(event *Event, prevHash string) error {
	event.HashPrev = prevHash
	canonical, err := event.canonicalJSON()
	if err != nil {
		return err
	}
	event.Hash = chainHash(canonical, prevHash)
	return nil
}
