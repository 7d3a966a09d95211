package model

import (
	"fmt"
	"strings"
	"time"
)

// BlacklistEntry is an administrator-curated deny-list record for a domain or
// file hash.
type BlacklistEntry struct {
	addedAt time.Time
	target  string
	reason  string
}

// NewBlacklistEntry validates and normalizes a new entry. Hex strings are
// treated as hashes and kept byte-for-byte; anything else is a host and is
// lower-cased.
func NewBlacklistEntry(target, reason string) (BlacklistEntry, error) {
	target = strings.TrimSpace(target)
	reason = strings.TrimSpace(reason)

	if target == "" {
		return BlacklistEntry{}, fmt.Errorf("%w: target is required", ErrInvalidEntry)
	}
	if reason == "" {
		return BlacklistEntry{}, fmt.Errorf("%w: reason is required", ErrInvalidEntry)
	}

	return BlacklistEntry{
		target:  NormalizeBlacklistTarget(target),
		reason:  reason,
		addedAt: time.Now().UTC(),
	}, nil
}

// ReconstructBlacklistEntry rebuilds an entry from persisted data.
func ReconstructBlacklistEntry(target, reason string, addedAt time.Time) BlacklistEntry {
	return BlacklistEntry{target: target, reason: reason, addedAt: addedAt}
}

// NormalizeBlacklistTarget applies the storage form used for both writes and lookups.
func NormalizeBlacklistTarget(target string) string {
	target = strings.TrimSpace(target)
	if isHex(target) {
		return target
	}
	return strings.TrimSuffix(strings.ToLower(target), ".")
}

func isHex(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

func (e BlacklistEntry) Target() string      { return e.target }
func (e BlacklistEntry) Reason() string      { return e.reason }
func (e BlacklistEntry) AddedAt() time.Time  { return e.addedAt }
