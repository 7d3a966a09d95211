package service

import (
	"context"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/model"
)

var knownSignatures = map[string]string{
	"e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855": "Empty File (Test)",
	"5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8": "Test Virus Signature",
}

// KnownSignatures returns a copy of the compiled-in signature set.
func KnownSignatures() map[string]string {
	out := make(map[string]string, len(knownSignatures))
	for k, v := range knownSignatures {
		out[k] = v
	}
	return out
}

// HashChecker checks file hashes against the deny-list and the signature set.
// Matching is exact; no case folding is applied.
type HashChecker struct {
	gate       *BlacklistGate
	signatures map[string]string
}

// NewHashChecker creates a HashChecker using the built-in signatures.
func NewHashChecker(gate *BlacklistGate) *HashChecker {
	return &HashChecker{gate: gate, signatures: knownSignatures}
}

// Check returns the result for hash.
func (c *HashChecker) Check(ctx context.Context, hash string) model.ScoreResult {
	if reason, listed := c.gate.Check(ctx, hash); listed {
		return model.BlacklistedResult(reason)
	}
	if desc, ok := c.signatures[hash]; ok {
		return model.SignatureResult(desc)
	}
	return model.CleanResult()
}
