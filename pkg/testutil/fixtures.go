package testutil

import (
	"github.com/google/uuid"
)

// Fixed UUIDs for deterministic testing
var (
	TestUserID1 = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	TestUserID2 = uuid.MustParse("00000000-0000-0000-0000-000000000002")
	TestAdminID = uuid.MustParse("00000000-0000-0000-0000-0000000000ad")
)

// Sample targets shared by tests across layers.
const (
	SafeURL         = "https://google.com"
	PhishingURL     = "http://paypal-secure-login.com/verify"
	HomographURL    = "https://gооgle.com" // two Cyrillic о
	MaliciousHash   = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	UnknownHash     = "0000000000000000000000000000000000000000000000000000000000000000"
	BlacklistedHost = "evil-phish.example"
	BlacklistReason = "reported by CERT"
	TestJWTSecret   = "test-secret-key-for-unit-tests"
	TestJWTIssuer   = "phishguard-test"
)
