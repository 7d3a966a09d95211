package service_test

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/service"
	"github.com/NuriAnaliserDev/myCyberapp/internal/domain/valueobject"
)

func newEngine(t *testing.T, deps service.EngineDeps) *service.Engine {
	t.Helper()
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	engine, err := service.NewEngine(service.DefaultRules(), deps)
	require.NoError(t, err)
	return engine
}

func TestEngine_CheckURL_Scenarios(t *testing.T) {
	engine := newEngine(t, service.EngineDeps{Blacklist: &mockBlacklist{}})
	ctx := context.Background()

	t.Run("google is safe", func(t *testing.T) {
		result := engine.CheckURL(ctx, "https://www.google.com")
		assert.Equal(t, 0, result.Score())
		assert.Equal(t, valueobject.VerdictSafe, result.Verdict())
		assert.Empty(t, result.Reasons())
		assert.Equal(t, valueobject.MethodHeuristic, result.Method())
		confidence, ok := result.Confidence()
		assert.True(t, ok)
		assert.InDelta(t, 0.027, confidence, 1e-9)
	})

	t.Run("ip literal", func(t *testing.T) {
		result := engine.CheckURL(ctx, "http://192.168.1.1/login")
		assert.GreaterOrEqual(t, result.Score(), 40)
		assert.Contains(t, result.Reasons(), ipReason)
	})

	t.Run("punycode", func(t *testing.T) {
		result := engine.CheckURL(ctx, "http://xn--pypal-4ve.com")
		assert.GreaterOrEqual(t, result.Score(), 50)
		assert.Contains(t, result.Reasons(), punycodeReason)
	})

	t.Run("homograph", func(t *testing.T) {
		result := engine.CheckURL(ctx, "http://gооgle.com")
		assert.GreaterOrEqual(t, result.Score(), 60)
		assert.Contains(t, result.Reasons(), homographReason)
	})

	t.Run("weighted strategy reported above threshold", func(t *testing.T) {
		result := engine.CheckURL(ctx, "http://xn--secure-login-account-рay.com")
		assert.Equal(t, valueobject.MethodMLEnhanced, result.Method())
		assert.Equal(t, 72, result.Score())
		assert.Equal(t, valueobject.VerdictDangerous, result.Verdict())
		assert.Equal(t, []string{
			punycodeReason,
			"Suspicious keyword 'secure' in domain",
			homographReason,
		}, result.Reasons())
	})

	t.Run("fully qualified google is safe", func(t *testing.T) {
		result := engine.CheckURL(ctx, "https://www.google.com.")
		assert.Equal(t, 0, result.Score())
		assert.Empty(t, result.Reasons())
	})

	t.Run("confidence of exactly the threshold stays heuristic", func(t *testing.T) {
		// punycode + homograph + 2/3 keywords + 60/100 length + 2/5 dots = 0.70
		host := "xn--\u0430loginsecure" + strings.Repeat("b", 37) + ".ex.com"
		require.Equal(t, 60, utf8.RuneCountInString(host))

		result := engine.CheckURL(ctx, "http://"+host)
		assert.Equal(t, valueobject.MethodHeuristic, result.Method())
		confidence, ok := result.Confidence()
		assert.True(t, ok)
		assert.InDelta(t, 0.7, confidence, 1e-9)
		assert.Equal(t, 100, result.Score())
	})

	t.Run("idempotent", func(t *testing.T) {
		first := engine.CheckURL(ctx, "http://paypal-secure-login.com")
		second := engine.CheckURL(ctx, "http://paypal-secure-login.com")
		assert.Equal(t, first, second)
	})
}

func TestEngine_CheckURL_InvalidBypassesBlacklist(t *testing.T) {
	blacklist := &mockBlacklist{entries: map[string]string{"": "never"}}
	engine := newEngine(t, service.EngineDeps{Blacklist: blacklist})

	for _, raw := range []string{"", "example.com", "http://", "not a url"} {
		result := engine.CheckURL(context.Background(), raw)
		assert.Equal(t, 0, result.Score(), raw)
		assert.Equal(t, valueobject.VerdictInvalid, result.Verdict(), raw)
		assert.Equal(t, []string{"Invalid URL"}, result.Reasons(), raw)
		assert.True(t, result.Method().IsZero())
	}
	assert.Empty(t, blacklist.Calls())
}

func TestEngine_CheckURL_Blacklist(t *testing.T) {
	blacklist := &mockBlacklist{entries: map[string]string{
		"www.google.com": "compromised mirror",
		"evil.com":       "phishing kit",
	}}
	engine := newEngine(t, service.EngineDeps{Blacklist: blacklist})
	ctx := context.Background()

	t.Run("host hit overrides a safe score", func(t *testing.T) {
		result := engine.CheckURL(ctx, "https://www.google.com")
		assert.Equal(t, 100, result.Score())
		assert.Equal(t, valueobject.VerdictDangerous, result.Verdict())
		assert.Equal(t, []string{"Blacklisted: compromised mirror"}, result.Reasons())
		assert.True(t, result.Method().IsZero())
		_, ok := result.Confidence()
		assert.False(t, ok)
	})

	t.Run("registrable domain hit", func(t *testing.T) {
		result := engine.CheckURL(ctx, "http://login.evil.com/path")
		assert.Equal(t, []string{"Blacklisted: phishing kit"}, result.Reasons())
	})

	t.Run("trailing dot does not evade the list", func(t *testing.T) {
		assert.Equal(t, []string{"Blacklisted: phishing kit"}, engine.CheckURL(ctx, "http://evil.com./").Reasons())
		assert.Equal(t, []string{"Blacklisted: phishing kit"}, engine.CheckURL(ctx, "http://login.evil.com./").Reasons())
	})

	t.Run("lookup failure fails open", func(t *testing.T) {
		failing := newEngine(t, service.EngineDeps{Blacklist: &mockBlacklist{err: errors.New("db down")}})
		result := failing.CheckURL(ctx, "http://192.168.1.1")
		assert.Equal(t, 40, result.Score())
		assert.Equal(t, []string{ipReason}, result.Reasons())
	})
}

func TestEngine_CheckURL_ExternalFeed(t *testing.T) {
	ctx := context.Background()

	t.Run("label forces 100", func(t *testing.T) {
		var seen string
		feed := &mockFeed{lookupFn: func(_ context.Context, rawURL string) (string, error) {
			seen = rawURL
			return "SOCIAL_ENGINEERING", nil
		}}
		engine := newEngine(t, service.EngineDeps{Feed: feed})

		result := engine.CheckURL(ctx, "https://www.google.com")
		assert.Equal(t, "https://www.google.com", seen)
		assert.Equal(t, 100, result.Score())
		assert.Equal(t, valueobject.VerdictDangerous, result.Verdict())
		assert.Equal(t, []string{"Reputation feed match: SOCIAL_ENGINEERING"}, result.Reasons())
	})

	t.Run("override is not additive", func(t *testing.T) {
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) { return "MALWARE", nil }}
		engine := newEngine(t, service.EngineDeps{Feed: feed})

		result := engine.CheckURL(ctx, "http://192.168.1.1")
		assert.Equal(t, 100, result.Score())
		assert.Equal(t, []string{ipReason, "Reputation feed match: MALWARE"}, result.Reasons())
	})

	t.Run("error is silent", func(t *testing.T) {
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		}}
		engine := newEngine(t, service.EngineDeps{Feed: feed})
		assert.Equal(t, 0, engine.CheckURL(ctx, "https://www.google.com").Score())
	})

	t.Run("timeout is silent", func(t *testing.T) {
		feed := &mockFeed{lookupFn: func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()
			return "MALWARE", ctx.Err()
		}}
		engine := newEngine(t, service.EngineDeps{Feed: feed, FeedTimeout: 20 * time.Millisecond})

		start := time.Now()
		result := engine.CheckURL(ctx, "https://www.google.com")
		assert.Less(t, time.Since(start), 2*time.Second)
		assert.Equal(t, 0, result.Score())
	})

	t.Run("feed ignoring its deadline is abandoned", func(t *testing.T) {
		release := make(chan struct{})
		t.Cleanup(func() { close(release) })
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) {
			<-release
			return "MALWARE", nil
		}}
		engine := newEngine(t, service.EngineDeps{Feed: feed, FeedTimeout: 50 * time.Millisecond})

		start := time.Now()
		result := engine.CheckURL(ctx, "https://www.google.com")
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, 0, result.Score())
		assert.Empty(t, result.Reasons())
	})

	t.Run("late label is discarded", func(t *testing.T) {
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) {
			time.Sleep(200 * time.Millisecond)
			return "MALWARE", nil
		}}
		engine := newEngine(t, service.EngineDeps{Feed: feed, FeedTimeout: 20 * time.Millisecond})
		assert.Equal(t, valueobject.VerdictSafe, engine.CheckURL(ctx, "https://www.google.com").Verdict())
	})

	t.Run("panic is contained", func(t *testing.T) {
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) { panic("boom") }}
		engine := newEngine(t, service.EngineDeps{Feed: feed})
		assert.Equal(t, valueobject.VerdictSafe, engine.CheckURL(ctx, "https://www.google.com").Verdict())
	})

	t.Run("blacklist hit skips the feed", func(t *testing.T) {
		called := false
		feed := &mockFeed{lookupFn: func(context.Context, string) (string, error) {
			called = true
			return "MALWARE", nil
		}}
		engine := newEngine(t, service.EngineDeps{
			Blacklist: &mockBlacklist{entries: map[string]string{"evil.com": "kit"}},
			Feed:      feed,
		})
		result := engine.CheckURL(ctx, "http://evil.com")
		assert.Equal(t, []string{"Blacklisted: kit"}, result.Reasons())
		assert.False(t, called)
	})
}

func TestEngine_CheckHash(t *testing.T) {
	const (
		emptyFile = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
		testVirus = "5e884898da28047151d0e56f8dc6292773603d0d6aabbdd62a11ef721d1542d8"
		unknown   = "0000000000000000000000000000000000000000000000000000000000000000"
	)
	blacklist := &mockBlacklist{entries: map[string]string{
		emptyFile: "operator override",
		"deadbeef": "dropper",
	}}
	engine := newEngine(t, service.EngineDeps{Blacklist: blacklist})
	ctx := context.Background()

	tests := []struct {
		name            string
		hash            string
		expectedVerdict valueobject.Verdict
		expectedReasons []string
		expectedScore   int
	}{
		{"known signature", testVirus, valueobject.VerdictDangerous, []string{"Known malicious signature: Test Virus Signature"}, 100},
		{"blacklist takes precedence", emptyFile, valueobject.VerdictDangerous, []string{"Blacklisted: operator override"}, 100},
		{"blacklisted hash", "deadbeef", valueobject.VerdictDangerous, []string{"Blacklisted: dropper"}, 100},
		{"unknown hash", unknown, valueobject.VerdictSafe, []string{}, 0},
		{"case sensitive", "5E884898DA28047151D0E56F8DC6292773603D0D6AABBDD62A11EF721D1542D8", valueobject.VerdictSafe, []string{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := engine.CheckHash(ctx, tt.hash)
			assert.Equal(t, tt.expectedScore, result.Score())
			assert.True(t, tt.expectedVerdict.Equal(result.Verdict()))
			assert.Equal(t, tt.expectedReasons, result.Reasons())
			assert.True(t, result.Method().IsZero())
		})
	}
}

func TestEngine_CheckHash_SignatureWithoutStore(t *testing.T) {
	engine := newEngine(t, service.EngineDeps{})
	result := engine.CheckHash(context.Background(), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	assert.Equal(t, []string{"Known malicious signature: Empty File (Test)"}, result.Reasons())
}

func TestNewEngine_RejectsInvalidRules(t *testing.T) {
	rules := service.DefaultRules()
	rules.MLConfidenceThreshold = decimal.NewFromFloat(1.5)

	_, err := service.NewEngine(rules, service.EngineDeps{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid rules")
}

func TestEngine_RulesAreIsolated(t *testing.T) {
	rules := service.DefaultRules()
	engine, err := service.NewEngine(rules, service.EngineDeps{})
	require.NoError(t, err)

	rules.Keywords[0] = "mutated"
	assert.Equal(t, "secure", engine.Rules().Keywords[0])
}

func TestEngine_Explain(t *testing.T) {
	engine := newEngine(t, service.EngineDeps{})
	signals := engine.Explain("http://192.168.1.1")

	triggered := map[valueobject.SignalKind]bool{}
	for _, s := range signals {
		triggered[s.Kind()] = s.Triggered()
	}
	assert.True(t, triggered[valueobject.SignalIPLiteral])
	assert.False(t, triggered[valueobject.SignalPunycode])
}

func TestEngine_ConcurrentUse(t *testing.T) {
	engine := newEngine(t, service.EngineDeps{Blacklist: &mockBlacklist{}})
	done := make(chan int, 16)
	for i := 0; i < 16; i++ {
		go func() {
			done <- engine.CheckURL(context.Background(), "http://192.168.1.1").Score()
		}()
	}
	for i := 0; i < 16; i++ {
		assert.Equal(t, 40, <-done)
	}
}
