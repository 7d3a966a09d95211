package grpc_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	reputationgrpc "github.com/NuriAnaliserDev/myCyberapp/internal/presentation/grpc"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/testutil"
)

// --- Mock implementations ---

type stubURLCheck struct {
	resp dto.ScoreResponse
	err  error
	last *dto.CheckURLRequest
}

func (s *stubURLCheck) Execute(_ context.Context, req dto.CheckURLRequest) (dto.ScoreResponse, error) {
	s.last = &req
	return s.resp, s.err
}

type stubHashCheck struct {
	resp dto.ScoreResponse
	err  error
	last *dto.CheckHashRequest
}

func (s *stubHashCheck) Execute(_ context.Context, req dto.CheckHashRequest) (dto.ScoreResponse, error) {
	s.last = &req
	return s.resp, s.err
}

// --- Helpers ---

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func requireGRPCCode(t *testing.T, err error, want codes.Code) {
	t.Helper()
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok, "expected gRPC status error, got %v", err)
	assert.Equal(t, want, st.Code(), st.Message())
}

type harness struct {
	urls   *stubURLCheck
	hashes *stubHashCheck
	jwt    *auth.JWTService
	conn   *grpclib.ClientConn
	client reputationgrpc.ReputationServiceClient
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	jwtService, err := auth.NewJWTService(auth.JWTConfig{
		Secret:     testutil.TestJWTSecret,
		Issuer:     testutil.TestJWTIssuer,
		Expiration: time.Hour,
	})
	require.NoError(t, err)

	h := &harness{
		urls:   &stubURLCheck{resp: dto.ScoreResponse{Verdict: "safe", Method: "heuristic", Reasons: []string{}}},
		hashes: &stubHashCheck{resp: dto.ScoreResponse{Verdict: "safe", Reasons: []string{}}},
		jwt:    jwtService,
	}

	handler := reputationgrpc.NewReputationServiceHandler(h.urls, h.hashes, discardLogger())
	server := reputationgrpc.NewServer(handler, reputationgrpc.ServerConfig{JWT: jwtService}, discardLogger())

	listener := bufconn.Listen(1 << 20)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpclib.NewClient("passthrough:///bufnet",
		grpclib.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpclib.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	h.conn = conn
	h.client = reputationgrpc.NewReputationServiceClient(conn)
	return h
}

func (h *harness) withToken(t *testing.T, ctx context.Context, userID uuid.UUID) context.Context {
	t.Helper()
	token, err := h.jwt.GenerateToken(userID, []string{auth.RoleClient})
	require.NoError(t, err)
	return metadata.AppendToOutgoingContext(ctx, "authorization", "Bearer "+token)
}

// --- Tests ---

func TestCheckURL_Anonymous(t *testing.T) {
	h := newHarness(t)
	confidence := 0.9
	h.urls.resp = dto.ScoreResponse{
		Score:        90,
		Verdict:      "dangerous",
		Method:       "ml",
		Reasons:      []string{"IP address used instead of domain"},
		MLConfidence: &confidence,
	}

	resp, err := h.client.CheckURL(context.Background(), &reputationgrpc.CheckURLRequest{URL: "http://192.168.1.1/login"})
	require.NoError(t, err)

	assert.Equal(t, 90, resp.Score)
	assert.Equal(t, "dangerous", resp.Verdict)
	assert.Equal(t, "ml", resp.Method)
	require.NotNil(t, resp.MLConfidence)
	assert.InDelta(t, 0.9, *resp.MLConfidence, 1e-9)

	require.NotNil(t, h.urls.last)
	assert.Equal(t, "http://192.168.1.1/login", h.urls.last.URL)
	assert.Equal(t, uuid.Nil, h.urls.last.RequesterID)
}

func TestCheckURL_AuthenticatedRequester(t *testing.T) {
	h := newHarness(t)
	ctx := h.withToken(t, context.Background(), testutil.TestUserID1)

	_, err := h.client.CheckURL(ctx, &reputationgrpc.CheckURLRequest{URL: testutil.SafeURL})
	require.NoError(t, err)

	require.NotNil(t, h.urls.last)
	assert.Equal(t, testutil.TestUserID1, h.urls.last.RequesterID)
}

func TestCheckURL_InvalidToken(t *testing.T) {
	h := newHarness(t)
	ctx := metadata.AppendToOutgoingContext(context.Background(), "authorization", "Bearer garbage")

	_, err := h.client.CheckURL(ctx, &reputationgrpc.CheckURLRequest{URL: testutil.SafeURL})

	requireGRPCCode(t, err, codes.Unauthenticated)
	assert.Nil(t, h.urls.last)
}

func TestCheckURL_EmptyURLIsNotAnRPCError(t *testing.T) {
	h := newHarness(t)
	h.urls.resp = dto.ScoreResponse{Verdict: "invalid", Reasons: []string{"Invalid URL"}}

	resp, err := h.client.CheckURL(context.Background(), &reputationgrpc.CheckURLRequest{})
	require.NoError(t, err)

	assert.Equal(t, "invalid", resp.Verdict)
	assert.Equal(t, 0, resp.Score)
}

func TestCheckURL_ServiceError(t *testing.T) {
	h := newHarness(t)
	h.urls.err = errors.New("boom")

	_, err := h.client.CheckURL(context.Background(), &reputationgrpc.CheckURLRequest{URL: testutil.SafeURL})

	requireGRPCCode(t, err, codes.Internal)
}

func TestCheckHash(t *testing.T) {
	t.Run("known signature", func(t *testing.T) {
		h := newHarness(t)
		h.hashes.resp = dto.ScoreResponse{Score: 100, Verdict: "dangerous", Reasons: []string{"Known malware signature: Empty File (Test)"}}
		ctx := h.withToken(t, context.Background(), testutil.TestUserID2)

		resp, err := h.client.CheckHash(ctx, &reputationgrpc.CheckHashRequest{Hash: testutil.MaliciousHash})
		require.NoError(t, err)

		assert.Equal(t, 100, resp.Score)
		assert.Equal(t, "dangerous", resp.Verdict)
		assert.Empty(t, resp.Method)
		assert.Nil(t, resp.MLConfidence)
		assert.Equal(t, testutil.TestUserID2, h.hashes.last.RequesterID)
	})

	t.Run("empty hash is checked like any other", func(t *testing.T) {
		h := newHarness(t)

		resp, err := h.client.CheckHash(context.Background(), &reputationgrpc.CheckHashRequest{})
		require.NoError(t, err)

		assert.Equal(t, 0, resp.Score)
		assert.Equal(t, "safe", resp.Verdict)
		require.NotNil(t, h.hashes.last)
		assert.Empty(t, h.hashes.last.Hash)
	})

	t.Run("nil reasons become empty list", func(t *testing.T) {
		h := newHarness(t)
		h.hashes.resp = dto.ScoreResponse{Verdict: "safe"}

		resp, err := h.client.CheckHash(context.Background(), &reputationgrpc.CheckHashRequest{Hash: testutil.UnknownHash})
		require.NoError(t, err)

		assert.NotNil(t, resp.Reasons)
		assert.Empty(t, resp.Reasons)
	})
}

func TestHealthCheck(t *testing.T) {
	h := newHarness(t)

	resp, err := healthpb.NewHealthClient(h.conn).Check(context.Background(), &healthpb.HealthCheckRequest{
		Service: reputationgrpc.ReputationServiceName,
	})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}

func TestHandler_Direct(t *testing.T) {
	urls := &stubURLCheck{resp: dto.ScoreResponse{Verdict: "safe"}}
	handler := reputationgrpc.NewReputationServiceHandler(urls, &stubHashCheck{}, discardLogger())
	ctx := auth.ContextWithClaims(context.Background(), &auth.Claims{UserID: testutil.TestAdminID})

	resp, err := handler.CheckURL(ctx, &reputationgrpc.CheckURLRequest{URL: testutil.SafeURL})
	require.NoError(t, err)

	assert.Equal(t, "safe", resp.Verdict)
	assert.Equal(t, testutil.TestAdminID, urls.last.RequesterID)
}
