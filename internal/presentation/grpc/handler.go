package grpc

import (
	"context"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/NuriAnaliserDev/myCyberapp/internal/application/dto"
	"github.com/NuriAnaliserDev/myCyberapp/pkg/auth"
)

// URLCheckService scores URLs.
type URLCheckService interface {
	Execute(ctx context.Context, req dto.CheckURLRequest) (dto.ScoreResponse, error)
}

// HashCheckService checks application package hashes.
type HashCheckService interface {
	Execute(ctx context.Context, req dto.CheckHashRequest) (dto.ScoreResponse, error)
}

// Compile-time assertion that ReputationServiceHandler implements ReputationServiceServer.
var _ ReputationServiceServer = (*ReputationServiceHandler)(nil)

// ReputationServiceHandler implements the gRPC ReputationServiceServer interface.
type ReputationServiceHandler struct {
	UnimplementedReputationServiceServer
	checkURL  URLCheckService
	checkHash HashCheckService
	logger    *slog.Logger
}

// NewReputationServiceHandler creates a new gRPC handler.
func NewReputationServiceHandler(
	checkURL URLCheckService,
	checkHash HashCheckService,
	logger *slog.Logger,
) *ReputationServiceHandler {
	return &ReputationServiceHandler{
		checkURL:  checkURL,
		checkHash: checkHash,
		logger:    logger,
	}
}

// CheckURL scores a URL. An empty or malformed URL is not an RPC error; it
// yields the invalid verdict like any other unscorable input.
func (h *ReputationServiceHandler) CheckURL(ctx context.Context, req *CheckURLRequest) (*CheckResponse, error) {
	resp, err := h.checkURL.Execute(ctx, dto.CheckURLRequest{
		URL:         req.URL,
		RequesterID: auth.RequesterID(ctx),
	})
	if err != nil {
		h.logger.Error("url check failed", "error", err)
		return nil, status.Error(codes.Internal, "url check failed")
	}
	return toProto(resp), nil
}

// CheckHash checks an application package hash. Proto3 cannot tell an absent
// hash from an empty one, so both are checked like REST's empty string.
func (h *ReputationServiceHandler) CheckHash(ctx context.Context, req *CheckHashRequest) (*CheckResponse, error) {
	resp, err := h.checkHash.Execute(ctx, dto.CheckHashRequest{
		Hash:        req.Hash,
		RequesterID: auth.RequesterID(ctx),
	})
	if err != nil {
		h.logger.Error("hash check failed", "error", err)
		return nil, status.Error(codes.Internal, "hash check failed")
	}
	return toProto(resp), nil
}

func toProto(resp dto.ScoreResponse) *CheckResponse {
	reasons := resp.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return &CheckResponse{
		Score:        resp.Score,
		Verdict:      resp.Verdict,
		Reasons:      reasons,
		Method:       resp.Method,
		MLConfidence: resp.MLConfidence,
	}
}
