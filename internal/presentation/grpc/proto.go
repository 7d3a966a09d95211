package grpc

// proto.go is the hand-maintained equivalent of the generated service code for
// phishguard.reputation.v1.ReputationService. Messages travel with the JSON
// codec registered in codec.go.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Fully-qualified method names.
const (
	ReputationServiceName                      = "phishguard.reputation.v1.ReputationService"
	ReputationService_CheckURL_FullMethodName  = "/" + ReputationServiceName + "/CheckURL"
	ReputationService_CheckHash_FullMethodName = "/" + ReputationServiceName + "/CheckHash"
)

// CheckURLRequest represents the proto CheckURLRequest message.
type CheckURLRequest struct {
	URL string `json:"url"`
}

// CheckHashRequest represents the proto CheckHashRequest message.
type CheckHashRequest struct {
	Hash string `json:"hash"`
}

// CheckResponse represents the proto CheckResponse message.
type CheckResponse struct {
	MLConfidence *float64 `json:"ml_confidence,omitempty"`
	Verdict      string   `json:"verdict"`
	Method       string   `json:"method,omitempty"`
	Reasons      []string `json:"reasons"`
	Score        int      `json:"score"`
}

// ReputationServiceServer is the server API for ReputationService.
type ReputationServiceServer interface {
	CheckURL(context.Context, *CheckURLRequest) (*CheckResponse, error)
	CheckHash(context.Context, *CheckHashRequest) (*CheckResponse, error)
	mustEmbedUnimplementedReputationServiceServer()
}

// UnimplementedReputationServiceServer provides forward-compatible default implementations.
type UnimplementedReputationServiceServer struct{}

func (UnimplementedReputationServiceServer) CheckURL(context.Context, *CheckURLRequest) (*CheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckURL not implemented")
}
func (UnimplementedReputationServiceServer) CheckHash(context.Context, *CheckHashRequest) (*CheckResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CheckHash not implemented")
}
func (UnimplementedReputationServiceServer) mustEmbedUnimplementedReputationServiceServer() {}

// RegisterReputationServiceServer registers the ReputationServiceServer with the gRPC server.
func RegisterReputationServiceServer(s grpclib.ServiceRegistrar, srv ReputationServiceServer) {
	s.RegisterService(&_ReputationService_serviceDesc, srv)
}

var _ReputationService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: ReputationServiceName,
	HandlerType: (*ReputationServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "CheckURL", Handler: _ReputationService_CheckURL_Handler},
		{MethodName: "CheckHash", Handler: _ReputationService_CheckHash_Handler},
	},
	Streams:  []grpclib.StreamDesc{},
	Metadata: "phishguard/reputation/v1/reputation.proto",
}

func _ReputationService_CheckURL_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckURLRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReputationServiceServer).CheckURL(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReputationService_CheckURL_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReputationServiceServer).CheckURL(ctx, req.(*CheckURLRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _ReputationService_CheckHash_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(CheckHashRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ReputationServiceServer).CheckHash(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: ReputationService_CheckHash_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ReputationServiceServer).CheckHash(ctx, req.(*CheckHashRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ReputationServiceClient is the client API for ReputationService.
type ReputationServiceClient interface {
	CheckURL(ctx context.Context, in *CheckURLRequest, opts ...grpclib.CallOption) (*CheckResponse, error)
	CheckHash(ctx context.Context, in *CheckHashRequest, opts ...grpclib.CallOption) (*CheckResponse, error)
}

type reputationServiceClient struct {
	cc grpclib.ClientConnInterface
}

// NewReputationServiceClient returns a client that speaks the JSON codec.
func NewReputationServiceClient(cc grpclib.ClientConnInterface) ReputationServiceClient {
	return &reputationServiceClient{cc: cc}
}

func (c *reputationServiceClient) CheckURL(ctx context.Context, in *CheckURLRequest, opts ...grpclib.CallOption) (*CheckResponse, error) {
	out := new(CheckResponse)
	if err := c.cc.Invoke(ctx, ReputationService_CheckURL_FullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *reputationServiceClient) CheckHash(ctx context.Context, in *CheckHashRequest, opts ...grpclib.CallOption) (*CheckResponse, error) {
	out := new(CheckResponse)
	if err := c.cc.Invoke(ctx, ReputationService_CheckHash_FullMethodName, in, out, withJSON(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
