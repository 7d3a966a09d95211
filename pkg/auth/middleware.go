package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type contextKey string

const claimsContextKey contextKey = "claims"

// ContextWithClaims returns a new context with the given Claims attached.
func ContextWithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// ClaimsFromContext extracts Claims from the context.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(*Claims)
	return claims, ok
}

// RequesterID returns the authenticated user, or uuid.Nil for anonymous calls.
func RequesterID(ctx context.Context) uuid.UUID {
	if claims, ok := ClaimsFromContext(ctx); ok {
		return claims.UserID
	}
	return uuid.Nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// UnaryAuthInterceptor returns a gRPC unary server interceptor for JWT auth.
// Methods listed in anonymousMethods may be called without a token; a token
// that is present is still validated.
func UnaryAuthInterceptor(jwtService *JWTService, anonymousMethods []string) grpc.UnaryServerInterceptor {
	anonymous := make(map[string]struct{}, len(anonymousMethods))
	for _, m := range anonymousMethods {
		anonymous[m] = struct{}{}
	}

	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		_, allowAnonymous := anonymous[info.FullMethod]

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if values := md.Get("authorization"); len(values) > 0 {
				header = values[0]
			}
		}

		if header == "" {
			if allowAnonymous {
				return handler(ctx, req)
			}
			return nil, status.Error(codes.Unauthenticated, "missing authorization header")
		}

		if jwtService == nil {
			return nil, status.Error(codes.Unauthenticated, "authentication is not configured")
		}

		token, ok := BearerToken(header)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, "invalid authorization format")
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			return nil, status.Errorf(codes.Unauthenticated, "invalid token: %v", err)
		}

		return handler(ContextWithClaims(ctx, claims), req)
	}
}
