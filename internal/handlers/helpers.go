package handlers

import (
	"github.com/asakaida/banken/internal/entities"
	"github.com/asakaida/banken/internal/repositories"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// storeError maps a storage failure to the matching gRPC status:
// retryable unavailability becomes codes.Unavailable, everything else
// codes.Internal
func storeError(op string, err error) error {
	if repositories.IsUnavailable(err) {
		return status.Errorf(codes.Unavailable, "%s: %v", op, err)
	}
	return status.Errorf(codes.Internal, "%s: %v", op, err)
}

// toStrings converts typed IDs to the plain strings the wire types carry
// The result is never nil, so empty lists encode as [] rather than null
func toStrings[T entities.ID](ids []T) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, string(id))
	}
	return out
}

// toIDs converts wire strings to typed IDs
func toIDs[T entities.ID](ss []string) []T {
	out := make([]T, 0, len(ss))
	for _, s := range ss {
		out = append(out, T(s))
	}
	return out
}
