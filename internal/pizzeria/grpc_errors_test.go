package pizzeria

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestMapCommandError_mapsEachCode(t *testing.T) {
	tests := []struct {
		err  error
		want codes.Code
	}{
		{NewInvalidArgument("bad field"), codes.InvalidArgument},
		{NewFailedPrecondition("not ready"), codes.FailedPrecondition},
		{NewNotFound("missing"), codes.NotFound},
		{NewUnauthenticated("login first"), codes.Unauthenticated},
		{errors.New("something broke"), codes.Internal},
	}
	for _, tt := range tests {
		st, ok := status.FromError(MapCommandError(tt.err))
		if !ok {
			t.Fatalf("expected gRPC status error for %v", tt.err)
		}
		if st.Code() != tt.want {
			t.Errorf("MapCommandError(%v) code = %v, want %v", tt.err, st.Code(), tt.want)
		}
	}
}

func TestMapCommandError_keepsMessage(t *testing.T) {
	st, _ := status.FromError(MapCommandError(NewInvalidArgument("bad field")))
	if st.Message() != "bad field" {
		t.Errorf("expected 'bad field', got %q", st.Message())
	}
}

func TestMapCommandError_nil(t *testing.T) {
	if MapCommandError(nil) != nil {
		t.Error("expected nil for nil error")
	}
}
