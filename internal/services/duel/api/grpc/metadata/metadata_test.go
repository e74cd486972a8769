package metadata

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

func TestRequestIDContextHelpers(t *testing.T) {
	if RequestIDFromContext(nil) != "" {
		t.Fatal("expected empty request id for nil context")
	}

	ctx := WithRequestID(nil, "req-1")
	if RequestIDFromContext(ctx) != "req-1" {
		t.Fatalf("expected request id req-1, got %s", RequestIDFromContext(ctx))
	}
}

func TestFirstMetadataValue(t *testing.T) {
	md := metadata.MD{
		"X-Openduel-Request-Id": {"\n", "req-1"},
		"x-openduel-request-id": {"req-2"},
	}

	value := FirstMetadataValue(md, RequestIDHeader)
	if value != "req-1" && value != "req-2" {
		t.Fatalf("expected printable request id, got %s", value)
	}

	if FirstMetadataValue(metadata.MD{}, RequestIDHeader) != "" {
		t.Fatal("expected empty value for empty metadata")
	}
}

func TestIsPrintableASCII(t *testing.T) {
	if isPrintableASCII("") {
		t.Fatal("expected empty string to be non-printable")
	}
	if !isPrintableASCII("hello") {
		t.Fatal("expected printable ascii to be accepted")
	}
	if isPrintableASCII("line\n") {
		t.Fatal("expected newline to be non-printable")
	}
	if isPrintableASCII(string([]byte{0x7f})) {
		t.Fatal("expected DEL to be non-printable")
	}
}

func TestEnsureRequestIDUsesIncomingValue(t *testing.T) {
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(
		RequestIDHeader, "req-1",
	))

	updated, requestID, err := ensureRequestID(ctx, func() (string, error) {
		return "generated", nil
	})
	if err != nil {
		t.Fatalf("ensure request id: %v", err)
	}
	if requestID != "req-1" {
		t.Fatalf("expected request id from metadata, got %s", requestID)
	}
	if RequestIDFromContext(updated) != "req-1" {
		t.Fatal("expected request id stored in context")
	}
}

func TestEnsureRequestIDGeneratesID(t *testing.T) {
	updated, requestID, err := ensureRequestID(context.Background(), func() (string, error) {
		return "generated", nil
	})
	if err != nil {
		t.Fatalf("ensure request id: %v", err)
	}
	if requestID != "generated" {
		t.Fatalf("expected generated request id, got %s", requestID)
	}
	if RequestIDFromContext(updated) != "generated" {
		t.Fatal("expected generated request id stored in context")
	}
}

func TestEnsureRequestIDGeneratorError(t *testing.T) {
	_, _, err := ensureRequestID(context.Background(), func() (string, error) {
		return "", errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected error when the generator fails")
	}
}

// interceptorStream is a minimal ServerStream for exercising the stream
// interceptor without a network.
type interceptorStream struct {
	grpc.ServerStream
	ctx     context.Context
	headers metadata.MD
}

func (s *interceptorStream) Context() context.Context { return s.ctx }

func (s *interceptorStream) SetHeader(md metadata.MD) error {
	s.headers = metadata.Join(s.headers, md)
	return nil
}

func TestStreamServerInterceptorAttachesRequestID(t *testing.T) {
	interceptor := StreamServerInterceptor(func() (string, error) {
		return "generated", nil
	})
	stream := &interceptorStream{ctx: context.Background()}

	var handlerCtx context.Context
	err := interceptor(nil, stream, &grpc.StreamServerInfo{}, func(_ any, handlerStream grpc.ServerStream) error {
		handlerCtx = handlerStream.Context()
		return nil
	})
	if err != nil {
		t.Fatalf("stream interceptor: %v", err)
	}

	if RequestIDFromContext(handlerCtx) != "generated" {
		t.Fatal("expected request id in handler context")
	}
	if got := FirstMetadataValue(stream.headers, RequestIDHeader); got != "generated" {
		t.Fatalf("expected request id response header, got %q", got)
	}
}
