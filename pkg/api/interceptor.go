package api

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"github.com/cuemby/scribe/pkg/metrics"
)

// MetricsInterceptor creates a gRPC unary interceptor that records a request
// counter and a latency observation for every RPC, labeled by method name and
// gRPC status code.
func MetricsInterceptor() grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		timer := metrics.NewTimer()
		resp, err := handler(ctx, req)

		method := methodName(info.FullMethod)
		timer.ObserveDurationVec(metrics.APIRequestDuration, method)
		metrics.APIRequestsTotal.WithLabelValues(method, status.Code(err).String()).Inc()

		return resp, err
	}
}

// methodName extracts the bare method from a full gRPC method path
// (e.g. "/scribe.ScribeAPI/GetDocument" -> "GetDocument").
func methodName(fullMethod string) string {
	parts := strings.Split(fullMethod, "/")
	return parts[len(parts)-1]
}
