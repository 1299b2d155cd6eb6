package metrics

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

// UnaryServerInterceptor returns a gRPC interceptor that feeds every
// request into the collector and, when one is configured, the Prometheus
// exporter. The exporter may be nil.
func UnaryServerInterceptor(collector *Collector, exporter *PrometheusExporter) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context,
		req interface{},
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (interface{}, error) {
		start := time.Now()
		method := info.FullMethod

		collector.RecordRequest(method)
		if exporter != nil {
			exporter.RecordRequest(method)
		}

		resp, err := handler(ctx, req)

		seconds := time.Since(start).Seconds()
		collector.RecordDuration(method, seconds)
		if exporter != nil {
			exporter.RecordDuration(method, seconds)
		}

		if err != nil {
			collector.RecordError(method)
			if exporter != nil {
				exporter.RecordError(method, status.Code(err).String())
			}
		}

		return resp, err
	}
}
