package otellib

import (
	"context"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type loggerContextKey struct{}

const (
	traceIDField    = "trace.id"
	spanIDField     = "span.id"
	campaignIDField = "campaign.id"
)

// SetTraceInfoInterceptor tags gRPC logs with the trace of the call and puts logger into its context
func SetTraceInfoInterceptor(logger *zap.Logger) grpc.UnaryServerInterceptor {
	return func(
		ctx context.Context, req interface{}, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler,
	) (interface{}, error) {
		sc := trace.SpanContextFromContext(ctx)
		if sc.IsValid() {
			tags := grpc_ctxtags.Extract(ctx)
			tags.Set(traceIDField, sc.TraceID().String())
			tags.Set(spanIDField, sc.SpanID().String())
		}
		return handler(ToContext(ctx, logger), req)
	}
}

// ToContext ...
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, l)
}

// WithCampaignID returns a context whose logger reports the campaign being served
func WithCampaignID(ctx context.Context, id string) context.Context {
	l, ok := ctx.Value(loggerContextKey{}).(*zap.Logger)
	if !ok {
		return ctx
	}
	return ToContext(ctx, l.With(zap.String(campaignIDField, id)))
}

// Extract returns the logger of ctx with the current trace, a no-op logger when there is none
func Extract(ctx context.Context) *zap.Logger {
	l, ok := ctx.Value(loggerContextKey{}).(*zap.Logger)
	if !ok {
		return zap.NewNop()
	}

	sc := trace.SpanContextFromContext(ctx)
	if !sc.IsValid() {
		return l
	}
	return l.With(
		zap.String(traceIDField, sc.TraceID().String()),
		zap.String(spanIDField, sc.SpanID().String()),
	)
}

// WrapError logs an error that is answered to the client as an internal error
func WrapError(ctx context.Context, err error) {
	Extract(ctx).WithOptions(zap.AddCallerSkip(1)).
		Error("Internal error", zap.Error(err))
}
