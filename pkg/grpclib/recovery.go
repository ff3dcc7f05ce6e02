package grpclib

import (
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"runtime/debug"
)

// RecoveryHandlerFunc logs the panic with the global logger and returns codes.Internal
func RecoveryHandlerFunc(p interface{}) error {
	zap.L().Error("Panic recovered",
		zap.Any("panic", p),
		zap.ByteString("stack", debug.Stack()),
	)
	return status.Errorf(codes.Internal, "panic: %v", p)
}
