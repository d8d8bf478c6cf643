package grpcx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ib-77/results/pkg/rop"
)

const (
	Domain = "results"

	ReasonUnhandled    = "UNHANDLED_ERROR"
	ReasonInvalidState = "INVALID_STATE"
	ReasonPanic        = "PANIC"
)

// RecoveryInterceptor turns handler panics and unhandled-error signals into
// codes.Internal carrying an ErrorInfo detail.
func RecoveryInterceptor(logger *slog.Logger) grpc.UnaryServerInterceptor {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			reason := ReasonPanic
			msg := fmt.Sprint(rec)
			if perr, ok := rop.AsProgrammerError(rec); ok {
				reason = reasonOf(perr)
				msg = perr.Error()
			}
			logger.ErrorContext(ctx, "panic recovered",
				"operation", "grpc_panic_recovery",
				"outcome", "failure",
				"method", info.FullMethod,
				"reason", reason,
				"panic", msg,
			)
			resp, err = nil, internal(reason, msg, info.FullMethod)
		}()

		resp, err = handler(ctx, req)
		if errors.Is(err, rop.ErrUnhandled) {
			logger.ErrorContext(ctx, "unhandled result",
				"operation", "grpc_unhandled",
				"outcome", "failure",
				"method", info.FullMethod,
				"error", err,
			)
			return nil, internal(ReasonUnhandled, err.Error(), info.FullMethod)
		}
		return resp, err
	}
}

func reasonOf(err error) string {
	if errors.Is(err, rop.ErrUnhandled) {
		return ReasonUnhandled
	}
	return ReasonInvalidState
}

func internal(reason, msg, method string) error {
	st := status.New(codes.Internal, msg)
	detailed, err := st.WithDetails(&errdetails.ErrorInfo{
		Reason:   reason,
		Domain:   Domain,
		Metadata: map[string]string{"method": method},
	})
	if err != nil {
		return st.Err()
	}
	return detailed.Err()
}

// ErrorInfo extracts the ErrorInfo detail from a status error.
func ErrorInfo(err error) (*errdetails.ErrorInfo, bool) {
	st, ok := status.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
