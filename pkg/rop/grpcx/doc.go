// Package grpcx carries rop results over gRPC: a JSON codec registered as the
// "json" content subtype and a recovery interceptor that reports programmer
// errors as codes.Internal with an ErrorInfo detail.
package grpcx
