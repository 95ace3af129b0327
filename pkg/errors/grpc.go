package errors

import (
	"google.golang.org/grpc/status"
)

// ToGRPCStatus converts err into a gRPC status error.
func ToGRPCStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	code, ok := CodeOf(err)
	if !ok {
		code = ErrInternal
	}
	return status.Error(GRPCCode(code), err.Error())
}
