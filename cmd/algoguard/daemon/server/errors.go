package server

import (
	"github.com/algoguard/algoguard/domain/validation/ruleerrors"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatusError maps rule errors to InvalidArgument and everything else to Internal.
func toStatusError(err error) error {
	var ruleErr ruleerrors.RuleError
	if errors.As(err, &ruleErr) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	log.Errorf("%+v", err)
	return status.Error(codes.Internal, err.Error())
}
