package server

import (
	"strconv"

	"github.com/algoguard/algoguard/cmd/algoguard/daemon/wire"
	"github.com/algoguard/algoguard/domain/validation/model"
	"github.com/algoguard/algoguard/version"
	"github.com/gofiber/fiber/v3"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var fiberListenConfig = fiber.ListenConfig{DisableStartupMessage: true}

// newHTTPApp exposes the same operations as the gRPC service as a JSON API.
func (s *server) newHTTPApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "algoguardd",
		ErrorHandler: httpErrorHandler,
	})

	app.Post("/v1/validate", s.validateHandler)
	app.Get("/v1/accounts/:address/max-sendable/:assetID", s.maxSendableHandler)
	app.Post("/v1/sync", s.syncHandler)
	app.Get("/v1/version", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"version": version.Version()})
	})

	return app
}

func (s *server) validateHandler(c fiber.Ctx) error {
	var transfer model.TransferRequest
	if err := c.Bind().Body(&transfer); err != nil {
		return fiber.ErrBadRequest
	}
	response, err := s.Validate(c.RequestCtx(), &wire.ValidateRequest{Transfer: transfer})
	if err != nil {
		return err
	}
	return c.JSON(response)
}

func (s *server) maxSendableHandler(c fiber.Ctx) error {
	assetID, err := strconv.ParseUint(c.Params("assetID"), 10, 64)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "assetID must be a non-negative integer")
	}
	response, err := s.MaxSendable(c.RequestCtx(), &wire.MaxSendableRequest{
		Address: c.Params("address"),
		AssetID: model.AssetID(assetID),
	})
	if err != nil {
		return err
	}
	return c.JSON(response)
}

func (s *server) syncHandler(c fiber.Ctx) error {
	request := &wire.SyncRequest{}
	if len(c.Body()) > 0 {
		if err := c.Bind().Body(request); err != nil {
			return fiber.ErrBadRequest
		}
	}
	response, err := s.Sync(c.RequestCtx(), request)
	if err != nil {
		return err
	}
	return c.JSON(response)
}

var grpcCodeToHTTPStatus = map[codes.Code]int{
	codes.InvalidArgument:    fiber.StatusUnprocessableEntity,
	codes.NotFound:           fiber.StatusNotFound,
	codes.FailedPrecondition: fiber.StatusPreconditionFailed,
	codes.Unavailable:        fiber.StatusServiceUnavailable,
}

func httpErrorHandler(c fiber.Ctx, err error) error {
	if fiberErr, ok := err.(*fiber.Error); ok {
		return c.Status(fiberErr.Code).JSON(fiber.Map{
			"error": fiberErr.Message,
		})
	}

	httpStatus := fiber.StatusInternalServerError
	message := err.Error()
	if grpcStatus, ok := status.FromError(err); ok {
		message = grpcStatus.Message()
		if mapped, ok := grpcCodeToHTTPStatus[grpcStatus.Code()]; ok {
			httpStatus = mapped
		}
	}
	return c.Status(httpStatus).JSON(fiber.Map{
		"error": message,
	})
}
