package wire

import (
	"context"

	"google.golang.org/grpc"
)

const serviceName = "algoguard.Algoguardd"

// Full method names of the daemon service.
const (
	ValidateFullMethodName    = "/" + serviceName + "/Validate"
	MaxSendableFullMethodName = "/" + serviceName + "/MaxSendable"
	SyncFullMethodName        = "/" + serviceName + "/Sync"
)

// AlgoguarddServer is the server API of the daemon.
type AlgoguarddServer interface {
	Validate(context.Context, *ValidateRequest) (*ValidateResponse, error)
	MaxSendable(context.Context, *MaxSendableRequest) (*MaxSendableResponse, error)
	Sync(context.Context, *SyncRequest) (*SyncResponse, error)
}

// RegisterAlgoguarddServer registers srv on s.
func RegisterAlgoguarddServer(s grpc.ServiceRegistrar, srv AlgoguarddServer) {
	s.RegisterService(&AlgoguarddServiceDesc, srv)
}

func validateHandler(srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor) (interface{}, error) {

	in := new(ValidateRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlgoguarddServer).Validate(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: ValidateFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlgoguarddServer).Validate(ctx, req.(*ValidateRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func maxSendableHandler(srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor) (interface{}, error) {

	in := new(MaxSendableRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlgoguarddServer).MaxSendable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: MaxSendableFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlgoguarddServer).MaxSendable(ctx, req.(*MaxSendableRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func syncHandler(srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor) (interface{}, error) {

	in := new(SyncRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AlgoguarddServer).Sync(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: SyncFullMethodName}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(AlgoguarddServer).Sync(ctx, req.(*SyncRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// AlgoguarddServiceDesc describes the daemon service. Messages are plain structs
// encoded with the json codec rather than generated protobuf types.
var AlgoguarddServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*AlgoguarddServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Validate", Handler: validateHandler},
		{MethodName: "MaxSendable", Handler: maxSendableHandler},
		{MethodName: "Sync", Handler: syncHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "algoguardd",
}

// AlgoguarddClient is the client API of the daemon.
type AlgoguarddClient interface {
	Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error)
	MaxSendable(ctx context.Context, in *MaxSendableRequest, opts ...grpc.CallOption) (*MaxSendableResponse, error)
	Sync(ctx context.Context, in *SyncRequest, opts ...grpc.CallOption) (*SyncResponse, error)
}

type algoguarddClient struct {
	cc grpc.ClientConnInterface
}

// NewAlgoguarddClient returns a daemon client on top of the given connection.
func NewAlgoguarddClient(cc grpc.ClientConnInterface) AlgoguarddClient {
	return &algoguarddClient{cc: cc}
}

func (c *algoguarddClient) invoke(ctx context.Context, method string, in, out interface{}, opts []grpc.CallOption) error {
	callOptions := append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, method, in, out, callOptions...)
}

func (c *algoguarddClient) Validate(ctx context.Context, in *ValidateRequest, opts ...grpc.CallOption) (*ValidateResponse, error) {
	out := new(ValidateResponse)
	err := c.invoke(ctx, ValidateFullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *algoguarddClient) MaxSendable(ctx context.Context, in *MaxSendableRequest, opts ...grpc.CallOption) (*MaxSendableResponse, error) {
	out := new(MaxSendableResponse)
	err := c.invoke(ctx, MaxSendableFullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *algoguarddClient) Sync(ctx context.Context, in *SyncRequest, opts ...grpc.CallOption) (*SyncResponse, error) {
	out := new(SyncResponse)
	err := c.invoke(ctx, SyncFullMethodName, in, out, opts)
	if err != nil {
		return nil, err
	}
	return out, nil
}
