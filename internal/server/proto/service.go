package proto

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const serviceName = "batchdeposit.DepositService"

// DepositServiceClient is the client API for DepositService
type DepositServiceClient interface {
	Pack(ctx context.Context, in *PackRequest, opts ...grpc.CallOption) (*PackResponse, error)
	Current(ctx context.Context, in *CurrentRequest, opts ...grpc.CallOption) (*PackResponse, error)
}

type depositServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDepositServiceClient(cc grpc.ClientConnInterface) DepositServiceClient {
	return &depositServiceClient{cc}
}

func (c *depositServiceClient) Pack(ctx context.Context, in *PackRequest, opts ...grpc.CallOption) (*PackResponse, error) {
	out := new(PackResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Pack", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *depositServiceClient) Current(ctx context.Context, in *CurrentRequest, opts ...grpc.CallOption) (*PackResponse, error) {
	out := new(PackResponse)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := c.cc.Invoke(ctx, "/"+serviceName+"/Current", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// DepositServiceServer is the server API for DepositService
type DepositServiceServer interface {
	Pack(context.Context, *PackRequest) (*PackResponse, error)
	Current(context.Context, *CurrentRequest) (*PackResponse, error)
}

// UnimplementedDepositServiceServer can be embedded to have forward compatible implementations
type UnimplementedDepositServiceServer struct {
}

func (UnimplementedDepositServiceServer) Pack(context.Context, *PackRequest) (*PackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Pack not implemented")
}

func (UnimplementedDepositServiceServer) Current(context.Context, *CurrentRequest) (*PackResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Current not implemented")
}

func RegisterDepositServiceServer(s grpc.ServiceRegistrar, srv DepositServiceServer) {
	s.RegisterService(&depositServiceDesc, srv)
}

func _DepositService_Pack_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PackRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DepositServiceServer).Pack(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Pack",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DepositServiceServer).Pack(ctx, req.(*PackRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DepositService_Current_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CurrentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DepositServiceServer).Current(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/" + serviceName + "/Current",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DepositServiceServer).Current(ctx, req.(*CurrentRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var depositServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*DepositServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Pack",
			Handler:    _DepositService_Pack_Handler,
		},
		{
			MethodName: "Current",
			Handler:    _DepositService_Current_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "batchdeposit",
}
