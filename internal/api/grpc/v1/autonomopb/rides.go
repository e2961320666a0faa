package autonomopb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// RidesServer is the server API for the Rides service.
type RidesServer interface {
	GetRide(ctx context.Context, req *RideQuery) (*RideStateResponse, error)
	RequestRide(ctx context.Context, req *RequestRideCommand) (*CommandAccepted, error)
	ScheduleRide(ctx context.Context, req *ScheduleRideCommand) (*CommandAccepted, error)
	ConfirmPickup(ctx context.Context, req *ConfirmPickupCommand) (*CommandAccepted, error)
	EndRide(ctx context.Context, req *EndRideCommand) (*CommandAccepted, error)
	CancelRide(ctx context.Context, req *CancelRideCommand) (*CommandAccepted, error)
}

// UnimplementedRidesServer returns Unimplemented for every Rides method.
type UnimplementedRidesServer struct{}

func (UnimplementedRidesServer) GetRide(context.Context, *RideQuery) (*RideStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetRide not implemented")
}
func (UnimplementedRidesServer) RequestRide(context.Context, *RequestRideCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestRide not implemented")
}
func (UnimplementedRidesServer) ScheduleRide(context.Context, *ScheduleRideCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ScheduleRide not implemented")
}
func (UnimplementedRidesServer) ConfirmPickup(context.Context, *ConfirmPickupCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmPickup not implemented")
}
func (UnimplementedRidesServer) EndRide(context.Context, *EndRideCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method EndRide not implemented")
}
func (UnimplementedRidesServer) CancelRide(context.Context, *CancelRideCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CancelRide not implemented")
}

// RegisterRidesServer registers the Rides service implementation with the
// gRPC server.
func RegisterRidesServer(s grpc.ServiceRegistrar, srv RidesServer) {
	s.RegisterService(&Rides_ServiceDesc, srv)
}

func _Rides_GetRide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RideQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).GetRide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/GetRide"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).GetRide(ctx, req.(*RideQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _Rides_RequestRide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RequestRideCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).RequestRide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/RequestRide"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).RequestRide(ctx, req.(*RequestRideCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Rides_ScheduleRide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ScheduleRideCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).ScheduleRide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/ScheduleRide"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).ScheduleRide(ctx, req.(*ScheduleRideCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Rides_ConfirmPickup_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(ConfirmPickupCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).ConfirmPickup(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/ConfirmPickup"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).ConfirmPickup(ctx, req.(*ConfirmPickupCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Rides_EndRide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(EndRideCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).EndRide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/EndRide"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).EndRide(ctx, req.(*EndRideCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Rides_CancelRide_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CancelRideCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RidesServer).CancelRide(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Rides/CancelRide"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(RidesServer).CancelRide(ctx, req.(*CancelRideCommand))
	}
	return interceptor(ctx, in, info, handler)
}

// Rides_ServiceDesc is the grpc.ServiceDesc for the Rides service.
var Rides_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "autonomo.v1.Rides",
	HandlerType: (*RidesServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetRide", Handler: _Rides_GetRide_Handler},
		{MethodName: "RequestRide", Handler: _Rides_RequestRide_Handler},
		{MethodName: "ScheduleRide", Handler: _Rides_ScheduleRide_Handler},
		{MethodName: "ConfirmPickup", Handler: _Rides_ConfirmPickup_Handler},
		{MethodName: "EndRide", Handler: _Rides_EndRide_Handler},
		{MethodName: "CancelRide", Handler: _Rides_CancelRide_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api/proto/autonomo.proto",
}

// RidesClient is the client API for the Rides service.
type RidesClient interface {
	GetRide(ctx context.Context, in *RideQuery, opts ...grpc.CallOption) (*RideStateResponse, error)
	RequestRide(ctx context.Context, in *RequestRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	ScheduleRide(ctx context.Context, in *ScheduleRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	ConfirmPickup(ctx context.Context, in *ConfirmPickupCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	EndRide(ctx context.Context, in *EndRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	CancelRide(ctx context.Context, in *CancelRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
}

type ridesClient struct {
	cc grpc.ClientConnInterface
}

// NewRidesClient returns a Rides client that talks JSON over the connection.
func NewRidesClient(cc grpc.ClientConnInterface) RidesClient {
	return &ridesClient{cc: cc}
}

func callOptions(opts []grpc.CallOption) []grpc.CallOption {
	return append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
}

func (c *ridesClient) GetRide(ctx context.Context, in *RideQuery, opts ...grpc.CallOption) (*RideStateResponse, error) {
	out := new(RideStateResponse)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/GetRide", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ridesClient) RequestRide(ctx context.Context, in *RequestRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/RequestRide", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ridesClient) ScheduleRide(ctx context.Context, in *ScheduleRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/ScheduleRide", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ridesClient) ConfirmPickup(ctx context.Context, in *ConfirmPickupCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/ConfirmPickup", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ridesClient) EndRide(ctx context.Context, in *EndRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/EndRide", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ridesClient) CancelRide(ctx context.Context, in *CancelRideCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Rides/CancelRide", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
