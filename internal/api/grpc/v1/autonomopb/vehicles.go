package autonomopb

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// VehiclesServer is the server API for the Vehicles service.
type VehiclesServer interface {
	GetVehicle(ctx context.Context, req *VehicleQuery) (*VehicleStateResponse, error)
	ListMine(ctx context.Context, req *OwnerQuery) (*VehicleListResponse, error)
	ListAvailable(req *ListAvailableQuery, stream Vehicles_ListAvailableServer) error
	AddVehicle(ctx context.Context, req *AddVehicleCommand) (*CommandAccepted, error)
	MakeAvailable(ctx context.Context, req *VehicleCommand) (*CommandAccepted, error)
	RequestReturn(ctx context.Context, req *VehicleCommand) (*CommandAccepted, error)
	RemoveVehicle(ctx context.Context, req *RemoveVehicleCommand) (*CommandAccepted, error)
	MarkOccupied(ctx context.Context, req *VehicleCommand) (*CommandAccepted, error)
	MarkUnoccupied(ctx context.Context, req *VehicleCommand) (*CommandAccepted, error)
	ConfirmReturn(ctx context.Context, req *VehicleCommand) (*CommandAccepted, error)
}

// UnimplementedVehiclesServer returns Unimplemented for every Vehicles method.
type UnimplementedVehiclesServer struct{}

func (UnimplementedVehiclesServer) GetVehicle(context.Context, *VehicleQuery) (*VehicleStateResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetVehicle not implemented")
}
func (UnimplementedVehiclesServer) ListMine(context.Context, *OwnerQuery) (*VehicleListResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListMine not implemented")
}
func (UnimplementedVehiclesServer) ListAvailable(*ListAvailableQuery, Vehicles_ListAvailableServer) error {
	return status.Errorf(codes.Unimplemented, "method ListAvailable not implemented")
}
func (UnimplementedVehiclesServer) AddVehicle(context.Context, *AddVehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AddVehicle not implemented")
}
func (UnimplementedVehiclesServer) MakeAvailable(context.Context, *VehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MakeAvailable not implemented")
}
func (UnimplementedVehiclesServer) RequestReturn(context.Context, *VehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RequestReturn not implemented")
}
func (UnimplementedVehiclesServer) RemoveVehicle(context.Context, *RemoveVehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method RemoveVehicle not implemented")
}
func (UnimplementedVehiclesServer) MarkOccupied(context.Context, *VehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkOccupied not implemented")
}
func (UnimplementedVehiclesServer) MarkUnoccupied(context.Context, *VehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method MarkUnoccupied not implemented")
}
func (UnimplementedVehiclesServer) ConfirmReturn(context.Context, *VehicleCommand) (*CommandAccepted, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ConfirmReturn not implemented")
}

// RegisterVehiclesServer registers the Vehicles service implementation with
// the gRPC server.
func RegisterVehiclesServer(s grpc.ServiceRegistrar, srv VehiclesServer) {
	s.RegisterService(&Vehicles_ServiceDesc, srv)
}

func _Vehicles_GetVehicle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).GetVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/GetVehicle"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).GetVehicle(ctx, req.(*VehicleQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_ListMine_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(OwnerQuery)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).ListMine(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/ListMine"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).ListMine(ctx, req.(*OwnerQuery))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_ListAvailable_Handler(srv any, stream grpc.ServerStream) error {
	in := new(ListAvailableQuery)
	if err := stream.RecvMsg(in); err != nil {
		return err
	}
	return srv.(VehiclesServer).ListAvailable(in, &vehiclesListAvailableServer{ServerStream: stream})
}

// Vehicles_ListAvailableServer is the server-side stream for ListAvailable.
type Vehicles_ListAvailableServer interface {
	Send(*VehicleStateResponse) error
	grpc.ServerStream
}

type vehiclesListAvailableServer struct {
	grpc.ServerStream
}

func (x *vehiclesListAvailableServer) Send(m *VehicleStateResponse) error {
	return x.ServerStream.SendMsg(m)
}

func _Vehicles_AddVehicle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(AddVehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).AddVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/AddVehicle"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).AddVehicle(ctx, req.(*AddVehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_MakeAvailable_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).MakeAvailable(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/MakeAvailable"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).MakeAvailable(ctx, req.(*VehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_RequestReturn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).RequestReturn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/RequestReturn"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).RequestReturn(ctx, req.(*VehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_RemoveVehicle_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RemoveVehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).RemoveVehicle(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/RemoveVehicle"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).RemoveVehicle(ctx, req.(*RemoveVehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_MarkOccupied_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).MarkOccupied(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/MarkOccupied"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).MarkOccupied(ctx, req.(*VehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_MarkUnoccupied_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).MarkUnoccupied(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/MarkUnoccupied"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).MarkUnoccupied(ctx, req.(*VehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

func _Vehicles_ConfirmReturn_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(VehicleCommand)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(VehiclesServer).ConfirmReturn(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: "/autonomo.v1.Vehicles/ConfirmReturn"}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(VehiclesServer).ConfirmReturn(ctx, req.(*VehicleCommand))
	}
	return interceptor(ctx, in, info, handler)
}

// Vehicles_ServiceDesc is the grpc.ServiceDesc for the Vehicles service.
var Vehicles_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "autonomo.v1.Vehicles",
	HandlerType: (*VehiclesServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetVehicle", Handler: _Vehicles_GetVehicle_Handler},
		{MethodName: "ListMine", Handler: _Vehicles_ListMine_Handler},
		{MethodName: "AddVehicle", Handler: _Vehicles_AddVehicle_Handler},
		{MethodName: "MakeAvailable", Handler: _Vehicles_MakeAvailable_Handler},
		{MethodName: "RequestReturn", Handler: _Vehicles_RequestReturn_Handler},
		{MethodName: "RemoveVehicle", Handler: _Vehicles_RemoveVehicle_Handler},
		{MethodName: "MarkOccupied", Handler: _Vehicles_MarkOccupied_Handler},
		{MethodName: "MarkUnoccupied", Handler: _Vehicles_MarkUnoccupied_Handler},
		{MethodName: "ConfirmReturn", Handler: _Vehicles_ConfirmReturn_Handler},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "ListAvailable",
			Handler:       _Vehicles_ListAvailable_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "api/proto/autonomo.proto",
}

// VehiclesClient is the client API for the Vehicles service.
type VehiclesClient interface {
	GetVehicle(ctx context.Context, in *VehicleQuery, opts ...grpc.CallOption) (*VehicleStateResponse, error)
	ListMine(ctx context.Context, in *OwnerQuery, opts ...grpc.CallOption) (*VehicleListResponse, error)
	ListAvailable(ctx context.Context, in *ListAvailableQuery, opts ...grpc.CallOption) (Vehicles_ListAvailableClient, error)
	AddVehicle(ctx context.Context, in *AddVehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	MakeAvailable(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	RequestReturn(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	RemoveVehicle(ctx context.Context, in *RemoveVehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	MarkOccupied(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	MarkUnoccupied(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
	ConfirmReturn(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error)
}

type vehiclesClient struct {
	cc grpc.ClientConnInterface
}

// NewVehiclesClient returns a Vehicles client that talks JSON over the
// connection.
func NewVehiclesClient(cc grpc.ClientConnInterface) VehiclesClient {
	return &vehiclesClient{cc: cc}
}

func (c *vehiclesClient) GetVehicle(ctx context.Context, in *VehicleQuery, opts ...grpc.CallOption) (*VehicleStateResponse, error) {
	out := new(VehicleStateResponse)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/GetVehicle", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) ListMine(ctx context.Context, in *OwnerQuery, opts ...grpc.CallOption) (*VehicleListResponse, error) {
	out := new(VehicleListResponse)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/ListMine", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) ListAvailable(ctx context.Context, in *ListAvailableQuery, opts ...grpc.CallOption) (Vehicles_ListAvailableClient, error) {
	stream, err := c.cc.NewStream(ctx, &Vehicles_ServiceDesc.Streams[0], "/autonomo.v1.Vehicles/ListAvailable", callOptions(opts)...)
	if err != nil {
		return nil, err
	}
	x := &vehiclesListAvailableClient{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// Vehicles_ListAvailableClient is the client-side stream for ListAvailable.
type Vehicles_ListAvailableClient interface {
	Recv() (*VehicleStateResponse, error)
	grpc.ClientStream
}

type vehiclesListAvailableClient struct {
	grpc.ClientStream
}

func (x *vehiclesListAvailableClient) Recv() (*VehicleStateResponse, error) {
	m := new(VehicleStateResponse)
	if err := x.ClientStream.RecvMsg(m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *vehiclesClient) AddVehicle(ctx context.Context, in *AddVehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/AddVehicle", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) MakeAvailable(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/MakeAvailable", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) RequestReturn(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/RequestReturn", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) RemoveVehicle(ctx context.Context, in *RemoveVehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/RemoveVehicle", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) MarkOccupied(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/MarkOccupied", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) MarkUnoccupied(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/MarkUnoccupied", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *vehiclesClient) ConfirmReturn(ctx context.Context, in *VehicleCommand, opts ...grpc.CallOption) (*CommandAccepted, error) {
	out := new(CommandAccepted)
	if err := c.cc.Invoke(ctx, "/autonomo.v1.Vehicles/ConfirmReturn", in, out, callOptions(opts)...); err != nil {
		return nil, err
	}
	return out, nil
}
