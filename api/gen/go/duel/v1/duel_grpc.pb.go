// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: duel/v1/duel.proto

package duelv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	DuelService_CreatePairing_FullMethodName = "/duel.v1.DuelService/CreatePairing"
	DuelService_JoinPairing_FullMethodName   = "/duel.v1.DuelService/JoinPairing"
	DuelService_PairingStatus_FullMethodName = "/duel.v1.DuelService/PairingStatus"
	DuelService_GameStatus_FullMethodName    = "/duel.v1.DuelService/GameStatus"
	DuelService_Pick_FullMethodName          = "/duel.v1.DuelService/Pick"
)

// DuelServiceClient is the client API for DuelService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
//
// DuelService pairs two players and tracks a single match to completion.
type DuelServiceClient interface {
	// CreatePairing opens a matchmaking ticket and returns a single-use token
	// a second player can join with.
	CreatePairing(ctx context.Context, in *CreatePairingRequest, opts ...grpc.CallOption) (*CreatePairingResponse, error)
	// JoinPairing attaches a second player to the ticket behind a token.
	JoinPairing(ctx context.Context, in *JoinPairingRequest, opts ...grpc.CallOption) (*JoinPairingResponse, error)
	// PairingStatus streams pairing progress until the ticket resolves or the
	// caller cancels. The final update carries the match id (empty when the
	// ticket was cancelled).
	PairingStatus(ctx context.Context, in *PairingStatusRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PairingStatusUpdate], error)
	// GameStatus streams a viewer-relative projection of one match until it
	// finishes, expires, or the caller cancels.
	GameStatus(ctx context.Context, in *GameStatusRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GameStatusUpdate], error)
	// Pick records the caller's move for a match.
	Pick(ctx context.Context, in *PickRequest, opts ...grpc.CallOption) (*PickResponse, error)
}

type duelServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewDuelServiceClient(cc grpc.ClientConnInterface) DuelServiceClient {
	return &duelServiceClient{cc}
}

func (c *duelServiceClient) CreatePairing(ctx context.Context, in *CreatePairingRequest, opts ...grpc.CallOption) (*CreatePairingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(CreatePairingResponse)
	err := c.cc.Invoke(ctx, DuelService_CreatePairing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) JoinPairing(ctx context.Context, in *JoinPairingRequest, opts ...grpc.CallOption) (*JoinPairingResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(JoinPairingResponse)
	err := c.cc.Invoke(ctx, DuelService_JoinPairing_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *duelServiceClient) PairingStatus(ctx context.Context, in *PairingStatusRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[PairingStatusUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DuelService_ServiceDesc.Streams[0], DuelService_PairingStatus_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[PairingStatusRequest, PairingStatusUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_PairingStatusClient = grpc.ServerStreamingClient[PairingStatusUpdate]

func (c *duelServiceClient) GameStatus(ctx context.Context, in *GameStatusRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[GameStatusUpdate], error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	stream, err := c.cc.NewStream(ctx, &DuelService_ServiceDesc.Streams[1], DuelService_GameStatus_FullMethodName, cOpts...)
	if err != nil {
		return nil, err
	}
	x := &grpc.GenericClientStream[GameStatusRequest, GameStatusUpdate]{ClientStream: stream}
	if err := x.ClientStream.SendMsg(in); err != nil {
		return nil, err
	}
	if err := x.ClientStream.CloseSend(); err != nil {
		return nil, err
	}
	return x, nil
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_GameStatusClient = grpc.ServerStreamingClient[GameStatusUpdate]

func (c *duelServiceClient) Pick(ctx context.Context, in *PickRequest, opts ...grpc.CallOption) (*PickResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(PickResponse)
	err := c.cc.Invoke(ctx, DuelService_Pick_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DuelServiceServer is the server API for DuelService service.
// All implementations must embed UnimplementedDuelServiceServer
// for forward compatibility.
//
// DuelService pairs two players and tracks a single match to completion.
type DuelServiceServer interface {
	// CreatePairing opens a matchmaking ticket and returns a single-use token
	// a second player can join with.
	CreatePairing(context.Context, *CreatePairingRequest) (*CreatePairingResponse, error)
	// JoinPairing attaches a second player to the ticket behind a token.
	JoinPairing(context.Context, *JoinPairingRequest) (*JoinPairingResponse, error)
	// PairingStatus streams pairing progress until the ticket resolves or the
	// caller cancels. The final update carries the match id (empty when the
	// ticket was cancelled).
	PairingStatus(*PairingStatusRequest, grpc.ServerStreamingServer[PairingStatusUpdate]) error
	// GameStatus streams a viewer-relative projection of one match until it
	// finishes, expires, or the caller cancels.
	GameStatus(*GameStatusRequest, grpc.ServerStreamingServer[GameStatusUpdate]) error
	// Pick records the caller's move for a match.
	Pick(context.Context, *PickRequest) (*PickResponse, error)
	mustEmbedUnimplementedDuelServiceServer()
}

// UnimplementedDuelServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedDuelServiceServer struct{}

func (UnimplementedDuelServiceServer) CreatePairing(context.Context, *CreatePairingRequest) (*CreatePairingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method CreatePairing not implemented")
}
func (UnimplementedDuelServiceServer) JoinPairing(context.Context, *JoinPairingRequest) (*JoinPairingResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method JoinPairing not implemented")
}
func (UnimplementedDuelServiceServer) PairingStatus(*PairingStatusRequest, grpc.ServerStreamingServer[PairingStatusUpdate]) error {
	return status.Errorf(codes.Unimplemented, "method PairingStatus not implemented")
}
func (UnimplementedDuelServiceServer) GameStatus(*GameStatusRequest, grpc.ServerStreamingServer[GameStatusUpdate]) error {
	return status.Errorf(codes.Unimplemented, "method GameStatus not implemented")
}
func (UnimplementedDuelServiceServer) Pick(context.Context, *PickRequest) (*PickResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Pick not implemented")
}
func (UnimplementedDuelServiceServer) mustEmbedUnimplementedDuelServiceServer() {}
func (UnimplementedDuelServiceServer) testEmbeddedByValue()                     {}

// UnsafeDuelServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to DuelServiceServer will
// result in compilation errors.
type UnsafeDuelServiceServer interface {
	mustEmbedUnimplementedDuelServiceServer()
}

func RegisterDuelServiceServer(s grpc.ServiceRegistrar, srv DuelServiceServer) {
	// If the following call pancis, it indicates UnimplementedDuelServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&DuelService_ServiceDesc, srv)
}

func _DuelService_CreatePairing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(CreatePairingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).CreatePairing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_CreatePairing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).CreatePairing(ctx, req.(*CreatePairingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_JoinPairing_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(JoinPairingRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).JoinPairing(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_JoinPairing_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).JoinPairing(ctx, req.(*JoinPairingRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _DuelService_PairingStatus_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(PairingStatusRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DuelServiceServer).PairingStatus(m, &grpc.GenericServerStream[PairingStatusRequest, PairingStatusUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_PairingStatusServer = grpc.ServerStreamingServer[PairingStatusUpdate]

func _DuelService_GameStatus_Handler(srv interface{}, stream grpc.ServerStream) error {
	m := new(GameStatusRequest)
	if err := stream.RecvMsg(m); err != nil {
		return err
	}
	return srv.(DuelServiceServer).GameStatus(m, &grpc.GenericServerStream[GameStatusRequest, GameStatusUpdate]{ServerStream: stream})
}

// This type alias is provided for backwards compatibility with existing code that references the prior non-generic stream type by name.
type DuelService_GameStatusServer = grpc.ServerStreamingServer[GameStatusUpdate]

func _DuelService_Pick_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PickRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(DuelServiceServer).Pick(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: DuelService_Pick_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(DuelServiceServer).Pick(ctx, req.(*PickRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// DuelService_ServiceDesc is the grpc.ServiceDesc for DuelService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var DuelService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "duel.v1.DuelService",
	HandlerType: (*DuelServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreatePairing",
			Handler:    _DuelService_CreatePairing_Handler,
		},
		{
			MethodName: "JoinPairing",
			Handler:    _DuelService_JoinPairing_Handler,
		},
		{
			MethodName: "Pick",
			Handler:    _DuelService_Pick_Handler,
		},
	},
	Streams: []grpc.StreamDesc{
		{
			StreamName:    "PairingStatus",
			Handler:       _DuelService_PairingStatus_Handler,
			ServerStreams: true,
		},
		{
			StreamName:    "GameStatus",
			Handler:       _DuelService_GameStatus_Handler,
			ServerStreams: true,
		},
	},
	Metadata: "duel/v1/duel.proto",
}
