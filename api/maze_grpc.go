// Service stubs for maze/v1/maze.proto. The service only uses well-known
// message types, so there is no generated .pb.go; this file is maintained
// by hand in the shape protoc-gen-go-grpc emits and must be kept in step
// with the proto.

package api

import (
	"context"

	grpc "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Full method names of the maze.v1.Maze service.
const (
	Maze_Join_FullMethodName  = "/maze.v1.Maze/Join"
	Maze_Move_FullMethodName  = "/maze.v1.Maze/Move"
	Maze_State_FullMethodName = "/maze.v1.Maze/State"
)

// MazeClient is the client API for the maze.v1.Maze service.
type MazeClient interface {
	Join(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error)
	Move(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error)
	State(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error)
}

type mazeClient struct {
	cc grpc.ClientConnInterface
}

func NewMazeClient(cc grpc.ClientConnInterface) MazeClient {
	return &mazeClient{cc}
}

func (c *mazeClient) Join(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error) {
	out := new(wrapperspb.UInt32Value)
	if err := c.cc.Invoke(ctx, Maze_Join_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mazeClient) Move(ctx context.Context, in *wrapperspb.StringValue, opts ...grpc.CallOption) (*wrapperspb.UInt32Value, error) {
	out := new(wrapperspb.UInt32Value)
	if err := c.cc.Invoke(ctx, Maze_Move_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *mazeClient) State(ctx context.Context, in *emptypb.Empty, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, Maze_State_FullMethodName, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// MazeServer is the server API for the maze.v1.Maze service.
type MazeServer interface {
	Join(context.Context, *emptypb.Empty) (*wrapperspb.UInt32Value, error)
	Move(context.Context, *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error)
	State(context.Context, *emptypb.Empty) (*structpb.Struct, error)
	mustEmbedUnimplementedMazeServer()
}

// UnimplementedMazeServer must be embedded by MazeServer implementations.
type UnimplementedMazeServer struct{}

func (UnimplementedMazeServer) Join(context.Context, *emptypb.Empty) (*wrapperspb.UInt32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Join not implemented")
}

func (UnimplementedMazeServer) Move(context.Context, *wrapperspb.StringValue) (*wrapperspb.UInt32Value, error) {
	return nil, status.Errorf(codes.Unimplemented, "method Move not implemented")
}

func (UnimplementedMazeServer) State(context.Context, *emptypb.Empty) (*structpb.Struct, error) {
	return nil, status.Errorf(codes.Unimplemented, "method State not implemented")
}

func (UnimplementedMazeServer) mustEmbedUnimplementedMazeServer() {}

func RegisterMazeServer(s grpc.ServiceRegistrar, srv MazeServer) {
	s.RegisterService(&Maze_ServiceDesc, srv)
}

func _Maze_Join_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MazeServer).Join(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Maze_Join_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MazeServer).Join(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func _Maze_Move_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MazeServer).Move(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Maze_Move_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MazeServer).Move(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}

func _Maze_State_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MazeServer).State(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: Maze_State_FullMethodName}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MazeServer).State(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// Maze_ServiceDesc is the grpc.ServiceDesc for the maze.v1.Maze service.
var Maze_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "maze.v1.Maze",
	HandlerType: (*MazeServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "Join", Handler: _Maze_Join_Handler},
		{MethodName: "Move", Handler: _Maze_Move_Handler},
		{MethodName: "State", Handler: _Maze_State_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "maze/v1/maze.proto",
}
