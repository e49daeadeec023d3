package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const ServiceName = "dairyadmin.AdminService"

// AdminServiceServer answers every AdminService method with a Struct.
type AdminServiceServer interface {
	Handle(ctx context.Context, method string, in *structpb.Struct) (*structpb.Struct, error)
}

func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

// ServiceDesc describes a unary method per name, each taking and returning a
// google.protobuf.Struct.
func ServiceDesc(methods []string) *grpc.ServiceDesc {
	desc := &grpc.ServiceDesc{
		ServiceName: ServiceName,
		HandlerType: (*AdminServiceServer)(nil),
		Streams:     []grpc.StreamDesc{},
		Metadata:    "dairyadmin/admin.proto",
	}
	for _, name := range methods {
		desc.Methods = append(desc.Methods, grpc.MethodDesc{
			MethodName: name,
			Handler:    methodHandler(name),
		})
	}
	return desc
}

func RegisterAdminServiceServer(s grpc.ServiceRegistrar, srv *Server) {
	s.RegisterService(ServiceDesc(srv.Methods()), srv)
}

func methodHandler(name string) func(any, context.Context, func(any) error, grpc.UnaryServerInterceptor) (any, error) {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(structpb.Struct)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return srv.(AdminServiceServer).Handle(ctx, name, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: FullMethod(name),
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return srv.(AdminServiceServer).Handle(ctx, name, req.(*structpb.Struct))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Client calls AdminService methods by name.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) Call(ctx context.Context, method string, in map[string]any, opts ...grpc.CallOption) (*structpb.Struct, error) {
	req, err := structpb.NewStruct(in)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, FullMethod(method), req, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
