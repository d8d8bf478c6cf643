package grpc

import (
	"context"

	"google.golang.org/grpc"

	"github.com/ib-77/results/internal/tenant"
)

const (
	ServiceName = "tenant.v1.Tenant"

	methodGetUser           = "/" + ServiceName + "/GetUser"
	methodUpdateUser        = "/" + ServiceName + "/UpdateUser"
	methodGetUsersAtAddress = "/" + ServiceName + "/GetUsersAtAddress"
	methodGetUsers          = "/" + ServiceName + "/GetUsers"
)

type GetUserRequest struct {
	ID int `json:"id"`
}

type UpdateUserRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type AddressRequest struct {
	Zip     string `json:"zip"`
	HouseNr string `json:"house_nr"`
}

type GetUsersRequest struct {
	IDs []int `json:"ids"`
}

type GetUsersResponse struct {
	Results []tenant.Result[string] `json:"results"`
}

// TenantServer is the server API for the tenant.v1.Tenant service.
type TenantServer interface {
	GetUser(context.Context, *GetUserRequest) (*tenant.Result[string], error)
	UpdateUser(context.Context, *UpdateUserRequest) (*tenant.Status, error)
	GetUsersAtAddress(context.Context, *AddressRequest) (*tenant.Result[[]int], error)
	GetUsers(context.Context, *GetUsersRequest) (*GetUsersResponse, error)
}

// TenantServiceDesc is registered with the JSON codec; messages are plain Go
// structs rather than generated protobuf types.
var TenantServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*TenantServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetUser", Handler: unary(methodGetUser, TenantServer.GetUser)},
		{MethodName: "UpdateUser", Handler: unary(methodUpdateUser, TenantServer.UpdateUser)},
		{MethodName: "GetUsersAtAddress", Handler: unary(methodGetUsersAtAddress, TenantServer.GetUsersAtAddress)},
		{MethodName: "GetUsers", Handler: unary(methodGetUsers, TenantServer.GetUsers)},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "tenant/v1/tenant.json",
}

func unary[Req, Resp any](fullMethod string, call func(TenantServer, context.Context, *Req) (Resp, error)) grpc.MethodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(TenantServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{
			Server:     srv,
			FullMethod: fullMethod,
		}
		handler := func(ctx context.Context, req any) (any, error) {
			return call(srv.(TenantServer), ctx, req.(*Req))
		}
		return interceptor(ctx, in, info, handler)
	}
}
