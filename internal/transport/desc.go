// Package transport exposes the promotion catalog and the loyalty ledger over
// gRPC. Messages are google.protobuf.Struct values, so no generated code is
// needed on either side.
package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	PromotionsServiceName = "pizzeria.v1.Promotions"
	LoyaltyServiceName    = "pizzeria.v1.Loyalty"
)

type structHandler func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error)

// unaryMethod wraps h in the shape grpc-go expects for a unary method.
func unaryMethod(service, name string, h structHandler) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return h(srv, ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: fullMethod(service, name),
			}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return h(srv, ctx, req.(*structpb.Struct))
			})
		},
	}
}

func fullMethod(service, name string) string {
	return "/" + service + "/" + name
}

// PromotionsServer is the server API of pizzeria.v1.Promotions.
type PromotionsServer interface {
	ListActive(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ListAll(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Validate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Add(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Deactivate(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Remove(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// PromotionsServiceDesc describes pizzeria.v1.Promotions.
var PromotionsServiceDesc = grpc.ServiceDesc{
	ServiceName: PromotionsServiceName,
	HandlerType: (*PromotionsServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(PromotionsServiceName, "ListActive", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).ListActive(ctx, req)
		}),
		unaryMethod(PromotionsServiceName, "ListAll", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).ListAll(ctx, req)
		}),
		unaryMethod(PromotionsServiceName, "Validate", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).Validate(ctx, req)
		}),
		unaryMethod(PromotionsServiceName, "Add", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).Add(ctx, req)
		}),
		unaryMethod(PromotionsServiceName, "Deactivate", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).Deactivate(ctx, req)
		}),
		unaryMethod(PromotionsServiceName, "Remove", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(PromotionsServer).Remove(ctx, req)
		}),
	},
	Metadata: "pizzeria/v1/promotions",
}

// LoyaltyServer is the server API of pizzeria.v1.Loyalty.
type LoyaltyServer interface {
	Balance(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Earn(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Redeem(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// LoyaltyServiceDesc describes pizzeria.v1.Loyalty.
var LoyaltyServiceDesc = grpc.ServiceDesc{
	ServiceName: LoyaltyServiceName,
	HandlerType: (*LoyaltyServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod(LoyaltyServiceName, "Balance", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(LoyaltyServer).Balance(ctx, req)
		}),
		unaryMethod(LoyaltyServiceName, "Earn", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(LoyaltyServer).Earn(ctx, req)
		}),
		unaryMethod(LoyaltyServiceName, "Redeem", func(srv any, ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
			return srv.(LoyaltyServer).Redeem(ctx, req)
		}),
	},
	Metadata: "pizzeria/v1/loyalty",
}
