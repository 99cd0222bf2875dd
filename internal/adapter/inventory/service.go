package inventory

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

const (
	serviceName    = "coolstore.inventory.v1.InventoryApi"
	getStockMethod = "/" + serviceName + "/GetStock"
)

// GetStockRequest asks for the stock level of one product.
type GetStockRequest struct {
	ProductID string `json:"productId"`
}

// GetStockResponse is the stock level of one product.
type GetStockResponse struct {
	ProductID         string    `json:"productId"`
	AvailableQuantity int       `json:"availableQuantity"`
	AsOf              time.Time `json:"asOf"`
}

// Server is the inventory API as served over gRPC. Only stub servers and
// tests implement it; the catalog is a client.
type Server interface {
	GetStock(ctx context.Context, req *GetStockRequest) (*GetStockResponse, error)
}

// RegisterServer attaches srv to a gRPC server.
func RegisterServer(r grpc.ServiceRegistrar, srv Server) {
	r.RegisterService(&serviceDesc, srv)
}

var serviceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*Server)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetStock", Handler: getStockHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "inventory/v1/inventory.proto",
}

func getStockHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetStockRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(Server).GetStock(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getStockMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(Server).GetStock(ctx, req.(*GetStockRequest))
	}
	return interceptor(ctx, in, info, handler)
}
