package transport

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
)

// Client calls both services over one connection.
type Client struct {
	cc grpc.ClientConnInterface
}

func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{cc: cc}
}

func (c *Client) call(ctx context.Context, service, method string, req *structpb.Struct) (*structpb.Struct, error) {
	if req == nil {
		req = &structpb.Struct{}
	}
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, fullMethod(service, method), req, out); err != nil {
		return nil, err
	}
	return out, nil
}

func codeRequest(code string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"code": structpb.NewStringValue(code),
	}}
}

func pointsRequest(points int) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"points": structpb.NewNumberValue(float64(points)),
	}}
}

func (c *Client) ListActive(ctx context.Context) ([]promotion.Promotion, error) {
	out, err := c.call(ctx, PromotionsServiceName, "ListActive", nil)
	if err != nil {
		return nil, err
	}
	return PromotionsFromList(out)
}

func (c *Client) ListAll(ctx context.Context) ([]promotion.Promotion, error) {
	out, err := c.call(ctx, PromotionsServiceName, "ListAll", nil)
	if err != nil {
		return nil, err
	}
	return PromotionsFromList(out)
}

func (c *Client) Validate(ctx context.Context, code, condition string) (promotion.Promotion, error) {
	req := codeRequest(code)
	req.Fields["condition"] = structpb.NewStringValue(condition)
	out, err := c.call(ctx, PromotionsServiceName, "Validate", req)
	if err != nil {
		return promotion.Promotion{}, err
	}
	return PromotionFromStruct(out)
}

func (c *Client) Add(ctx context.Context, p promotion.Promotion) (promotion.Promotion, error) {
	out, err := c.call(ctx, PromotionsServiceName, "Add", PromotionStruct(p))
	if err != nil {
		return promotion.Promotion{}, err
	}
	return PromotionFromStruct(out)
}

func (c *Client) Deactivate(ctx context.Context, code string) (bool, error) {
	out, err := c.call(ctx, PromotionsServiceName, "Deactivate", codeRequest(code))
	if err != nil {
		return false, err
	}
	return out.GetFields()["found"].GetBoolValue(), nil
}

func (c *Client) Remove(ctx context.Context, code string) (bool, error) {
	out, err := c.call(ctx, PromotionsServiceName, "Remove", codeRequest(code))
	if err != nil {
		return false, err
	}
	return out.GetFields()["found"].GetBoolValue(), nil
}

// Balance returns the current and lifetime points.
func (c *Client) Balance(ctx context.Context) (int, int, error) {
	out, err := c.call(ctx, LoyaltyServiceName, "Balance", nil)
	if err != nil {
		return 0, 0, err
	}
	return balanceFrom(out)
}

func (c *Client) Earn(ctx context.Context, points int) (int, error) {
	out, err := c.call(ctx, LoyaltyServiceName, "Earn", pointsRequest(points))
	if err != nil {
		return 0, err
	}
	balance, _, err := balanceFrom(out)
	return balance, err
}

func (c *Client) Redeem(ctx context.Context, points int) (int, error) {
	out, err := c.call(ctx, LoyaltyServiceName, "Redeem", pointsRequest(points))
	if err != nil {
		return 0, err
	}
	balance, _, err := balanceFrom(out)
	return balance, err
}

func balanceFrom(s *structpb.Struct) (int, int, error) {
	points, err := intField(s, "points")
	if err != nil {
		return 0, 0, err
	}
	lifetime, err := intField(s, "lifetime")
	if err != nil {
		return 0, 0, err
	}
	return points, lifetime, nil
}
