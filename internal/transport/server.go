package transport

import (
	"context"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Madhavee/PizzaOrderingSystem/internal/loyalty"
	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
)

// Catalog is the catalog API served over gRPC. *promotion.Catalog
// satisfies it.
type Catalog interface {
	ActivePromotions() []promotion.Promotion
	AllPromotions() []promotion.Promotion
	ValidatePromoCode(code, condition string) (promotion.Promotion, error)
	AddPromotion(p promotion.Promotion) error
	DeactivatePromotion(code string) bool
	RemovePromotion(code string) bool
}

// PromotionsService serves pizzeria.v1.Promotions.
type PromotionsService struct {
	catalog Catalog
	logger  *zap.Logger
}

func NewPromotionsService(catalog Catalog, logger *zap.Logger) *PromotionsService {
	return &PromotionsService{catalog: catalog, logger: logger}
}

func (s *PromotionsService) ListActive(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return promotionList(s.catalog.ActivePromotions()), nil
}

func (s *PromotionsService) ListAll(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return promotionList(s.catalog.AllPromotions()), nil
}

func (s *PromotionsService) Validate(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	condition := stringField(req, "condition")
	if condition == "" {
		condition = promotion.ConditionOrder
	}
	p, err := s.catalog.ValidatePromoCode(stringField(req, "code"), condition)
	if err != nil {
		return nil, pizzeria.MapCommandError(err)
	}
	return PromotionStruct(p), nil
}

func (s *PromotionsService) Add(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	p, err := PromotionFromStruct(req)
	if err != nil {
		return nil, pizzeria.MapCommandError(err)
	}
	if err := s.catalog.AddPromotion(p); err != nil {
		s.logger.Warn("add promotion rejected", zap.String("code", p.Code), zap.Error(err))
		return nil, pizzeria.MapCommandError(err)
	}
	p.Active = true
	return PromotionStruct(p), nil
}

func (s *PromotionsService) Deactivate(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return foundStruct(s.catalog.DeactivatePromotion(stringField(req, "code"))), nil
}

func (s *PromotionsService) Remove(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	return foundStruct(s.catalog.RemovePromotion(stringField(req, "code"))), nil
}

// LoyaltyService serves pizzeria.v1.Loyalty.
type LoyaltyService struct {
	ledger *loyalty.Ledger
	logger *zap.Logger
}

func NewLoyaltyService(ledger *loyalty.Ledger, logger *zap.Logger) *LoyaltyService {
	return &LoyaltyService{ledger: ledger, logger: logger}
}

func (s *LoyaltyService) Balance(context.Context, *structpb.Struct) (*structpb.Struct, error) {
	return balanceStruct(s.ledger.Points(), s.ledger.Lifetime()), nil
}

func (s *LoyaltyService) Earn(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	n, err := intField(req, "points")
	if err != nil {
		return nil, pizzeria.MapCommandError(err)
	}
	if _, err := s.ledger.Add(n); err != nil {
		return nil, pizzeria.MapCommandError(err)
	}
	return balanceStruct(s.ledger.Points(), s.ledger.Lifetime()), nil
}

func (s *LoyaltyService) Redeem(_ context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	n, err := intField(req, "points")
	if err != nil {
		return nil, pizzeria.MapCommandError(err)
	}
	if _, err := s.ledger.Redeem(n); err != nil {
		s.logger.Info("redemption rejected", zap.Int("points", n), zap.Error(err))
		return nil, pizzeria.MapCommandError(err)
	}
	return balanceStruct(s.ledger.Points(), s.ledger.Lifetime()), nil
}

// Register attaches both services to s.
func Register(s *grpc.Server, catalog Catalog, ledger *loyalty.Ledger, logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.RegisterService(&PromotionsServiceDesc, NewPromotionsService(catalog, logger))
	s.RegisterService(&LoyaltyServiceDesc, NewLoyaltyService(ledger, logger))
}
