package transport

import (
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Madhavee/PizzaOrderingSystem/internal/pizzeria"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
)

func stringField(s *structpb.Struct, key string) string {
	if v, ok := s.GetFields()[key]; ok {
		return v.GetStringValue()
	}
	return ""
}

func intField(s *structpb.Struct, key string) (int, error) {
	v, ok := s.GetFields()[key]
	if !ok {
		return 0, pizzeria.NewInvalidArgumentf("%s is required", key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok || n.NumberValue != math.Trunc(n.NumberValue) || math.Abs(n.NumberValue) > math.MaxInt32 {
		return 0, pizzeria.NewInvalidArgumentf("%s must be a whole number", key)
	}
	return int(n.NumberValue), nil
}

func dateField(s *structpb.Struct, key string) (time.Time, error) {
	raw := strings.TrimSpace(stringField(s, key))
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, pizzeria.NewInvalidArgumentf("%s must be YYYY-MM-DD", key)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// PromotionValue encodes p as a struct value.
func PromotionValue(p promotion.Promotion) *structpb.Value {
	return structpb.NewStructValue(PromotionStruct(p))
}

// PromotionStruct encodes p.
func PromotionStruct(p promotion.Promotion) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"code":      structpb.NewStringValue(p.Code),
		"name":      structpb.NewStringValue(p.Name),
		"discount":  structpb.NewStringValue(p.Discount.String()),
		"active":    structpb.NewBoolValue(p.Active),
		"start":     structpb.NewStringValue(formatDate(p.Start)),
		"end":       structpb.NewStringValue(formatDate(p.End)),
		"condition": structpb.NewStringValue(p.Condition),
	}}
}

// PromotionFromStruct decodes a promotion. Discount may be a string or a
// number; dates are YYYY-MM-DD or empty.
func PromotionFromStruct(s *structpb.Struct) (promotion.Promotion, error) {
	p := promotion.Promotion{
		Code:      stringField(s, "code"),
		Name:      stringField(s, "name"),
		Condition: stringField(s, "condition"),
	}
	if p.Condition == "" {
		p.Condition = promotion.ConditionOrder
	}
	if v, ok := s.GetFields()["active"]; ok {
		p.Active = v.GetBoolValue()
	}

	switch v := s.GetFields()["discount"].GetKind().(type) {
	case *structpb.Value_StringValue:
		d, err := decimal.NewFromString(v.StringValue)
		if err != nil {
			return promotion.Promotion{}, pizzeria.NewInvalidArgumentf("invalid discount %q", v.StringValue)
		}
		p.Discount = d
	case *structpb.Value_NumberValue:
		p.Discount = decimal.NewFromFloat(v.NumberValue)
	}

	var err error
	if p.Start, err = dateField(s, "start"); err != nil {
		return promotion.Promotion{}, err
	}
	if p.End, err = dateField(s, "end"); err != nil {
		return promotion.Promotion{}, err
	}
	return p, nil
}

func promotionList(ps []promotion.Promotion) *structpb.Struct {
	values := make([]*structpb.Value, 0, len(ps))
	for _, p := range ps {
		values = append(values, PromotionValue(p))
	}
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"promotions": structpb.NewListValue(&structpb.ListValue{Values: values}),
	}}
}

// PromotionsFromList decodes the "promotions" list of a response.
func PromotionsFromList(s *structpb.Struct) ([]promotion.Promotion, error) {
	list := s.GetFields()["promotions"].GetListValue()
	out := make([]promotion.Promotion, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		p, err := PromotionFromStruct(v.GetStructValue())
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func foundStruct(found bool) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"found": structpb.NewBoolValue(found),
	}}
}

func balanceStruct(points, lifetime int) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		"points":   structpb.NewNumberValue(float64(points)),
		"lifetime": structpb.NewNumberValue(float64(lifetime)),
	}}
}
