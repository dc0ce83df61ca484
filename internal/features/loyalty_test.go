package features

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/Madhavee/PizzaOrderingSystem/internal/loyalty"
)

type loyaltyTestContext struct {
	ledger *loyalty.Ledger
	err    error
}

func (c *loyaltyTestContext) reset() {
	c.ledger = nil
	c.err = nil
}

func (c *loyaltyTestContext) aLedgerWithPoints(points int) error {
	c.ledger = loyalty.NewLedger(points)
	return nil
}

func (c *loyaltyTestContext) iEarnPointsForATotalOf(total string) error {
	amount, err := decimal.NewFromString(total)
	if err != nil {
		return err
	}
	_, c.err = c.ledger.Add(loyalty.PointsEarned(amount))
	return nil
}

func (c *loyaltyTestContext) iRedeemPoints(points int) error {
	_, c.err = c.ledger.Redeem(points)
	return nil
}

func (c *loyaltyTestContext) theBalanceIsPoints(points int) error {
	if got := c.ledger.Points(); got != points {
		return fmt.Errorf("expected balance %d, got %d", points, got)
	}
	return nil
}

func (c *loyaltyTestContext) theLifetimeTotalIsPoints(points int) error {
	if got := c.ledger.Lifetime(); got != points {
		return fmt.Errorf("expected lifetime %d, got %d", points, got)
	}
	return nil
}

func (c *loyaltyTestContext) pointsAreWorth(points int, value string) error {
	return expectAmount(loyalty.PointsValue(points), value)
}

func (c *loyaltyTestContext) theCommandFailsWithStatus(status string) error {
	return expectStatus(c.err, status)
}

func (c *loyaltyTestContext) theErrorMessageContains(substring string) error {
	return expectMessage(c.err, substring)
}

func initializeLoyaltyScenario(ctx *godog.ScenarioContext) {
	tc := &loyaltyTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^a ledger with (\d+) points$`, tc.aLedgerWithPoints)

	// When steps
	ctx.Step(`^I earn points for a total of "([^"]*)"$`, tc.iEarnPointsForATotalOf)
	ctx.Step(`^I redeem (-?\d+) points$`, tc.iRedeemPoints)

	// Then steps
	ctx.Step(`^the balance is (\d+) points$`, tc.theBalanceIsPoints)
	ctx.Step(`^the lifetime total is (\d+) points$`, tc.theLifetimeTotalIsPoints)
	ctx.Step(`^(\d+) points are worth "([^"]*)"$`, tc.pointsAreWorth)
	ctx.Step(`^the command fails with status "([^"]*)"$`, tc.theCommandFailsWithStatus)
	ctx.Step(`^the error message contains "([^"]*)"$`, tc.theErrorMessageContains)
}

func TestLoyaltyFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeLoyaltyScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../../features/loyalty.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run loyalty feature tests")
	}
}
