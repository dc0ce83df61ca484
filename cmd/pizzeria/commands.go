package main

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/Madhavee/PizzaOrderingSystem/internal/app"
	"github.com/Madhavee/PizzaOrderingSystem/internal/config"
	"github.com/Madhavee/PizzaOrderingSystem/internal/order"
	"github.com/Madhavee/PizzaOrderingSystem/internal/product"
	"github.com/Madhavee/PizzaOrderingSystem/internal/promotion"
)

// bootstrap loads configuration and builds the application.
func bootstrap(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	logger, err := app.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	return app.New(cfg, logger)
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the gRPC promotions and loyalty services",
		Action: func(c *cli.Context) error {
			a, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer a.Close()
			defer a.Logger.Sync()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.Serve(ctx)
		},
	}
}

func promotionsCommand() *cli.Command {
	addrFlag := &cli.StringFlag{
		Name:  "addr",
		Usage: "manage a running server at host:port instead of local storage",
	}
	return &cli.Command{
		Name:    "promotions",
		Aliases: []string{"promo"},
		Usage:   "list and manage promotion codes",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print promotions",
				Flags: []cli.Flag{
					addrFlag,
					&cli.BoolFlag{Name: "all", Usage: "include inactive and out-of-date promotions"},
				},
				Action: withPromotions(func(c *cli.Context, p promotionAdmin) error {
					list, err := p.List(c.Context, c.Bool("all"))
					if err != nil {
						return err
					}
					return printPromotions(c, list)
				}),
			},
			{
				Name:  "add",
				Usage: "add a promotion",
				Flags: []cli.Flag{
					addrFlag,
					&cli.StringFlag{Name: "code", Required: true},
					&cli.StringFlag{Name: "name"},
					&cli.StringFlag{Name: "discount", Value: "0"},
					&cli.StringFlag{Name: "start", Usage: "first valid day, YYYY-MM-DD"},
					&cli.StringFlag{Name: "end", Usage: "last valid day, YYYY-MM-DD"},
					&cli.StringFlag{Name: "condition", Value: promotion.ConditionOrder, Usage: "ORDER or TOPPING:<name>"},
				},
				Action: withPromotions(func(c *cli.Context, p promotionAdmin) error {
					promo, err := promotionFromFlags(c)
					if err != nil {
						return err
					}
					if err := p.Add(c.Context, promo); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "added %s\n", promo.Code)
					return nil
				}),
			},
			{
				Name:      "deactivate",
				Usage:     "deactivate a promotion by code",
				ArgsUsage: "CODE",
				Flags:     []cli.Flag{addrFlag},
				Action: withPromotions(func(c *cli.Context, p promotionAdmin) error {
					code := c.Args().First()
					found, err := p.Deactivate(c.Context, code)
					return reportFound(c, "deactivated", code, found, err)
				}),
			},
			{
				Name:      "remove",
				Usage:     "remove a promotion by code",
				ArgsUsage: "CODE",
				Flags:     []cli.Flag{addrFlag},
				Action: withPromotions(func(c *cli.Context, p promotionAdmin) error {
					code := c.Args().First()
					found, err := p.Remove(c.Context, code)
					return reportFound(c, "removed", code, found, err)
				}),
			},
		},
	}
}

func withPromotions(fn func(*cli.Context, promotionAdmin) error) cli.ActionFunc {
	return func(c *cli.Context) error {
		if addr := c.String("addr"); addr != "" {
			remote, err := dialPromotions(addr)
			if err != nil {
				return err
			}
			defer remote.Close()
			return fn(c, remote)
		}
		a, err := bootstrap(c)
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(c, localPromotions{catalog: a.Catalog})
	}
}

func promotionFromFlags(c *cli.Context) (promotion.Promotion, error) {
	discount, err := decimal.NewFromString(c.String("discount"))
	if err != nil {
		return promotion.Promotion{}, fmt.Errorf("invalid discount %q: %w", c.String("discount"), err)
	}
	p := promotion.Promotion{
		Code:      c.String("code"),
		Name:      c.String("name"),
		Discount:  discount,
		Condition: c.String("condition"),
	}
	if p.Start, err = parseDay(c.String("start")); err != nil {
		return promotion.Promotion{}, err
	}
	if p.End, err = parseDay(c.String("end")); err != nil {
		return promotion.Promotion{}, err
	}
	return p, nil
}

func reportFound(c *cli.Context, verb, code string, found bool, err error) error {
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no promotion with code %q", code)
	}
	fmt.Fprintf(c.App.Writer, "%s %s\n", verb, code)
	return nil
}

func printPromotions(c *cli.Context, list []promotion.Promotion) error {
	w := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tNAME\tDISCOUNT\tACTIVE\tVALID\tCONDITION")
	for _, p := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%s\t%s\n",
			p.Code, p.Name, p.Discount.StringFixed(2), p.Active, validity(p), p.Condition)
	}
	return w.Flush()
}

func validity(p promotion.Promotion) string {
	if p.Start.IsZero() && p.End.IsZero() {
		return "always"
	}
	return formatDay(p.Start) + ".." + formatDay(p.End)
}

func simulateCommand() *cli.Command {
	return &cli.Command{
		Name:  "simulate",
		Usage: "place, pay for and track one order end to end",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "customer", Value: "Guest"},
			&cli.StringFlag{Name: "email", Value: "guest@example.com"},
			&cli.StringFlag{Name: "pizza", Value: "Custom Pizza"},
			&cli.StringFlag{Name: "crust", Value: "Thin"},
			&cli.StringFlag{Name: "sauce", Value: "Tomato"},
			&cli.StringFlag{Name: "cheese", Value: "Mozzarella"},
			&cli.StringFlag{Name: "size", Value: product.SizeMedium.String()},
			&cli.StringSliceFlag{Name: "topping", Value: cli.NewStringSlice("Pepperoni")},
			&cli.BoolFlag{Name: "extra-cheese"},
			&cli.BoolFlag{Name: "packaging"},
			&cli.StringFlag{Name: "delivery", Value: order.Pickup.String()},
			&cli.StringFlag{Name: "address"},
			&cli.StringFlag{Name: "promo"},
			&cli.StringFlag{Name: "payment", Value: "credit card"},
			&cli.IntFlag{Name: "points"},
			&cli.IntFlag{Name: "rating"},
			&cli.StringFlag{Name: "comments"},
			&cli.BoolFlag{Name: "favorite"},
		},
		Action: func(c *cli.Context) error {
			req, err := simulateRequest(c)
			if err != nil {
				return err
			}
			a, err := bootstrap(c)
			if err != nil {
				return err
			}
			defer a.Close()
			defer a.Logger.Sync()

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			res, err := a.Simulate(ctx, req)
			if err != nil {
				return err
			}
			a.Logger.Info("simulation finished",
				zap.String("order_id", res.Order.ID()),
				zap.String("status", res.Order.CurrentStatus()),
			)
			fmt.Fprintf(c.App.Writer, "order %s %s: paid %s by %s, earned %d points, balance %d\n",
				res.Order.ID(), res.Order.CurrentStatus(), res.Receipt.Amount.StringFixed(2),
				res.Receipt.Method, res.Receipt.PointsEarned, res.Receipt.Balance)
			return nil
		},
	}
}

func simulateRequest(c *cli.Context) (app.SimulateRequest, error) {
	size, err := product.ParseSize(c.String("size"))
	if err != nil {
		return app.SimulateRequest{}, err
	}
	delivery, err := order.ParseDeliveryOption(c.String("delivery"))
	if err != nil {
		return app.SimulateRequest{}, err
	}
	return app.SimulateRequest{
		Customer:      c.String("customer"),
		Email:         c.String("email"),
		ProductName:   c.String("pizza"),
		Crust:         c.String("crust"),
		Sauce:         c.String("sauce"),
		Cheese:        c.String("cheese"),
		Size:          size,
		Toppings:      c.StringSlice("topping"),
		ExtraCheese:   c.Bool("extra-cheese"),
		Packaging:     c.Bool("packaging"),
		Delivery:      delivery,
		Address:       strings.TrimSpace(c.String("address")),
		PromoCode:     c.String("promo"),
		PaymentMethod: c.String("payment"),
		Points:        c.Int("points"),
		Rating:        c.Int("rating"),
		Comments:      c.String("comments"),
		SaveFavorite:  c.Bool("favorite"),
	}, nil
}
