// Command seeder creates a demo user with a handful of sample inventory
// items. It is intended for local development and demo environments,
// never production.
//
// Flags:
//
//	--email     demo user email (default demo@example.com)
//	--password  demo user password (default demo123)
//
// Requires DATABASE_DSN and AUTH_JWT_SECRET to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/avoronin/stockpile-backend/internal/adapter/postgres"
	invrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/inventory"
	userrepo "github.com/avoronin/stockpile-backend/internal/adapter/postgres/user"
	"github.com/avoronin/stockpile-backend/internal/app"
	authcodec "github.com/avoronin/stockpile-backend/internal/auth"
	"github.com/avoronin/stockpile-backend/internal/config"
	"github.com/avoronin/stockpile-backend/internal/domain"
	authsvc "github.com/avoronin/stockpile-backend/internal/service/auth"
	invsvc "github.com/avoronin/stockpile-backend/internal/service/inventory"
)

func main() {
	emailFlag := flag.String("email", "demo@example.com", "demo user email")
	passwordFlag := flag.String("password", "demo123", "demo user password")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	items := invrepo.New(pool)

	tokens := authcodec.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
	hasher := authcodec.NewPasswordHasher(cfg.Auth.PasswordHashCost)

	authService := authsvc.NewService(logger, users, tokens, hasher)
	inventoryService := invsvc.NewService(logger, items)

	result, err := authService.Register(ctx, authsvc.RegisterInput{
		Name:     "Demo User",
		Email:    *emailFlag,
		Password: *passwordFlag,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			logger.Info("demo user already exists, skipping", slog.String("email", *emailFlag))
			return
		}
		logger.Error("create demo user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ownerID := result.User.ID
	logger.Info("demo user created", slog.String("id", ownerID.String()))

	created := 0
	for _, input := range sampleItems() {
		if _, err := inventoryService.CreateItem(ctx, ownerID, input); err != nil {
			logger.Error("create sample item",
				slog.String("name", input.Name),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
		created++
	}

	logger.Info("seeding complete", slog.Int("items", created))
}

func sampleItems() []invsvc.CreateItemInput {
	threshold := func(n int) *int { return &n }

	return []invsvc.CreateItemInput{
		{
			Name:        "Wireless Mouse",
			Description: "2.4GHz optical mouse with USB receiver",
			Category:    domain.CategoryElectronics.String(),
			Quantity:    42,
			Price:       24.99,
		},
		{
			Name:              "Mechanical Keyboard",
			Description:       "Tenkeyless, brown switches",
			Category:          domain.CategoryElectronics.String(),
			Quantity:          8,
			Price:             89.90,
			LowStockThreshold: threshold(10),
		},
		{
			Name:     "Office Chair",
			Category: domain.CategoryFurniture.String(),
			Quantity: 5,
			Price:    149.00,
		},
		{
			Name:        "Coffee Beans 1kg",
			Description: "Medium roast arabica",
			Category:    domain.CategoryFood.String(),
			Quantity:    0,
			Price:       18.50,
		},
		{
			Name:              "Go Programming Book",
			Category:          domain.CategoryBooks.String(),
			Quantity:          15,
			Price:             39.99,
			LowStockThreshold: threshold(3),
		},
	}
}
