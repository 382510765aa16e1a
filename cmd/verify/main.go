// Command verify runs the acceptance scenarios against the default discount rules
// and exits non-zero if any of them does not hold.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"vip-discount/internal/domain/discount"
	"vip-discount/internal/domain/purchase"
	"vip-discount/internal/domain/user"
	"vip-discount/internal/handler/middleware"
	"vip-discount/internal/pkg/config"

	"github.com/shopspring/decimal"
)

type scenario struct {
	name         string
	userID       string
	userType     user.Type
	amount       int64
	wantSuccess  bool
	wantFinal    int64
	wantDiscount int64
	wantMessage  string
}

var scenarios = []scenario{
	{name: "Apply 20% discount to VIP user", userID: "user1", userType: user.TypeVIP, amount: 1000, wantSuccess: true, wantFinal: 800, wantDiscount: 200},
	{name: "No discount for normal users", userID: "user2", userType: user.TypeNormal, amount: 1000, wantSuccess: true, wantFinal: 1000, wantDiscount: 0},
	{name: "No discount for purchases under threshold", userID: "user1", userType: user.TypeVIP, amount: 50, wantSuccess: true, wantFinal: 50, wantDiscount: 0},
	{name: "Reject invalid purchase amount", userID: "user1", userType: user.TypeVIP, amount: -100, wantSuccess: false, wantMessage: "Invalid purchase amount"},
}

func main() {
	cfg := config.NewTestConfig().Log
	cfg.Level = "info"
	logger := middleware.NewLogger(cfg).GetSlogLogger()

	os.Exit(run(discount.NewDefaultCalculator(), logger))
}

func run(calc discount.Calculator, logger *slog.Logger) int {
	failed := 0
	for _, sc := range scenarios {
		if err := check(calc, sc); err != nil {
			failed++
			logger.Error("Scenario failed", "scenario", sc.name, "error", err)
			continue
		}
		logger.Info("Scenario passed", "scenario", sc.name)
	}

	if failed > 0 {
		logger.Error("Verification failed", "failed", failed, "total", len(scenarios))
		return 1
	}
	logger.Info("All scenarios verified", "total", len(scenarios))
	return 0
}

func check(calc discount.Calculator, sc scenario) error {
	id, err := user.NewID(sc.userID)
	if err != nil {
		return err
	}
	p := purchase.NewPurchase(purchase.NewMoney(decimal.NewFromInt(sc.amount)), "USD")

	r := calc.Calculate(user.NewUser(id, sc.userType), p)

	if r.Success != sc.wantSuccess {
		return fmt.Errorf("success: want %t, got %t", sc.wantSuccess, r.Success)
	}
	if !sc.wantSuccess {
		if r.Message() != sc.wantMessage {
			return fmt.Errorf("error message: want %q, got %q", sc.wantMessage, r.Message())
		}
		return nil
	}
	if !r.FinalPrice.Equal(decimal.NewFromInt(sc.wantFinal)) {
		return fmt.Errorf("final price: want %d, got %s", sc.wantFinal, r.FinalPrice)
	}
	if !r.DiscountAmount.Equal(decimal.NewFromInt(sc.wantDiscount)) {
		return fmt.Errorf("discount amount: want %d, got %s", sc.wantDiscount, r.DiscountAmount)
	}
	return nil
}
