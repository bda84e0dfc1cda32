package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/rs/zerolog"
)

const receiptMessage = "Thank you for your purchase! This is a mock transaction."

// 注文ID（"ORD" + 英数9桁）の発行。実装は main で注入。
type OrderIDGenerator interface {
	NewOrderID() string
}

type Clock interface {
	Now() time.Time
}

// CheckoutUsecase はモック決済。クライアントが送ってきたスナップショットを
// そのまま信用してレシートを合成し、副作用としてカートを空にする。
// Cart Storeを読み直すstrict版に差し替えられるよう、入力は引数で受ける。
type CheckoutUsecase struct {
	cartRepo repo.CartRepository
	idGen    OrderIDGenerator
	clock    Clock
	logger   zerolog.Logger
}

// DI
func NewCheckoutUsecase(
	cartRepo repo.CartRepository,
	idGen OrderIDGenerator,
	clock Clock,
	logger zerolog.Logger,
) *CheckoutUsecase {
	return &CheckoutUsecase{
		cartRepo: cartRepo,
		idGen:    idGen,
		clock:    clock,
		logger:   logger,
	}
}

type CheckoutInput struct {
	Name  string
	Email string
	Items []model.CheckoutItem
}

// Checkout はレシートを合成して返す。
// 合計は送られてきたitemsから計算する（ストアの中身は見ない）。
// カートの全削除に失敗してもレシートは返す（ログだけ残す）。
func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (model.Receipt, error) {
	var total float64 = 0
	for _, it := range in.Items {
		total += it.Price * float64(it.Quantity)
	}

	receipt := model.Receipt{
		OrderID: u.idGen.NewOrderID(),
		Customer: model.Customer{
			Name:  in.Name,
			Email: in.Email,
		},
		Items:     in.Items,
		Total:     total,
		Timestamp: u.clock.Now(),
		Message:   receiptMessage,
	}

	if err := u.cartRepo.Clear(ctx); err != nil {
		u.logger.Error().
			Err(err).
			Str("order_id", receipt.OrderID).
			Msg("failed to clear cart after checkout")
	}

	return receipt, nil
}
