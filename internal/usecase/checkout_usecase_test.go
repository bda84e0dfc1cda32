package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type fixedIDGen struct{ id string }

func (g *fixedIDGen) NewOrderID() string { return g.id }

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

func newCheckoutUsecase(cartRepo *CartRepoMock, id string, now time.Time) *usecase.CheckoutUsecase {
	return usecase.NewCheckoutUsecase(cartRepo, &fixedIDGen{id: id}, &fixedClock{now: now}, zerolog.Nop())
}

// Test: レシートは送信されたスナップショットから作る（ストアは読まない）
func TestCheckoutUsecase_ReceiptFromSubmittedItems(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cartRepo := new(CartRepoMock)
	cartRepo.On("Clear", mock.Anything).Return(nil)

	uc := newCheckoutUsecase(cartRepo, "ORDABC123XYZ", now)

	items := []model.CheckoutItem{
		{ProductID: 1, Quantity: 2, Name: "Wireless Headphones", Price: 99.99},
		{ProductID: 2, Quantity: 1, Name: "Smartphone", Price: 699.99},
	}

	receipt, err := uc.Checkout(ctx, usecase.CheckoutInput{
		Name:  "Taro",
		Email: "taro@example.com",
		Items: items,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ORDABC123XYZ", receipt.OrderID)
	assert.Equal(t, model.Customer{Name: "Taro", Email: "taro@example.com"}, receipt.Customer)
	assert.Equal(t, items, receipt.Items)
	assert.InDelta(t, 2*99.99+699.99, receipt.Total, 1e-9)
	assert.Equal(t, now, receipt.Timestamp)
	assert.Equal(t, "Thank you for your purchase! This is a mock transaction.", receipt.Message)

	cartRepo.AssertExpectations(t)
}

// Test: チェックアウトは無条件にカートを全削除する
func TestCheckoutUsecase_ClearsCart(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	cartRepo.On("Clear", mock.Anything).Return(nil)

	uc := newCheckoutUsecase(cartRepo, "ORD000000000", time.Now())

	_, err := uc.Checkout(ctx, usecase.CheckoutInput{Name: "a", Email: "a@example.com"})

	assert.NoError(t, err)
	cartRepo.AssertCalled(t, "Clear", mock.Anything)
}

// Test: カート削除が失敗してもレシートは返る（唯一の握りつぶし）
func TestCheckoutUsecase_ClearFailureStillReturnsReceipt(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	cartRepo.On("Clear", mock.Anything).Return(errors.New("db is gone"))

	uc := newCheckoutUsecase(cartRepo, "ORDAAAAAAAAA", time.Now())

	receipt, err := uc.Checkout(ctx, usecase.CheckoutInput{
		Name:  "Taro",
		Email: "taro@example.com",
		Items: []model.CheckoutItem{{ProductID: 1, Quantity: 1, Price: 10}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "ORDAAAAAAAAA", receipt.OrderID)
	assert.InDelta(t, 10.0, receipt.Total, 1e-9)
}

func TestCheckoutUsecase_EmptyItems(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartRepoMock)
	cartRepo.On("Clear", mock.Anything).Return(nil)

	uc := newCheckoutUsecase(cartRepo, "ORD123456789", time.Now())

	receipt, err := uc.Checkout(ctx, usecase.CheckoutInput{Name: "a", Email: "a@example.com"})

	assert.NoError(t, err)
	assert.Equal(t, float64(0), receipt.Total)
	assert.Empty(t, receipt.Items)
}
