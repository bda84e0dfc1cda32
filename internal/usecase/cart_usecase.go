package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/cart の業務ロジック。
// カートは単一・グローバル（ユーザー分離なし）。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type CartResponse struct {
	Items []model.CartItemView `json:"items"`
	Total float64              `json:"total"`
}

type AddToCartInput struct {
	ProductID int64
	Quantity  int64
}

type AddToCartOutput struct {
	Message string `json:"message"`
	ID      *int64 `json:"id,omitempty"`
}

// GetCart は明細一覧と合計（Σ price×quantity、読み取り時に都度計算）を返す。
func (u *CartUsecase) GetCart(ctx context.Context) (CartResponse, error) {
	items, err := u.cartRepo.ListItems(ctx)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	// 空カートでも items はJSONで[]にする
	if items == nil {
		items = []model.CartItemView{}
	}

	var total float64 = 0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}

	return CartResponse{Items: items, Total: total}, nil
}

// AddToCart はカートに追加（同一商品は数量加算）。
// quantity は検証しない：0や負もそのまま通す（意図的に寛容）。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddToCartInput) (AddToCartOutput, error) {
	// 商品チェック
	_, err := u.productRepo.FindByID(ctx, in.ProductID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddToCartOutput{}, NewHTTPError(http.StatusNotFound, "Product not found")
	}
	if err != nil {
		return AddToCartOutput{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	created, itemID, err := u.cartRepo.UpsertByProduct(ctx, in.ProductID, in.Quantity)
	if err != nil {
		return AddToCartOutput{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if !created {
		return AddToCartOutput{Message: "Item quantity updated in cart"}, nil
	}
	return AddToCartOutput{Message: "Item added to cart", ID: &itemID}, nil
}

// RemoveFromCart は明細IDで削除（productIdではない）。
func (u *CartUsecase) RemoveFromCart(ctx context.Context, cartItemID int64) (AddToCartOutput, error) {
	err := u.cartRepo.DeleteByID(ctx, cartItemID)
	if errors.Is(err, repo.ErrNotFound) {
		return AddToCartOutput{}, NewHTTPError(http.StatusNotFound, "Item not found in cart")
	}
	if err != nil {
		return AddToCartOutput{}, NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return AddToCartOutput{Message: "Item removed from cart"}, nil
}
