package repository

import (
	"context"

	"app/internal/domain/model"
)

type CartRepository interface {
	// 商品名・価格をJOINした明細一覧
	ListItems(ctx context.Context) ([]model.CartItemView, error)
	FindByProduct(ctx context.Context, productID int64) (model.CartItem, error)
	// 同一商品は数量加算。ストア側で原子的にupsertするので並行addでも行は重複しない。
	// 戻り値は（新規作成したか、明細ID）。
	UpsertByProduct(ctx context.Context, productID int64, qty int64) (bool, int64, error)
	DeleteByID(ctx context.Context, cartItemID int64) error
	Clear(ctx context.Context) error
}
