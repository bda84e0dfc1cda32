package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CartGormRepository struct {
	db *gorm.DB
}

// DI
func NewCartGormRepository(db *gorm.DB) *CartGormRepository {
	return &CartGormRepository{db: db}
}

// 明細一覧を商品名・価格をJOINして返す。
// 0件のときもnilではなく空スライス（JSONで[]になる）。
func (r *CartGormRepository) ListItems(ctx context.Context) ([]model.CartItemView, error) {
	items := []model.CartItemView{}

	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select("cart_items.id, cart_items.product_id, cart_items.quantity, products.name, products.price").
		Joins("join products on products.id = cart_items.product_id").
		Order("cart_items.id asc").
		Scan(&items).Error
	if err != nil {
		return []model.CartItemView{}, err
	}

	return items, nil
}

// productIdで明細を取得
func (r *CartGormRepository) FindByProduct(ctx context.Context, productID int64) (model.CartItem, error) {
	var item model.CartItem

	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&item).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.CartItem{}, repo.ErrNotFound
	}
	if err != nil {
		return model.CartItem{}, err
	}
	return item, nil
}

// 同一商品は数量加算。product_idのuniqueIndexとON CONFLICTで
// 挿入と加算が1文になるので、並行addでも同じproductIdの行が2本できることはない。
func (r *CartGormRepository) UpsertByProduct(ctx context.Context, productID int64, qty int64) (bool, int64, error) {
	// 既存行の有無はレスポンスメッセージ用の事前チェック。
	// 行の一意性はここではなくON CONFLICTが保証する。
	var existing model.CartItem
	findErr := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&existing).Error
	if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
		return false, 0, findErr
	}

	item := model.CartItem{
		ProductID: productID,
		Quantity:  qty,
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", qty),
			}),
		}).
		Create(&item).Error
	if err != nil {
		return false, 0, err
	}

	if findErr == nil {
		return false, existing.ID, nil
	}
	return true, item.ID, nil
}

// 明細を削除（0件なら not found）
func (r *CartGormRepository) DeleteByID(ctx context.Context, cartItemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.CartItem{}, cartItemID)

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// カートを全削除
func (r *CartGormRepository) Clear(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("1 = 1").
		Delete(&model.CartItem{}).Error
}
