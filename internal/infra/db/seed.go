package db

import (
	"app/internal/domain/model"

	"gorm.io/gorm"
)

// 固定カタログ。IDはシード順に1から振られる。
var seedProducts = []model.Product{
	{Name: "Wireless Headphones", Price: 99.99},
	{Name: "Smartphone", Price: 699.99},
	{Name: "Laptop", Price: 1299.99},
	{Name: "Smart Watch", Price: 199.99},
	{Name: "Tablet", Price: 499.99},
	{Name: "Gaming Console", Price: 399.99},
	{Name: "Bluetooth Speaker", Price: 79.99},
}

// Seed は両テーブルを空にして固定の7商品を入れ直す。
// 起動のたびに呼ぶので、再起動をまたいでカタログがズレたりカートが残ったりしない。
func Seed(gormDB *gorm.DB) error {
	return gormDB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CartItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&model.Product{}).Error; err != nil {
			return err
		}

		// IDは明示的に1から振る（再シードでも連番がズレないように）
		for i, p := range seedProducts {
			row := p
			row.ID = int64(i + 1)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
