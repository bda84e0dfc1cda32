package model

// カタログ商品。起動時にシードしたら以降は変更しない。
type Product struct {
	ID    int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string  `gorm:"type:varchar(255);not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`
}
