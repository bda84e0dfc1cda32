package model

// カートの明細。productIdごとに1行（同一商品は数量加算）。
type CartItem struct {
	ID        int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64 `gorm:"not null;uniqueIndex" json:"productId"`
	Quantity  int64 `gorm:"not null" json:"quantity"`
}

// CartItemView は明細と商品のJOIN結果（合計計算に名前と価格が要る）。
type CartItemView struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int64   `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}
