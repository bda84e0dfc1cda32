package model

import "time"

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CheckoutItem はクライアントが送ってきたカートのスナップショット1行。
// 価格もクライアント申告のまま信用する（モック決済）。
type CheckoutItem struct {
	ID        int64   `json:"id,omitempty"`
	ProductID int64   `json:"productId,omitempty"`
	Quantity  int64   `json:"quantity"`
	Name      string  `json:"name,omitempty"`
	Price     float64 `json:"price"`
}

// Receipt はチェックアウトで合成して返すだけ。永続化しない。
type Receipt struct {
	OrderID   string         `json:"orderId"`
	Customer  Customer       `json:"customer"`
	Items     []CheckoutItem `json:"items"`
	Total     float64        `json:"total"`
	Timestamp time.Time      `json:"timestamp"`
	Message   string         `json:"message"`
}
