package structs

type AddToCart struct {
	TelegramID string `json:"telegramId"`
	ProductID  string `json:"productId"`
}

// ResolvedCartItem is a cart line with the product reference joined to the
// full product document, keeping the original wire shape where the resolved
// document replaces the id under the productId key.
type ResolvedCartItem struct {
	Product Product `json:"productId"`
	Qty     int64   `json:"qty"`
}
