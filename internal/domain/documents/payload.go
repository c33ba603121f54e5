package documents

// CreateItem is one line of the atomic create payload. The server accepts
// plain numbers on the wire; totals are recomputed server-side.
type CreateItem struct {
	ProductID   int64   `json:"productId"`
	WarehouseID int64   `json:"warehouseId"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
}

// WireItems converts staged lines into the create payload shape.
func WireItems(lines []Line) []CreateItem {
	items := make([]CreateItem, 0, len(lines))
	for _, l := range lines {
		items = append(items, CreateItem{
			ProductID:   l.ProductID,
			WarehouseID: l.WarehouseID,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice.InexactFloat64(),
		})
	}
	return items
}
