package dto

type SaveProductDTO struct {
	Name        string `json:"name" binding:"required" validate:"min=1,max=128"`
	Description string `json:"description"`
	Price       int64  `json:"price" validate:"min=0"`
	ImageURL    string `json:"imageUrl"`
	StockCount  int    `json:"stockCount" validate:"min=0"`
	IsActive    bool   `json:"isActive"`
}

type ProductDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	ImageURL    string `json:"imageUrl"`
	StockCount  int    `json:"stockCount"`
	IsActive    bool   `json:"isActive"`
}
