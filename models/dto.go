package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type CreateItemRequest struct {
	Name        string  `json:"name" form:"name" binding:"required"`
	Description string  `json:"description" form:"description" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Category    string  `json:"category" form:"category" binding:"required"`
	Image       string  `json:"image" form:"image"`
}

type UpdateItemRequest struct {
	Name        string   `json:"name" form:"name"`
	Description string   `json:"description" form:"description"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Category    string   `json:"category" form:"category"`
	Image       string   `json:"image" form:"image"`
}

// AddCartItemRequest carries the body of POST /cart. Quantity is a pointer
// so an omitted quantity (defaults to 1) can be told apart from an explicit
// zero, which is rejected.
type AddCartItemRequest struct {
	ItemID   int  `json:"itemId" binding:"required"`
	Quantity *int `json:"quantity" binding:"omitempty"`
}

type RemoveCartItemRequest struct {
	ItemID int `json:"itemId" binding:"required"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
