// Package client is the typed storefront API. Every call goes through the
// request gateway, so callers get the gateway's typed errors back.
// Types mirror the backend DTOs.
package client

import "math"

// Product mirrors the backend ProductDTO.
type Product struct {
	ID            int64    `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	StockQuantity int      `json:"stockQuantity,omitempty"`
	Category      string   `json:"category,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	Brand         string   `json:"brand,omitempty"`
	Rating        float64  `json:"rating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	IsActive      bool     `json:"isActive,omitempty"`
	IsFeatured    bool     `json:"isFeatured,omitempty"`
}

// PlaceholderImage is shown for products without an image.
const PlaceholderImage = "https://via.placeholder.com/300x300?text=No+Image"

// CurrentPrice is the discounted price when one is set, else the list price.
func (p Product) CurrentPrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 {
		return *p.DiscountPrice
	}
	return p.Price
}

// DiscountPercent is round((1 - discount/price) * 100), or 0 without a
// discount.
func (p Product) DiscountPercent() int {
	if p.DiscountPrice == nil || *p.DiscountPrice <= 0 || p.Price <= 0 {
		return 0
	}
	return int(math.Round((1 - *p.DiscountPrice/p.Price) * 100))
}

// CategoryOrDefault returns the category, or "General".
func (p Product) CategoryOrDefault() string {
	if p.Category == "" {
		return "General"
	}
	return p.Category
}

// Image returns the image URL or the placeholder.
func (p Product) Image() string {
	if p.ImageURL == "" {
		return PlaceholderImage
	}
	return p.ImageURL
}

// ProductPage is a Spring Data page of products.
type ProductPage struct {
	Content       []Product `json:"content"`
	TotalElements int       `json:"totalElements"`
	TotalPages    int       `json:"totalPages"`
	Number        int       `json:"number"`
	Size          int       `json:"size"`
}

// PageRequest selects a page of the catalogue.
type PageRequest struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// CartItem mirrors the backend CartItemDTO.
type CartItem struct {
	ID            int64    `json:"id"`
	ProductID     int64    `json:"productId"`
	ProductName   string   `json:"productName"`
	ProductImage  string   `json:"productImage,omitempty"`
	Price         float64  `json:"price"`
	DiscountPrice *float64 `json:"discountPrice,omitempty"`
	Quantity      int      `json:"quantity"`
	Total         float64  `json:"total"`
}

// OrderItem mirrors the backend OrderItemDTO.
type OrderItem struct {
	ID           int64   `json:"id"`
	ProductID    int64   `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Order mirrors the backend OrderDTO.
type Order struct {
	ID              int64       `json:"id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	Status          string      `json:"status"`
	ShippingAddress string      `json:"shippingAddress"`
	City            string      `json:"city"`
	State           string      `json:"state"`
	ZipCode         string      `json:"zipCode"`
	Country         string      `json:"country"`
	Phone           string      `json:"phone"`
	CreatedAt       string      `json:"createdAt"`
}

// CheckoutRequest is the body of POST /orders/checkout.
type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	City            string `json:"city"`
	State           string `json:"state"`
	ZipCode         string `json:"zipCode"`
	Country         string `json:"country"`
	Phone           string `json:"phone"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone,omitempty"`
}

// AuthResponse is returned by login and register.
type AuthResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	ID        int64  `json:"id"`
}
