package client

func price(v float64) *float64 { return &v }

// SampleProducts is the built-in catalogue shown when the backend cannot be
// reached. The first four stand in for featured products, the rest for
// bestsellers.
func SampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Premium Wireless Headphones", Price: 249.99, DiscountPrice: price(199.99), Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=300", Rating: 4.5, ReviewCount: 128},
		{ID: 2, Name: "Smart Watch Pro", Price: 349.99, DiscountPrice: price(299.99), Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=300", Rating: 4.8, ReviewCount: 256},
		{ID: 3, Name: "Running Shoes Ultra", Price: 149.99, DiscountPrice: price(119.99), Category: "Sportswear", ImageURL: "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=300", Rating: 4.6, ReviewCount: 89},
		{ID: 4, Name: "Designer Sunglasses", Price: 199.99, DiscountPrice: price(149.99), Category: "Accessories", ImageURL: "https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=300", Rating: 4.3, ReviewCount: 67},
		{ID: 5, Name: "Leather Laptop Bag", Price: 179.99, DiscountPrice: price(149.99), Category: "Accessories", ImageURL: "https://images.unsplash.com/photo-1548036328-c9fa89d128fa?w=300", Rating: 4.7, ReviewCount: 145},
		{ID: 6, Name: "Wireless Earbuds", Price: 169.99, DiscountPrice: price(129.99), Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=300", Rating: 4.4, ReviewCount: 198},
		{ID: 7, Name: "Fitness Tracker Band", Price: 79.99, DiscountPrice: price(59.99), Category: "Electronics", ImageURL: "https://images.unsplash.com/photo-1575311373937-040b8e1fd5b6?w=300", Rating: 4.2, ReviewCount: 312},
		{ID: 8, Name: "Denim Jacket Classic", Price: 129.99, DiscountPrice: price(99.99), Category: "Clothing", ImageURL: "https://images.unsplash.com/photo-1551028719-00167b16eac5?w=300", Rating: 4.5, ReviewCount: 76},
	}
}

// SampleFeatured returns the fallback for the featured grid.
func SampleFeatured() []Product { return SampleProducts()[:4] }

// SampleBestsellers returns the fallback for the bestsellers grid.
func SampleBestsellers() []Product { return SampleProducts()[4:8] }
