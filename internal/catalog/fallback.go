package catalog

import "github.com/aliconnects/go-shop-assistant/internal/domain"

// FallbackProducts returns the static product table used when the store API
// is unreachable and nothing is cached. The slice order mirrors the live
// catalog and is the order callers see; a fresh copy is returned on every
// call so callers may not mutate shared state.
func FallbackProducts() []domain.Product {
	out := make([]domain.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}

var fallbackProducts = []domain.Product{
	{
		ID:          1,
		Name:        "HP EliteBook 840 G1",
		Price:       139.00,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/09/laptop.jpeg",
		URL:         "https://store.aliconnects.com/product/hp-elitebook-840-g1/",
		Description: "HP EliteBook 840 G1, the epitome of professional elegance and performance. Crafted with precision and designed for the modern business world, this powerhouse of a laptop is a perfect blend of style and substance.",
		Categories:  []string{"Electronics", "Audio", "laptops", "Hp", "Wireless"},
	},
	{
		ID:          2,
		Name:        "Smart Watch",
		Price:       89.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Smart-Watch-for-Men-Women-Fitness-Tracker-0.jpg",
		URL:         "https://store.aliconnects.com/product/smart-watch-for-men-women-fitness-tracker/",
		Description: "Smart watch with fitness tracking, heart rate monitoring, and IP68 waterproof rating.",
		Categories:  []string{"Electronics", "Wearables", "Watches", "Fitness", "Smart Watch"},
	},
	{
		ID:          3,
		Name:        "Portable Bluetooth Speaker",
		Price:       39.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Bluetooth-Speaker-Portable-Wireless-0.jpg",
		URL:         "https://store.aliconnects.com/product/bluetooth-speaker-portable-wireless/",
		Description: "Portable Bluetooth speaker with 24W stereo sound, IPX7 waterproof, and 24-hour battery life.",
		Categories:  []string{"Electronics", "Audio", "Speakers", "Bluetooth", "Portable"},
	},
	{
		ID:          4,
		Name:        "Men's Graphic T-Shirt",
		Price:       24.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Mens-Graphic-T-Shirts-0.jpg",
		URL:         "https://store.aliconnects.com/product/mens-graphic-t-shirts/",
		Description: "Comfortable cotton t-shirt with graphic design, perfect for casual wear.",
		Categories:  []string{"Clothing", "T-shirts", "Men's Clothing", "Casual Wear", "Tops"},
	},
	{
		ID:          5,
		Name:        "Women's Summer Dress",
		Price:       35.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Womens-Summer-Casual-T-Shirt-Dresses-0.jpg",
		URL:         "https://store.aliconnects.com/product/womens-summer-casual-t-shirt-dresses/",
		Description: "Casual summer dress with pockets, comfortable and stylish for warm weather.",
		Categories:  []string{"Clothing", "Dresses", "Women's Clothing", "Summer Wear"},
	},
	{
		ID:          6,
		Name:        "Laptop Backpack",
		Price:       42.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Laptop-Backpack-Travel-Computer-Bag-0.jpg",
		URL:         "https://store.aliconnects.com/product/laptop-backpack-travel-computer-bag/",
		Description: "Water-resistant laptop backpack with USB charging port, perfect for travel and school.",
		Categories:  []string{"Accessories", "Bags", "Backpacks", "Travel", "Laptop Accessories"},
	},
	{
		ID:          7,
		Name:        "Wireless Phone Charger",
		Price:       29.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Wireless-Charger-Qi-Certified-0.jpg",
		URL:         "https://store.aliconnects.com/product/wireless-charger-qi-certified/",
		Description: "Qi-certified 10W fast wireless charging pad compatible with iPhone, Samsung, and other devices.",
		Categories:  []string{"Electronics", "Phone Accessories", "Chargers", "Wireless"},
	},
	{
		ID:          8,
		Name:        "Kitchen Knife Set",
		Price:       59.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Kitchen-Knife-Set-15-Piece-0.jpg",
		URL:         "https://store.aliconnects.com/product/kitchen-knife-set-15-piece/",
		Description: "15-piece professional kitchen knife set with wooden block, high-quality stainless steel blades.",
		Categories:  []string{"Home", "Kitchen", "Cutlery", "Knife Set", "Cooking"},
	},
	{
		ID:          9,
		Name:        "Men's Casual Button-Down Shirt",
		Price:       32.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Mens-Casual-Button-Down-Shirts-0.jpg",
		URL:         "https://store.aliconnects.com/product/mens-casual-button-down-shirts/",
		Description: "Long sleeve button-down shirt made from comfortable cotton, perfect for casual or semi-formal occasions.",
		Categories:  []string{"Clothing", "Men's Clothing", "Shirts", "Casual Wear", "Button-Down"},
	},
	{
		ID:          10,
		Name:        "Women's Running Shoes",
		Price:       64.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Womens-Running-Shoes-0.jpg",
		URL:         "https://store.aliconnects.com/product/womens-running-shoes/",
		Description: "Lightweight, breathable running shoes with cushioned insoles for comfort during exercise.",
		Categories:  []string{"Footwear", "Women's Shoes", "Athletic", "Running", "Sneakers"},
	},
	{
		ID:          11,
		Name:        "Stainless Steel Water Bottle",
		Price:       19.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Stainless-Steel-Water-Bottle-0.jpg",
		URL:         "https://store.aliconnects.com/product/stainless-steel-water-bottle/",
		Description: "Vacuum insulated stainless steel water bottle that keeps drinks cold for 24 hours or hot for 12 hours.",
		Categories:  []string{"Accessories", "Drinkware", "Sports", "Water Bottles", "Stainless Steel"},
	},
	{
		ID:          12,
		Name:        "Yoga Mat",
		Price:       27.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Yoga-Mat-Non-Slip-0.jpg",
		URL:         "https://store.aliconnects.com/product/yoga-mat-non-slip/",
		Description: "Non-slip yoga mat with carrying strap, perfect for yoga, pilates, and other floor exercises.",
		Categories:  []string{"Fitness", "Yoga", "Exercise Equipment", "Mats"},
	},
	{
		ID:          13,
		Name:        "LED Desk Lamp",
		Price:       25.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/LED-Desk-Lamp-0.jpg",
		URL:         "https://store.aliconnects.com/product/led-desk-lamp/",
		Description: "Adjustable LED desk lamp with USB charging port and multiple brightness levels.",
		Categories:  []string{"Home", "Lighting", "Desk Lamps", "LED", "Office"},
	},
	{
		ID:          14,
		Name:        "Portable Power Bank",
		Price:       34.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Portable-Charger-Power-Bank-0.jpg",
		URL:         "https://store.aliconnects.com/product/portable-charger-power-bank/",
		Description: "20000mAh high-capacity power bank with dual USB ports for charging multiple devices on the go.",
		Categories:  []string{"Electronics", "Chargers", "Power Banks", "Portable", "USB"},
	},
	{
		ID:          15,
		Name:        "Bluetooth Wireless Keyboard",
		Price:       45.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Bluetooth-Keyboard-Wireless-0.jpg",
		URL:         "https://store.aliconnects.com/product/bluetooth-keyboard-wireless/",
		Description: "Rechargeable Bluetooth keyboard compatible with multiple devices including iPad, iPhone, and Android.",
		Categories:  []string{"Electronics", "Computer Accessories", "Keyboards", "Bluetooth", "Wireless"},
	},
	{
		ID:          16,
		Name:        "Men's Slim Fit Jeans",
		Price:       39.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Mens-Slim-Fit-Jeans-0.jpg",
		URL:         "https://store.aliconnects.com/product/mens-slim-fit-jeans/",
		Description: "Comfortable stretch denim jeans with a modern slim fit design.",
		Categories:  []string{"Clothing", "Men's Clothing", "Jeans", "Pants", "Denim"},
	},
	{
		ID:          17,
		Name:        "Women's Crossbody Bag",
		Price:       29.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Womens-Crossbody-Bag-0.jpg",
		URL:         "https://store.aliconnects.com/product/womens-crossbody-bag/",
		Description: "Stylish small crossbody bag with tassel detail, perfect for everyday use.",
		Categories:  []string{"Accessories", "Bags", "Women's Accessories", "Crossbody", "Purses"},
	},
	{
		ID:          18,
		Name:        "Digital Kitchen Scale",
		Price:       15.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Digital-Kitchen-Scale-0.jpg",
		URL:         "https://store.aliconnects.com/product/digital-kitchen-scale/",
		Description: "Precise digital kitchen scale with LCD display for cooking and baking.",
		Categories:  []string{"Home", "Kitchen", "Scales", "Cooking", "Baking"},
	},
	{
		ID:          19,
		Name:        "Unisex Baseball Cap",
		Price:       18.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Baseball-Cap-Classic-Adjustable-0.jpg",
		URL:         "https://store.aliconnects.com/product/baseball-cap-classic-adjustable/",
		Description: "Classic adjustable baseball cap suitable for both men and women.",
		Categories:  []string{"Accessories", "Hats", "Baseball Caps", "Unisex", "Headwear"},
	},
	{
		ID:          20,
		Name:        "Wireless Computer Mouse",
		Price:       22.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Wireless-Mouse-Ergonomic-0.jpg",
		URL:         "https://store.aliconnects.com/product/wireless-mouse-ergonomic/",
		Description: "Ergonomic wireless mouse with 2.4G connectivity and USB receiver.",
		Categories:  []string{"Electronics", "Computer Accessories", "Mouse", "Wireless", "USB"},
	},
	{
		ID:          21,
		Name:        "Wireless Earbuds",
		Price:       49.99,
		Image:       "https://store.aliconnects.com/wp-content/uploads/2023/10/Wireless-Earbuds-Bluetooth-Headphones-0.jpg",
		URL:         "https://store.aliconnects.com/product/wireless-earbuds-bluetooth-headphones/",
		Description: "Wireless Bluetooth earbuds with charging case, IPX7 waterproof, and built-in mic.",
		Categories:  []string{"Electronics", "Audio", "Earbuds", "Bluetooth", "Wireless"},
	},
}
