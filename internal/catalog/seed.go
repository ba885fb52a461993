package catalog

// Provider supplies the read-only product and user collections. The
// application root owns one and hands it to screens; nothing in the core
// writes through it.
type Provider struct {
	products []Product
	users    []User
}

// NewProvider builds a provider over the given collections.
func NewProvider(products []Product, users []User) *Provider {
	return &Provider{products: products, users: users}
}

// NewStaticProvider builds a provider over the seeded mock catalog.
func NewStaticProvider() *Provider {
	return NewProvider(SeedProducts(), SeedUsers())
}

func (p *Provider) Products() []Product { return p.products }
func (p *Provider) Users() []User       { return p.users }

// SeedUsers returns the static user directory. User "1" is the demo
// account adopted by login.
func SeedUsers() []User {
	return []User{
		{ID: "1", Name: "Alex Rivera", Email: "alex@example.com", Phone: "+1 415-555-0191", Avatar: "avatars/alex.jpg", Verified: true},
		{ID: "2", Name: "Sarah Johnson", Email: "sarah@example.com", Phone: "+1 628-555-0137", Avatar: "avatars/sarah.jpg", Verified: true},
		{ID: "3", Name: "Mike Chen", Email: "mike@example.com", Phone: "+1 510-555-0164", Avatar: "avatars/mike.jpg", Verified: false},
		{ID: "4", Name: "Priya Sharma", Email: "priya@example.com", Phone: "+1 408-555-0142", Avatar: "avatars/priya.jpg", Verified: true},
	}
}

// SeedProducts returns the static catalog, newest first.
func SeedProducts() []Product {
	return []Product{
		{
			ID: "1", Title: "iPhone 14 Pro Max 256GB Deep Purple", Price: 899,
			Category: CategoryPhones, Condition: ConditionLikeNew,
			Description: "Bought last year, barely used. Battery health 98%. Comes with original box, cable and an unused case.",
			Images:      []string{"products/iphone-14-pro-1.jpg", "products/iphone-14-pro-2.jpg", "products/iphone-14-pro-3.jpg"},
			Location:    "San Francisco, CA", Distance: "2.5 km",
			SellerID: "2", PostedTime: "2 hours ago", Plan: PlanPremium,
			Brand: "Apple", Model: "iPhone 14 Pro Max",
			Specifications: map[string]string{"Storage": "256GB", "Color": "Deep Purple", "Battery Health": "98%"},
		},
		{
			ID: "2", Title: "Samsung Galaxy S23 Ultra 512GB", Price: 750,
			Category: CategoryPhones, Condition: ConditionUsed,
			Description: "Daily driver for a year, minor scuffs on the frame, screen flawless. Unlocked.",
			Images:      []string{"products/galaxy-s23-1.jpg", "products/galaxy-s23-2.jpg"},
			Location:    "Oakland, CA", Distance: "8.1 km",
			SellerID: "3", PostedTime: "5 hours ago", Plan: PlanFree,
			Brand: "Samsung", Model: "Galaxy S23 Ultra",
			Specifications: map[string]string{"Storage": "512GB", "Color": "Phantom Black"},
		},
		{
			ID: "3", Title: "MacBook Air M2 13\" 16GB/512GB", Price: 1050,
			Category: CategoryLaptops, Condition: ConditionLikeNew,
			Description: "Midnight, 14 cycles on the battery. Selling because work issued me a machine.",
			Images:      []string{"products/macbook-air-m2-1.jpg", "products/macbook-air-m2-2.jpg"},
			Location:    "San Francisco, CA", Distance: "3.2 km",
			SellerID: "2", PostedTime: "1 day ago", Plan: PlanFeatured,
			Brand: "Apple", Model: "MacBook Air M2",
			Specifications: map[string]string{"RAM": "16GB", "Storage": "512GB SSD", "Display": "13.6\" Liquid Retina"},
		},
		{
			ID: "4", Title: "Dell XPS 15 9520 i7 RTX 3050", Price: 1200,
			Category: CategoryLaptops, Condition: ConditionUsed,
			Description: "Solid workstation, new thermal paste this spring. Small dent on the lid corner.",
			Images:      []string{"products/dell-xps-15-1.jpg"},
			Location:    "Berkeley, CA", Distance: "12.4 km",
			SellerID: "4", PostedTime: "1 day ago", Plan: PlanFree,
			Brand: "Dell", Model: "XPS 15 9520",
			Specifications: map[string]string{"CPU": "i7-12700H", "RAM": "32GB", "GPU": "RTX 3050"},
		},
		{
			ID: "5", Title: "ThinkPad X1 Carbon Gen 10", Price: 680,
			Category: CategoryLaptops, Condition: ConditionUsed,
			Description: "Corporate off-lease, fresh Linux install. Keyboard like new.",
			Images:      []string{"products/thinkpad-x1-1.jpg", "products/thinkpad-x1-2.jpg"},
			Location:    "San Jose, CA", Distance: "22.0 km",
			SellerID: "3", PostedTime: "2 days ago", Plan: PlanFree,
			Brand: "Lenovo", Model: "X1 Carbon Gen 10",
		},
		{
			ID: "6", Title: "Sony A7 III Body + 28-70mm Kit", Price: 1100,
			Category: CategoryCameras, Condition: ConditionLikeNew,
			Description: "Shutter count under 9k. Includes two batteries, charger and strap.",
			Images:      []string{"products/sony-a7iii-1.jpg", "products/sony-a7iii-2.jpg", "products/sony-a7iii-3.jpg"},
			Location:    "San Francisco, CA", Distance: "4.7 km",
			SellerID: "4", PostedTime: "3 days ago", Plan: PlanPremium,
			Brand: "Sony", Model: "A7 III",
			Specifications: map[string]string{"Sensor": "24MP Full Frame", "Shutter Count": "~8,900"},
		},
		{
			ID: "7", Title: "LG C2 55\" OLED TV", Price: 850,
			Category: CategoryTV, Condition: ConditionLikeNew,
			Description: "Wall mounted since new, zero dead pixels. Original remote and box included.",
			Images:      []string{"products/lg-c2-1.jpg"},
			Location:    "Daly City, CA", Distance: "9.8 km",
			SellerID: "2", PostedTime: "4 days ago", Plan: PlanFeatured,
			Brand: "LG", Model: "OLED55C2",
		},
		{
			ID: "8", Title: "Bose QuietComfort 45 Headphones", Price: 180,
			Category: CategoryAudio, Condition: ConditionUsed,
			Description: "Ear pads replaced last month. Comes with carry case and cable.",
			Images:      []string{"products/bose-qc45-1.jpg"},
			Location:    "Oakland, CA", Distance: "7.3 km",
			SellerID: "3", PostedTime: "5 days ago", Plan: PlanFree,
			Brand: "Bose", Model: "QuietComfort 45",
		},
		{
			ID: "9", Title: "iPad Pro 11\" M2 128GB WiFi", Price: 620,
			Category: CategoryTablets, Condition: ConditionNew,
			Description: "Sealed in box, unwanted upgrade gift. Receipt available.",
			Images:      []string{"products/ipad-pro-1.jpg", "products/ipad-pro-2.jpg"},
			Location:    "San Francisco, CA", Distance: "1.9 km",
			SellerID: "4", PostedTime: "6 days ago", Plan: PlanFree,
			Brand: "Apple", Model: "iPad Pro 11",
		},
		{
			ID: "10", Title: "Samsung 28 cu ft French Door Fridge", Price: 950,
			Category: CategoryFridge, Condition: ConditionUsed,
			Description: "Three years old, moving out of state. Buyer arranges pickup.",
			Images:      []string{"products/samsung-fridge-1.jpg"},
			Location:    "Fremont, CA", Distance: "31.5 km",
			SellerID: "2", PostedTime: "1 week ago", Plan: PlanFree,
			Brand: "Samsung",
		},
	}
}

// UploadPlaceholderImage is the image reference returned by the stubbed
// uploader; there is no real upload pipeline behind the wizard.
const UploadPlaceholderImage = "products/upload-placeholder.jpg"
