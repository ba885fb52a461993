package catalog

// Condition describes how worn a product is.
type Condition string

const (
	ConditionNew     Condition = "New"
	ConditionLikeNew Condition = "Like New"
	ConditionUsed    Condition = "Used"
)

// Conditions returns every condition in display order.
func Conditions() []Condition {
	return []Condition{ConditionNew, ConditionLikeNew, ConditionUsed}
}

// Plan is a listing visibility tier. Premium outranks featured outranks
// free for placement; plans never participate in filter predicates.
type Plan string

const (
	PlanFree     Plan = "free"
	PlanFeatured Plan = "featured"
	PlanPremium  Plan = "premium"
)

// Category identifiers are the canonical lowercase ids; display labels
// live in CategoryLabel.
const (
	CategoryPhones  = "phones"
	CategoryLaptops = "laptops"
	CategoryTV      = "tv"
	CategoryFridge  = "fridge"
	CategoryAC      = "ac"
	CategoryCameras = "cameras"
	CategoryAudio   = "audio"
	CategoryTablets = "tablets"
)

// Categories returns every category id in browse order.
func Categories() []string {
	return []string{
		CategoryPhones, CategoryLaptops, CategoryTV, CategoryFridge,
		CategoryAC, CategoryCameras, CategoryAudio, CategoryTablets,
	}
}

// CategoryLabel maps a category id to its display label. Unknown ids are
// returned unchanged so stale data still renders.
func CategoryLabel(id string) string {
	switch id {
	case CategoryPhones:
		return "Phones"
	case CategoryLaptops:
		return "Laptops"
	case CategoryTV:
		return "TVs"
	case CategoryFridge:
		return "Fridge"
	case CategoryAC:
		return "AC"
	case CategoryCameras:
		return "Cameras"
	case CategoryAudio:
		return "Audio"
	case CategoryTablets:
		return "Tablets"
	}
	return id
}

// Product is a single listing. Displayable products always carry at
// least one image.
type Product struct {
	ID             string
	Title          string
	Price          float64
	Category       string
	Condition      Condition
	Description    string
	Images         []string
	Location       string
	Distance       string // optional display string, e.g. "2.5 km"
	SellerID       string
	PostedTime     string // display string, e.g. "2 hours ago"
	Plan           Plan
	Brand          string // optional
	Model          string // optional
	Specifications map[string]string
}

// User is a marketplace account. The record itself is never destroyed;
// logout only clears the session reference.
type User struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Avatar   string
	Verified bool
}

// ByID returns the product with the given id, or nil. A nil result is a
// renderable not-found state, not an error.
func ByID(products []Product, id string) *Product {
	for i := range products {
		if products[i].ID == id {
			return &products[i]
		}
	}
	return nil
}

// UserByID returns the user with the given id, or nil.
func UserByID(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}

// ByPlan returns products on the given plan, catalog order preserved.
func ByPlan(products []Product, plan Plan) []Product {
	var out []Product
	for _, p := range products {
		if p.Plan == plan {
			out = append(out, p)
		}
	}
	return out
}

// BySeller returns products listed by the given seller, catalog order
// preserved.
func BySeller(products []Product, sellerID string) []Product {
	var out []Product
	for _, p := range products {
		if p.SellerID == sellerID {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to n products in the same category as p, excluding
// p itself.
func Related(products []Product, p Product, n int) []Product {
	var out []Product
	for _, q := range products {
		if len(out) == n {
			break
		}
		if q.Category == p.Category && q.ID != p.ID {
			out = append(out, q)
		}
	}
	return out
}
