package entities

// Catalog records backing the customer/product/employee screens. These are
// plain documents; unlike orders they need no derivation beyond decoding.

type Customer struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone,omitempty"`
	Address    string `json:"address,omitempty"`
	SocialLink string `json:"socialLink,omitempty"`
	Note       string `json:"note,omitempty"`
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category,omitempty"`
	Price    float64 `json:"price,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Active   bool    `json:"active,omitempty"`
}

type Employee struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Role  string `json:"role,omitempty"`
	Shift string `json:"shift,omitempty"`
}
