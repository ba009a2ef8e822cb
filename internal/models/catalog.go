package models

type Supplier struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactName  string `json:"contactName,omitempty"`
	PhoneNumber  string `json:"phoneNumber,omitempty"`
	Email        string `json:"email,omitempty"`
	Location     string `json:"location,omitempty"`
	ProductCount int    `json:"productCount"`
}

type Product struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category,omitempty"`
	Price      string `json:"price"`
	SupplierID string `json:"supplierId,omitempty"`
	Stock      int    `json:"stock"`
}

type Notification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	IsRead  bool   `json:"isRead"`
}
