package domain

// Category is the fixed set of inventory item categories.
type Category string

const (
	CategoryElectronics Category = "Electronics"
	CategoryFurniture   Category = "Furniture"
	CategoryClothing    Category = "Clothing"
	CategoryFood        Category = "Food"
	CategoryBooks       Category = "Books"
	CategoryToys        Category = "Toys"
	CategorySports      Category = "Sports"
	CategoryOther       Category = "Other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryClothing, CategoryFood,
		CategoryBooks, CategoryToys, CategorySports, CategoryOther:
		return true
	}
	return false
}

// Categories lists every valid category, in display order.
func Categories() []Category {
	return []Category{
		CategoryElectronics, CategoryFurniture, CategoryClothing, CategoryFood,
		CategoryBooks, CategoryToys, CategorySports, CategoryOther,
	}
}

// StockStatus is the derived three-state classification of an item's quantity
// relative to its low-stock threshold. It is never persisted.
type StockStatus string

const (
	StockStatusIn  StockStatus = "IN_STOCK"
	StockStatusLow StockStatus = "LOW_STOCK"
	StockStatusOut StockStatus = "OUT_OF_STOCK"
)

func (s StockStatus) String() string { return string(s) }

// Role is the user's access role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}
