package apiclient

// Wire types for the bakery API. Field names follow the JSON contract of
// the server, which the clients treat as the source of truth.

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsRecurring bool    `json:"is_recurring"`
	IsArchived  bool    `json:"is_archived"`
}

type ProductInput struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	IsRecurring *bool   `json:"is_recurring,omitempty"`
}

type ProductPatch struct {
	Name        *string  `json:"name,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	IsRecurring *bool    `json:"is_recurring,omitempty"`
	IsArchived  *bool    `json:"is_archived,omitempty"`
}

// LineItem: one product's counters within a single day's inventory.
type LineItem struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	Category          string  `json:"category"`
	QuantityProduced  int     `json:"quantity_produced"`
	QuantitySold      int     `json:"quantity_sold"`
	QuantityWasted    int     `json:"quantity_wasted"`
	QuantityRemaining int     `json:"quantity_remaining"`
	Price             float64 `json:"price"`
}

type Inventory struct {
	ID           string     `json:"id"`
	Date         string     `json:"date"`
	Products     []LineItem `json:"products"`
	TotalRevenue float64    `json:"total_revenue"`
}

type ProductStat struct {
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	Category      string  `json:"category"`
	TotalProduced int     `json:"total_produced"`
	TotalSold     int     `json:"total_sold"`
	TotalWasted   int     `json:"total_wasted"`
	TotalRevenue  float64 `json:"total_revenue"`
	AvgSoldPerDay float64 `json:"avg_sold_per_day"`
}

type StatsSummary struct {
	TotalSales    float64       `json:"total_sales"`
	TotalWasted   int           `json:"total_wasted"`
	TotalSold     int           `json:"total_sold"`
	TotalProduced int           `json:"total_produced"`
	ProductsStats []ProductStat `json:"products_stats"`
}

type Employee struct {
	ID         string  `json:"id"`
	FullName   string  `json:"full_name"`
	Role       string  `json:"role"`
	BaseSalary float64 `json:"base_salary"`
	IsActive   bool    `json:"is_active"`
}

type EmployeeInput struct {
	FullName   string  `json:"full_name"`
	Role       string  `json:"role,omitempty"`
	BaseSalary float64 `json:"base_salary"`
}

type EmployeePatch struct {
	FullName   *string  `json:"full_name,omitempty"`
	Role       *string  `json:"role,omitempty"`
	BaseSalary *float64 `json:"base_salary,omitempty"`
	IsActive   *bool    `json:"is_active,omitempty"`
}

type PayrollEntry struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Advances   float64 `json:"advances"`
	Paid       float64 `json:"paid"`
	Notes      string  `json:"notes"`
}

type PayrollInput struct {
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	Advances   float64 `json:"advances"`
	Paid       float64 `json:"paid"`
	Notes      string  `json:"notes"`
}

type PayrollPatch struct {
	Advances *float64 `json:"advances,omitempty"`
	Paid     *float64 `json:"paid,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}
