package models

// Service is a bookable barbershop service. The catalog is static and
// immutable at runtime.
type Service struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Barber works at the shop. Static catalog, same as services.
type Barber struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var Services = []Service{
	{ID: "haircut", Name: "Haircut", Price: 10},
	{ID: "beard", Name: "Beard Trimming", Price: 5},
}

var Barbers = []Barber{
	{ID: "elias", Name: "Elias"},
	{ID: "george", Name: "George"},
	{ID: "charalambos", Name: "Charalambos"},
}

// GetService looks up a service by ID
func GetService(id string) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// GetBarber looks up a barber by ID
func GetBarber(id string) (Barber, bool) {
	for _, b := range Barbers {
		if b.ID == id {
			return b, true
		}
	}
	return Barber{}, false
}

// TotalPrice sums catalog prices for the given service IDs. Unknown IDs
// contribute nothing.
func TotalPrice(serviceIDs []string) float64 {
	var total float64
	for _, id := range serviceIDs {
		if s, ok := GetService(id); ok {
			total += s.Price
		}
	}
	return total
}
