package entity

// Product is a process-lifetime catalog record. Ids are dense positive
// integers assigned in insertion order; products are never deleted.
type Product struct {
	Id       int
	Name     string
	Price    float64
	Category string
	Image    string
	Rating   float64
}
