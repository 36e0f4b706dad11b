package domain

// Car is a customer vehicle. Number is the registration plate and is
// globally unique. Deleting a car cascades to its orders.
type Car struct {
	ID        int64  `json:"id"`
	Number    string `json:"number"`
	Brand     string `json:"brand"`
	Year      int    `json:"year"`
	OwnerName string `json:"owner_name"`
}
