package domain

// Mechanic is a shop technician. EmployeeNo is globally unique; Grade
// is a 1-10 rank. Deleting a mechanic cascades to their orders.
type Mechanic struct {
	ID              int64  `json:"id"`
	EmployeeNo      string `json:"employee_no"`
	FullName        string `json:"full_name"`
	ExperienceYears int    `json:"experience_years"`
	Grade           int    `json:"grade"`
}
