package domain

// Gender enumerates dog genders with a single stored encoding.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// ValidGender reports whether g is one of the known values.
func ValidGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

// Dog belongs to exactly one owner. There is no delete operation for dogs.
type Dog struct {
	ID      string
	OwnerID string
	Name    string
	Breed   string
	Age     int
	Length  float64
	Gender  Gender
	Comment string
}
