package domain

const (
	RoleCitizen   = "CITIZEN"
	RoleEmployee  = "EMPLOYEE"
	RoleVolunteer = "VOLUNTEER"
)

const (
	CategoryFlooding      = "Flooding"
	CategoryTsunami       = "Tsunami"
	CategoryHighWaves     = "High Waves"
	CategoryCoastalDamage = "Coastal Damage"
	CategoryOther         = "Other"
)

// Categories in the order overview counts are reported.
var Categories = []string{
	CategoryFlooding,
	CategoryTsunami,
	CategoryHighWaves,
	CategoryCoastalDamage,
	CategoryOther,
}

const (
	StatusVerified   = "verified"
	StatusUnverified = "unverified"
)

// PredictedManual marks a human-submitted report whose category was not
// assigned by a classifier.
const PredictedManual = "manual"

// PincodePlaceholder is stored when a submission carries no pincode.
const PincodePlaceholder = "000000"

// RecentPostLimit caps the social post feed read.
const RecentPostLimit = 50
