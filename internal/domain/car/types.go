package car

type Category string

const (
	CategoryHatchback Category = "hatchback"
	CategorySedan     Category = "sedan"
	CategorySUV       Category = "suv"
	CategoryMUV       Category = "muv"
	CategoryLuxury    Category = "luxury"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryHatchback, CategorySedan, CategorySUV, CategoryMUV, CategoryLuxury:
		return true
	default:
		return false
	}
}

type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
	FuelHybrid   FuelType = "hybrid"
	FuelCNG      FuelType = "cng"
)

func (f FuelType) IsValid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric, FuelHybrid, FuelCNG:
		return true
	default:
		return false
	}
}

type Transmission string

const (
	TransmissionManual    Transmission = "manual"
	TransmissionAutomatic Transmission = "automatic"
)

func (t Transmission) IsValid() bool {
	return t == TransmissionManual || t == TransmissionAutomatic
}

// Reason is the first-matched cause of unavailability.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonBooked           Reason = "BOOKED"
	ReasonMaintenance      Reason = "MAINTENANCE"
	ReasonManuallyDisabled Reason = "MANUALLY_DISABLED"
)

func (r Reason) Message() string {
	switch r {
	case ReasonBooked:
		return "Already booked"
	case ReasonMaintenance:
		return "Under maintenance"
	case ReasonManuallyDisabled:
		return "Temporarily unavailable"
	default:
		return ""
	}
}
