package domain

import "time"

type TemperatureUnit string

const (
	UnitCelsius    TemperatureUnit = "celsius"
	UnitFahrenheit TemperatureUnit = "fahrenheit"
)

func (u TemperatureUnit) Symbol() string {
	if u == UnitFahrenheit {
		return "°F"
	}
	return "°C"
}

// VitalsSubmission carries one set of measurements to the backend. Values are
// already numeric; parsing raw user input happens at the command boundary and
// a submission is never constructed from unparseable fields.
type VitalsSubmission struct {
	Age            float64
	SystolicBP     float64
	DiastolicBP    float64
	BloodSugar     float64
	BodyTemp       float64
	BodyTempUnit   TemperatureUnit
	HeartRate      float64
	PatientHistory string
	AccountType    AccountType
}

type SignupRequest struct {
	Username    string
	Email       string
	AccountType AccountType
	FullName    string
	Password    string
}

// VitalsRecord is one historical submission as the backend returns it,
// with the assessment flattened onto the row.
type VitalsRecord struct {
	ID             int64
	CreatedAt      time.Time
	Age            float64
	SystolicBP     float64
	DiastolicBP    float64
	BloodSugar     float64
	BodyTemp       float64
	BodyTempUnit   TemperatureUnit
	HeartRate      float64
	PatientHistory string
	RiskLabel      string
	Probability    float64
}
