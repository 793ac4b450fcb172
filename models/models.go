// Package models defines data structures used throughout the application
package models

import "time"

// Soil types accepted by the advisory backend
const (
	SoilLoam  = "loam"
	SoilClay  = "clay"
	SoilSandy = "sandy"
)

// DefaultSoilType mirrors the portal form's pre-selected soil option
const DefaultSoilType = SoilLoam

// FarmerProfile represents identifying data returned after authentication.
// It is replaced wholesale on each login and treated as opaque beyond the
// saved location.
type FarmerProfile struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Location string `json:"location,omitempty"`
}

// LoginRequest represents farmer login credentials
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

// RegisterRequest represents data required to create a farmer account
type RegisterRequest struct {
	Name     string `json:"name" form:"name" binding:"required"`
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Location string `json:"location,omitempty" form:"location"`
}

// AuthResponse represents the token and profile returned by the auth backend
type AuthResponse struct {
	Token string `json:"token"`
	FarmerProfile
}

// AdvisoryRequest is the payload sent to the advisory backend. Location and
// SowingMonth are omitted entirely when unset so the backend applies its own
// defaulting (saved location, current month).
type AdvisoryRequest struct {
	SoilType    string `json:"soilType"`
	Location    string `json:"location,omitempty"`
	SowingMonth int    `json:"sowingMonth,omitempty"`
}

// CropMeta holds optional structured hints attached to a crop score
type CropMeta struct {
	Seasons          []string `json:"seasons,omitempty"`
	WaterRequirement string   `json:"waterRequirement,omitempty"`
	Sunlight         string   `json:"sunlight,omitempty"`
	EstimatedYield   string   `json:"estimatedYield,omitempty"`
}

// CropScore is one ranked crop recommendation. Order within a result is
// assigned by the backend and preserved verbatim.
type CropScore struct {
	Name       string    `json:"name"`
	TotalScore float64   `json:"totalScore"`
	Breakdown  []string  `json:"breakdown"`
	Meta       *CropMeta `json:"meta,omitempty"`
}

// Advisory is the backend-computed recommendation set
type Advisory struct {
	Summary            string      `json:"summary"`
	AvgTemp            float64     `json:"avgTemp"`
	AvgHumidity        float64     `json:"avgHumidity"`
	TotalRain          float64     `json:"totalRain"`
	TopRecommendations []CropScore `json:"topRecommendations"`
	AlternateOptions   []CropScore `json:"alternateOptions,omitempty"`
}

// AdvisoryResult echoes the effective request fields plus the advisory
type AdvisoryResult struct {
	Location    string   `json:"location"`
	SoilType    string   `json:"soilType"`
	SowingMonth int      `json:"sowingMonth"`
	Advisory    Advisory `json:"advisory"`
}

// HistoryEntry is a persisted past advisory, read-only from the portal side
type HistoryEntry struct {
	ID          string    `json:"_id"`
	Location    string    `json:"location"`
	SoilType    string    `json:"soilType"`
	SowingMonth int       `json:"sowingMonth"`
	Advisory    Advisory  `json:"advisory"`
	CreatedAt   time.Time `json:"createdAt"`
}

// EcoAdviceRequest carries soil-test chemistry and the planned inputs for the
// environment-friendly advice service. Numeric fields are validated before
// the request leaves the portal.
type EcoAdviceRequest struct {
	CropName      string  `json:"cropName" binding:"required"`
	Fertilizer    string  `json:"fertilizer"`
	Pesticide     string  `json:"pesticide"`
	Nitrogen      float64 `json:"nitrogen" form:"nitrogen"`
	Phosphorus    float64 `json:"phosphorus" form:"phosphorus"`
	Potassium     float64 `json:"potassium" form:"potassium"`
	PH            float64 `json:"ph" form:"ph"`
	OrganicCarbon float64 `json:"organic_carbon" form:"organic_carbon"`
	Language      string  `json:"language"`
}

// EcoAdvice is the eco-friendly suggestion set returned by the advice service
type EcoAdvice struct {
	EnvironmentFriendlyFertilizer string `json:"environment_friendly_fertilizer"`
	FertilizerReason              string `json:"fertilizer_reason"`
	EnvironmentFriendlyPesticide  string `json:"environment_friendly_pesticide"`
	PesticideReason               string `json:"pesticide_reason"`
	SoilHealthAdvice              string `json:"soil_health_advice"`
}

// LeafDiagnosis is the detection result for an uploaded leaf photo
type LeafDiagnosis struct {
	DiseaseName          string `json:"disease_name"`
	Severity             string `json:"severity"`
	Cause                string `json:"cause"`
	RecommendedTreatment string `json:"recommended_treatment"`
	EcoFriendlySolution  string `json:"eco_friendly_solution"`
}

// AlertSubscriptionRequest represents a weather alert sign-up
type AlertSubscriptionRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
	City  string `json:"city" form:"city"`
}

// ChatRequest is one farmer message for the chatbot relay
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatReply is the chatbot's answer
type ChatReply struct {
	Reply string `json:"reply,omitempty"`
	Error string `json:"error,omitempty"`
}

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}
