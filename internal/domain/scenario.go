package domain

// Difficulty grades a training scenario.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// Scenario is a single training exercise.
type Scenario struct {
	ID            string     `json:"id" db:"id"`
	Title         string     `json:"title" db:"title"`
	Description   string     `json:"description" db:"description"`
	Difficulty    Difficulty `json:"difficulty" db:"difficulty"`
	Module        string     `json:"module" db:"module"`
	EstimatedTime int        `json:"estimatedTime" db:"estimated_time"` // minutes
	CreatedAt     string     `json:"createdAt" db:"created_at"`
	CarePlan      *CarePlan  `json:"carePlan,omitempty" db:"-"`
}

// CarePlan is the simulated client narrative attached to a scenario. The
// clinical fields are free text with no structure enforced.
type CarePlan struct {
	ID                 string `json:"id" db:"id"`
	ScenarioID         string `json:"scenarioId" db:"scenario_id"`
	ClientName         string `json:"clientName" db:"client_name"`
	Age                int    `json:"age" db:"age"`
	Diagnosis          string `json:"diagnosis" db:"diagnosis"`
	CareNeeds          string `json:"careNeeds" db:"care_needs"`
	CommunicationNeeds string `json:"communicationNeeds" db:"communication_needs"`
	RiskAssessment     string `json:"riskAssessment" db:"risk_assessment"`
	Allergies          string `json:"allergies" db:"allergies"`
	Medication         string `json:"medication" db:"medication"`
}

// ScenarioFilter narrows a scenario listing. Zero values match everything.
type ScenarioFilter struct {
	Difficulty Difficulty
	Module     string
}
