package seed

import "github.com/johnwards/caretrain/internal/domain"

// seededAt is the fixed creation timestamp of every seed row.
const seededAt = "2024-01-01T00:00:00.000Z"

// DemoOrganization is the organization demo users belong to.
var DemoOrganization = domain.Organization{
	Name: "Riverside Care Services",
	Code: "DEMO-CARE",
}

type scenarioDef struct {
	scenario domain.Scenario
	carePlan domain.CarePlan
}

// scenarioDefs are inserted in order; each care plan follows its scenario.
var scenarioDefs = []scenarioDef{
	{
		scenario: domain.Scenario{
			Title:         "Morning personal care for a client living with dementia",
			Description:   "Support Margaret with washing and dressing while she is anxious and disoriented. Practise person-centred communication, consent and dignity.",
			Difficulty:    domain.DifficultyIntermediate,
			Module:        "dementia-care",
			EstimatedTime: 25,
		},
		carePlan: domain.CarePlan{
			ClientName:         "Margaret Ellis",
			Age:                82,
			Diagnosis:          "Alzheimer's disease (moderate), osteoarthritis in both knees",
			CareNeeds:          "Assistance with washing and dressing each morning. Prefers a bath to a shower. Needs prompting to eat at mealtimes and support with continence.",
			CommunicationNeeds: "Hard of hearing in the left ear; approach from the right and speak slowly. Responds well to being called Maggie. Becomes distressed if rushed.",
			RiskAssessment:     "High falls risk when mobilising without her frame. May refuse care when anxious; withdraw and try again later. Skin integrity checks daily.",
			Allergies:          "Penicillin",
			Medication:         "Donepezil 10mg at night, paracetamol 1g four times daily as required, calcium and vitamin D once daily",
		},
	},
	{
		scenario: domain.Scenario{
			Title:         "Medication round with a newly admitted client",
			Description:   "Complete a lunchtime medication round for a client admitted yesterday. Check the MAR chart, identify the client and record administration correctly.",
			Difficulty:    domain.DifficultyBeginner,
			Module:        "medication-management",
			EstimatedTime: 20,
		},
		carePlan: domain.CarePlan{
			ClientName:         "David Okafor",
			Age:                67,
			Diagnosis:          "Type 2 diabetes, hypertension, recovering from a left-sided stroke",
			CareNeeds:          "Support with transfers using a stand aid. Blood glucose monitoring before meals. Diabetic diet with soft textures.",
			CommunicationNeeds: "Mild expressive aphasia; give him time to answer and use closed questions. Uses a picture board when tired.",
			RiskAssessment:     "Risk of hypoglycaemia; know the signs and the hypo box location. Swallowing assessment pending, tablets may need to be crushed once approved by the GP.",
			Allergies:          "None known",
			Medication:         "Metformin 500mg twice daily with food, ramipril 5mg each morning, clopidogrel 75mg once daily, atorvastatin 40mg at night",
		},
	},
}

type userDef struct {
	email     string
	firstName string
	lastName  string
	role      domain.Role
}

var demoUsers = []userDef{
	{email: "manager@demo.caretrain.dev", firstName: "Morgan", lastName: "Reid", role: domain.RoleManager},
	{email: "staff@demo.caretrain.dev", firstName: "Sam", lastName: "Patel", role: domain.RoleStaff},
	{email: "admin@demo.caretrain.dev", firstName: "Alex", lastName: "Kim", role: domain.RoleAdmin},
}

// DemoEmails returns the addresses of the demo accounts whose passwords are
// reset on every initialization.
func DemoEmails() []string {
	emails := make([]string, len(demoUsers))
	for i, u := range demoUsers {
		emails[i] = u.email
	}
	return emails
}
