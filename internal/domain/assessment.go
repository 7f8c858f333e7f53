package domain

type AssessmentType string

const (
	AssessmentDiabetes     AssessmentType = "diabetes"
	AssessmentHeartDisease AssessmentType = "heart_disease"
	AssessmentThyroid      AssessmentType = "thyroid"
)

func (t AssessmentType) Valid() bool {
	_, ok := catalog[t]
	return ok
}

func (t AssessmentType) Label() string {
	switch t {
	case AssessmentDiabetes:
		return "Diabetes"
	case AssessmentHeartDisease:
		return "Heart Disease"
	case AssessmentThyroid:
		return "Thyroid"
	default:
		return string(t)
	}
}

// Question is one entry of the static questionnaire catalog. Answers
// are symptom intensities on a 0-100 scale.
type Question struct {
	Key         string
	Label       string
	Description string
	Unit        string
}

// AnswerMin and AnswerMax bound every questionnaire answer. Values
// outside the range are clamped by the workflow.
const (
	AnswerMin = 0
	AnswerMax = 100
)

var assessmentTypes = []AssessmentType{
	AssessmentDiabetes,
	AssessmentHeartDisease,
	AssessmentThyroid,
}

var catalog = map[AssessmentType][]Question{
	AssessmentDiabetes: {
		{Key: "frequent_urination", Label: "Frequent urination", Description: "How often you need to urinate compared to usual", Unit: "intensity"},
		{Key: "excessive_thirst", Label: "Excessive thirst", Description: "Persistent thirst even after drinking", Unit: "intensity"},
		{Key: "sudden_weight_loss", Label: "Sudden weight loss", Description: "Unexplained weight loss in recent months", Unit: "intensity"},
		{Key: "fatigue", Label: "Fatigue", Description: "Tiredness not relieved by rest", Unit: "intensity"},
		{Key: "blurred_vision", Label: "Blurred vision", Description: "Episodes of unclear or doubled sight", Unit: "intensity"},
		{Key: "slow_healing", Label: "Slow healing", Description: "Cuts and bruises that take long to heal", Unit: "intensity"},
	},
	AssessmentHeartDisease: {
		{Key: "chest_pain", Label: "Chest pain", Description: "Pressure, tightness or pain in the chest", Unit: "intensity"},
		{Key: "shortness_of_breath", Label: "Shortness of breath", Description: "Breathlessness during light activity or at rest", Unit: "intensity"},
		{Key: "palpitations", Label: "Palpitations", Description: "Irregular, pounding or racing heartbeat", Unit: "intensity"},
		{Key: "dizziness", Label: "Dizziness", Description: "Lightheadedness or near-fainting episodes", Unit: "intensity"},
		{Key: "leg_swelling", Label: "Leg swelling", Description: "Swelling in ankles, feet or legs", Unit: "intensity"},
	},
	AssessmentThyroid: {
		{Key: "weight_change", Label: "Weight change", Description: "Unexplained weight gain or loss", Unit: "intensity"},
		{Key: "neck_swelling", Label: "Neck swelling", Description: "Visible swelling at the base of the neck", Unit: "intensity"},
		{Key: "hair_loss", Label: "Hair loss", Description: "Thinning hair or hair falling out", Unit: "intensity"},
		{Key: "mood_swings", Label: "Mood swings", Description: "Unusual irritability, anxiety or low mood", Unit: "intensity"},
		{Key: "temperature_sensitivity", Label: "Temperature sensitivity", Description: "Feeling unusually cold or hot", Unit: "intensity"},
	},
}

// AssessmentTypes returns the fixed ordered set of questionnaire types.
func AssessmentTypes() []AssessmentType {
	out := make([]AssessmentType, len(assessmentTypes))
	copy(out, assessmentTypes)
	return out
}

// Questions returns the ordered question list for a type, or nil when
// the type is not in the catalog.
func Questions(t AssessmentType) []Question {
	questions, ok := catalog[t]
	if !ok {
		return nil
	}

	out := make([]Question, len(questions))
	copy(out, questions)
	return out
}

// Phase is the lifecycle position of a single assessment run. There is
// no terminal failed phase: a failed submission returns to PhaseForm
// with the entered answers intact.
type Phase string

const (
	PhaseForm       Phase = "form"
	PhaseSubmitting Phase = "submitting"
	PhaseResult     Phase = "result"
)
