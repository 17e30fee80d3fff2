package ai

import (
	"fmt"
	"strings"
)

// SBAR is one generated report.
type SBAR struct {
	Situation      string `json:"situation"`
	Background     string `json:"background"`
	Assessment     string `json:"assessment"`
	Recommendation string `json:"recommendation"`
}

// Scores quantify a generated report.
type Scores struct {
	Quality          int `json:"quality"`
	Completeness     int `json:"completeness"`
	CriticalElements int `json:"critical_elements"`
}

// Generator turns a transcript into an SBAR report and scores. The template
// implementation below ships canned content; a speech/LLM pipeline would
// implement the same interface.
type Generator interface {
	GenerateSBAR(patientName, patientID, transcript string) SBAR
	DetectMissingElements(transcript string) []string
	Score(missing []string) Scores
}

// TemplateGenerator is the demo Generator. Output is deterministic given the
// inputs.
type TemplateGenerator struct{}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{}
}

// GenerateSBAR builds the report. When transcript text is supplied the
// situation embeds its first 200 characters; otherwise a fixed sample
// situation is used. The remaining three sections are always fixed.
func (g *TemplateGenerator) GenerateSBAR(patientName, patientID, transcript string) SBAR {
	var situation string
	if transcript != "" {
		excerpt := transcript
		if len(excerpt) > 200 {
			excerpt = excerpt[:200]
		}
		situation = fmt.Sprintf("Patient %s (ID: %s). %s", patientName, patientID, excerpt)
	} else {
		situation = fmt.Sprintf("60-year-old patient %s (ID: %s) with stable vital signs. Alert and oriented x3. Current blood glucose 145 mg/dL.", patientName, patientID)
	}

	return SBAR{
		Situation:      situation,
		Background:     "Past medical history includes type 2 diabetes (10 years), hypertension, and hyperlipidemia. Home medications include Metformin 1000mg BID and Lisinopril 10mg daily. Known allergy to Penicillin (rash). Patient lives at home with spouse, independent with ADLs.",
		Assessment:     "Current vital signs: Temperature 98.6°F, BP 130/85, HR 78, RR 16, SpO2 98% on room air. Blood glucose trending downward with current insulin regimen. No acute distress noted. Patient reports decreased thirst and improved energy levels. Recent labs show HbA1c 8.2%.",
		Recommendation: "Continue current insulin sliding scale. Diabetes education completed - patient verbalizes understanding. Consider discharge in 24 hours if blood glucose remains stable. Follow-up appointment with endocrinology in 2 weeks. Continue home medications upon discharge.",
	}
}

// Element names reported by DetectMissingElements.
const (
	ElementAllergies   = "allergies"
	ElementMedications = "medications"
	ElementVitals      = "vitals"
)

var (
	medicationTerms = []string{"medication", "med ", "drug", "metformin", "insulin", "aspirin"}
	vitalTerms      = []string{"bp", "blood pressure", "hr", "heart rate", "vital"}
)

// DetectMissingElements reports which critical elements the transcript never
// mentions. Matching is case-insensitive substring search.
func (g *TemplateGenerator) DetectMissingElements(transcript string) []string {
	text := strings.ToLower(transcript)

	missing := []string{}
	if !strings.Contains(text, "allerg") {
		missing = append(missing, ElementAllergies)
	}
	if !containsAny(text, medicationTerms) {
		missing = append(missing, ElementMedications)
	}
	if !containsAny(text, vitalTerms) {
		missing = append(missing, ElementVitals)
	}
	return missing
}

// Score maps detected gaps to the two demo score tiers.
func (g *TemplateGenerator) Score(missing []string) Scores {
	if len(missing) == 0 {
		return Scores{Quality: 92, Completeness: 95, CriticalElements: 90}
	}
	return Scores{Quality: 75, Completeness: 70, CriticalElements: 65}
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
