package ai

import "strings"

// familyTerms maps clinical jargon to plain language. Order matters:
// replacements run top to bottom on the same string, so multi-word phrases
// precede their substrings.
var familyTerms = []struct{ medical, family string }{
	{"acute exacerbation", "sudden worsening"},
	{"CHF", "heart failure"},
	{"T2DM", "type 2 diabetes"},
	{"T1DM", "type 1 diabetes"},
	{"hypertension", "high blood pressure"},
	{"hyperlipidemia", "high cholesterol"},
	{"bilateral", "on both sides"},
	{"unilateral", "on one side"},
	{"alert and oriented x3", "awake and aware"},
	{"oriented times three", "knows who they are, where they are, and what time it is"},
	{"ADLs", "daily activities like eating and bathing"},
	{"VS", "vital signs (heart rate, blood pressure, etc.)"},
	{"BP", "blood pressure"},
	{"HR", "heart rate"},
	{"RR", "breathing rate"},
	{"SpO2", "oxygen level"},
	{"RA", "room air (no oxygen support)"},
	{"IV", "through a vein"},
	{"PO", "by mouth"},
	{"PRN", "as needed"},
	{"BID", "twice a day"},
	{"TID", "three times a day"},
	{"QID", "four times a day"},
	{"mg", "milligrams"},
	{"mcg", "micrograms"},
	{"discharge", "going home from the hospital"},
	{"admission", "coming into the hospital"},
}

// FamilyFriendlyMarker prefixes every translated family update.
const FamilyFriendlyMarker = "👉 "

// FamilyFriendly rewrites medical text into plain language for the family
// portal.
func FamilyFriendly(medicalText string) string {
	if medicalText == "" {
		return "No information available."
	}
	text := medicalText
	for _, t := range familyTerms {
		text = strings.ReplaceAll(text, t.medical, t.family)
	}
	return FamilyFriendlyMarker + text
}

var plainTypes = map[string]string{
	"shift_change": "Care Team Change",
	"transfer":     "Moving to Different Unit",
	"admission":    "Hospital Admission",
	"discharge":    "Going Home",
	"procedure":    "Medical Procedure",
}

var plainPriorities = map[string]string{
	"routine":  "🟢 Routine",
	"urgent":   "🟡 Needs Attention",
	"emergent": "🔴 Urgent",
}

// PlainHandoffType returns the family-facing name of a handoff type,
// falling back to the raw value.
func PlainHandoffType(handoffType string) string {
	if plain, ok := plainTypes[handoffType]; ok {
		return plain
	}
	return handoffType
}

// PlainPriority returns the family-facing priority label with its icon,
// falling back to the raw value.
func PlainPriority(priority string) string {
	if plain, ok := plainPriorities[priority]; ok {
		return plain
	}
	return priority
}

// languageTags label translated output; pre-translated term sets stand in for
// a real translation service.
var languageTags = map[string]string{
	"en": "🇺🇸 English",
	"es": "🇪🇸 Español",
	"zh": "🇨🇳 中文",
	"fr": "🇫🇷 Français",
	"ar": "🇸🇦 العربية",
}

var medicalTranslations = map[string][]struct{ english, translated string }{
	"es": {
		{"patient", "paciente"},
		{"blood pressure", "presión arterial"},
		{"heart rate", "frecuencia cardíaca"},
		{"medication", "medicación"},
		{"alert and oriented", "alerta y orientado"},
		{"vital signs", "signos vitales"},
		{"discharge", "alta"},
		{"admission", "ingreso"},
	},
	"zh": {
		{"patient", "患者"},
		{"diabetes", "糖尿病"},
		{"blood pressure", "血压"},
		{"heart rate", "心率"},
		{"medication", "药物"},
		{"alert and oriented", "警觉和定向"},
		{"vital signs", "生命体征"},
		{"discharge", "出院"},
		{"admission", "入院"},
	},
	"fr": {
		{"patient", "patient"},
		{"diabetes", "diabète"},
		{"blood pressure", "tension artérielle"},
		{"heart rate", "fréquence cardiaque"},
		{"medication", "médicament"},
		{"alert and oriented", "alerte et orienté"},
		{"vital signs", "signes vitaux"},
		{"discharge", "sortie"},
		{"admission", "admission"},
	},
}

// TranslateSBAR substitutes known medical phrases into the target language
// and tags the result. English, empty input and unknown languages pass
// through unchanged.
func TranslateSBAR(text, lang string) string {
	if lang == "en" || text == "" {
		return text
	}
	tag, known := languageTags[lang]
	if !known {
		return text
	}
	for _, t := range medicalTranslations[lang] {
		text = strings.ReplaceAll(text, t.english, t.translated)
	}
	return "[" + tag + "] " + text
}
