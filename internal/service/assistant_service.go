package service

import (
	"fmt"
	"math/rand"
	"strings"

	"eclipselink-handoff-backend/internal/repository"
)

// AssistantService answers free-text questions with keyword pattern matching
// over the live data. A conversational model could replace Reply without
// touching the handlers.
type AssistantService struct {
	patientRepo *repository.PatientRepository
	handoffRepo *repository.HandoffRepository
}

func NewAssistantService(patientRepo *repository.PatientRepository, handoffRepo *repository.HandoffRepository) *AssistantService {
	return &AssistantService{
		patientRepo: patientRepo,
		handoffRepo: handoffRepo,
	}
}

// Reply matches the question against the known patterns in order and builds
// the answer from the database.
func (s *AssistantService) Reply(question string) (string, error) {
	q := strings.ToLower(question)

	switch {
	case strings.Contains(q, "medication") || strings.Contains(q, "med"):
		return s.medicationReply()
	case strings.Contains(q, "allerg"):
		return s.allergyReply()
	case strings.Contains(q, "recent") && strings.Contains(q, "handoff"):
		return s.recentHandoffsReply()
	case strings.Contains(q, "stat") || strings.Contains(q, "today"):
		return s.statsReply()
	case strings.Contains(q, "sbar"):
		return sbarGuide, nil
	case strings.Contains(q, "create") && strings.Contains(q, "handoff"):
		return createHandoffGuide, nil
	case strings.Contains(q, "urgent") || strings.Contains(q, "emergency"):
		return s.urgentReply()
	default:
		return fallbackReply(), nil
	}
}

func (s *AssistantService) medicationReply() (string, error) {
	patients, err := s.patientRepo.First(3)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Here are the medications for our patients:\n\n")
	for _, p := range patients {
		fmt.Fprintf(&b, "**%s:**\n%s\n\n", p.Name, p.Medications)
	}
	b.WriteString("Would you like more details about a specific patient?")
	return b.String(), nil
}

func (s *AssistantService) allergyReply() (string, error) {
	patients, err := s.patientRepo.WithAllergies(5)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("⚠️ Here are patients with documented allergies:\n\n")
	for _, p := range patients {
		fmt.Fprintf(&b, "**%s:** %s\n\n", p.Name, p.Allergies)
	}
	b.WriteString("Always check allergies before administering medications!")
	return b.String(), nil
}

func (s *AssistantService) recentHandoffsReply() (string, error) {
	handoffs, err := s.handoffRepo.Recent(5)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("📋 Here are the most recent handoffs:\n\n")
	for _, h := range handoffs {
		fmt.Fprintf(&b, "• **%s** - %s (by %s)\n", h.PatientName, titleCase(h.HandoffType), h.FromStaff)
	}
	return b.String(), nil
}

func (s *AssistantService) statsReply() (string, error) {
	completed, err := s.handoffRepo.CountByStatus("completed")
	if err != nil {
		return "", err
	}
	active, err := s.handoffRepo.CountByStatus("active")
	if err != nil {
		return "", err
	}
	avgQuality, err := s.handoffRepo.AverageQuality()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(`📊 **Today's Statistics:**

- ✅ Completed Handoffs: **%d**
- ⏳ Active Handoffs: **%d**
- 📈 Average Quality Score: **%.1f%%**

Looking good! Quality is above target (90%%).`, completed, active, avgQuality), nil
}

func (s *AssistantService) urgentReply() (string, error) {
	urgent, err := s.handoffRepo.Urgent(5)
	if err != nil {
		return "", err
	}
	if len(urgent) == 0 {
		return "✅ No urgent or emergency handoffs at this time.", nil
	}

	var b strings.Builder
	b.WriteString("🔴 **Urgent/Emergency Handoffs:**\n\n")
	for _, h := range urgent {
		fmt.Fprintf(&b, "• %s: **%s** - %s\n", strings.ToUpper(h.Priority), h.PatientName, titleCase(h.HandoffType))
	}
	return b.String(), nil
}

const sbarGuide = `📋 **SBAR Format Guide:**

**S - Situation:**
- What is happening right now?
- Patient's current condition
- Chief complaint or reason for handoff

**B - Background:**
- Medical history
- Current medications and allergies
- Recent treatments or procedures

**A - Assessment:**
- Your clinical evaluation
- Vital signs and trends
- Lab results and diagnostic findings

**R - Recommendation:**
- What should be done next?
- Plan of care
- Follow-up needed

💡 **Pro Tip:** EclipseLink AI automatically generates SBAR from your voice recording!`

const createHandoffGuide = `🎤 **How to Create a Handoff:**

1. Click "➕ New Handoff" in the sidebar
2. Fill in patient information
3. Either:
   - 🎤 Record your handoff using voice (2 min)
   - 📝 Type your handoff details
4. Click "Generate SBAR"
5. AI processes and creates structured report
6. Review and edit if needed
7. Complete handoff

⚡ **Saves 90% of time** compared to manual documentation!`

var fallbackSuggestions = []string{
	"Try asking: 'What medications is John Smith on?'",
	"Try asking: 'Show me recent handoffs'",
	"Try asking: 'What are today's statistics?'",
	"Try asking: 'Does any patient have penicillin allergy?'",
	"Try asking: 'How do I create a handoff?'",
}

func fallbackReply() string {
	return fmt.Sprintf(`I'm not sure I understand that question. Let me help you with some suggestions:

%s

You can also ask about:
- 👤 Patient information (medications, allergies, conditions)
- 📋 Handoffs (recent, urgent, by department)
- 📊 Statistics and analytics
- ❓ Clinical guidance and protocols

What would you like to know?`, fallbackSuggestions[rand.Intn(len(fallbackSuggestions))])
}

// titleCase turns an enum value like "shift_change" into "Shift Change".
func titleCase(v string) string {
	words := strings.Fields(strings.ReplaceAll(v, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
