package database

import (
	"fmt"
	"log"
	"time"

	"eclipselink-handoff-backend/internal/models"

	"gorm.io/gorm"
)

const day = 24 * time.Hour

func strptr(s string) *string { return &s }
func intptr(i int) *int       { return &i }

// Seed populates the store with demonstration data on first run.
//
// A row-count probe on the patients table is the sole idempotence guard: if
// any patient row exists the whole seeder is a no-op. There is no unique
// constraint protecting handoff rows, so running the inserts without the
// guard would duplicate everything.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Patient{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to probe patients table: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now()
	ago := func(d time.Duration) string { return models.Timestamp(now.Add(-d)) }

	patients := []models.Patient{
		{PatientID: "P001234", Name: "John Smith", DateOfBirth: "1963-05-15", Gender: "Male", BloodType: "O+",
			Allergies: "Penicillin (rash)", Conditions: "Type 2 Diabetes, Hypertension, Hyperlipidemia",
			Medications:      "Metformin 1000mg BID, Lisinopril 10mg daily, Atorvastatin 40mg daily",
			EmergencyContact: "Mary Smith (Wife): 555-0101", Insurance: "Blue Cross PPO", CreatedAt: ago(180 * day)},
		{PatientID: "P001235", Name: "Jane Doe", DateOfBirth: "1978-09-22", Gender: "Female", BloodType: "A+",
			Allergies: "Sulfa drugs (anaphylaxis)", Conditions: "Asthma, GERD",
			Medications:      "Albuterol inhaler PRN, Omeprazole 20mg daily",
			EmergencyContact: "Robert Doe (Husband): 555-0102", Insurance: "Aetna HMO", CreatedAt: ago(150 * day)},
		{PatientID: "P001236", Name: "Robert Johnson", DateOfBirth: "1955-12-03", Gender: "Male", BloodType: "B-",
			Allergies: "None known", Conditions: "CHF, COPD, Chronic kidney disease Stage 3",
			Medications:      "Furosemide 40mg daily, Carvedilol 12.5mg BID, Tiotropium inhaler daily",
			EmergencyContact: "Alice Johnson (Daughter): 555-0103", Insurance: "Medicare", CreatedAt: ago(200 * day)},
		{PatientID: "P001237", Name: "Maria Garcia", DateOfBirth: "1990-03-18", Gender: "Female", BloodType: "AB+",
			Allergies: "Latex", Conditions: "Type 1 Diabetes, Hypothyroidism",
			Medications:      "Insulin pump, Levothyroxine 100mcg daily",
			EmergencyContact: "Carlos Garcia (Father): 555-0104", Insurance: "United Healthcare", CreatedAt: ago(90 * day)},
		{PatientID: "P001238", Name: "William Chen", DateOfBirth: "1945-07-30", Gender: "Male", BloodType: "A-",
			Allergies: "Aspirin (GI bleeding)", Conditions: "Atrial fibrillation, Stroke history, Dementia",
			Medications:      "Apixaban 5mg BID, Metoprolol 50mg BID, Donepezil 10mg daily",
			EmergencyContact: "Linda Chen (Wife): 555-0105", Insurance: "Medicare + Medicaid", CreatedAt: ago(250 * day)},
		{PatientID: "P001239", Name: "Sarah Williams", DateOfBirth: "1982-11-12", Gender: "Female", BloodType: "O-",
			Allergies: "Iodine", Conditions: "Post-surgical (appendectomy), Anxiety",
			Medications:      "Citalopram 20mg daily, PRN pain meds",
			EmergencyContact: "Michael Williams (Husband): 555-0106", Insurance: "Cigna PPO", CreatedAt: ago(5 * day)},
		{PatientID: "P001240", Name: "David Brown", DateOfBirth: "1968-04-25", Gender: "Male", BloodType: "B+",
			Allergies: "Shellfish", Conditions: "CAD s/p stent, Hyperlipidemia",
			Medications:      "Aspirin 81mg daily, Clopidogrel 75mg daily, Atorvastatin 80mg daily",
			EmergencyContact: "Jennifer Brown (Wife): 555-0107", Insurance: "Blue Shield HMO", CreatedAt: ago(120 * day)},
		{PatientID: "P001241", Name: "Lisa Anderson", DateOfBirth: "1995-08-08", Gender: "Female", BloodType: "A+",
			Allergies: "None known", Conditions: "Sickle cell disease, Asthma",
			Medications:      "Hydroxyurea 500mg daily, Folic acid 1mg daily, Albuterol PRN",
			EmergencyContact: "Patricia Anderson (Mother): 555-0108", Insurance: "Medicaid", CreatedAt: ago(60 * day)},
		{PatientID: "P001242", Name: "James Martinez", DateOfBirth: "1952-02-14", Gender: "Male", BloodType: "O+",
			Allergies: "Morphine", Conditions: "Prostate cancer, Hypertension",
			Medications:      "Enzalutamide 160mg daily, Amlodipine 10mg daily",
			EmergencyContact: "Rosa Martinez (Wife): 555-0109", Insurance: "VA Healthcare", CreatedAt: ago(300 * day)},
		{PatientID: "P001243", Name: "Emily Taylor", DateOfBirth: "2005-06-20", Gender: "Female", BloodType: "AB-",
			Allergies: "Tree nuts (anaphylaxis)", Conditions: "Type 1 Diabetes, Celiac disease",
			Medications:      "Insulin pump, Vitamin D 2000IU daily",
			EmergencyContact: "Karen Taylor (Mother): 555-0110", Insurance: "Blue Cross PPO", CreatedAt: ago(30 * day)},
	}
	if err := db.Create(&patients).Error; err != nil {
		return fmt.Errorf("failed to seed patients: %w", err)
	}

	users := []models.User{
		{Name: "Dr. Sarah Johnson", Email: "sarah.johnson@hospital.com", Role: "Physician", Specialty: "Emergency Medicine", Department: "Emergency Department", Phone: "555-1001", CreatedAt: ago(0)},
		{Name: "RN Michael Chen", Email: "michael.chen@hospital.com", Role: "Registered Nurse", Specialty: "Critical Care", Department: "ICU", Phone: "555-1002", CreatedAt: ago(0)},
		{Name: "Dr. David Kim", Email: "david.kim@hospital.com", Role: "Physician", Specialty: "Internal Medicine", Department: "General Medicine", Phone: "555-1003", CreatedAt: ago(0)},
		{Name: "RN Jennifer Lopez", Email: "jennifer.lopez@hospital.com", Role: "Registered Nurse", Specialty: "Medical-Surgical", Department: "Floor 3", Phone: "555-1004", CreatedAt: ago(0)},
		{Name: "Dr. Emily Roberts", Email: "emily.roberts@hospital.com", Role: "Physician", Specialty: "Cardiology", Department: "Cardiac Unit", Phone: "555-1005", CreatedAt: ago(0)},
		{Name: "RN Robert Taylor", Email: "robert.taylor@hospital.com", Role: "Registered Nurse", Specialty: "Emergency", Department: "Emergency Department", Phone: "555-1006", CreatedAt: ago(0)},
	}
	if err := db.Create(&users).Error; err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	completed := func(name, pid, htype, priority, createdAt, completedAt string,
		from, to, specialty, s, b, a, r string, duration int, transcription string,
		quality, completeness, critical int) models.Handoff {
		return models.Handoff{
			PatientName: name, PatientID: pid, HandoffType: htype, Priority: priority,
			Status: models.StatusCompleted, CreatedAt: createdAt, CompletedAt: strptr(completedAt),
			FromStaff: from, ToStaff: to, Specialty: specialty,
			SBARSituation: strptr(s), SBARBackground: strptr(b),
			SBARAssessment: strptr(a), SBARRecommendation: strptr(r),
			RecordingDuration: intptr(duration), Transcription: strptr(transcription),
			QualityScore: intptr(quality), CompletenessScore: intptr(completeness), CriticalElementsScore: intptr(critical),
		}
	}

	handoffs := []models.Handoff{
		completed("John Smith", "P001234", models.TypeShiftChange, models.PriorityRoutine,
			ago(2*day+8*time.Hour), ago(2*day+7*time.Hour+45*time.Minute),
			"Dr. Sarah Johnson", "RN Michael Chen", "Endocrinology",
			"60-year-old male with type 2 diabetes. Current glucose 145 mg/dL. Alert and oriented x3. Patient reports improved energy levels and decreased thirst.",
			"History of T2DM (10 years), hypertension, hyperlipidemia. Home meds: Metformin 1000mg BID, Lisinopril 10mg daily, Atorvastatin 40mg daily. Known PCN allergy (rash). Lives at home with spouse, independent ADLs.",
			"Vital signs stable: BP 130/85, HR 78, RR 16, SpO2 98% RA, Temp 98.6°F. Blood glucose trending down with insulin regimen. Recent HbA1c 8.2%. No acute distress. Last BG check at 1400: 140 mg/dL.",
			"Continue insulin sliding scale. Discharge education completed - patient verbalizes understanding. Discharge planning for tomorrow if glucose remains stable. Follow-up with endocrinology in 2 weeks. Continue home meds upon discharge.",
			185, "Patient handoff for John Smith...", 92, 95, 90),

		completed("Jane Doe", "P001235", models.TypeTransfer, models.PriorityUrgent,
			ago(1*day+14*time.Hour), ago(1*day+13*time.Hour+30*time.Minute),
			"RN Jennifer Lopez", "Dr. David Kim", "Pulmonology",
			"45-year-old female with acute asthma exacerbation. Currently on continuous albuterol nebulizer. Oxygen saturation 94% on 2L NC. Breathing labored but improved from admission.",
			"Known asthmatic with GERD. Recent URI symptoms x 3 days. Sulfa allergy (anaphylaxis). Home meds: Albuterol PRN, Omeprazole 20mg daily. No recent hospitalizations. Works as teacher, high stress.",
			"VS: BP 135/88, HR 102, RR 24, SpO2 94% on 2L, Temp 99.1°F. Mild wheezing bilaterally, decreased air movement lower lobes. Peak flow 60% of predicted. Last albuterol 30 min ago. CXR shows hyperinflation, no infiltrates.",
			"Transfer to ICU for closer monitoring. Continue continuous nebulizers. Start IV methylprednisolone 125mg q6h. Magnesium sulfate 2g IV if no improvement. Consider BiPAP if respiratory distress worsens. Pulmonology consult placed.",
			142, "Emergency transfer for respiratory distress...", 88, 92, 85),

		completed("Robert Johnson", "P001236", models.TypeAdmission, models.PriorityUrgent,
			ago(3*day+20*time.Hour), ago(3*day+19*time.Hour+15*time.Minute),
			"Dr. Emily Roberts", "RN Michael Chen", "Cardiology",
			"68-year-old male with CHF exacerbation. Presenting with increasing shortness of breath and lower extremity edema over past week. Weight gain of 8 pounds. Currently dyspneic at rest.",
			"History of CHF (EF 30%), COPD, CKD Stage 3. Home meds: Furosemide 40mg daily, Carvedilol 12.5mg BID, Tiotropium daily. Non-compliant with low-sodium diet per patient admission. No IV drug use. Lives alone, daughter checks on him.",
			"VS: BP 150/95, HR 95, RR 28, SpO2 88% on RA, 93% on 4L NC, Temp 98.2°F. JVD present, crackles bilateral lung bases, 3+ pitting edema bilateral lower extremities. BNP 1250, Creatinine 2.1 (baseline 1.8). CXR shows pulmonary edema.",
			"Admit to telemetry. IV Furosemide 80mg bolus then 40mg IV q12h. Strict I&O, daily weights. Fluid restriction 1.5L/day. Cardiac diet. May need BiPAP if work of breathing increases. Cardiology consult in AM. Nephrology aware given CKD.",
			210, "CHF exacerbation admission...", 94, 96, 92),

		completed("Maria Garcia", "P001237", models.TypeProcedure, models.PriorityRoutine,
			ago(5*time.Hour), ago(4*time.Hour+30*time.Minute),
			"RN Robert Taylor", "Dr. Sarah Johnson", "Endocrinology",
			"34-year-old female with T1DM scheduled for insulin pump site change. Patient brought her own supplies. Currently in procedure room, NPO x 2 hours, last BG 158 at 0800.",
			"T1DM since age 12, on insulin pump therapy for 8 years. Hypothyroidism on Levothyroxine. Latex allergy - using non-latex gloves. A1C last month 7.1%, well-controlled. Works as accountant, very compliant with care.",
			"VS stable: BP 118/72, HR 70, RR 14, SpO2 99% RA, Temp 98.4°F. BG 158 (target 80-180). Patient alert, anxious about procedure. Old pump site shows no signs of infection. New site selected on left abdomen, prepped and ready.",
			"Proceed with pump site change using patient's supplies. Monitor BG closely post-procedure. Patient to bolus for correction if BG >180. Resume normal diet after procedure. Patient education reinforced. F/U in diabetes clinic in 3 months.",
			95, "Pre-procedure handoff for pump change...", 90, 93, 88),

		completed("William Chen", "P001238", models.TypeShiftChange, models.PriorityUrgent,
			ago(1*day+2*time.Hour), ago(1*day+1*time.Hour+45*time.Minute),
			"RN Jennifer Lopez", "RN Robert Taylor", "Neurology",
			"78-year-old male with history of stroke and dementia. New onset confusion and agitation this shift. Pulled out IV x 2. Family at bedside concerned about change in mental status.",
			"Stroke 2 years ago, vascular dementia, AFib on anticoagulation. Aspirin allergy (GI bleeding). Lives in memory care facility. Baseline: oriented to person only, requires assistance with ADLs. Meds: Apixaban, Metoprolol, Donepezil.",
			"VS: BP 165/92, HR 88 irregular, RR 18, SpO2 96% RA, Temp 100.2°F. Increased agitation, more confused than baseline. UA sent - pending. No focal neuro deficits noted. Fall risk - bed alarm on, 1:1 sitter in place.",
			"Monitor for UTI (common cause of delirium in elderly). Hold Apixaban pending family discussion about goals of care. Avoid restraints - use redirection and reorientation. Consider Tylenol for low-grade fever. Neurology aware. Update family if condition changes.",
			167, "Change in mental status...", 87, 90, 84),

		completed("Sarah Williams", "P001239", models.TypeDischarge, models.PriorityRoutine,
			ago(10*time.Hour), ago(9*time.Hour+30*time.Minute),
			"Dr. David Kim", "RN Jennifer Lopez", "General Surgery",
			"42-year-old female POD #3 from laparoscopic appendectomy. Doing well, tolerating regular diet, pain controlled with oral meds. Ambulating without assistance. Ready for discharge home.",
			"Post-op from uncomplicated appendectomy. History of anxiety on Citalopram. Iodine allergy. Married, works as graphic designer from home. Strong support system. No surgical history prior to this admission.",
			"VS stable: BP 122/78, HR 72, RR 14, SpO2 99% RA, Temp 98.6°F. Incisions clean, dry, intact - no erythema or drainage. Abdomen soft, non-tender. Bowel sounds present. Pain 2/10 with oral meds. Ambulating well.",
			"Discharge home with husband present. Scripts: Ibuprofen 600mg q6h PRN, Percocet 5/325 1-2 tabs q4h PRN breakthrough pain. Wound care instructions provided and understood. F/U with surgeon in 1 week. Return precautions reviewed.",
			132, "Discharge planning complete...", 95, 97, 93),

		completed("David Brown", "P001240", models.TypeTransfer, models.PriorityEmergent,
			ago(1*day+6*time.Hour), ago(1*day+5*time.Hour+40*time.Minute),
			"Dr. Sarah Johnson", "Dr. Emily Roberts", "Cardiology",
			"55-year-old male with chest pain x 1 hour. Troponin elevated at 0.8. EKG shows ST depression in lateral leads. Currently on heparin drip, pain improved with nitroglycerin. STEMI alert called.",
			"CAD s/p stent to LAD 2 years ago. On dual antiplatelet therapy. Hyperlipidemia. Shellfish allergy. Current meds: Aspirin 81mg, Clopidogrel 75mg, Atorvastatin 80mg. Non-smoker. Works in construction.",
			"VS: BP 155/90, HR 95, RR 18, SpO2 97% on 2L, Temp 98.6°F. Chest pain 8/10 on arrival, now 3/10 after NTG. Troponin 0.8 (0.05), trending. EKG shows ST depression V4-V6. Cardiology at bedside. Cath lab activated.",
			"Emergent transfer to cath lab for cardiac catheterization. Continue heparin, aspirin, clopidogrel held. Pre-cath checklist complete. Consent signed. Wife notified and en route. NPO. Anticipate possible stent placement.",
			156, "STEMI activation...", 96, 98, 95),

		// Active/pending handoffs exercise the all-null SBAR state
		{PatientName: "Lisa Anderson", PatientID: "P001241", HandoffType: models.TypeAdmission,
			Priority: models.PriorityUrgent, Status: models.StatusActive, CreatedAt: ago(15 * time.Minute),
			FromStaff: "Dr. Sarah Johnson", ToStaff: "RN Michael Chen", Specialty: "Hematology"},
		{PatientName: "James Martinez", PatientID: "P001242", HandoffType: models.TypeShiftChange,
			Priority: models.PriorityRoutine, Status: models.StatusActive, CreatedAt: ago(30 * time.Minute),
			FromStaff: "RN Jennifer Lopez", ToStaff: "RN Robert Taylor", Specialty: "Oncology"},
		{PatientName: "Emily Taylor", PatientID: "P001243", HandoffType: models.TypeProcedure,
			Priority: models.PriorityRoutine, Status: models.StatusPending, CreatedAt: ago(5 * time.Minute),
			FromStaff: "RN Robert Taylor", ToStaff: "Dr. David Kim", Specialty: "Endocrinology"},

		// Additional completed handoffs spread over the past 30 days for analytics
		completed("John Smith", "P001234", models.TypeShiftChange, models.PriorityRoutine,
			ago(5*day+12*time.Hour), ago(5*day+11*time.Hour+45*time.Minute),
			"RN Michael Chen", "Dr. Sarah Johnson", "Endocrinology",
			"Follow-up on glucose control...", "Continued management...", "Improving trend...", "Maintain current regimen...",
			178, "Follow-up handoff...", 90, 92, 88),
		completed("Jane Doe", "P001235", models.TypeShiftChange, models.PriorityRoutine,
			ago(7*day+8*time.Hour), ago(7*day+7*time.Hour+30*time.Minute),
			"RN Robert Taylor", "RN Jennifer Lopez", "Pulmonology",
			"Patient stable post-ICU transfer...", "Recovering from asthma exacerbation...", "Respiratory status improved...", "Prepare for discharge in 48h...",
			145, "Stable handoff...", 88, 90, 86),
		completed("Robert Johnson", "P001236", models.TypeShiftChange, models.PriorityRoutine,
			ago(10*day+20*time.Hour), ago(10*day+19*time.Hour+30*time.Minute),
			"Dr. Emily Roberts", "Dr. David Kim", "Cardiology",
			"CHF patient showing improvement...", "Volume overload resolving...", "Diuresis effective...", "Transition to PO diuretics...",
			190, "CHF follow-up...", 91, 93, 89),
		completed("David Brown", "P001240", models.TypeDischarge, models.PriorityRoutine,
			ago(12*day+14*time.Hour), ago(12*day+13*time.Hour+30*time.Minute),
			"Dr. Emily Roberts", "RN Jennifer Lopez", "Cardiology",
			"Post-cath discharge, stent placed successfully...", "New stent to RCA...", "Patient stable, chest pain resolved...", "Dual antiplatelet therapy, cardiac rehab referral...",
			125, "Post-procedure discharge...", 94, 96, 92),
		completed("Sarah Williams", "P001239", models.TypeAdmission, models.PriorityEmergent,
			ago(15*day+3*time.Hour), ago(15*day+2*time.Hour+30*time.Minute),
			"Dr. Sarah Johnson", "Dr. David Kim", "General Surgery",
			"Acute appendicitis, emergent surgery needed...", "Previously healthy, sudden onset RLQ pain...", "CT confirms appendicitis, no perforation...", "Emergent appendectomy, surgery consult at bedside...",
			98, "Emergency admission...", 89, 91, 87),
		completed("Maria Garcia", "P001237", models.TypeShiftChange, models.PriorityRoutine,
			ago(18*day+16*time.Hour), ago(18*day+15*time.Hour+45*time.Minute),
			"RN Jennifer Lopez", "RN Michael Chen", "Endocrinology",
			"T1DM patient, pump functioning well...", "Excellent glucose control...", "No concerns, patient independent...", "Continue current pump settings...",
			110, "Routine handoff...", 92, 94, 90),
		completed("William Chen", "P001238", models.TypeAdmission, models.PriorityUrgent,
			ago(20*day+22*time.Hour), ago(20*day+21*time.Hour+30*time.Minute),
			"Dr. Sarah Johnson", "Dr. David Kim", "Neurology",
			"Altered mental status from memory care facility...", "Baseline dementia, acute change...", "Likely UTI, awaiting culture...", "Antibiotics, IV fluids, monitor closely...",
			175, "Confusion admission...", 86, 88, 83),
		completed("Lisa Anderson", "P001241", models.TypeTransfer, models.PriorityEmergent,
			ago(22*day+4*time.Hour), ago(22*day+3*time.Hour+45*time.Minute),
			"Dr. Sarah Johnson", "Dr. David Kim", "Hematology",
			"Sickle cell crisis, severe pain...", "Known SCD, multiple previous crises...", "Pain 10/10, requiring IV opioids...", "Admit for pain management, hydration, heme consult...",
			145, "Sickle cell crisis...", 90, 92, 88),
		completed("James Martinez", "P001242", models.TypeProcedure, models.PriorityRoutine,
			ago(25*day+10*time.Hour), ago(25*day+9*time.Hour+30*time.Minute),
			"Dr. David Kim", "Dr. Emily Roberts", "Oncology",
			"Pre-op for prostate biopsy...", "Prostate cancer surveillance...", "PSA rising, concerning for recurrence...", "Proceed with biopsy, oncology following...",
			130, "Pre-procedure...", 91, 93, 89),
		completed("Emily Taylor", "P001243", models.TypeAdmission, models.PriorityUrgent,
			ago(28*day+18*time.Hour), ago(28*day+17*time.Hour+30*time.Minute),
			"Dr. Sarah Johnson", "RN Michael Chen", "Endocrinology",
			"DKA, blood sugar >500...", "T1DM, pump malfunction suspected...", "Ketones present, pH 7.25...", "DKA protocol, insulin drip, close monitoring...",
			165, "DKA admission...", 88, 90, 85),
	}
	if err := db.Create(&handoffs).Error; err != nil {
		return fmt.Errorf("failed to seed handoffs: %w", err)
	}

	// Derive the canonical five-step audit trail for every completed handoff:
	// created -> voice_uploaded (+2m) -> transcribed (+3m) -> sbar_generated (+4m) -> completed
	var entries []models.AuditLog
	for _, h := range handoffs {
		if h.Status != models.StatusCompleted {
			continue
		}
		createdAt, err := time.Parse(models.TimeLayout, h.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to parse seeded created_at %q: %w", h.CreatedAt, err)
		}
		completedAt := h.CreatedAt
		if h.CompletedAt != nil {
			completedAt = *h.CompletedAt
		}
		entries = append(entries,
			models.AuditLog{HandoffID: h.ID, Action: models.ActionCreated, User: models.ActorSystem,
				Timestamp: h.CreatedAt, Details: fmt.Sprintf("Handoff created for %s", h.PatientName)},
			models.AuditLog{HandoffID: h.ID, Action: models.ActionVoiceUploaded, User: "User",
				Timestamp: models.Timestamp(createdAt.Add(2 * time.Minute)), Details: "Voice recording uploaded"},
			models.AuditLog{HandoffID: h.ID, Action: models.ActionTranscribed, User: models.ActorAIWorker,
				Timestamp: models.Timestamp(createdAt.Add(3 * time.Minute)), Details: "Audio transcribed"},
			models.AuditLog{HandoffID: h.ID, Action: models.ActionSBARGenerated, User: models.ActorAIWorker,
				Timestamp: models.Timestamp(createdAt.Add(4 * time.Minute)), Details: "SBAR report generated"},
			models.AuditLog{HandoffID: h.ID, Action: models.ActionCompleted, User: "User",
				Timestamp: completedAt, Details: "Handoff completed"},
		)
	}
	if err := db.Create(&entries).Error; err != nil {
		return fmt.Errorf("failed to seed audit logs: %w", err)
	}

	log.Printf("Seeded demo data: %d patients, %d users, %d handoffs, %d audit entries",
		len(patients), len(users), len(handoffs), len(entries))
	return nil
}
