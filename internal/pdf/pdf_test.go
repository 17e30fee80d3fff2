package pdf

import (
	"bytes"
	"testing"

	"eclipselink-handoff-backend/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleHandoff() *models.Handoff {
	situation := "Patient stable, blood glucose 145 mg/dL."
	background := "Type 2 diabetes, hypertension."
	assessment := "Vital signs within normal limits."
	recommendation := "Continue current regimen."
	quality, completeness, critical := 92, 95, 90

	return &models.Handoff{
		ID:                    1,
		PatientName:           "John Smith",
		PatientID:             "P001234",
		HandoffType:           models.TypeShiftChange,
		Priority:              models.PriorityRoutine,
		Status:                models.StatusCompleted,
		CreatedAt:             "2026-08-01 08:00:00",
		FromStaff:             "Dr. Sarah Johnson",
		ToStaff:               "RN Michael Chen",
		Specialty:             "Endocrinology",
		SBARSituation:         &situation,
		SBARBackground:        &background,
		SBARAssessment:        &assessment,
		SBARRecommendation:    &recommendation,
		QualityScore:          &quality,
		CompletenessScore:     &completeness,
		CriticalElementsScore: &critical,
	}
}

func TestGenerateSBARPDF(t *testing.T) {
	data, err := GenerateSBARPDF(sampleHandoff())
	require.NoError(t, err)
	require.NotEmpty(t, data)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF")))

	// output is uncompressed, so the text streams are inspectable
	for _, want := range []string{
		"John Smith", "P001234",
		"SITUATION", "BACKGROUND", "ASSESSMENT", "RECOMMENDATION",
		"Quality Metrics",
	} {
		require.Contains(t, string(data), want)
	}
}

func TestGenerateSBARPDFWithoutReport(t *testing.T) {
	h := sampleHandoff()
	h.SBARSituation = nil
	h.SBARBackground = nil
	h.SBARAssessment = nil
	h.SBARRecommendation = nil
	h.QualityScore = nil

	data, err := GenerateSBARPDF(h)
	require.NoError(t, err)
	require.Contains(t, string(data), "No situation information available.")
	require.NotContains(t, string(data), "Quality Metrics")
}

func TestGenerateBatchPDF(t *testing.T) {
	first := sampleHandoff()
	second := sampleHandoff()
	second.PatientName = "Jane Doe"
	second.PatientID = "P001235"

	data, err := GenerateBatchPDF([]models.Handoff{*first, *second})
	require.NoError(t, err)
	require.Contains(t, string(data), "Batch Handoff Report - 2 Handoffs")
	require.Contains(t, string(data), "Jane Doe")
}

func TestTitleCase(t *testing.T) {
	require.Equal(t, "Shift Change", titleCase("shift_change"))
	require.Equal(t, "Routine", titleCase("routine"))
}
