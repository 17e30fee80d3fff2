package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFamilyFriendlyReplacesJargon(t *testing.T) {
	out := FamilyFriendly("History of CHF and T2DM. BP 130/85, meds given PRN BID.")

	require.True(t, strings.HasPrefix(out, FamilyFriendlyMarker))
	require.Contains(t, out, "heart failure")
	require.Contains(t, out, "type 2 diabetes")
	require.Contains(t, out, "blood pressure")
	require.Contains(t, out, "as needed")
	require.Contains(t, out, "twice a day")
	require.NotContains(t, out, "CHF")
	require.NotContains(t, out, "T2DM")
}

func TestFamilyFriendlyEmptyInput(t *testing.T) {
	require.Equal(t, "No information available.", FamilyFriendly(""))
}

func TestPlainHandoffLabels(t *testing.T) {
	require.Equal(t, "Care Team Change", PlainHandoffType("shift_change"))
	require.Equal(t, "Going Home", PlainHandoffType("discharge"))
	require.Equal(t, "something_else", PlainHandoffType("something_else"))

	require.Equal(t, "🟢 Routine", PlainPriority("routine"))
	require.Equal(t, "🔴 Urgent", PlainPriority("emergent"))
	require.Equal(t, "unknown", PlainPriority("unknown"))
}

func TestTranslateSBAR(t *testing.T) {
	text := "patient with stable vital signs, blood pressure trending down"

	es := TranslateSBAR(text, "es")
	require.True(t, strings.HasPrefix(es, "[🇪🇸 Español] "))
	require.Contains(t, es, "paciente")
	require.Contains(t, es, "signos vitales")
	require.Contains(t, es, "presión arterial")

	zh := TranslateSBAR("heart rate elevated", "zh")
	require.Contains(t, zh, "心率")

	// English and unknown languages pass through unchanged
	require.Equal(t, text, TranslateSBAR(text, "en"))
	require.Equal(t, text, TranslateSBAR(text, "de"))
	require.Equal(t, "", TranslateSBAR("", "es"))
}
