package database

import (
	"path/filepath"
	"testing"

	"eclipselink-handoff-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPopulatesDemoData(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var patients, users, handoffs int64
	require.NoError(t, db.Model(&models.Patient{}).Count(&patients).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Handoff{}).Count(&handoffs).Error)

	require.EqualValues(t, 10, patients)
	require.EqualValues(t, 6, users)
	require.EqualValues(t, 20, handoffs)

	var completed int64
	require.NoError(t, db.Model(&models.Handoff{}).
		Where("status = ?", models.StatusCompleted).Count(&completed).Error)
	require.EqualValues(t, 17, completed)
}

func TestSeedIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))
	require.NoError(t, Seed(db))

	var patients, handoffs, entries int64
	require.NoError(t, db.Model(&models.Patient{}).Count(&patients).Error)
	require.NoError(t, db.Model(&models.Handoff{}).Count(&handoffs).Error)
	require.NoError(t, db.Model(&models.AuditLog{}).Count(&entries).Error)

	require.EqualValues(t, 10, patients)
	require.EqualValues(t, 20, handoffs)
	require.EqualValues(t, 17*5, entries)
}

func TestSeedCompletedHandoffInvariants(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var handoffs []models.Handoff
	require.NoError(t, db.Find(&handoffs).Error)

	for _, h := range handoffs {
		if h.Status == models.StatusCompleted {
			require.True(t, h.HasSBAR(), "completed handoff %d must carry a full SBAR", h.ID)
			require.NotNil(t, h.CompletedAt)
			require.NotNil(t, h.QualityScore)
			require.NotNil(t, h.CompletenessScore)
			require.NotNil(t, h.CriticalElementsScore)
			require.GreaterOrEqual(t, *h.CompletedAt, h.CreatedAt,
				"completion must not precede creation")
		} else {
			require.False(t, h.HasSBAR(), "open handoff %d must have no SBAR", h.ID)
			require.Nil(t, h.CompletedAt)
			require.Nil(t, h.QualityScore)
		}
	}
}

func TestSeedDerivesCanonicalAuditTrail(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var handoff models.Handoff
	require.NoError(t, db.Where("status = ?", models.StatusCompleted).First(&handoff).Error)

	var entries []models.AuditLog
	require.NoError(t, db.
		Where("handoff_id = ?", handoff.ID).
		Order("timestamp").
		Find(&entries).Error)

	require.Len(t, entries, 5)
	require.Equal(t, models.ActionCreated, entries[0].Action)
	require.Equal(t, models.ActorSystem, entries[0].User)
	require.Equal(t, handoff.CreatedAt, entries[0].Timestamp)
	require.Equal(t, models.ActionVoiceUploaded, entries[1].Action)
	require.Equal(t, models.ActionTranscribed, entries[2].Action)
	require.Equal(t, models.ActorAIWorker, entries[2].User)
	require.Equal(t, models.ActionSBARGenerated, entries[3].Action)
	require.Equal(t, models.ActorAIWorker, entries[3].User)
	require.Equal(t, models.ActionCompleted, entries[4].Action)
	require.Equal(t, *handoff.CompletedAt, entries[4].Timestamp)
}

func TestSeedUniquePatientIDs(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Seed(db))

	var distinct int64
	require.NoError(t, db.Model(&models.Patient{}).Distinct("patient_id").Count(&distinct).Error)
	require.EqualValues(t, 10, distinct)
}
