package journal

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/epistleapp/epistle/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *gorm.DB, func()) {
	dbPath := "./test_journal_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.MeditationLog{}, &entities.MissionPlan{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, db, cleanup
}

func TestRepository_AppendAndList_Diary(t *testing.T) {
	repo, db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Append(KindDiary, 1, "meditation-diary-2024-03-01", `{"repentance":"a"}`))

	// Force distinct timestamps so ordering is deterministic.
	db.Model(&entities.MeditationLog{}).Where("content LIKE ?", "%a%").
		Update("created_at", time.Now().Add(-time.Hour))

	require.NoError(t, repo.Append(KindDiary, 1, "meditation-diary-2024-03-01", `{"repentance":"b"}`))

	entries, err := repo.List(KindDiary, 1, "meditation-diary-2024-03-01")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Contains(t, entries[0].Content, "b")
	assert.Contains(t, entries[1].Content, "a")
}

func TestRepository_List_ScopedByUserAndKey(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Append(KindDiary, 1, "key-a", "mine"))
	require.NoError(t, repo.Append(KindDiary, 2, "key-a", "theirs"))
	require.NoError(t, repo.Append(KindDiary, 1, "key-b", "other key"))

	entries, err := repo.List(KindDiary, 1, "key-a")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "mine", entries[0].Content)
}

func TestRepository_PlanAndDiaryAreSeparateTables(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Append(KindDiary, 1, "key", "diary entry"))
	require.NoError(t, repo.Append(KindPlan, 1, "key", "plan entry"))

	diary, err := repo.List(KindDiary, 1, "key")
	require.NoError(t, err)
	plans, err := repo.List(KindPlan, 1, "key")
	require.NoError(t, err)

	require.Len(t, diary, 1)
	require.Len(t, plans, 1)
	assert.Equal(t, "diary entry", diary[0].Content)
	assert.Equal(t, "plan entry", plans[0].Content)
}

func TestRepository_UnknownKind(t *testing.T) {
	repo, _, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.List(Kind("bogus"), 1, "key")
	assert.Error(t, err)
	assert.Error(t, repo.Append(Kind("bogus"), 1, "key", "x"))
}
