package archive

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/epistleapp/epistle/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	dbPath := "./test_archive_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.ArchivedReadingRow{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func sampleEntry(day int) entities.ArchivedReading {
	return entities.ArchivedReading{
		Day:              day,
		DateSaved:        "2024-03-27T09:00:00Z",
		ReadingReference: "로마서 10-11장",
		Passage:          "passage text",
		MeditationGuide:  "guide text",
		Context:          "context text",
		Intention:        "intention text",
	}
}

func TestRepository_GetAll_Empty(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	archived, err := repo.GetAll(1)
	require.NoError(t, err)
	assert.Empty(t, archived)
}

func TestRepository_UpsertAndGetAll(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(1, 27, sampleEntry(27)))
	require.NoError(t, repo.Upsert(1, 28, sampleEntry(28)))

	archived, err := repo.GetAll(1)
	require.NoError(t, err)
	require.Len(t, archived, 2)
	assert.Equal(t, 27, archived[27].Day)
	assert.Equal(t, "로마서 10-11장", archived[27].ReadingReference)
}

func TestRepository_Upsert_SameDayOverwrites(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	first := sampleEntry(5)
	first.Passage = "first"
	second := sampleEntry(5)
	second.Passage = "second"

	require.NoError(t, repo.Upsert(1, 5, first))
	require.NoError(t, repo.Upsert(1, 5, second))

	archived, err := repo.GetAll(1)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, "second", archived[5].Passage)
}

func TestRepository_Upsert_DifferentUsersSameDay(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, repo.Upsert(1, 5, sampleEntry(5)))
	require.NoError(t, repo.Upsert(2, 5, sampleEntry(5)))

	mine, err := repo.GetAll(1)
	require.NoError(t, err)
	theirs, err := repo.GetAll(2)
	require.NoError(t, err)

	assert.Len(t, mine, 1)
	assert.Len(t, theirs, 1)
}
