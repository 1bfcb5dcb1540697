package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "nested", "history.db")
}

func TestOpen_CreatesAndMigrates(t *testing.T) {
	path := openTestDB(t)

	database, err := Open(path)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
	require.NoError(t, database.Close())

	// Reopening must not reapply migrations.
	database, err = Open(path)
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, database.QueryRow("SELECT COUNT(*) FROM schema_migrations").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestInsertAndListTrims(t *testing.T) {
	database, err := Open(openTestDB(t))
	require.NoError(t, err)
	defer database.Close()

	created := time.Unix(1700000000, 0)
	first := &Trim{
		SourcePath:   "/videos/a.mp4",
		DestPath:     "/videos/a-clip.mp4",
		StartText:    "1:00",
		EndText:      "1:30",
		StartSeconds: 60,
		Length:       30,
		Encoder:      "ffmpeg",
		CreatedAt:    created,
	}
	id1, err := InsertTrim(database, first)
	require.NoError(t, err)

	id2, err := InsertTrim(database, &Trim{
		SourcePath:   "/videos/b.mp4",
		DestPath:     "/videos/b-clip.mp4",
		StartText:    "5",
		EndText:      "10.5",
		StartSeconds: 5,
		Length:       5.5,
		Encoder:      "/opt/ffmpeg",
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	trims, err := ListTrims(database, 0)
	require.NoError(t, err)
	require.Len(t, trims, 2)
	assert.Equal(t, id2, trims[0].ID)
	assert.Equal(t, "/opt/ffmpeg", trims[0].Encoder)
	assert.False(t, trims[0].CreatedAt.IsZero())

	assert.Equal(t, id1, trims[1].ID)
	assert.Equal(t, "1:00", trims[1].StartText)
	assert.Equal(t, "1:30", trims[1].EndText)
	assert.Equal(t, 30.0, trims[1].Length)
	assert.True(t, created.Equal(trims[1].CreatedAt))

	limited, err := ListTrims(database, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, id2, limited[0].ID)
}

func TestClearTrims(t *testing.T) {
	database, err := Open(openTestDB(t))
	require.NoError(t, err)
	defer database.Close()

	for i := 0; i < 3; i++ {
		_, err := InsertTrim(database, &Trim{SourcePath: "s", DestPath: "d", StartText: "0", EndText: "1", Length: 1, Encoder: "ffmpeg"})
		require.NoError(t, err)
	}

	n, err := ClearTrims(database)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	trims, err := ListTrims(database, 0)
	require.NoError(t, err)
	assert.Empty(t, trims)
}
