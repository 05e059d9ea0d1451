package database

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type recordedQuery struct {
	operation string
	table     string
	failed    bool
}

type fakeRecorder struct {
	mu      sync.Mutex
	queries []recordedQuery
	stats   []interface{}
}

func (r *fakeRecorder) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.queries = append(r.queries, recordedQuery{operation: operation, table: table, failed: err != nil})
}

func (r *fakeRecorder) UpdateDBStats(stats interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stats = append(r.stats, stats)
}

type callbackTestRow struct {
	ID   uint `gorm:"primaryKey"`
	Name string
}

func setupCallbackDB(t *testing.T) (*gorm.DB, *fakeRecorder) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&callbackTestRow{}))

	recorder := &fakeRecorder{}
	RegisterMetricsCallbacks(db, recorder)
	return db, recorder
}

func (r *fakeRecorder) find(operation string) *recordedQuery {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.queries {
		if r.queries[i].operation == operation {
			return &r.queries[i]
		}
	}
	return nil
}

func TestRegisterMetricsCallbacks_RecordsAllOperations(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	row := callbackTestRow{Name: "a"}
	require.NoError(t, db.Create(&row).Error)
	require.NoError(t, db.Model(&row).Update("name", "b").Error)

	var found callbackTestRow
	require.NoError(t, db.First(&found, row.ID).Error)
	require.NoError(t, db.Delete(&row).Error)

	for _, operation := range []string{"insert", "update", "select", "delete"} {
		q := recorder.find(operation)
		require.NotNil(t, q, "expected a recorded %s", operation)
		assert.Equal(t, "callback_test_rows", q.table)
		assert.False(t, q.failed)
	}
}

func TestRegisterMetricsCallbacks_RecordsFailedQuery(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	var found callbackTestRow
	err := db.First(&found, 9999).Error
	require.Error(t, err)

	q := recorder.find("select")
	require.NotNil(t, q)
	assert.True(t, q.failed)
}

func TestStartDBStatsCollector_StopsOnClose(t *testing.T) {
	db, recorder := setupCallbackDB(t)

	done := StartDBStatsCollector(db, recorder)
	close(done)
	// Closing the channel must stop the goroutine without panicking;
	// no stats are expected since the ticker never fired.
	time.Sleep(10 * time.Millisecond)
}
