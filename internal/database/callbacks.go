package database

import (
	"time"

	"gorm.io/gorm"
)

// MetricsRecorder is an interface for recording database metrics
type MetricsRecorder interface {
	RecordDBQuery(operation, table string, duration time.Duration, err error)
	UpdateDBStats(stats interface{})
}

// RegisterMetricsCallbacks registers GORM callbacks that time every
// query/create/update/delete and report to the metrics recorder.
func RegisterMetricsCallbacks(db *gorm.DB, recorder MetricsRecorder) {
	type processor struct {
		name           string
		operation      string
		registerBefore func(string, func(*gorm.DB)) error
		registerAfter  func(string, func(*gorm.DB)) error
	}

	query, create, update, del := db.Callback().Query(), db.Callback().Create(), db.Callback().Update(), db.Callback().Delete()
	processors := []processor{
		{"gorm:query", "select", query.Before("gorm:query").Register, query.After("gorm:query").Register},
		{"gorm:create", "insert", create.Before("gorm:create").Register, create.After("gorm:create").Register},
		{"gorm:update", "update", update.Before("gorm:update").Register, update.After("gorm:update").Register},
		{"gorm:delete", "delete", del.Before("gorm:delete").Register, del.After("gorm:delete").Register},
	}

	for _, p := range processors {
		operation := p.operation
		p.registerBefore("metrics:"+operation+"_before", func(db *gorm.DB) {
			db.InstanceSet("query_start_time", time.Now())
		})
		p.registerAfter("metrics:"+operation+"_after", func(db *gorm.DB) {
			startTime, ok := db.InstanceGet("query_start_time")
			if !ok {
				return
			}
			table := db.Statement.Table
			if table == "" {
				table = "unknown"
			}
			recorder.RecordDBQuery(operation, table, time.Since(startTime.(time.Time)), db.Error)
		})
	}
}

// StartDBStatsCollector starts periodic DB connection pool stats collection
func StartDBStatsCollector(db *gorm.DB, recorder MetricsRecorder) chan struct{} {
	done := make(chan struct{})

	go func() {
		ticker := time.NewTicker(15 * time.Second)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				sqlDB, err := db.DB()
				if err != nil {
					continue
				}
				recorder.UpdateDBStats(sqlDB.Stats())
			case <-done:
				return
			}
		}
	}()

	return done
}
