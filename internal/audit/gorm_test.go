package audit

import (
	"strings"
	"sync"
	"testing"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/reservation-api/internal/logging"
)

type capturedInsert struct {
	sql  string
	vars []any
}

// dryRunDB builds statements without ever connecting to postgres.
func dryRunDB(t *testing.T) (*gorm.DB, func() []capturedInsert) {
	t.Helper()

	db, err := gorm.Open(postgres.Open("host=127.0.0.1 port=1 user=audit dbname=audit sslmode=disable"), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("gorm.Open failed: %v", err)
	}

	var mu sync.Mutex
	var inserts []capturedInsert
	err = db.Callback().Create().After("gorm:create").Register("audit_test:capture", func(tx *gorm.DB) {
		mu.Lock()
		defer mu.Unlock()
		inserts = append(inserts, capturedInsert{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	})
	if err != nil {
		t.Fatalf("register callback failed: %v", err)
	}

	return db, func() []capturedInsert {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedInsert(nil), inserts...)
	}
}

func hasVar(vars []any, want string) bool {
	for _, v := range vars {
		if s, ok := v.(string); ok && s == want {
			return true
		}
	}
	return false
}

func TestGormSinkInsertsAuditRow(t *testing.T) {
	db, inserts := dryRunDB(t)

	var sink Sink = NewGormSink(db)
	err := sink.Log(Event{
		Action:    "reservation_created",
		Entity:    "reservation",
		RequestID: "req-42",
		Metadata:  map[string]any{"people": "4"},
	})
	if err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	got := inserts()
	if len(got) != 1 {
		t.Fatalf("expected one insert, got %d", len(got))
	}
	if !strings.Contains(got[0].sql, `INSERT INTO "audit_logs"`) {
		t.Fatalf("unexpected statement %q", got[0].sql)
	}
	for _, want := range []string{"reservation_created", "reservation", "req-42", `{"people":"4"}`} {
		if !hasVar(got[0].vars, want) {
			t.Fatalf("statement vars %v miss %q", got[0].vars, want)
		}
	}
}

func TestGormSinkThroughDispatcher(t *testing.T) {
	db, inserts := dryRunDB(t)

	d := NewDispatcher(NewGormSink(db), logging.Discard())
	d.Dispatch(Event{Action: "reservations_listed", Entity: "reservation"})
	d.Dispatch(Event{Action: "reservations_exported", Entity: "reservation"})
	d.Close()

	got := inserts()
	if len(got) != 2 {
		t.Fatalf("expected two inserts, got %d", len(got))
	}
	if !hasVar(got[0].vars, "reservations_listed") || !hasVar(got[1].vars, "reservations_exported") {
		t.Fatalf("unexpected insert order %+v", got)
	}
	// no metadata is stored as an empty string
	if !hasVar(got[0].vars, "") {
		t.Fatalf("expected empty metadata, got %v", got[0].vars)
	}
}
