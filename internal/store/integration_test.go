package store_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Yehissonpenalo/Dashboardpadilla/internal/config"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/logging"
	"github.com/Yehissonpenalo/Dashboardpadilla/internal/store"
)

const (
	testPort     = 15433
	testDB       = "paytest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

const fixtureCSV = `Paciente,Procedimiento,Fecha,Doctor a Pagar,Doctor Referidor,Pago por Seguro,Pago Privado,Laboratorio,Gastos,Monto a Pagar por Tarifario,Paciente Refido,Cobra por Porcentaje,% de Pago
Maria Perez,Endodoncia,2024-02-03,Dra. Gomez,Dr. Cruz,100,0,10,5,0,si,si,50
Juan Diaz,Limpieza,2024-02-05,Dr. Santos,,0,200,0,0,80,no,no,
Ana Luna,Corona,2024-02-10,Dra. Gomez,,0,300,0,0,150,no,no,
`

func TestMain(m *testing.M) {
	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool against a clean pay schema with
// migrations applied.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS pay CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}

	log := logging.Setup("text")
	if err := store.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

func fixturePath(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hoja.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestEndToEnd_Load(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	cfg := &config.Config{
		DSN:      testDSN,
		FilePath: fixturePath(t, fixtureCSV),
		Activate: true,
	}

	summary, err := store.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("store.Run: %v", err)
	}

	t.Run("summary_metrics", func(t *testing.T) {
		if summary.RowsRead != 3 {
			t.Errorf("RowsRead: got %d, want 3", summary.RowsRead)
		}
		if summary.RowsEvaluated != 3 {
			t.Errorf("RowsEvaluated: got %d, want 3", summary.RowsEvaluated)
		}
		if summary.RowsCopied != 3 {
			t.Errorf("RowsCopied: got %d, want 3", summary.RowsCopied)
		}
	})

	t.Run("run_registered_and_active", func(t *testing.T) {
		var status string
		var active bool
		var rowsCopied int64
		err := pool.QueryRow(ctx,
			"SELECT status, active, rows_copied FROM pay.runs WHERE run_id = $1",
			summary.RunID).Scan(&status, &active, &rowsCopied)
		if err != nil {
			t.Fatalf("query run: %v", err)
		}
		if status != "loaded" {
			t.Errorf("status = %q, want loaded", status)
		}
		if !active {
			t.Error("expected run to be active")
		}
		if rowsCopied != 3 {
			t.Errorf("rows_copied = %d, want 3", rowsCopied)
		}
	})

	t.Run("settlement_values", func(t *testing.T) {
		// Row 1: insurance 100 with percentage mode at 50%. Surcharge 10,
		// gross 50, minus lab 10 + expenses 5 + surcharge 10 = 25 pre-retention,
		// retention 2.5, payout 22.5, referrer payment 10.
		var surcharge, doctorPay, retention, referrerPay, payout float64
		err := pool.QueryRow(ctx,
			`SELECT cargo_por_ars, pago_doctor, retencion, pago_referidor, monto_final_pago
			 FROM pay.settlements WHERE run_id = $1 AND row_number = 1`,
			summary.RunID).Scan(&surcharge, &doctorPay, &retention, &referrerPay, &payout)
		if err != nil {
			t.Fatalf("query settlement: %v", err)
		}
		if surcharge != 10 {
			t.Errorf("cargo_por_ars = %v, want 10", surcharge)
		}
		if doctorPay != 22.5 {
			t.Errorf("pago_doctor = %v, want 22.5", doctorPay)
		}
		if retention != 2.5 {
			t.Errorf("retencion = %v, want 2.5", retention)
		}
		if referrerPay != 10 {
			t.Errorf("pago_referidor = %v, want 10", referrerPay)
		}
		if payout != 22.5 {
			t.Errorf("monto_final_pago = %v, want 22.5", payout)
		}
	})

	t.Run("tariff_row", func(t *testing.T) {
		// Row 2: tariff mode, tariff 80, no surcharge, retention 8, payout 72.
		var doctorPay, payout float64
		var referrer *string
		err := pool.QueryRow(ctx,
			`SELECT pago_doctor, monto_final_pago, doctor_referidor
			 FROM pay.settlements WHERE run_id = $1 AND row_number = 2`,
			summary.RunID).Scan(&doctorPay, &payout, &referrer)
		if err != nil {
			t.Fatalf("query settlement: %v", err)
		}
		if doctorPay != 72 {
			t.Errorf("pago_doctor = %v, want 72", doctorPay)
		}
		if payout != 72 {
			t.Errorf("monto_final_pago = %v, want 72", payout)
		}
		if referrer != nil {
			t.Errorf("doctor_referidor = %v, want NULL for blank cell", *referrer)
		}
	})

	t.Run("dates_round_trip", func(t *testing.T) {
		var fecha time.Time
		err := pool.QueryRow(ctx,
			"SELECT fecha FROM pay.settlements WHERE run_id = $1 AND row_number = 1",
			summary.RunID).Scan(&fecha)
		if err != nil {
			t.Fatalf("query fecha: %v", err)
		}
		if fecha.Format("2006-01-02") != "2024-02-03" {
			t.Errorf("fecha = %v, want 2024-02-03", fecha)
		}
	})
}

func TestEndToEnd_Idempotency(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	cfg := &config.Config{
		DSN:      testDSN,
		FilePath: fixturePath(t, fixtureCSV),
	}

	summary1, err := store.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	if summary1.RowsCopied != 3 {
		t.Fatalf("first run copied %d rows, want 3", summary1.RowsCopied)
	}

	// Same file content again: skipped by SHA-256 preflight, same run id back.
	summary2, err := store.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if summary2.RowsCopied != 0 {
		t.Errorf("second run copied %d rows, want 0 (already loaded)", summary2.RowsCopied)
	}
	if summary2.RunID != summary1.RunID {
		t.Errorf("second run id %s, want existing run %s", summary2.RunID, summary1.RunID)
	}

	var count int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM pay.settlements").Scan(&count); err != nil {
		t.Fatalf("count settlements: %v", err)
	}
	if count != 3 {
		t.Errorf("settlements = %d after re-run, want 3", count)
	}
}

func TestEndToEnd_ForceReload(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text")

	cfg := &config.Config{
		DSN:      testDSN,
		FilePath: fixturePath(t, fixtureCSV),
	}

	summary1, err := store.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}

	cfg.Force = true
	summary2, err := store.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if summary2.RowsCopied != 3 {
		t.Errorf("forced run copied %d rows, want 3", summary2.RowsCopied)
	}
	if summary2.RunID == summary1.RunID {
		t.Error("forced run must register a fresh run id")
	}

	// Old run and its settlements are gone; exactly one run remains.
	var runs, settlements int64
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM pay.runs").Scan(&runs); err != nil {
		t.Fatalf("count runs: %v", err)
	}
	if err := pool.QueryRow(ctx, "SELECT count(*) FROM pay.settlements").Scan(&settlements); err != nil {
		t.Fatalf("count settlements: %v", err)
	}
	if runs != 1 {
		t.Errorf("runs = %d after forced re-load, want 1", runs)
	}
	if settlements != 3 {
		t.Errorf("settlements = %d after forced re-load, want 3", settlements)
	}

	var orphaned int64
	err = pool.QueryRow(ctx,
		"SELECT count(*) FROM pay.settlements WHERE run_id = $1", summary1.RunID).Scan(&orphaned)
	if err != nil {
		t.Fatalf("count orphans: %v", err)
	}
	if orphaned != 0 {
		t.Errorf("old run left %d settlement rows behind", orphaned)
	}
}
