package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/syamvenkatasai/payequity/internal/adapters/roster"
	app "github.com/syamvenkatasai/payequity/internal/app"
	"github.com/syamvenkatasai/payequity/internal/config"
	"github.com/syamvenkatasai/payequity/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

const testRoster = `Employee Number,Job Code,Department Code,Gender,Ethnicity,Total Compensation,Calculated Compensation,Pay Equity
E1,ENG,D1,M,X,100000,,
E2,ENG,D1,F,Y,50000,,
E3,QA,D2,F,Y,40000,,
`

func TestAuditPopulationEndToEnd(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "salaried.csv")
	output := filepath.Join(dir, "salaried_audited.csv")
	if err := os.WriteFile(input, []byte(testRoster), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	pop := config.Population{
		Input:              input,
		Output:             output,
		Threshold:          2200,
		CompensationColumn: "Total Compensation",
	}
	svc := app.New(app.WithWorkerCount(2))

	if err := auditPopulation(context.Background(), svc, cfg, "salaried", pop); err != nil {
		t.Fatalf("auditPopulation: %v", err)
	}

	rows, err := roster.Load(output, cfg.Separator())
	if err != nil {
		t.Fatalf("reading annotated roster: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	// E2 is far below E1 in the same cohort with no same-gender or
	// same-ethnicity earner above it.
	want := "Pay Disparity detected with respect to Gender. Employee Number: E1" +
		" | " +
		"Pay Disparity detected with respect to Ethnicity X. Employee Number: E1"
	if rows[1].PayEquity != want {
		t.Fatalf("E2 findings = %q, want %q", rows[1].PayEquity, want)
	}
	if rows[0].PayEquity != "" || rows[2].PayEquity != "" {
		t.Fatalf("unexpected findings: %q / %q", rows[0].PayEquity, rows[2].PayEquity)
	}
}

func TestAuditPopulationWritesBackInPlace(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "hourly.csv")
	contents := strings.ReplaceAll(testRoster, "Total Compensation,Calculated Compensation", "Calculated Compensation,Total Compensation")
	if err := os.WriteFile(input, []byte(contents), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := config.New()
	pop := config.Population{
		Input:              input,
		Threshold:          0.01,
		CompensationColumn: "Calculated Compensation",
	}
	if err := auditPopulation(context.Background(), app.New(), cfg, "hourly", pop); err != nil {
		t.Fatalf("auditPopulation: %v", err)
	}

	rows, err := roster.Load(input, cfg.Separator())
	if err != nil {
		t.Fatalf("reading annotated roster: %v", err)
	}
	if rows[1].PayEquity == "" {
		t.Fatal("expected E2 to carry findings after in-place rewrite")
	}
}
