package driver

import (
	"fmt"
	"testing"
	"time"

	"rosh/internal/diagfmt"
	"rosh/internal/source"
)

func TestReportLog_AppendAndRecent(t *testing.T) {
	log, err := OpenReportLogAt(t.TempDir())
	if err != nil {
		t.Fatalf("OpenReportLogAt() error: %v", err)
	}

	records, err := log.Recent()
	if err != nil {
		t.Fatalf("Recent() on empty log: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("empty log returned %d records", len(records))
	}

	origin := source.FileOrigin("escrow.rsh")
	loc := source.Location{
		Pos:    &source.LineCol{Line: 7, Col: 3},
		Origin: &origin,
	}
	failure := diagfmt.Failure{Code: "RF0000", Output: "cannot read escrow.rsh"}

	if err := log.Append(NewReportRecord(failure, loc, failure.Output)); err != nil {
		t.Fatalf("Append() error: %v", err)
	}

	records, err = log.Recent()
	if err != nil {
		t.Fatalf("Recent() error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	rec := records[0]
	if rec.Code != "RF0000" || rec.Path != "escrow.rsh" || rec.Line != 7 || rec.Col != 3 {
		t.Errorf("round-tripped record = %+v", rec)
	}
	if rec.When.IsZero() || time.Since(rec.When) > time.Minute {
		t.Errorf("record timestamp looks wrong: %v", rec.When)
	}
}

func TestReportLog_CapsEntries(t *testing.T) {
	log, err := OpenReportLogAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < reportLogCap+5; i++ {
		rec := ReportRecord{
			Schema: reportLogSchemaVersion,
			Code:   fmt.Sprintf("RI%04d", i),
			When:   time.Now(),
		}
		if err := log.Append(rec); err != nil {
			t.Fatalf("Append(%d) error: %v", i, err)
		}
	}

	records, err := log.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != reportLogCap {
		t.Fatalf("got %d records, want cap %d", len(records), reportLogCap)
	}
	// oldest entries were dropped
	if records[0].Code != "RI0005" {
		t.Errorf("first kept record = %s, want RI0005", records[0].Code)
	}
}

func TestReportLog_DropsForeignSchema(t *testing.T) {
	log, err := OpenReportLogAt(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if err := log.Append(ReportRecord{Schema: reportLogSchemaVersion + 1, Code: "XX0000"}); err != nil {
		t.Fatal(err)
	}
	records, err := log.Recent()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 0 {
		t.Errorf("foreign-schema records must be dropped, got %v", records)
	}
}
