package storage

import (
	"os"
	"testing"

	"gtp/internal/config"
	"gtp/internal/domain"
)

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-storage-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.ProjectPath = tmpDir

	fail := domain.TestRecord{ID: 1, Name: "TestSub", Outcome: domain.OutcomeFailure, DurationMillis: 1500, Message: "boom"}
	fail.AddFailure("boom", "boom", "boom")

	output := &domain.RunOutput{
		Meta: domain.RunMeta{
			TotalPackages:   1,
			FailedPackages:  1,
			TotalTestCases:  1,
			FailedTestCases: 1,
			Workers:         4,
		},
		Classes: []domain.ClassResult{
			{ID: 2, Name: "a.a_test_DOT_go", Records: []domain.TestRecord{fail}},
		},
	}

	st := NewJSONStorage(cfg)
	if err := st.Save(output); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if loaded.Meta.FailedTestCases != 1 {
		t.Errorf("expected 1 failed case, got %d", loaded.Meta.FailedTestCases)
	}
	if len(loaded.Classes) != 1 || len(loaded.Classes[0].Records) != 1 {
		t.Fatalf("unexpected classes: %+v", loaded.Classes)
	}

	record := loaded.Classes[0].Records[0]
	if record.Outcome != domain.OutcomeFailure {
		t.Errorf("outcome lost on round trip: %v", record.Outcome)
	}
	if record.Failure == nil || record.Failure.Message != "boom" {
		t.Errorf("failure detail lost on round trip: %+v", record.Failure)
	}

	refs := loaded.FailedRecords()
	if len(refs) != 1 || refs[0].Class != 0 || refs[0].Record != 0 {
		t.Errorf("unexpected failed record refs: %+v", refs)
	}
}

func TestJSONStorage_LoadMissingFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gtp-storage-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	cfg := config.New()
	cfg.ProjectPath = tmpDir

	if _, err := NewJSONStorage(cfg).Load(); err == nil {
		t.Error("expected error when no results file exists")
	}
}
