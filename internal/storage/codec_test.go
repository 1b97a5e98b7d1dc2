package storage

import (
	"errors"
	"testing"

	"gendist/internal/model"
)

func TestRunCodec(t *testing.T) {
	want := testRun("run-a", "2026-01-02T03:04:05Z")
	data, err := EncodeRun(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeRun(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got != want {
		t.Fatalf("roundtrip mismatch: got %+v want %+v", got, want)
	}
}

func TestDecodeRunVersionMismatch(t *testing.T) {
	run := testRun("run-a", "2026-01-02T03:04:05Z")
	run.SchemaVersion = CurrentSchemaVersion + 1
	data, err := EncodeRun(run)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeRun(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestDecodePlanVersionMismatch(t *testing.T) {
	plan := model.Plan{VersionedRecord: Stamp(), RunID: "run-a"}
	plan.CodecVersion = 0
	data, err := EncodePlan(plan)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodePlan(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestHistoryCodec(t *testing.T) {
	want := []float64{-10, -4, -1}
	data, err := EncodeHistory(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeHistory(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 3 || got[2] != -1 {
		t.Fatalf("roundtrip mismatch: %v", got)
	}
}

func TestFactoryRejectsUnknownKind(t *testing.T) {
	if _, err := NewStore("bolt", ""); err == nil {
		t.Fatal("expected error for unknown store kind")
	}
}
