package dataset

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeSVM writes an SVMLight file with the given lines to path.
func writeSVM(t *testing.T, path string, lines []string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("failed to write svm file %s: %v", path, err)
	}
}

// TestRegression_YieldAndRestart streams a small file in batches, checks the
// epoch ends with io.EOF, and verifies Restart begins a fresh pass.
func TestRegression_YieldAndRestart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.svm")
	writeSVM(t, path, []string{
		"0.5 0:1 2:2",
		"1.5 1:3",
		"x 0:1", // malformed, skipped by the reader
		"2.5 0:4",
		"3.5 2:5",
	})

	ds, err := NewRegression(path, 3, 2)
	if err != nil {
		t.Fatalf("NewRegression failed: %v", err)
	}
	defer ds.Close()

	batches := 0
	for {
		_, inputs, labels, err := ds.Yield()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			t.Fatalf("Yield error: %v", err)
		}
		if len(inputs) != 1 || len(labels) != 1 {
			t.Fatalf("unexpected tensor counts: inputs=%d labels=%d", len(inputs), len(labels))
		}
		if inputs[0] == nil || labels[0] == nil {
			t.Fatalf("Yield returned nil tensor(s)")
		}
		batches++
	}
	// 4 parsed rows at batch size 2
	if batches != 2 {
		t.Fatalf("expected 2 batches, got %d", batches)
	}

	if err := ds.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	if _, inputs, _, err := ds.Yield(); err != nil || len(inputs) != 1 {
		t.Fatalf("Yield after Restart failed: inputs=%d err=%v", len(inputs), err)
	}
}

// TestNewRegression_Validation checks constructor failures surface to the
// caller.
func TestNewRegression_Validation(t *testing.T) {
	if _, err := NewRegression("irrelevant", 0, 2); err == nil {
		t.Fatalf("expected error for non-positive dimension")
	}
	if _, err := NewRegression(filepath.Join(t.TempDir(), "absent.svm"), 3, 2); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

// TestMultiLabel_MultiHot verifies class id sets expand to multi-hot label
// vectors with out-of-range ids dropped.
func TestMultiLabel_MultiHot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "train.svm")
	writeSVM(t, path, []string{
		"0,2 0:1",
		"1,9 1:1", // label 9 is out of range and dropped
	})

	ds, err := NewMultiLabel(path, 2, 4, 8)
	if err != nil {
		t.Fatalf("NewMultiLabel failed: %v", err)
	}
	defer ds.Close()

	hot := ds.multiHot(map[int]struct{}{0: {}, 2: {}, 9: {}})
	want := []float32{1, 0, 1, 0}
	if len(hot) != len(want) {
		t.Fatalf("unexpected multi-hot length: %d", len(hot))
	}
	for i := range want {
		if hot[i] != want[i] {
			t.Fatalf("multi-hot mismatch at %d: got %v want %v", i, hot, want)
		}
	}

	_, inputs, labels, err := ds.Yield()
	if err != nil {
		t.Fatalf("Yield error: %v", err)
	}
	if len(inputs) != 1 || len(labels) != 1 || inputs[0] == nil || labels[0] == nil {
		t.Fatalf("unexpected Yield result: inputs=%v labels=%v", inputs, labels)
	}
	if _, _, _, err := ds.Yield(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF at end of epoch, got %v", err)
	}
}

// TestMakeBatchFlat verifies flat buffer layout and dimension validation.
func TestMakeBatchFlat(t *testing.T) {
	inputs := [][]float32{{1, 2, 3}, {4, 5, 6}}
	labels := [][]float32{{10}, {20}}

	flat, err := MakeBatchFlat(inputs, labels)
	if err != nil {
		t.Fatalf("MakeBatchFlat error: %v", err)
	}
	if flat.BatchSize != 2 || flat.InputDim != 3 || flat.LabelDim != 1 {
		t.Fatalf("unexpected BatchFlat dims: %+v", flat)
	}
	wantInputs := []float32{1, 2, 3, 4, 5, 6}
	for i := range wantInputs {
		if flat.Inputs[i] != wantInputs[i] {
			t.Fatalf("flat inputs mismatch: got %v", flat.Inputs)
		}
	}
	if flat.Labels[0] != 10 || flat.Labels[1] != 20 {
		t.Fatalf("flat labels mismatch: got %v", flat.Labels)
	}

	inT, labT, err := flat.ToGomlxTensors()
	if err != nil {
		t.Fatalf("ToGomlxTensors error: %v", err)
	}
	if inT == nil || labT == nil {
		t.Fatalf("ToGomlxTensors returned nil tensor(s)")
	}

	if _, err := MakeBatchFlat(inputs, [][]float32{{10}}); err == nil {
		t.Fatalf("expected error on batch size mismatch")
	}
	if _, err := MakeBatchFlat([][]float32{{1, 2}, {3}}, labels); err == nil {
		t.Fatalf("expected error on inconsistent input dimensions")
	}
}
