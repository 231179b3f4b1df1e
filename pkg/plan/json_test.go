package plan

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/swaplab/swapplan/pkg/errors"
	"github.com/swaplab/swapplan/pkg/perm"
)

func TestJSONRoundTrip(t *testing.T) {
	doc, err := New(intLabels(0, 1, 2, 3, 4), intLabels(4, 2, 0, 1, 3), false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if got.ID != doc.ID {
		t.Errorf("ID = %s, want %s", got.ID, doc.ID)
	}
	if len(got.Steps) != len(doc.Steps) {
		t.Errorf("Steps len = %d, want %d", len(got.Steps), len(doc.Steps))
	}
}

func TestReadJSONRejectsTamperedDocument(t *testing.T) {
	doc, err := New(intLabels(0, 1, 2), intLabels(2, 0, 1), false)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Drop a step so the sequence no longer reaches the target.
	doc.Steps = doc.Steps[:len(doc.Steps)-1]

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}

	if _, err := ReadJSON(&buf); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestReadJSONRejectsMalformedInput(t *testing.T) {
	_, err := ReadJSON(strings.NewReader("{not json"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("err = %v, want INVALID_INPUT", err)
	}
}

func TestJSONFileRoundTrip(t *testing.T) {
	doc, err := New(
		[]perm.Label{perm.Int(0), perm.Str("b"), perm.Int(2)},
		[]perm.Label{perm.Int(2), perm.Str("b"), perm.Int(0)},
		false,
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "plan.json")
	if err := WriteFile(doc, path); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile error: %v", err)
	}
	if got.ID != doc.ID {
		t.Errorf("ID = %s, want %s", got.ID, doc.ID)
	}

	final, err := got.Final()
	if err != nil {
		t.Fatalf("Final error: %v", err)
	}
	want := []perm.Label{perm.Int(2), perm.Str("b"), perm.Int(0)}
	for i := range want {
		if final[i] != want[i] {
			t.Errorf("final[%d] = %v, want %v", i, final[i], want[i])
		}
	}
}

func TestReadFileNotFound(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.json"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestSubsetDocumentSurvivesRoundTrip(t *testing.T) {
	doc, err := New(intLabels(0, 1, 2, 3), intLabels(2, 0), true)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteJSON(doc, &buf); err != nil {
		t.Fatalf("WriteJSON error: %v", err)
	}
	got, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON error: %v", err)
	}
	if !got.Subset {
		t.Error("subset flag should survive the round trip")
	}
}
