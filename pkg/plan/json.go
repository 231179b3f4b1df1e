package plan

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/swaplab/swapplan/pkg/errors"
)

// WriteJSON encodes a document as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON].
func WriteJSON(d *Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a document to a JSON file at path.
func WriteFile(d *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(d, f)
}

// ReadJSON decodes a document from r and verifies its integrity: the swap
// sequence must actually carry the working labels to the recorded target.
// A document that fails the check was edited or corrupted after planning.
func ReadJSON(r io.Reader) (*Document, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode plan document")
	}

	final, err := d.Final()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "replay swaps of plan %s", d.ID)
	}
	if len(d.Target) > len(final) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"plan %s does not reach its recorded target", d.ID)
	}
	reached := final
	if d.Subset {
		reached = final[:len(d.Target)]
	}
	if !slices.Equal(reached, d.Target) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"plan %s does not reach its recorded target", d.ID)
	}

	return &d, nil
}

// ReadFile reads and verifies a document from a JSON file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
