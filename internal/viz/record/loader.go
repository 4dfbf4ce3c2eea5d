package record

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/chunkviz/internal/apperr"
)

func LoadFromFile(path string, metrics []string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result file: %w", err)
	}
	rec, err := Parse(data, metrics)
	if err != nil {
		var ve *apperr.ValidationError
		if errors.As(err, &ve) {
			return nil, ve.WithSource(path)
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rec.Source = path
	return rec, nil
}

// Parse decodes one result document. Every header key and, for each metric,
// both the scalar and the per-question list must be present.
func Parse(data []byte, metrics []string) (*Record, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("parse result JSON: %w", err)
	}

	rec := &Record{
		Scores:      make(map[string]float64, len(metrics)),
		PerQuestion: make(map[string][]float64, len(metrics)),
	}

	headers := []struct {
		key string
		dst *string
	}{
		{KeyFilename, &rec.Filename},
		{KeyChunkingMethod, &rec.ChunkingMethod},
		{KeyEmbeddingModel, &rec.EmbeddingModel},
		{KeyKValue, &rec.KValue},
		{KeyThreshold, &rec.Threshold},
	}
	for _, h := range headers {
		v, err := scalarText(fields, h.key)
		if err != nil {
			return nil, err
		}
		*h.dst = v
	}

	for _, m := range metrics {
		score, err := number(fields, m)
		if err != nil {
			return nil, err
		}
		list, err := numberList(fields, ListKey(m))
		if err != nil {
			return nil, err
		}
		rec.Scores[m] = score
		rec.PerQuestion[m] = list
	}

	return rec, nil
}

func lookup(fields map[string]json.RawMessage, key string) (json.RawMessage, error) {
	raw, ok := fields[key]
	if !ok {
		return nil, apperr.NewFieldValidation(key, "missing key")
	}
	raw = bytes.TrimSpace(raw)
	if bytes.Equal(raw, []byte("null")) {
		return nil, apperr.NewFieldValidation(key, "value is null")
	}
	return raw, nil
}

// scalarText returns strings unquoted and numbers or booleans in the
// canonical spelling of canonicalScalar.
func scalarText(fields map[string]json.RawMessage, key string) (string, error) {
	raw, err := lookup(fields, key)
	if err != nil {
		return "", err
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", &apperr.ValidationError{Field: key, Message: "invalid string", Err: err}
		}
		return s, nil
	case '{', '[':
		return "", apperr.NewFieldValidation(key, "expected a scalar value")
	default:
		return canonicalScalar(string(raw)), nil
	}
}

// canonicalScalar spells a JSON number or boolean the way the parsed value
// prints: 0.50 is 0.5, 1.0 keeps its fraction, 3 stays 3 and true is True.
// Exponent forms print in plain decimal.
func canonicalScalar(lit string) string {
	switch lit {
	case "true":
		return "True"
	case "false":
		return "False"
	}
	if !strings.ContainsAny(lit, ".eE") {
		if n, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return strconv.FormatInt(n, 10)
		}
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return lit
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func number(fields map[string]json.RawMessage, key string) (float64, error) {
	raw, err := lookup(fields, key)
	if err != nil {
		return 0, err
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, &apperr.ValidationError{Field: key, Message: "expected a number", Err: err}
	}
	return v, nil
}

func numberList(fields map[string]json.RawMessage, key string) ([]float64, error) {
	raw, err := lookup(fields, key)
	if err != nil {
		return nil, err
	}
	var v []float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &apperr.ValidationError{Field: key, Message: "expected a list of numbers", Err: err}
	}
	return v, nil
}
