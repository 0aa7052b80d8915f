package serializer

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

type testConfig struct {
	Name  string `json:"name" yaml:"name"`
	Value int    `json:"value" yaml:"value"`
}

type testRecords struct{}

func (testRecords) MarshalRecords() ([]string, [][]string, error) {
	return []string{"A", "B"}, [][]string{{"1", "2"}, {"3", "4"}}, nil
}

const (
	testName  = "test"
	test1Name = "test1"
)

func TestWriter_SerializeJSON(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid JSON
	var result []testConfig
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal JSON: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeYAML(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatYAML, &buf)

	data := []testConfig{
		{Name: test1Name, Value: 123},
		{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	// Verify it's valid YAML
	var result []testConfig
	if err := yaml.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("Failed to unmarshal YAML: %v", err)
	}

	if len(result) != 2 {
		t.Errorf("Expected 2 items, got %d", len(result))
	}

	if result[0].Name != test1Name || result[0].Value != 123 {
		t.Errorf("Unexpected data: %+v", result[0])
	}
}

func TestWriter_SerializeTable(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatTable, &buf)

	data := []interface{}{
		testConfig{Name: test1Name, Value: 123},
		testConfig{Name: "test2", Value: 456},
	}

	err := writer.Serialize(context.Background(), data)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	output := buf.String()

	// Verify output contains expected elements
	if !strings.Contains(output, "FIELD") || !strings.Contains(output, "VALUE") {
		t.Error("Expected table header not found")
	}

	if !strings.Contains(output, "[0].Name") || !strings.Contains(output, "[1].Value") {
		t.Error("Expected flattened keys not found")
	}
}

func TestWriter_SerializeCSV(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatCSV, &buf)

	if err := writer.Serialize(context.Background(), testRecords{}); err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}

	got := buf.String()
	want := "A,B\n1,2\n3,4\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriter_SerializeCSVUnsupportedType(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatCSV, &buf)

	err := writer.Serialize(context.Background(), testConfig{Name: testName})
	if err == nil {
		t.Fatal("expected error serializing non-RecordMarshaler to CSV")
	}
}

func TestWriter_UnknownFormatFallsBack(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter("invalid", &buf)

	if writer == nil {
		t.Fatal("Expected non-nil writer with unknown format")
	}

	// Falls back to CSV, which requires a RecordMarshaler.
	if err := writer.Serialize(context.Background(), testRecords{}); err != nil {
		t.Fatalf("Serialize should not fail with unknown format (falls back to CSV): %v", err)
	}
	if !strings.HasPrefix(buf.String(), "A,B\n") {
		t.Errorf("expected CSV output, got %q", buf.String())
	}
}

func TestWriter_CloseIdempotent(t *testing.T) {
	var buf bytes.Buffer
	writer := NewWriter(FormatJSON, &buf)

	if err := writer.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
}

func TestSupportedFormats(t *testing.T) {
	formats := SupportedFormats()
	if len(formats) != 4 {
		t.Errorf("expected 4 formats, got %d", len(formats))
	}
	for _, f := range formats {
		if Format(f).IsUnknown() {
			t.Errorf("supported format %q reported unknown", f)
		}
	}
}
