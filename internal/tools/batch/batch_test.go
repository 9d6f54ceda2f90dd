package batch

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseStringOrArray(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    []string
		wantErr bool
	}{
		{
			name:  "single string",
			input: "19a8b2c3d4e5f6",
			want:  []string{"19a8b2c3d4e5f6"},
		},
		{
			name:  "array of strings",
			input: []interface{}{"id1", "id2", "id3"},
			want:  []string{"id1", "id2", "id3"},
		},
		{
			name:    "nil input",
			input:   nil,
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
		{
			name:    "empty array",
			input:   []interface{}{},
			wantErr: true,
		},
		{
			name:    "array with non-string",
			input:   []interface{}{"id1", 123, "id3"},
			wantErr: true,
		},
		{
			name:    "array with empty string",
			input:   []interface{}{"id1", "", "id3"},
			wantErr: true,
		},
		{
			name:    "invalid type",
			input:   123,
			wantErr: true,
		},
		{
			name:  "JSON string array",
			input: `["id1", "id2", "id3"]`,
			want:  []string{"id1", "id2", "id3"},
		},
		{
			name:  "JSON string single element array",
			input: `["19a8b2c3d4e5f6"]`,
			want:  []string{"19a8b2c3d4e5f6"},
		},
		{
			name:    "JSON string empty array",
			input:   `[]`,
			wantErr: true,
		},
		{
			name:  "invalid JSON string",
			input: `[invalid json`,
			want:  []string{`[invalid json`},
		},
		{
			name:  "string starting with bracket (not JSON)",
			input: `[urgent] follow up`,
			want:  []string{`[urgent] follow up`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStringOrArray(tt.input, "message_ids")
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseStringOrArray() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && !stringSliceEqual(got, tt.want) {
				t.Errorf("ParseStringOrArray() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatResults(t *testing.T) {
	results := []Result{
		{ID: "id1", Status: "success", Result: "retrieved"},
		{ID: "id2", Status: "success", Result: "retrieved"},
		{ID: "id3", Status: "error", Error: "message not found"},
	}

	output := FormatResults(results)

	var br BatchResult
	if err := json.Unmarshal([]byte(output), &br); err != nil {
		t.Fatalf("Failed to parse output JSON: %v", err)
	}

	if br.Total != 3 {
		t.Errorf("Total = %d, want 3", br.Total)
	}
	if br.Successful != 2 {
		t.Errorf("Successful = %d, want 2", br.Successful)
	}
	if br.Failed != 1 {
		t.Errorf("Failed = %d, want 1", br.Failed)
	}
	if len(br.Results) != 3 {
		t.Errorf("len(Results) = %d, want 3", len(br.Results))
	}
}

func TestProcessBatch(t *testing.T) {
	ids := []string{"id1", "id2", "id3"}

	// Fails on the middle id; the other two must still be processed
	fn := func(id string) (string, error) {
		if id == "id2" {
			return "", errors.New("message id2 not found")
		}
		return "fetched " + id, nil
	}

	results := ProcessBatch(ids, fn)

	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}

	if results[0].Status != "success" || results[0].Result != "fetched id1" {
		t.Errorf("results[0] = %+v, want success for id1", results[0])
	}
	if results[1].Status != "error" || results[1].Error != "message id2 not found" {
		t.Errorf("results[1] = %+v, want captured error for id2", results[1])
	}
	if results[2].Status != "success" || results[2].Result != "fetched id3" {
		t.Errorf("results[2] = %+v, want success for id3", results[2])
	}
}

func TestNewSuccessResult(t *testing.T) {
	result := NewSuccessResult("msg-1", "draft created")

	if result.ID != "msg-1" || result.Status != "success" || result.Result != "draft created" {
		t.Errorf("NewSuccessResult() = %+v", result)
	}
	if result.Error != "" {
		t.Errorf("Error should be empty, got %s", result.Error)
	}
}

func TestNewErrorResult(t *testing.T) {
	result := NewErrorResult("msg-1", errors.New("permission denied"))

	if result.ID != "msg-1" || result.Status != "error" || result.Error != "permission denied" {
		t.Errorf("NewErrorResult() = %+v", result)
	}
	if result.Result != "" {
		t.Errorf("Result should be empty, got %s", result.Result)
	}
}

func stringSliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
