package gmail_tools

import (
	"testing"
)

func TestParseOutgoingMessage(t *testing.T) {
	tests := []struct {
		name    string
		args    map[string]interface{}
		wantErr string
	}{
		{
			name: "valid minimal",
			args: map[string]interface{}{
				"to":      "a@b.com",
				"subject": "hello",
				"body":    "world",
			},
		},
		{
			name: "valid with cc and bcc",
			args: map[string]interface{}{
				"to":      "a@b.com",
				"subject": "hello",
				"body":    "world",
				"cc":      "c@b.com",
				"bcc":     "d@b.com",
			},
		},
		{
			name: "missing to",
			args: map[string]interface{}{
				"subject": "hello",
				"body":    "world",
			},
			wantErr: "to is required",
		},
		{
			name: "missing subject",
			args: map[string]interface{}{
				"to":   "a@b.com",
				"body": "world",
			},
			wantErr: "subject is required",
		},
		{
			name: "missing body",
			args: map[string]interface{}{
				"to":      "a@b.com",
				"subject": "hello",
			},
			wantErr: "body is required",
		},
		{
			name: "wrong type to",
			args: map[string]interface{}{
				"to":      123,
				"subject": "hello",
				"body":    "world",
			},
			wantErr: "to is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, errMsg := parseOutgoingMessage(tt.args)
			if errMsg != tt.wantErr {
				t.Errorf("parseOutgoingMessage() error = %q, want %q", errMsg, tt.wantErr)
			}
			if tt.wantErr == "" && msg == nil {
				t.Error("parseOutgoingMessage() returned nil message without error")
			}
		})
	}
}

func TestGetStringArg(t *testing.T) {
	args := map[string]interface{}{
		"present": "value",
		"number":  42,
	}

	if got := getStringArg(args, "present"); got != "value" {
		t.Errorf("getStringArg(present) = %q", got)
	}
	if got := getStringArg(args, "absent"); got != "" {
		t.Errorf("getStringArg(absent) = %q, want empty", got)
	}
	if got := getStringArg(args, "number"); got != "" {
		t.Errorf("getStringArg(number) = %q, want empty", got)
	}
}

func TestGetBoolArg(t *testing.T) {
	args := map[string]interface{}{
		"yes":    true,
		"no":     false,
		"string": "true",
	}

	if !getBoolArg(args, "yes") {
		t.Error("getBoolArg(yes) = false")
	}
	if getBoolArg(args, "no") {
		t.Error("getBoolArg(no) = true")
	}
	if getBoolArg(args, "absent") {
		t.Error("getBoolArg(absent) = true")
	}
	if getBoolArg(args, "string") {
		t.Error("getBoolArg(string) = true, non-bool must not count")
	}
}
