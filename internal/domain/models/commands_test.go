package models

import (
	"reflect"
	"testing"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType CommandType
		wantArgs []string
	}{
		{name: "milk with args", input: "/milk Ravi Kothur Cow 10 40", wantType: CommandMilk, wantArgs: []string{"Ravi", "Kothur", "Cow", "10", "40"}},
		{name: "case folded head", input: "  /MILK Ravi Kothur cow 1 2 ", wantType: CommandMilk, wantArgs: []string{"Ravi", "Kothur", "cow", "1", "2"}},
		{name: "no slash", input: "summary", wantType: CommandSummary},
		{name: "unsold", input: "/unsold 12", wantType: CommandUnsold, wantArgs: []string{"12"}},
		{name: "help", input: "/help", wantType: CommandHelp},
		{name: "unknown", input: "/eggs 20", wantType: CommandUnknown, wantArgs: []string{"20"}},
		{name: "blank", input: "   ", wantType: CommandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCommand(tt.input)
			if got.Type != tt.wantType {
				t.Fatalf("expected type %s, got %s", tt.wantType, got.Type)
			}
			if !reflect.DeepEqual(got.Args, tt.wantArgs) {
				t.Fatalf("expected args %v, got %v", tt.wantArgs, got.Args)
			}
			if got.Raw != tt.input {
				t.Fatalf("expected raw %q, got %q", tt.input, got.Raw)
			}
		})
	}
}

func TestInboundMessageBody(t *testing.T) {
	text := InboundMessage{Type: "text"}
	text.Text = &struct {
		Body string `json:"body"`
	}{Body: "/help"}
	if got := text.Body(); got != "/help" {
		t.Fatalf("expected text body, got %q", got)
	}
	if got := (InboundMessage{Type: "image"}).Body(); got != "" {
		t.Fatalf("expected empty body for media, got %q", got)
	}
}
