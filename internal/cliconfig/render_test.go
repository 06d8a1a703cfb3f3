package cliconfig

import (
	"testing"

	"github.com/bft-labs/udostore/pkg/udo"
)

func TestRender(t *testing.T) {
	u := udo.Udo{"b": "2", "a": "x y"}
	tests := []struct {
		output string
		want   string
	}{
		{OutputJSON, "{\n  \"a\": \"x y\",\n  \"b\": \"2\"\n}\n"},
		{OutputPercent, "a=x+y&b=2\n"},
		{OutputYAML, "a: x y\nb: \"2\"\n"},
	}
	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			got, err := Render(u, tt.output)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Render = %q, want %q", got, tt.want)
			}
		})
	}

	if got, err := Render(nil, OutputYAML); err != nil || got != "{}\n" {
		t.Fatalf("Render(nil, yaml) = %q, %v", got, err)
	}
	if _, err := Render(u, "csv"); err == nil {
		t.Fatal("expected error for unknown output")
	}
}
