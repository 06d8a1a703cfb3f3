package cliconfig

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bft-labs/udostore/pkg/udo"
)

// Render formats u for terminal output in the given output format.
// The result always ends in a newline.
func Render(u udo.Udo, output string) (string, error) {
	switch output {
	case OutputJSON:
		text, err := udo.JSON.Encode(u)
		if err != nil {
			return "", err
		}
		return text + "\n", nil
	case OutputPercent:
		text, err := udo.Percent.Encode(u)
		if err != nil {
			return "", err
		}
		return text + "\n", nil
	case OutputYAML:
		if u == nil {
			u = udo.Udo{}
		}
		b, err := yaml.Marshal(map[string]string(u))
		if err != nil {
			return "", fmt.Errorf("render yaml: %w", err)
		}
		if !strings.HasSuffix(string(b), "\n") {
			b = append(b, '\n')
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown output %q", output)
	}
}
