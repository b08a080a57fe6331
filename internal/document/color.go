package document

import (
	"encoding/json"
	"strconv"

	"github.com/aleister1102/embedkit/internal/discord"
	"gopkg.in/yaml.v3"
)

// ColorValue is an embed color written either as a palette name, a hex
// literal or a plain integer.
type ColorValue string

func (c *ColorValue) UnmarshalJSON(data []byte) error {
	var number json.Number
	if err := json.Unmarshal(data, &number); err == nil {
		*c = ColorValue(number.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*c = ColorValue(s)
	return nil
}

func (c *ColorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"line " + strconv.Itoa(node.Line) + ": color must be a scalar"}}
	}
	*c = ColorValue(node.Value)
	return nil
}

// Resolve returns the integer color
func (c ColorValue) Resolve() (int, bool) {
	return discord.ResolveColor(string(c))
}
