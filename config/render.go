package config

import (
	"fmt"
	"strings"
)

// DefaultTOML renders a commented config.toml holding every default.
func DefaultTOML() string {
	var b strings.Builder
	b.WriteString("# cvpress configuration (TOML)\n\n")

	var order []string
	sections := make(map[string][]Option)
	for _, o := range Options() {
		section, key, ok := strings.Cut(o.Key, ".")
		if !ok {
			writeOption(&b, o.Key, o.Default, o.Comment)
			continue
		}
		if _, seen := sections[section]; !seen {
			order = append(order, section)
		}
		sections[section] = append(sections[section], Option{Key: key, Default: o.Default, Comment: o.Comment})
	}
	for _, section := range order {
		b.WriteString("[" + section + "]\n")
		for _, o := range sections[section] {
			writeOption(&b, o.Key, o.Default, o.Comment)
		}
	}
	return b.String()
}

func writeOption(b *strings.Builder, key string, value any, comment string) {
	if comment != "" {
		b.WriteString("# " + comment + "\n")
	}
	switch v := value.(type) {
	case string:
		fmt.Fprintf(b, "%s = %q\n\n", key, v)
	default:
		fmt.Fprintf(b, "%s = %v\n\n", key, v)
	}
}
