package xcconfig

import "strings"

// Render reconstructs .xcconfig text from cfg's parsed line list. This is
// the inverse of ParseLine/parseLines: each Line shape maps back to
// exactly the textual form §4.9 describes.
func (cfg *Configuration) Render() string {
	lines := make([]string, len(cfg.lines))
	for i, ln := range cfg.lines {
		lines[i] = renderLine(ln)
	}
	return strings.Join(lines, "\n")
}

func renderLine(ln Line) string {
	switch ln.Kind {
	case KindEmpty:
		return ""
	case KindComment:
		return "// " + ln.Text
	case KindInclude:
		marker := "#include"
		if ln.Optional {
			marker = "#include?"
		}
		return marker + ` "` + escapeQuoted(ln.Path) + `"`
	case KindConfig:
		return renderConfigLine(ln)
	default:
		return ""
	}
}

func renderConfigLine(ln Line) string {
	var sb strings.Builder
	sb.WriteString(ln.Key)
	writeCond(&sb, "config", ln.Conditions.Config)
	writeCond(&sb, "sdk", ln.Conditions.SDK)
	writeCond(&sb, "arch", ln.Conditions.Arch)
	sb.WriteString(" = ")

	for i, v := range ln.Values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(renderValueToken(v))
	}

	if ln.Comment != "" {
		sb.WriteString(" // ")
		sb.WriteString(ln.Comment)
	}
	return sb.String()
}

func writeCond(sb *strings.Builder, name, value string) {
	if value == "*" {
		return
	}
	sb.WriteByte('[')
	sb.WriteString(name)
	sb.WriteByte('=')
	sb.WriteString(value)
	sb.WriteByte(']')
}

func renderValueToken(v string) string {
	if v == "" || needsQuoting(v) {
		return `"` + escapeQuoted(v) + `"`
	}
	return v
}

func needsQuoting(v string) bool {
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case ' ', '\t', '\n', '"', '\\':
			return true
		}
		if i+1 < len(v) && v[i] == '/' && v[i+1] == '/' {
			return true
		}
	}
	return false
}

func escapeQuoted(v string) string {
	var sb strings.Builder
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(v[i])
		}
	}
	return sb.String()
}
