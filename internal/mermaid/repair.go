package mermaid

import "strings"

// styleOperators rewrites key=value pairs in classDef lines to key:value.
var styleOperators = strings.NewReplacer(
	"fill=", "fill:",
	"stroke=", "stroke:",
	"color=", "color:",
)

// labelParens replaces parentheses inside node labels.
var labelParens = strings.NewReplacer("(", "-", ")", "-")

// Repair applies RepairLine to every line of source.
// The number and order of lines never change.
func Repair(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = RepairLine(line)
	}

	return strings.Join(lines, "\n")
}

// RepairLine fixes a single line of diagram source:
//   - classDef lines get ':' instead of '=' after fill, stroke and color;
//   - parentheses inside the first [...] label become '-'.
//
// Only the first bracketed label on a line is considered.
func RepairLine(line string) string {
	if strings.Contains(line, "classDef") {
		line = styleOperators.Replace(line)
	}

	return repairLabel(line)
}

func repairLabel(line string) string {
	open := strings.IndexByte(line, '[')
	if open < 0 {
		return line
	}

	closing := strings.IndexByte(line[open+1:], ']')
	if closing < 0 {
		return line
	}
	closing += open + 1

	label := line[open+1 : closing]
	if !strings.ContainsAny(label, "()") {
		return line
	}

	return line[:open+1] + labelParens.Replace(label) + line[closing:]
}
