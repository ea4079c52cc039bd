package scan

import (
	"bufio"
	"os"
	"regexp"
	"strings"
)

// Literal is a class string written inline in a template or Go file.
type Literal struct {
	File   string
	Line   int
	Column int    // 1-based column of the first class
	Text   string // Source line, for caret display
	Value  string // The class string as written
}

type literalPattern struct {
	name  string
	regex *regexp.Regexp
}

var (
	// Ordered from most specific to least specific.
	literalPatterns = []literalPattern{
		{name: "class attribute", regex: regexp.MustCompile(`class="([^"]+)"`)},
		{name: "class attribute in braces", regex: regexp.MustCompile(`class=\{\s*"([^"]+)"`)},
		{name: "CN call", regex: regexp.MustCompile(`\bCN\(\s*"([^"]+)"`)},
	}

	templClassesCall = regexp.MustCompile(`templ\.Classes\(([^)]+)\)`)
	templKVCall      = regexp.MustCompile(`templ\.KV\(([^)]+)\)`)

	commentLine = regexp.MustCompile(`^\s*//`)
)

// ScanFile returns every class literal in path.
func ScanFile(path string) ([]Literal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var literals []Literal
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		literals = append(literals, ExtractLine(scanner.Text(), lineNum, path)...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return literals, nil
}

// ExtractLine finds the class literals on one line. Lines inside
// templ.Classes or templ.KV calls are read argument by argument.
func ExtractLine(line string, lineNum int, file string) []Literal {
	if commentLine.MatchString(line) {
		return nil
	}

	hasClasses := strings.Contains(line, "templ.Classes(")
	hasKV := strings.Contains(line, "templ.KV(")
	if hasClasses || hasKV {
		var out []Literal
		if hasClasses {
			for _, m := range templClassesCall.FindAllStringSubmatch(line, -1) {
				out = append(out, templArguments(splitArgs(m[1]), lineNum, file, line)...)
			}
		}
		// templ.KV inside templ.Classes was already read as an argument
		if hasKV && !hasClasses {
			for _, m := range templKVCall.FindAllStringSubmatch(line, -1) {
				if args := splitArgs(m[1]); len(args) > 0 {
					out = append(out, templArguments(args[:1], lineNum, file, line)...)
				}
			}
		}
		return out
	}

	var out []Literal
	for _, p := range literalPatterns {
		for _, m := range p.regex.FindAllStringSubmatch(line, -1) {
			value := m[1]
			out = append(out, Literal{
				File:   file,
				Line:   lineNum,
				Column: findClassColumn(line, value),
				Text:   line,
				Value:  value,
			})
		}
	}
	return out
}

func templArguments(args []string, lineNum int, file, line string) []Literal {
	var out []Literal
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if strings.HasPrefix(arg, "templ.KV(") {
			inner := strings.TrimSuffix(strings.TrimPrefix(arg, "templ.KV("), ")")
			if kv := splitArgs(inner); len(kv) > 0 {
				out = append(out, templArguments(kv[:1], lineNum, file, line)...)
			}
			continue
		}
		if len(arg) < 2 || !strings.HasPrefix(arg, `"`) || !strings.HasSuffix(arg, `"`) {
			continue
		}
		value := arg[1 : len(arg)-1]
		if strings.TrimSpace(value) == "" {
			continue
		}
		out = append(out, Literal{
			File:   file,
			Line:   lineNum,
			Column: findClassColumn(line, value),
			Text:   line,
			Value:  value,
		})
	}
	return out
}

// findClassColumn locates the 1-based column where the first class of
// value starts, or 0 when it is not on the line.
func findClassColumn(line, value string) int {
	anchor := value
	if fields := strings.Fields(value); len(fields) > 0 {
		anchor = fields[0]
	}

	if attr := strings.Index(line, "class="); attr != -1 {
		if quote := strings.IndexAny(line[attr:], `"'`); quote != -1 {
			start := attr + quote + 1
			classes := line[start:]
			if end := strings.IndexAny(classes, `"'`); end != -1 {
				classes = classes[:end]
			}
			if idx := strings.Index(classes, anchor); idx != -1 {
				return start + idx + 1
			}
		}
	}

	if idx := strings.Index(line, `"`+value+`"`); idx != -1 {
		return idx + 2
	}
	if idx := strings.Index(line, anchor); idx != -1 {
		return idx + 1
	}
	return 0
}

// splitArgs splits call arguments on top-level commas. Commas inside
// string literals or nested calls are kept.
func splitArgs(s string) []string {
	var parts []string
	var current strings.Builder
	depth := 0
	inString := false

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case inString:
			if c == '\\' && i+1 < len(s) {
				current.WriteByte(c)
				i++
				c = s[i]
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == '(':
			depth++
		case c == ')':
			depth--
		case c == ',' && depth == 0:
			parts = append(parts, current.String())
			current.Reset()
			continue
		}
		current.WriteByte(c)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
