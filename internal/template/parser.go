package template

import (
	"os"
	"strconv"
	"strings"

	"github.com/kestrelwm/rpaperd/internal/pathutil"
)

const (
	includeTag    = "Include("
	pathTag       = "Path("
	formatTag     = "Format("
	execBeforeTag = "ExecBefore("
	execAfterTag  = "ExecAfter("
	colorTag      = "Color("
	rgbTag        = "RGB("
	hexTag        = "HEX("

	configMark = "[config]"

	// maxIncludeDepth bounds Include( recursion so a cyclical include
	// chain stops instead of recursing forever. Include( lines past this
	// depth are dropped without an error.
	maxIncludeDepth = 16
)

var tags = []string{includeTag, pathTag, formatTag, execBeforeTag, execAfterTag, colorTag, rgbTag, hexTag}

// ParseTemplate splits a raw template file into its tag-line parameter
// section (above "[config]", with Include( lines expanded) and its config
// body (everything below the "[config]" line, copied verbatim).
func ParseTemplate(raw string) (params []string, configBody string) {
	sectionConfig := false
	var paramLines, configLines []string

	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) == configMark {
			sectionConfig = true
			continue
		}
		if !sectionConfig {
			if v, ok := validateLine(line); ok {
				paramLines = append(paramLines, v)
			}
			continue
		}
		configLines = append(configLines, line)
	}

	params = applyInclude(paramLines, 0)
	configBody = strings.Join(configLines, "\n")
	return params, configBody
}

// CollectCommands returns the inner content of every line shaped
// "prefixCONTENTsuffix" (after trimming), in file order.
func CollectCommands(caption []string, prefix, suffix string) []string {
	var res []string
	for _, line := range caption {
		trim := strings.TrimSpace(line)
		if !strings.HasPrefix(trim, prefix) || !strings.HasSuffix(trim, suffix) {
			continue
		}
		res = append(res, trim[len(prefix):len(trim)-len(suffix)])
	}
	return res
}

// CollectCommand returns the content of the LAST matching line, or "" if
// none match, matching the source's single-value Path(/Format( lookup.
func CollectCommand(caption []string, prefix, suffix string) string {
	res := ""
	for _, v := range CollectCommands(caption, prefix, suffix) {
		res = v
	}
	return res
}

// CollectColors parses every Color(/HEX(/RGB( line into a ColorVariable.
func CollectColors(caption []string) []ColorVariable {
	var res []ColorVariable

	for _, command := range CollectCommands(caption, colorTag, ")") {
		args := strings.Split(command, ",")
		if len(args) < 2 {
			continue
		}
		name := strings.TrimSpace(args[0])
		index, err := strconv.Atoi(strings.TrimSpace(args[1]))
		if err != nil {
			index = 0
		}
		index = clampIndex(index)

		var brightness int32
		var invert bool
		if len(args) > 2 {
			if b, err := strconv.Atoi(strings.TrimSpace(args[2])); err == nil {
				brightness = int32(b)
			}
		}
		if len(args) > 3 {
			v := strings.TrimSpace(args[3])
			invert = v == "1" || v == "true" || v == "True"
		}

		res = append(res, ColorVariable{Name: name, Index: index, Brightness: brightness, Invert: invert})
	}

	for _, command := range CollectCommands(caption, hexTag, ")") {
		args := strings.Split(command, ",")
		if len(args) != 2 {
			continue
		}
		name := strings.TrimSpace(args[0])
		value := strings.TrimSpace(args[1])
		if len(value) != 6 {
			continue
		}
		res = append(res, ColorVariable{Name: name, kind: constantHex, hexValue: value})
	}

	for _, command := range CollectCommands(caption, rgbTag, ")") {
		args := strings.Split(command, ",")
		if len(args) != 4 {
			continue
		}
		name := strings.TrimSpace(args[0])
		r, errR := strconv.ParseUint(strings.TrimSpace(args[1]), 10, 8)
		g, errG := strconv.ParseUint(strings.TrimSpace(args[2]), 10, 8)
		b, errB := strconv.ParseUint(strings.TrimSpace(args[3]), 10, 8)
		if errR != nil || errG != nil || errB != nil {
			continue
		}
		res = append(res, ColorVariable{Name: name, kind: constantRGB, r: uint8(r), g: uint8(g), b: uint8(b)})
	}

	return res
}

func clampIndex(i int) int {
	if i < 0 {
		return 0
	}
	if i > 15 {
		return 15
	}
	return i
}

func validateLine(s string) (string, bool) {
	s = removeComment(s)
	s = strings.TrimSpace(s)
	for _, tag := range tags {
		if strings.HasPrefix(s, tag) && strings.HasSuffix(s, ")") {
			return s, true
		}
	}
	return "", false
}

func removeComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// applyInclude expands Include( lines by reading and recursively parsing
// the referenced file, bounded at maxIncludeDepth. An unreadable include
// target is silently skipped, matching the source's fs::read_to_string
// if-let fallthrough.
func applyInclude(caption []string, depth int) []string {
	var res []string
	for _, line := range caption {
		if !strings.HasPrefix(line, includeTag) || !strings.HasSuffix(line, ")") {
			if v, ok := validateLine(line); ok {
				res = append(res, v)
			}
			continue
		}

		if depth >= maxIncludeDepth {
			continue
		}

		target := pathutil.ExpandUser(line[len(includeTag) : len(line)-1])
		data, err := os.ReadFile(target)
		if err != nil {
			continue
		}
		res = append(res, applyInclude(strings.Split(string(data), "\n"), depth+1)...)
	}
	return res
}
