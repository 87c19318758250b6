package template

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kestrelwm/rpaperd/internal/pathutil"
	"github.com/kestrelwm/rpaperd/internal/process"
)

// Template is one parsed template file: where its rendered config is
// written, the color variables it binds against a palette, and the shell
// commands to run before/after rendering.
type Template struct {
	SelfPath string

	confPath       string
	confBody       string
	colorFormat    string
	colorVars      []ColorVariable
	commandsBefore []string
	commandsAfter  []string
}

// New reads and parses the template file at path.
func New(path string) (*Template, error) {
	path = pathutil.ExpandUser(path)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("template: path %q does not exist", path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("template: reading %s: %w", path, err)
	}

	params, body := ParseTemplate(string(raw))

	return &Template{
		SelfPath:       path,
		confPath:       CollectCommand(params, pathTag, ")"),
		confBody:       body,
		colorFormat:    CollectCommand(params, formatTag, ")"),
		commandsBefore: CollectCommands(params, execBeforeTag, ")"),
		commandsAfter:  CollectCommands(params, execAfterTag, ")"),
		colorVars:      CollectColors(params),
	}, nil
}

// brightnessShades is the number of lighter/darker {br} variants generated
// per color variable, matching the source's `for i in 1..20`.
const brightnessShades = 19

// Apply binds hexColors (a 16-entry extracted palette) against every
// ColorVariable, substitutes the results into the config body, and writes
// it to the template's configured Path atomically. ExecBefore commands run
// synchronously first; ExecAfter commands are spawned (fire-and-forget)
// once the write completes.
func (t *Template) Apply(ctx context.Context, hexColors []string, runner process.Runner) error {
	t.execBefore(ctx, runner)

	config := t.confBody
	var values []ColorValue

	for _, cv := range t.colorVars {
		if cv.Index >= len(hexColors) {
			continue
		}
		source := hexColors[cv.Index]

		if strings.Contains(cv.Name, "{br}") {
			for i := 1; i <= brightnessShades; i++ {
				lighter := NewColorValueFromHex(strings.ReplaceAll(cv.Name, "{br}", fmt.Sprintf("LR%d", i)), source)
				darker := NewColorValueFromHex(strings.ReplaceAll(cv.Name, "{br}", fmt.Sprintf("DR%d", i)), source)

				applyConstant(&lighter, cv)
				applyConstant(&darker, cv)

				if cv.Invert {
					lighter.Invert()
					darker.Invert()
				}

				lighter.AddBrightness(int32(i*10) + cv.Brightness)
				darker.AddBrightness(int32(-i*10) + cv.Brightness)

				values = append(values, lighter, darker)
			}
		}

		value := NewColorValueFromHex(strings.ReplaceAll(cv.Name, "{br}", ""), source)
		applyConstant(&value, cv)
		if cv.Invert {
			value.Invert()
		}
		value.AddBrightness(cv.Brightness)
		values = append(values, value)
	}

	for _, v := range values {
		format := t.colorFormat
		format = strings.ReplaceAll(format, "{R}", fmt.Sprintf("%d", v.R))
		format = strings.ReplaceAll(format, "{G}", fmt.Sprintf("%d", v.G))
		format = strings.ReplaceAll(format, "{B}", fmt.Sprintf("%d", v.B))
		format = strings.ReplaceAll(format, "{HEX}", v.Hex())
		config = strings.ReplaceAll(config, v.Name, format)
	}

	if t.confPath != "" {
		if err := pathutil.WriteFileAtomic(pathutil.ExpandUser(t.confPath), []byte(config), 0o644); err != nil {
			return fmt.Errorf("template: writing %s: %w", t.confPath, err)
		}
	}

	t.execAfter(runner)
	return nil
}

func applyConstant(v *ColorValue, cv ColorVariable) {
	switch cv.kind {
	case constantHex:
		v.SetValueFromHex(cv.hexValue)
	case constantRGB:
		v.SetValueFromRGB(cv.r, cv.g, cv.b)
	}
}

func (t *Template) execBefore(ctx context.Context, runner process.Runner) {
	for _, command := range t.commandsBefore {
		if command == "" {
			continue
		}
		_ = runner.Run(ctx, command)
	}
}

func (t *Template) execAfter(runner process.Runner) {
	for _, command := range t.commandsAfter {
		if command == "" {
			continue
		}
		_ = runner.Spawn(command)
	}
}
