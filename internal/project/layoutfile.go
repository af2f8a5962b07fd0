package project

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/maruel/natural"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/piwi3910/PlankLayout/internal/model"
)

// LayoutFileExt is the extension of layout files.
const LayoutFileExt = ".hcl"

var (
	// ErrDuplicateLayout is returned when two layouts share a name.
	ErrDuplicateLayout = errors.New("duplicate layout name")
	// ErrNoLayouts is returned when a directory holds no layout files.
	ErrNoLayouts = errors.New("no layout files found")
)

// Layout is one named layout read from a layout file.
type Layout struct {
	Name   string
	Source string // file the layout was read from
	Config model.LayoutConfig
	Seed   *int64 // optional fixed seed for reproducible runs
}

type layoutFileHCL struct {
	Layouts []layoutHCL `hcl:"layout,block"`
}

type layoutHCL struct {
	Name             string         `hcl:"name,label"`
	Room             dimensionsHCL  `hcl:"room,block"`
	Plank            *dimensionsHCL `hcl:"plank,block"`
	Staggered        *bool          `hcl:"staggered,optional"`
	RandomizeLengths *bool          `hcl:"randomize_lengths,optional"`
	Seed             *int64         `hcl:"seed,optional"`
}

type dimensionsHCL struct {
	Width  int `hcl:"width"`
	Height int `hcl:"height"`
}

func (d dimensionsHCL) model() model.Dimensions {
	return model.Dimensions{Width: d.Width, Height: d.Height}
}

// layoutEvalContext exposes the configured defaults and a few numeric
// helpers to layout expressions, e.g. `width = floor(defaults.room_width / 2)`.
func layoutEvalContext(defaults model.AppConfig) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"defaults": cty.ObjectVal(map[string]cty.Value{
				"room_width":        cty.NumberIntVal(int64(defaults.DefaultRoom.Width)),
				"room_height":       cty.NumberIntVal(int64(defaults.DefaultRoom.Height)),
				"plank_width":       cty.NumberIntVal(int64(defaults.DefaultPlank.Width)),
				"plank_height":      cty.NumberIntVal(int64(defaults.DefaultPlank.Height)),
				"staggered":         cty.BoolVal(defaults.DefaultStaggered),
				"randomize_lengths": cty.BoolVal(defaults.DefaultRandomizeLengths),
			}),
		},
		Functions: map[string]function.Function{
			"min":   stdlib.MinFunc,
			"max":   stdlib.MaxFunc,
			"floor": stdlib.FloorFunc,
			"ceil":  stdlib.CeilFunc,
			"abs":   stdlib.AbsoluteFunc,
		},
	}
}

// ParseLayouts decodes HCL layout source. Omitted plank blocks and flags
// take their values from defaults.
func ParseLayouts(src []byte, filename string, defaults model.AppConfig) ([]Layout, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %s", filename, diags.Error())
	}

	var decoded layoutFileHCL
	diags = gohcl.DecodeBody(file.Body, layoutEvalContext(defaults), &decoded)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %s", filename, diags.Error())
	}

	layouts := make([]Layout, 0, len(decoded.Layouts))
	seen := make(map[string]bool, len(decoded.Layouts))
	for _, l := range decoded.Layouts {
		if seen[l.Name] {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateLayout, l.Name, filename)
		}
		seen[l.Name] = true

		cfg := defaults.Layout()
		cfg.Room = l.Room.model()
		if l.Plank != nil {
			cfg.Plank = l.Plank.model()
		}
		if l.Staggered != nil {
			cfg.Staggered = *l.Staggered
		}
		if l.RandomizeLengths != nil {
			cfg.RandomizeLengths = *l.RandomizeLengths
		}
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("layout %q in %s: %w", l.Name, filename, err)
		}

		layouts = append(layouts, Layout{
			Name:   l.Name,
			Source: filename,
			Config: cfg,
			Seed:   l.Seed,
		})
	}
	return layouts, nil
}

// LoadLayoutFile reads and decodes a single layout file.
func LoadLayoutFile(path string, defaults model.AppConfig) ([]Layout, error) {
	slog.Debug("Decoding layout file.", "path", path)
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}
	layouts, err := ParseLayouts(src, path, defaults)
	if err != nil {
		return nil, err
	}
	slog.Debug("Successfully decoded layout file.", "path", path, "layouts_found", len(layouts))
	return layouts, nil
}

// LoadLayoutDir loads every layout file below dir in natural file name
// order, so "room2.hcl" comes before "room10.hcl". Layout names must be
// unique across files.
func LoadLayoutDir(dir string, defaults model.AppConfig) ([]Layout, error) {
	files, err := findLayoutFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLayouts, dir)
	}

	var all []Layout
	seen := make(map[string]string)
	for _, f := range files {
		layouts, err := LoadLayoutFile(f, defaults)
		if err != nil {
			return nil, err
		}
		for _, l := range layouts {
			if prev, ok := seen[l.Name]; ok {
				return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateLayout, l.Name, prev, f)
			}
			seen[l.Name] = f
		}
		all = append(all, layouts...)
	}
	return all, nil
}

// LoadLayouts loads a layout file, or every layout file in a directory.
func LoadLayouts(path string, defaults model.AppConfig) ([]Layout, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open layout path: %w", err)
	}
	if info.IsDir() {
		return LoadLayoutDir(path, defaults)
	}
	return LoadLayoutFile(path, defaults)
}

// SaveLayoutFile writes layouts as HCL, creating parent directories as needed.
func SaveLayoutFile(path string, layouts []Layout) error {
	f := hclwrite.NewEmptyFile()
	body := f.Body()
	for i, l := range layouts {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("layout", []string{l.Name}).Body()
		appendDimensions(block, "room", l.Config.Room)
		appendDimensions(block, "plank", l.Config.Plank)
		block.SetAttributeValue("staggered", cty.BoolVal(l.Config.Staggered))
		block.SetAttributeValue("randomize_lengths", cty.BoolVal(l.Config.RandomizeLengths))
		if l.Seed != nil {
			block.SetAttributeValue("seed", cty.NumberIntVal(*l.Seed))
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create layout directory: %w", err)
	}
	if err := os.WriteFile(path, f.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}
	return nil
}

func appendDimensions(body *hclwrite.Body, name string, d model.Dimensions) {
	b := body.AppendNewBlock(name, nil).Body()
	b.SetAttributeValue("width", cty.NumberIntVal(int64(d.Width)))
	b.SetAttributeValue("height", cty.NumberIntVal(int64(d.Height)))
}

// findLayoutFiles recursively collects layout files below root, naturally sorted.
func findLayoutFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), LayoutFileExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Sort(natural.StringSlice(files))
	return files, nil
}
