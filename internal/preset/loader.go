package preset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	starctx "github.com/leapstack-labs/enginegen/internal/starlark"
	"github.com/leapstack-labs/enginegen/pkg/core"
	"github.com/leapstack-labs/enginegen/pkg/firing"
	"gopkg.in/yaml.v3"
)

// presetFile is the on-disk shape shared by YAML files and script output.
type presetFile struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Banks       []core.Bank    `yaml:"banks"`
	FiringOrder []int          `yaml:"firing_order"`
	OneBased    bool           `yaml:"one_based"`
	Params      map[string]any `yaml:"params"`
}

// Load reads a preset from a .yaml/.yml file or a .star script.
func Load(ctx context.Context, path string, logger *slog.Logger) (*Preset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is user-supplied by design
	if err != nil {
		return nil, &LoadError{File: path, Message: fmt.Sprintf("failed to read file: %v", err), Err: err}
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(path, data)
	case ".star":
		return LoadScript(ctx, path, data, logger)
	default:
		return nil, &LoadError{File: path, Message: "unsupported preset extension (want .yaml, .yml or .star)"}
	}
}

// LoadYAML decodes a YAML preset document. Unknown fields are rejected.
func LoadYAML(file string, data []byte) (*Preset, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var pf presetFile
	if err := dec.Decode(&pf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &LoadError{File: file, Message: "empty preset file"}
		}
		return nil, &LoadError{File: file, Message: fmt.Sprintf("invalid YAML: %v", err), Err: err}
	}
	return pf.preset(file)
}

// LoadScript runs a Starlark preset script.
func LoadScript(ctx context.Context, file string, src []byte, logger *slog.Logger) (*Preset, error) {
	doc, err := starctx.Exec(ctx, file, src, starctx.WithLogger(logger))
	if err != nil {
		return nil, &LoadError{File: file, Message: err.Error(), Err: err}
	}

	var pf presetFile
	if err := decode(doc, &pf); err != nil {
		return nil, &LoadError{File: file, Message: fmt.Sprintf("invalid engine(): %v", err), Err: err}
	}
	return pf.preset(file)
}

func (pf *presetFile) preset(file string) (*Preset, error) {
	if pf.Name == "" {
		pf.Name = strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	}

	p := &Preset{
		Name:        pf.Name,
		Description: pf.Description,
		Banks:       pf.Banks,
		FiringOrder: core.FiringOrder(pf.FiringOrder),
	}
	if pf.OneBased {
		p.FiringOrder = firing.FromOneBased(pf.FiringOrder)
		for i, b := range p.Banks {
			p.Banks[i].Cylinders = firing.FromOneBased(b.Cylinders)
		}
	}

	if err := decode(pf.Params, &p.Params); err != nil {
		return nil, &LoadError{File: file, Message: fmt.Sprintf("invalid params: %v", err), Err: err}
	}

	if _, err := p.Engine(); err != nil {
		return nil, &LoadError{File: file, Message: err.Error(), Err: err}
	}
	return p, nil
}

// DecodeParams decodes a loose parameter map onto core.Params, keyed by
// the snake_case field names. Unknown keys are an error.
func DecodeParams(raw map[string]any) (core.Params, error) {
	var p core.Params
	err := decode(raw, &p)
	return p, err
}

func decode(input, out any) error {
	if input == nil {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           out,
		DecodeHook:       mapstructure.TextUnmarshallerHookFunc(),
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}
