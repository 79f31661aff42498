// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

// Package yamlcfg provides the YAML implementation of config.Loader.
//
//	project: morphct
//	parameters:
//	  temperature: [300]
//	  lifetimes:
//	    description: Carrier lifetimes in seconds
//	    values: [[1.0e-13, 1.0e-12]]
//
// The parameters mapping is read through yaml.Node so that declaration order
// survives decoding.
package yamlcfg

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/statespace/internal/config"
	"github.com/vk/statespace/internal/ctxlog"
	"github.com/vk/statespace/internal/fsutil"
	"github.com/vk/statespace/internal/paramspace"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"
)

// Extensions lists the file extensions handled by this loader.
var Extensions = []string{".yaml", ".yml"}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML sweep loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every YAML file under the given paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, Extensions...)
		if err != nil {
			return nil, fmt.Errorf("failed to find sweep files in %s: %w", path, err)
		}
		files = append(files, found...)
	}

	model := config.NewModel()
	for _, file := range files {
		model.Files = append(model.Files, file)
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		if err := decodeFile(file, data, model); err != nil {
			return nil, err
		}
	}

	logger.Debug("YAML loading complete.", "project", model.Name(), "parameters", model.Space.Len())
	return model, nil
}

func decodeFile(file string, data []byte, model *config.Model) error {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse YAML file %s: %w", file, err)
	}
	if len(doc.Content) == 0 {
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return fmt.Errorf("%s:%d: top level must be a mapping", file, root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "project":
			var name string
			if err := value.Decode(&name); err != nil {
				return fmt.Errorf("%s:%d: project: %w", file, value.Line, err)
			}
			if err := model.SetProjectName(name, file); err != nil {
				return err
			}
		case "parameters":
			if err := decodeParameters(file, value, model.Space); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%s:%d: unsupported key %q", file, key.Line, key.Value)
		}
	}
	return nil
}

func decodeParameters(file string, node *yaml.Node, space *paramspace.Space) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("%s:%d: parameters must be a mapping", file, node.Line)
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		param := paramspace.Parameter{Name: key.Value}

		valuesNode := value
		if value.Kind == yaml.MappingNode {
			valuesNode = nil
			for j := 0; j+1 < len(value.Content); j += 2 {
				switch value.Content[j].Value {
				case "values":
					valuesNode = value.Content[j+1]
				case "description":
					param.Description = value.Content[j+1].Value
				default:
					return fmt.Errorf("%s:%d: parameter %q: unsupported key %q", file, value.Content[j].Line, key.Value, value.Content[j].Value)
				}
			}
			if valuesNode == nil {
				return fmt.Errorf("%s:%d: parameter %q: missing values", file, value.Line, key.Value)
			}
		}

		values, err := candidates(valuesNode)
		if err != nil {
			return fmt.Errorf("%s:%d: parameter %q: %w", file, valuesNode.Line, key.Value, err)
		}
		param.Values = values

		if err := space.Add(param); err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
	}
	return nil
}

func candidates(node *yaml.Node) ([]cty.Value, error) {
	if node.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("values must be a sequence")
	}
	out := make([]cty.Value, 0, len(node.Content))
	for _, item := range node.Content {
		var raw any
		if err := item.Decode(&raw); err != nil {
			return nil, err
		}
		v, err := paramspace.ToValue(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
