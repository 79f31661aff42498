// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/statespace/internal/config"
	"github.com/vk/statespace/internal/ctxlog"
	"github.com/vk/statespace/internal/fsutil"
	"github.com/vk/statespace/internal/paramspace"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL sweep loader.
func NewLoader() *Loader {
	return &Loader{}
}

// evalContext exposes the collection functions usable in `values`.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Functions: map[string]function.Function{
			"range":    stdlib.RangeFunc,
			"concat":   stdlib.ConcatFunc,
			"flatten":  stdlib.FlattenFunc,
			"distinct": stdlib.DistinctFunc,
		},
	}
}

// Load parses every .hcl file under the given paths into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find sweep files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	parser := hclparse.NewParser()
	evalCtx := evalContext()

	for _, file := range files {
		model.Files = append(model.Files, file)
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root sweepFile
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		if root.Project != nil {
			if err := model.SetProjectName(*root.Project, file); err != nil {
				return nil, err
			}
		}

		for _, block := range root.Parameters {
			param, err := translateParameter(block, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			if err := model.Space.Add(param); err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
		}
	}

	logger.Debug("HCL loading complete.", "project", model.Name(), "parameters", model.Space.Len())
	return model, nil
}

// translateParameter evaluates the values expression of a parameter block.
func translateParameter(block *parameterBlock, evalCtx *hcl.EvalContext) (paramspace.Parameter, error) {
	val, diags := block.Values.Value(evalCtx)
	if diags.HasErrors() {
		return paramspace.Parameter{}, fmt.Errorf("parameter %q: %w", block.Name, diags)
	}
	values, err := candidates(val)
	if err != nil {
		return paramspace.Parameter{}, fmt.Errorf("parameter %q: %w", block.Name, err)
	}
	return paramspace.Parameter{
		Name:        block.Name,
		Description: block.Description,
		Values:      values,
	}, nil
}

// candidates flattens one level of a collection value into its elements.
func candidates(val cty.Value) ([]cty.Value, error) {
	ty := val.Type()
	if !(ty.IsListType() || ty.IsTupleType() || ty.IsSetType()) {
		return nil, fmt.Errorf("values must be a list, got %s", ty.FriendlyName())
	}
	if val.IsNull() {
		return nil, fmt.Errorf("values must not be null")
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("values must be known at load time")
	}

	out := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		out = append(out, v)
	}
	return out, nil
}
