// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package hcl

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// EncodeProjectFile renders the project file for the given project name.
func EncodeProjectFile(name string) []byte {
	f := hclwrite.NewEmptyFile()
	f.Body().SetAttributeValue("project", cty.StringVal(name))
	return f.Bytes()
}

// DecodeProjectFile parses a project file and returns the project name.
func DecodeProjectFile(filename string, src []byte) (string, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return "", fmt.Errorf("failed to parse project file %s: %w", filename, diags)
	}

	var pf projectFile
	if diags := gohcl.DecodeBody(file.Body, nil, &pf); diags.HasErrors() {
		return "", fmt.Errorf("failed to decode project file %s: %w", filename, diags)
	}
	return pf.Project, nil
}
