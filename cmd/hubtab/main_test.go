// Copyright 2025 The HUBsim Authors. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpecialTable(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--op", "add", "--special"})
	a.NoError(cmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	a.Len(lines, 65)
	a.Equal("X,Y,Z,Description", lines[0])
}

func TestSampledTable(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--op", "sqrt", "--samples", "10", "--seed", "1"})
	a.NoError(cmd.Execute())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	a.Len(lines, 11)
	a.Equal("X,Z", lines[0])
}

func TestUnknownOp(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"--op", "mod"})
	a.Error(cmd.Execute())
}
