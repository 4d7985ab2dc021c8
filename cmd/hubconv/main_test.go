// Copyright 2025 The HUBsim Authors. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertArgs(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"0x40C90FDB"})
	a.NoError(cmd.Execute())
	a.Contains(out.String(), "value:    3.141592860221863")
	a.Contains(out.String(), "hex:      0x40C90FDB")
	a.Contains(out.String(), "binary:   0|10000001|100100100001111110110111")
	a.Contains(out.String(), "storage:  0x400921FB70000000")
}

func TestConvertBadArg(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"0xZZ"})
	a.Error(cmd.Execute())
}

func TestConvertInteractive(t *testing.T) {
	a := assert.New(t)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader("1\n\n0x00000001\n"))
	cmd.SetArgs([]string{"-i"})
	a.NoError(cmd.Execute())
	a.Contains(out.String(), "hex:      0x00000001")
}
