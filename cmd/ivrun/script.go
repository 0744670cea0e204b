package main

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// opSpec is one container operation, from a YAML script or an interactive
// command line.
type opSpec struct {
	Op     string `yaml:"op"`
	Index  int    `yaml:"index"`
	Count  int    `yaml:"count"`
	Value  int    `yaml:"value"`
	Values []int  `yaml:"values"`
}

type script struct {
	Capacity int      `yaml:"capacity"`
	Ops      []opSpec `yaml:"ops"`
}

var knownOps = map[string]bool{
	"push":   true,
	"pop":    true,
	"insert": true,
	"erase":  true,
	"resize": true,
	"assign": true,
	"append": true,
	"clear":  true,
}

func parseScript(data []byte) (*script, error) {
	var s script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, op := range s.Ops {
		if !knownOps[op.Op] {
			return nil, fmt.Errorf("parse script: step %d: unknown op %q", i, op.Op)
		}
	}
	return &s, nil
}

// parseCommand parses an interactive command such as "push 5", "insert 1 9",
// or "assign 1 2 3".
func parseCommand(line string) (opSpec, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return opSpec{}, fmt.Errorf("empty command")
	}

	op := opSpec{Op: fields[0]}
	if !knownOps[op.Op] {
		return opSpec{}, fmt.Errorf("unknown command %q", op.Op)
	}

	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil {
			return opSpec{}, fmt.Errorf("argument %q is not an integer", f)
		}
		args = append(args, n)
	}

	switch op.Op {
	case "push":
		if len(args) != 1 {
			return opSpec{}, fmt.Errorf("usage: push VALUE")
		}
		op.Value = args[0]
	case "pop", "clear":
		if len(args) != 0 {
			return opSpec{}, fmt.Errorf("usage: %s", op.Op)
		}
	case "insert":
		if len(args) != 2 {
			return opSpec{}, fmt.Errorf("usage: insert INDEX VALUE")
		}
		op.Index, op.Value = args[0], args[1]
	case "erase":
		if len(args) != 1 {
			return opSpec{}, fmt.Errorf("usage: erase INDEX")
		}
		op.Index = args[0]
	case "resize":
		if len(args) != 1 {
			return opSpec{}, fmt.Errorf("usage: resize COUNT")
		}
		op.Count = args[0]
	case "assign", "append":
		op.Values = args
	}
	return op, nil
}
