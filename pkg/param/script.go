package param

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	zygo "github.com/glycerine/zygomys/zygo"
	"gopkg.in/yaml.v3"
)

// scriptTimeout is the hard limit for evaluating one configuration script.
const scriptTimeout = 5 * time.Second

// ScriptError is a non-fatal error from evaluating a configuration script,
// with the source line where it occurred when one can be extracted.
type ScriptError struct {
	Line    int
	Message string
}

func (e ScriptError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Message)
	}
	return e.Message
}

// LoadScript evaluates a zygomys configuration script and finalizes the
// result. Scripts set dotted parameter paths imperatively; the evaluated
// tree is frozen into the same immutable Config a YAML file produces.
func LoadScript(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("param: reading %s: %w", path, err)
	}
	cfg, err := ParseScript(string(raw))
	if err != nil {
		return nil, fmt.Errorf("param: %s: %w", path, err)
	}
	return cfg, nil
}

// ParseScript evaluates configuration script source in a fresh sandbox.
// Each call gets its own environment so evaluation stays deterministic.
//
// The script surface is small:
//
//	(matrix 4 4 4 4 3)
//	(param "case.leds.amount" 3)
//	(key_alias "back" "finger" 4 2)
//	(foot_polygon ["front" "WSW" -2 0] ["front" "SSW"] ["thumb" "SSE"])
func ParseScript(source string) (*Config, error) {
	tree := make(map[string]interface{})

	type outcome struct {
		err error
	}
	ch := make(chan outcome, 1)

	go func() {
		defer func() {
			if r := recover(); r != nil {
				ch <- outcome{err: fmt.Errorf("panic during script evaluation: %v", r)}
			}
		}()
		ch <- outcome{err: evalScript(source, tree)}
	}()

	timer := time.NewTimer(scriptTimeout)
	defer timer.Stop()
	select {
	case res := <-ch:
		if res.err != nil {
			return nil, res.err
		}
	case <-timer.C:
		return nil, fmt.Errorf("script evaluation timed out after %s", scriptTimeout)
	}

	raw, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("freezing script parameters: %w", err)
	}
	return Parse(raw)
}

// evalScript runs the source in a sandboxed zygomys environment, populating
// tree through the registered builtins. Sandbox mode keeps user scripts away
// from the filesystem and syscalls.
func evalScript(source string, tree map[string]interface{}) error {
	if strings.TrimSpace(source) == "" {
		return nil
	}

	env := zygo.NewZlispSandbox()
	defer env.Stop()
	registerConfigBuiltins(env, tree)

	if err := env.LoadString(preprocessSource(source)); err != nil {
		return scriptError(err)
	}
	if _, err := env.Run(); err != nil {
		return scriptError(err)
	}
	return nil
}

// registerConfigBuiltins installs the configuration builtins. They mutate
// the staging tree; immutability begins when the tree is frozen into Config.
func registerConfigBuiltins(env *zygo.Zlisp, tree map[string]interface{}) {
	env.AddFunction("param", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("param: want (param path value), got %d args", len(args))
		}
		path, err := sexpString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("param: path: %w", err)
		}
		val, err := sexpValue(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("param %s: %w", path, err)
		}
		setPath(tree, path, val)
		return zygo.SexpNull, nil
	})

	env.AddFunction("matrix", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) == 0 {
			return zygo.SexpNull, fmt.Errorf("matrix: want (matrix rows-per-column...)")
		}
		cols := make([]interface{}, 0, len(args))
		for i, arg := range args {
			rows, err := sexpFloat(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("matrix: column %d: %w", i, err)
			}
			cols = append(cols, map[string]interface{}{"rows": int(rows)})
		}
		setPath(tree, "matrix.columns", cols)
		return zygo.SexpNull, nil
	})

	env.AddFunction("key_alias", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("key_alias: want (key_alias name cluster column row)")
		}
		alias, err := sexpString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key_alias: name: %w", err)
		}
		cluster, err := sexpString(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key_alias %s: cluster: %w", alias, err)
		}
		col, err := sexpFloat(args[2])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key_alias %s: column: %w", alias, err)
		}
		row, err := sexpFloat(args[3])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("key_alias %s: row: %w", alias, err)
		}
		setPath(tree, "key-aliases."+alias, map[string]interface{}{
			"cluster": cluster,
			"column":  int(col),
			"row":     int(row),
		})
		return zygo.SexpNull, nil
	})

	env.AddFunction("foot_polygon", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		var points []interface{}
		for i, arg := range args {
			items, err := sexpList(arg)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: %w", i, err)
			}
			if len(items) != 2 && len(items) != 4 {
				return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: want [alias corner] or [alias corner dx dy]", i)
			}
			alias, err := sexpString(items[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: alias: %w", i, err)
			}
			corner, err := sexpString(items[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: corner: %w", i, err)
			}
			point := map[string]interface{}{
				"key-alias":  alias,
				"key-corner": corner,
			}
			if len(items) == 4 {
				dx, err := sexpFloat(items[2])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: offset x: %w", i, err)
				}
				dy, err := sexpFloat(items[3])
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("foot_polygon: point %d: offset y: %w", i, err)
				}
				point["offset"] = []interface{}{dx, dy}
			}
			points = append(points, point)
		}
		appendPath(tree, "case.foot-plates.polygons", map[string]interface{}{"points": points})
		return zygo.SexpNull, nil
	})
}

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource converts traditional Lisp ; line comments to the //
// form zygomys expects. String literal boundaries are respected so a
// semicolon inside a quoted path survives untouched.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source))
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

// ---------------------------------------------------------------------------
// Sexp conversion
// ---------------------------------------------------------------------------

func sexpString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

func sexpFloat(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

func sexpList(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// sexpValue converts a Sexp into a plain Go value suitable for the staging
// tree: numbers, strings, booleans, or flat lists of those.
func sexpValue(s zygo.Sexp) (interface{}, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return v.Val, nil
	case *zygo.SexpFloat:
		return v.Val, nil
	case *zygo.SexpStr:
		return v.S, nil
	case *zygo.SexpBool:
		return v.Val, nil
	case *zygo.SexpArray:
		return sexpValues(v.Val)
	case *zygo.SexpPair:
		items, err := zygo.ListToArray(v)
		if err != nil {
			return nil, err
		}
		return sexpValues(items)
	}
	return nil, fmt.Errorf("unsupported value %T (%s)", s, s.SexpString(nil))
}

func sexpValues(items []zygo.Sexp) ([]interface{}, error) {
	out := make([]interface{}, 0, len(items))
	for _, it := range items {
		val, err := sexpValue(it)
		if err != nil {
			return nil, err
		}
		out = append(out, val)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Staging tree
// ---------------------------------------------------------------------------

// setPath writes a value at a dotted path, creating intermediate maps.
func setPath(tree map[string]interface{}, path string, val interface{}) {
	keys := strings.Split(path, ".")
	cur := tree
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[k] = next
		}
		cur = next
	}
	cur[keys[len(keys)-1]] = val
}

// appendPath appends a value to a list at a dotted path.
func appendPath(tree map[string]interface{}, path string, val interface{}) {
	keys := strings.Split(path, ".")
	cur := tree
	for _, k := range keys[:len(keys)-1] {
		next, ok := cur[k].(map[string]interface{})
		if !ok {
			next = make(map[string]interface{})
			cur[k] = next
		}
		cur = next
	}
	leaf := keys[len(keys)-1]
	list, _ := cur[leaf].([]interface{})
	cur[leaf] = append(list, val)
}

// ---------------------------------------------------------------------------
// Error extraction
// ---------------------------------------------------------------------------

// scriptLinePattern matches zygomys messages of the form "on line N: ...".
var scriptLinePattern = regexp.MustCompile(`(?i)(?:error )?on line (\d+):\s*(.*)`)

// scriptError converts a zygomys error into a ScriptError, extracting the
// source line when the message carries one.
func scriptError(err error) error {
	msg := err.Error()
	if m := scriptLinePattern.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return ScriptError{Line: line, Message: strings.TrimSpace(m[2])}
	}
	return ScriptError{Message: strings.TrimSpace(msg)}
}
