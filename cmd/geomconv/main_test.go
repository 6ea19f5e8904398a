package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runArgs(t *testing.T, args ...string) (string, string) {
	t.Helper()
	opts, err := parseFlags(args)
	if err != nil {
		t.Fatalf("parseFlags(%v): %v", args, err)
	}
	var out, errOut bytes.Buffer
	if err := run(context.Background(), opts, &out, &errOut); err != nil {
		t.Fatalf("run(%v): %v", args, err)
	}
	return out.String(), errOut.String()
}

func TestConvertColor(t *testing.T) {
	out, _ := runArgs(t, "-from", "float32", "-to", "uint8", "-color", "0.5,0.25,1")
	if out != "128,64,255\n" {
		t.Fatalf("got %q", out)
	}

	out, _ = runArgs(t, "-from", "float32", "-to", "uint8", "0.5,0.25,1")
	if out != "0,0,1\n" {
		t.Fatalf("plain tuple: got %q", out)
	}
}

func TestConvertJSON(t *testing.T) {
	out, _ := runArgs(t, "-from", "double", "-to", "int", "-json", "1.9,-2.5")
	var res result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if res.From != "float64" || res.To != "int32" {
		t.Fatalf("kinds: %+v", res)
	}
	if len(res.Values) != 2 || res.Values[0] != 1 || res.Values[1] != -2 {
		t.Fatalf("values: %v", res.Values)
	}
	if res.Descriptor != "Tuple2<float64,ro> -> Tuple2<int32,ro> weight=0" {
		t.Fatalf("descriptor: %q", res.Descriptor)
	}
}

func TestIdentity(t *testing.T) {
	out, _ := runArgs(t, "-from", "float32", "-to", "float32", "-json", "0.1,2,3,4")
	var res result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatal(err)
	}
	if res.Descriptor != "" || len(res.Values) != 4 {
		t.Fatalf("identity: %+v", res)
	}

	out, _ = runArgs(t, "-from", "float32", "-to", "float32", "0.1,2")
	if out != "0.1,2\n" {
		t.Fatalf("float32 formatting: %q", out)
	}
}

func TestList(t *testing.T) {
	out, logs := runArgs(t, "-list", "-v")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 280 {
		t.Fatalf("descriptors = %d", len(lines))
	}
	if !strings.Contains(logs, "conversion registry populated") {
		t.Fatalf("verbose logs: %q", logs)
	}
}

func TestScript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "double.js")
	script := "function narrow(v) { return v * 2 }\nfunction widen(v) { return v / 2 }"
	if err := os.WriteFile(path, []byte(script), 0o644); err != nil {
		t.Fatal(err)
	}
	out, _ := runArgs(t, "-from", "float32", "-to", "uint8", "-color", "-script", path, "10,20,30")
	if out != "20,40,60\n" {
		t.Fatalf("got %q", out)
	}
}

func TestParseFlagsErrors(t *testing.T) {
	cases := [][]string{
		{"-from", "int64", "1,2"},
		{"-to", "half", "1,2"},
		{"1"},
		{"1,2,3,4,5"},
		{"1,x"},
		{"-color", "1,2"},
		{},
	}
	for _, args := range cases {
		if _, err := parseFlags(args); err == nil {
			t.Errorf("parseFlags(%v): expected error", args)
		}
	}
}
