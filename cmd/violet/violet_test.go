package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matty-l/violet/dialect/javalite"
	"github.com/matty-l/violet/dialect/rubylite"
	"github.com/matty-l/violet/frontend"
	"github.com/matty-l/violet/lr/forest"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeFile(t *testing.T, dir, name, content string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	conf, err := LoadConfig("")
	if err != nil || conf != DefaultConfig() {
		t.Errorf("Expected defaults for empty path, is %+v, err = %v", conf, err)
	}
	path := writeFile(t, t.TempDir(), "violet.yaml", "dialect: rubylite\npolicy: first-match\n")
	conf, err = LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Dialect != rubylite.Name || conf.Trace != DefaultConfig().Trace {
		t.Errorf("Expected dialect from file and default trace level, is %+v", conf)
	}
	if p, err := conf.ForestPolicy(); err != nil || p != forest.FirstMatch {
		t.Errorf("Expected first-match policy, is %v, err = %v", p, err)
	}
	conf.Policy = "longest"
	if _, err := conf.ForestPolicy(); err == nil {
		t.Errorf("Expected unknown policy to be rejected")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("Expected missing config file to be reported")
	}
}

func TestGlobalConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	path := writeFile(t, t.TempDir(), "violet.yaml", "policy: first-match\ntrace-chart: true\n")
	conf, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if !conf.TraceChart {
		t.Errorf("Expected trace-chart to be read from config file")
	}
	gconf.Initialize(conf)
	defer gconf.Initialize(DefaultConfig())
	if !gconf.GetBool("trace-chart") || !gconf.GetBool("extract-first-match") {
		t.Errorf("Expected chart tracing and first-match extraction to be configured globally")
	}
	if gconf.GetString("tracingsyntax") != DefaultConfig().Trace {
		t.Errorf("Expected global tracers to use trace level of config, is %q", gconf.GetString("tracingsyntax"))
	}
	if DefaultConfig().GetBool("extract-first-match") || DefaultConfig().GetBool("trace-chart") {
		t.Errorf("Expected default config to extract leftmost-shortest without chart tracing")
	}
	opts, err := analysisOptions(conf)
	if err != nil || len(opts) != 2 {
		t.Errorf("Expected policy and chart tracing options, have %d, err = %v", len(opts), err)
	}
}

func TestLeveledAST(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	unit, err := frontend.Analyze(frontend.DefaultRegistry(), javalite.Name, "class A { int x; }")
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledAST(unit.AST, javalite.Kinds())
	if len(ll) == 0 || ll[0].Level != 0 || ll[0].Text != "Program" {
		t.Fatalf("Expected leveled list to start with Program, is %v", ll)
	}
	found := false
	for _, item := range ll {
		if item.Text == `"x" @1` {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected token x in leveled list, is %v", ll)
	}
}

func TestCheck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	dir := t.TempDir()
	good := writeFile(t, dir, "good.jl", "class A { int x; }\nclass B extends A { }")
	bad := writeFile(t, dir, "bad.jl", "class A { int x }")
	reg := frontend.DefaultRegistry()
	if err := check(reg, DefaultConfig(), []string{good}); err != nil {
		t.Errorf("Expected good.jl to pass, err = %v", err)
	}
	if err := check(reg, DefaultConfig(), []string{good, bad}); err == nil {
		t.Errorf("Expected bad.jl to fail")
	}
}

func TestReplCommands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "violet.semantic")
	defer teardown()
	//
	intp := &Intp{reg: frontend.DefaultRegistry(), conf: DefaultConfig()}
	if quit := intp.Eval(":dialect rubylite"); quit || intp.conf.Dialect != rubylite.Name {
		t.Errorf("Expected dialect switch to rubylite, is %s", intp.conf.Dialect)
	}
	if intp.Eval(":dialect cobol"); intp.conf.Dialect != rubylite.Name {
		t.Errorf("Expected unknown dialect to be refused")
	}
	if quit := intp.Eval("class A attr x end"); quit {
		t.Errorf("Expected analysis not to end the session")
	}
	if quit := intp.Eval(":quit"); !quit {
		t.Errorf("Expected :quit to end the session")
	}
}
