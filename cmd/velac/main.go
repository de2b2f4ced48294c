// Command velac drives the compilation pipeline (internal/pipeline)
// over a set of pre-parsed source ASTs, the way the teacher's
// cmd/funxy/main.go drives its own evaluator pipeline: positional
// arguments, no flag package, a couple of recognized leading options.
// Parsing Vela source text is out of scope here (spec.md Non-goals);
// velac consumes the JSON AST internal/astjson decodes.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/astjson"
	"github.com/vela-lang/velac/internal/cache"
	"github.com/vela-lang/velac/internal/config"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/macro"
	"github.com/vela-lang/velac/internal/pipeline"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-c config.yaml] <source.json> [source2.json ...]\n", os.Args[0])
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	configPath := "velac.yaml"
	var files []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-c", "--config":
			i++
			if i >= len(args) {
				usage()
				return 1
			}
			configPath = args[i]
		case "-h", "--help", "help":
			usage()
			return 0
		default:
			files = append(files, args[i])
		}
	}
	if len(files) == 0 {
		usage()
		return 1
	}

	cfg, err := config.LoadCompilerConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "velac: loading %s: %v\n", configPath, err)
		return 1
	}

	level := detectColorLevel()

	var mc *cache.Cache
	sourceBytes := map[string][]byte{}
	sources := map[string]*ast.Program{}

	if cfg.EnableModuleCache {
		mc, err = cache.Open(cfg.CacheFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "velac: opening module cache %s: %v\n", cfg.CacheFile, err)
			return 1
		}
		defer mc.Close()
	}

	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			fmt.Fprintf(os.Stderr, "velac: reading %s: %v\n", f, err)
			return 1
		}
		prog, err := astjson.DecodeProgram(f, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "velac: %v\n", err)
			return 1
		}
		sourceBytes[f] = data
		sources[f] = prog
	}

	pc := pipeline.CompileWithLimit(cfg.Root, sources, macro.Identity, cfg.ParallelFiles)

	if len(pc.Errors) > 0 {
		for _, err := range pc.Errors {
			reportErr(level, err)
		}
		return 1
	}

	for _, d := range pc.Diagnostics {
		reportErr(level, d)
	}

	if mc != nil {
		cacheModuleExports(mc, pc, sourceBytes)
	}

	for path, text := range pc.Outputs {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "velac: creating %s: %v\n", filepath.Dir(path), err)
			return 1
		}
		if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
			fmt.Fprintf(os.Stderr, "velac: writing %s: %v\n", path, err)
			return 1
		}
	}

	return 0
}

// cacheModuleExports records each translated module's export set,
// keyed by its source file's content hash. The records are only
// written; no later run reads them, so every file is translated again.
func cacheModuleExports(mc *cache.Cache, pc *pipeline.PipelineContext, sourceBytes map[string][]byte) {
	if pc.Registry == nil {
		return
	}
	for _, m := range pc.Registry.AllModules() {
		data, ok := sourceBytes[m.Source]
		if !ok {
			continue
		}
		entry := cache.Entry{}
		for na := range m.Functions {
			entry.Functions = append(entry.Functions, cache.NameArity{Name: na.Name, Arity: na.Arity})
		}
		for na := range m.Macros {
			entry.Macros = append(entry.Macros, cache.NameArity{Name: na.Name, Arity: na.Arity})
		}
		hash := cache.ContentHash(data)
		if err := mc.Store(m.DottedName(), hash, entry); err != nil {
			fmt.Fprintf(os.Stderr, "velac: caching %s: %v\n", m.DottedName(), err)
		}
	}
}

func reportErr(level colorLevel, err error) {
	code := "E000"
	if de, ok := err.(*diagnostics.DiagnosticError); ok {
		code = string(de.Code)
	}
	fmt.Fprintln(os.Stderr, colorize(level, code, err.Error()))
}
