package registry

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/env"
)

func TestAddModuleCollision(t *testing.T) {
	r := New(".", env.New("."))

	if _, err := r.AddModule([]string{"Animals", "Dog"}, "a.vl", ast.Meta{}); err != nil {
		t.Fatalf("first AddModule: %v", err)
	}
	if _, err := r.AddModule([]string{"Animals", "Dog"}, "b.vl", ast.Meta{}); err == nil {
		t.Fatalf("expected NameCollision for same dotted name from a different source")
	}
	// Same source re-registering (e.g. a second traversal pass) must
	// not be treated as a collision.
	if _, err := r.AddModule([]string{"Animals", "Dog"}, "a.vl", ast.Meta{}); err != nil {
		t.Fatalf("re-adding from the same source should be a no-op: %v", err)
	}
}

func TestRecordFunctionAndAlias(t *testing.T) {
	r := New(".", env.New("."))
	r.AddModule([]string{"Animals"}, "a.vl", ast.Meta{})

	r.RecordFunction("Animals", "speak", 1, false)
	r.RecordFunction("Animals", "noisy", 0, true)
	r.AddAlias("Animals", "A", "Animals")

	rec, ok := r.GetModule("Animals")
	if !ok {
		t.Fatal("module not found")
	}
	if !rec.Functions[NameArity{"speak", 1}] {
		t.Errorf("speak/1 not recorded as a function")
	}
	if !rec.Macros[NameArity{"noisy", 0}] {
		t.Errorf("noisy/0 not recorded as a macro")
	}
	if rec.Aliases["A"] != "Animals" {
		t.Errorf("alias A -> Animals not recorded, got %q", rec.Aliases["A"])
	}

	// Re-aliasing replaces the previous binding.
	r.AddAlias("Animals", "A", "Zoo.Animals")
	rec, _ = r.GetModule("Animals")
	if rec.Aliases["A"] != "Zoo.Animals" {
		t.Errorf("re-aliasing A did not replace binding, got %q", rec.Aliases["A"])
	}
}

func TestProcessImportsResolvesBareNames(t *testing.T) {
	r := New(".", env.New("."))
	r.AddModule([]string{"Zoo"}, "zoo.vl", ast.Meta{})
	r.AddModule([]string{"Main"}, "main.vl", ast.Meta{})
	r.RecordFunction("Zoo", "feed", 1, false)
	r.RecordFunction("Zoo", "secret", 0, false)

	main, _ := r.GetModule("Main")
	main.Imports = append(main.Imports, ImportEntry{
		ModuleName: "Zoo",
		Kind:       "import",
		Spec:       ast.ImportSpec{Only: []ast.NameArity{{Name: "feed", Arity: 1}}},
	})

	r.ProcessImports()

	main, _ = r.GetModule("Main")
	if main.ResolvedImports[NameArity{"feed", 1}] != "Zoo" {
		t.Errorf("feed/1 should resolve to Zoo, got %q", main.ResolvedImports[NameArity{"feed", 1}])
	}
	if _, ok := main.ResolvedImports[NameArity{"secret", 0}]; ok {
		t.Errorf("secret/0 should be excluded by the `only` filter")
	}
}

func TestProcessImportsRequireOnlyExposesMacros(t *testing.T) {
	r := New(".", env.New("."))
	r.AddModule([]string{"Logger"}, "logger.vl", ast.Meta{})
	r.AddModule([]string{"Main"}, "main.vl", ast.Meta{})
	r.RecordFunction("Logger", "log", 1, true)
	r.RecordFunction("Logger", "helper", 1, false)

	main, _ := r.GetModule("Main")
	main.Imports = append(main.Imports, ImportEntry{ModuleName: "Logger", Kind: "require"})
	r.ProcessImports()

	main, _ = r.GetModule("Main")
	if main.ResolvedImports[NameArity{"log", 1}] != "Logger" {
		t.Errorf("require should expose macro log/1")
	}
	if _, ok := main.ResolvedImports[NameArity{"helper", 1}]; ok {
		t.Errorf("require must not expose ordinary functions")
	}
}

func TestProcessImportsUnknownModuleIsResolutionMiss(t *testing.T) {
	r := New(".", env.New("."))
	r.AddModule([]string{"Main"}, "main.vl", ast.Meta{})
	main, _ := r.GetModule("Main")
	main.Imports = append(main.Imports, ImportEntry{ModuleName: "Nowhere", Kind: "import"})

	r.ProcessImports() // must not panic or error; contributes nothing

	main, _ = r.GetModule("Main")
	if len(main.ResolvedImports) != 0 {
		t.Errorf("import of an unknown module should resolve nothing, got %v", main.ResolvedImports)
	}
}

func TestAddProtocolImplCreatesImplicitProtocol(t *testing.T) {
	r := New(".", env.New("."))
	r.AddProtocolImpl("Show", "Animals.Dog", nil)

	rec, ok := r.GetProtocol("Show")
	if !ok {
		t.Fatal("expected an implicitly created protocol record")
	}
	if rec.Spec != nil {
		t.Errorf("implicitly created protocol should have a nil spec, got %v", rec.Spec)
	}
	if _, ok := rec.Impls["Animals.Dog"]; !ok {
		t.Errorf("expected impl for Animals.Dog")
	}
}

func TestMarkRaiseable(t *testing.T) {
	r := New(".", env.New("."))
	r.AddModule([]string{"MyError"}, "e.vl", ast.Meta{})
	r.MarkRaiseable("MyError")

	rec, _ := r.GetModule("MyError")
	if !rec.Raiseable {
		t.Errorf("expected MyError to be marked Raiseable")
	}
}
