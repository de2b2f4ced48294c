package translator

import (
	"testing"

	"github.com/vela-lang/velac/internal/ast"
	"github.com/vela-lang/velac/internal/diagnostics"
	"github.com/vela-lang/velac/internal/env"
	"github.com/vela-lang/velac/internal/target"
)

func TestTranslateDotCallToKnownModuleUsesBareModuleName(t *testing.T) {
	ctx := newTestContext()
	n := &ast.DotCallNode{
		Target: &ast.AliasesNode{Segments: []string{"Logger"}},
		Fun:    "info",
		Args:   []ast.Node{&ast.StringLiteral{Value: "hi"}},
	}
	got, err := translateDotCall(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateDotCall: %v", err)
	}
	call, ok := got.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want *target.CallExpression", got)
	}
	member, ok := call.Callee.(*target.MemberExpression)
	if !ok {
		t.Fatalf("callee = %#v, want *target.MemberExpression", call.Callee)
	}
	obj, ok := member.Object.(*target.Identifier)
	if !ok || obj.Name != "Logger" {
		t.Errorf("object = %#v, want Logger", member.Object)
	}
	prop, ok := member.Property.(*target.Identifier)
	if !ok || prop.Name != "info" {
		t.Errorf("property = %#v, want info", member.Property)
	}
}

func TestTranslateDotCallToArbitraryTargetDispatchesTarget(t *testing.T) {
	ctx := newTestContext()
	n := &ast.DotCallNode{
		Target: &ast.Identifier{Name: "conn"},
		Fun:    "close",
		Args:   nil,
	}
	got, err := translateDotCall(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateDotCall: %v", err)
	}
	call, ok := got.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want *target.CallExpression", got)
	}
	member := call.Callee.(*target.MemberExpression)
	obj, ok := member.Object.(*target.Identifier)
	if !ok || obj.Name != "conn" {
		t.Errorf("object = %#v, want conn", member.Object)
	}
}

func TestTranslateCallLowersKernelBuiltinToKernelNamespace(t *testing.T) {
	ctx := newTestContext()
	n := &ast.CallNode{Name: "+", Args: []ast.Node{&ast.IntLiteral{Value: 1}, &ast.IntLiteral{Value: 2}}}
	got, err := translateCall(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateCall: %v", err)
	}
	call, ok := got.(*target.CallExpression)
	if !ok {
		t.Fatalf("got %#v, want *target.CallExpression", got)
	}
	member, ok := call.Callee.(*target.MemberExpression)
	if !ok {
		t.Fatalf("callee = %#v, want *target.MemberExpression", call.Callee)
	}
	obj := member.Object.(*target.Identifier)
	if obj.Name != "Kernel" {
		t.Errorf("object = %q, want Kernel", obj.Name)
	}
	prop := member.Property.(*target.Identifier)
	if prop.Name != "+" {
		t.Errorf("property = %q, want +", prop.Name)
	}
}

func TestTranslateCallResolvesThroughImportToQualifiedCall(t *testing.T) {
	ctx := newTestContext()
	e := env.New(".").WithImport("feed", env.ImportedName{Module: "Zoo.Keeper", Arity: 1, Kind: "function"})
	n := &ast.CallNode{Name: "feed", Args: []ast.Node{&ast.Identifier{Name: "animal"}}}
	got, err := translateCall(ctx, e, n)
	if err != nil {
		t.Fatalf("translateCall: %v", err)
	}
	call := got.(*target.CallExpression)
	member := call.Callee.(*target.MemberExpression)
	obj := member.Object.(*target.Identifier)
	if obj.Name != "Zoo_Keeper" {
		t.Errorf("object = %q, want Zoo_Keeper", obj.Name)
	}
	prop := member.Property.(*target.Identifier)
	if prop.Name != "feed" {
		t.Errorf("property = %q, want feed", prop.Name)
	}
}

func TestTranslateCallUnresolvedNameEmitsLocalCall(t *testing.T) {
	ctx := newTestContext()
	n := &ast.CallNode{Name: "greet", Args: nil}
	got, err := translateCall(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateCall: %v", err)
	}
	call := got.(*target.CallExpression)
	id, ok := call.Callee.(*target.Identifier)
	if !ok || id.Name != "greet" {
		t.Errorf("callee = %#v, want bare identifier greet", call.Callee)
	}

	if len(ctx.Diagnostics) != 1 {
		t.Fatalf("Diagnostics = %v, want exactly one I001 resolution-miss diagnostic", ctx.Diagnostics)
	}
	if ctx.Diagnostics[0].Code != diagnostics.InfoResolutionMiss {
		t.Errorf("diagnostic code = %s, want %s", ctx.Diagnostics[0].Code, diagnostics.InfoResolutionMiss)
	}
}

// TestTranslateCallUnresolvedNameRecordsPendingCallWithinAModule covers
// the case translateCall runs inside a registered module: the miss
// must be recorded as a PendingCall so PatchUnresolvedImports can
// qualify it later if a cross-file import resolves it.
func TestTranslateCallUnresolvedNameRecordsPendingCallWithinAModule(t *testing.T) {
	ctx := newTestContext()
	ctx.Registry.AddModule([]string{"Main"}, "main.vl", ast.Meta{})
	e := env.New(".").WithModule("Main")

	n := &ast.CallNode{Name: "helper", Args: nil}
	got, err := translateCall(ctx, e, n)
	if err != nil {
		t.Fatalf("translateCall: %v", err)
	}
	call := got.(*target.CallExpression)

	rec, _ := ctx.Registry.GetModule("Main")
	if len(rec.PendingCalls) != 1 {
		t.Fatalf("PendingCalls = %v, want exactly one entry", rec.PendingCalls)
	}
	pc := rec.PendingCalls[0]
	if pc.Name != "helper" || pc.Arity != 0 {
		t.Errorf("pending call = %+v, want helper/0", pc)
	}
	if pc.Call != call {
		t.Errorf("pending call should point at the emitted CallExpression node")
	}
}

func TestTranslateCallFiltersIllegalCharactersInUnresolvedName(t *testing.T) {
	ctx := newTestContext()
	n := &ast.CallNode{Name: "valid?", Args: nil}
	got, err := translateCall(ctx, env.New("."), n)
	if err != nil {
		t.Fatalf("translateCall: %v", err)
	}
	call := got.(*target.CallExpression)
	id := call.Callee.(*target.Identifier)
	if id.Name != "valid__qmark__" {
		t.Errorf("callee name = %q, want valid__qmark__", id.Name)
	}
}
