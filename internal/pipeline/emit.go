package pipeline

import (
	"strings"

	"github.com/vela-lang/velac/internal/modulepath"
	"github.com/vela-lang/velac/internal/printer"
	"github.com/vela-lang/velac/internal/target"
)

// EmitStage walks the merged Registry and renders each module, plus
// any loose per-file top-level forms and protocol dispatch programs,
// to text keyed by the output path spec.md §6's module-to-file-path
// mapping computes.
type EmitStage struct{}

func (EmitStage) Process(pc *PipelineContext) *PipelineContext {
	if pc.Registry != nil {
		for _, m := range pc.Registry.AllModules() {
			if m.Body == nil {
				continue
			}
			path := modulepath.Dir(pc.Root, m.Name) + ".js"
			pc.Outputs[path] = printer.Print(m.Body)
		}
		for _, prot := range pc.Registry.AllProtocols() {
			for forType, impl := range prot.Impls {
				path := protocolImplPath(pc.Root, prot.Name, forType)
				pc.Outputs[path] = printer.Print(impl)
			}
		}
	}

	for file, programs := range pc.Programs {
		for i, prog := range programs {
			path := loosePath(pc.Root, file, i)
			pc.Outputs[path] = printer.Print(prog)
		}
	}

	for i, prog := range pc.ProtocolPrograms {
		path := protocolDispatchPath(pc.Root, i, prog)
		pc.Outputs[path] = printer.Print(prog)
	}

	return pc
}

func protocolImplPath(root, protocol, forType string) string {
	return modulepath.Dir(root, []string{"protocols", protocol, forType}) + ".js"
}

func protocolDispatchPath(root string, index int, prog *target.Program) string {
	name := protocolDispatchName(prog)
	if name == "" {
		name = "protocol_" + strconvIndex(index)
	}
	return modulepath.Dir(root, []string{"protocols", name, "__dispatch__"}) + ".js"
}

func protocolDispatchName(prog *target.Program) string {
	for _, stmt := range prog.Body {
		decl, ok := stmt.(*target.VariableDeclaration)
		if !ok || decl.Name != "__name__" {
			continue
		}
		if lit, ok := decl.Init.(*target.Literal); ok {
			if s, ok := lit.Value.(string); ok {
				return s
			}
		}
	}
	return ""
}

func strconvIndex(i int) string {
	digits := "0123456789"
	if i < 10 {
		return string(digits[i])
	}
	out := ""
	for i > 0 {
		out = string(digits[i%10]) + out
		i /= 10
	}
	return out
}

func loosePath(root, sourceFile string, index int) string {
	base := sourceFile
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.TrimSuffix(base, ".vl")
	base = strings.TrimSuffix(base, ".vela")
	if index > 0 {
		base = base + "_" + strconvIndex(index)
	}
	return modulepath.Dir(root, []string{base}) + ".js"
}
