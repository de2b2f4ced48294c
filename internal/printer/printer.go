// Package printer renders the internal/target AST back to source
// text, adapted from the teacher's internal/prettyprinter/code_printer.go
// buffer/indent/column bookkeeping, but driving a switch over
// target.Node instead of a visitor interface, matching the rest of
// this repository's dispatch style.
package printer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/vela-lang/velac/internal/target"
)

type Printer struct {
	buf    bytes.Buffer
	indent int
}

func New() *Printer {
	return &Printer{}
}

// Print renders an entire program to text.
func Print(p *target.Program) string {
	pr := New()
	pr.printProgram(p)
	return pr.buf.String()
}

func (p *Printer) writeIndent() {
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *Printer) line(format string, args ...interface{}) {
	p.writeIndent()
	fmt.Fprintf(&p.buf, format, args...)
	p.buf.WriteByte('\n')
}

func (p *Printer) printProgram(prog *target.Program) {
	for _, stmt := range prog.Body {
		p.printStatement(stmt)
	}
}

func (p *Printer) printStatement(n target.Node) {
	switch s := n.(type) {
	case *target.ImportDeclaration:
		p.line("import %s from %q;", s.Local, s.From)
	case *target.ExportDeclaration:
		names := append([]string{}, s.Names...)
		sort.Strings(names)
		p.line("export { %s };", strings.Join(names, ", "))
	case *target.VariableDeclaration:
		p.writeIndent()
		fmt.Fprintf(&p.buf, "%s %s = ", s.Kind, s.Name)
		p.printExpr(s.Init)
		p.buf.WriteString(";\n")
	case *target.FunctionDeclaration:
		p.writeIndent()
		fmt.Fprintf(&p.buf, "function %s(%s) ", s.Name, strings.Join(s.Params, ", "))
		p.printBlock(s.Body)
		p.buf.WriteByte('\n')
	case *target.ExpressionStatement:
		p.writeIndent()
		p.printExpr(s.Expression)
		p.buf.WriteString(";\n")
	case *target.ReturnStatement:
		p.writeIndent()
		p.buf.WriteString("return ")
		p.printExpr(s.Argument)
		p.buf.WriteString(";\n")
	case *target.BlockStatement:
		p.printBlock(s)
	default:
		p.writeIndent()
		p.printExpr(n)
		p.buf.WriteString(";\n")
	}
}

func (p *Printer) printBlock(b *target.BlockStatement) {
	if b == nil {
		p.buf.WriteString("{}")
		return
	}
	p.buf.WriteString("{\n")
	p.indent++
	for i, stmt := range b.Statements {
		if i == len(b.Statements)-1 {
			switch stmt.(type) {
			case *target.ExpressionStatement, *target.ReturnStatement, *target.VariableDeclaration, *target.BlockStatement, *target.ImportDeclaration, *target.ExportDeclaration, *target.FunctionDeclaration:
				p.printStatement(stmt)
			default:
				// A bare expression value in tail position is this
				// clause/function body's result (spec.md §4.4: "explicit
				// return is never emitted by the translator").
				p.writeIndent()
				p.buf.WriteString("return ")
				p.printExpr(stmt)
				p.buf.WriteString(";\n")
			}
			continue
		}
		p.printStatement(stmt)
	}
	p.indent--
	p.writeIndent()
	p.buf.WriteString("}")
}

func (p *Printer) printExpr(n target.Node) {
	switch e := n.(type) {
	case nil:
		p.buf.WriteString("undefined")
	case *target.Literal:
		p.printLiteral(e.Value)
	case *target.Identifier:
		p.buf.WriteString(e.Name)
	case *target.CallExpression:
		p.printExpr(e.Callee)
		p.buf.WriteByte('(')
		for i, a := range e.Args {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printExpr(a)
		}
		p.buf.WriteByte(')')
	case *target.MemberExpression:
		p.printExpr(e.Object)
		if e.Computed {
			p.buf.WriteByte('[')
			p.printExpr(e.Property)
			p.buf.WriteByte(']')
		} else {
			p.buf.WriteByte('.')
			p.printExpr(e.Property)
		}
	case *target.ObjectExpression:
		p.buf.WriteString("{ ")
		for i, prop := range e.Properties {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			if prop.Computed {
				p.buf.WriteByte('[')
				p.printExpr(prop.Key)
				p.buf.WriteByte(']')
			} else {
				p.printExpr(prop.Key)
			}
			p.buf.WriteString(": ")
			p.printExpr(prop.Value)
		}
		p.buf.WriteString(" }")
	case *target.ArrayExpression:
		p.buf.WriteByte('[')
		for i, el := range e.Elements {
			if i > 0 {
				p.buf.WriteString(", ")
			}
			p.printExpr(el)
		}
		p.buf.WriteByte(']')
	case *target.ArrowFunction:
		p.buf.WriteByte('(')
		p.buf.WriteString(strings.Join(e.Params, ", "))
		p.buf.WriteString(") => ")
		if b, ok := e.Body.(*target.BlockStatement); ok {
			p.printBlock(b)
		} else {
			p.buf.WriteByte('(')
			p.printExpr(e.Body)
			p.buf.WriteByte(')')
		}
	case *target.AssignmentExpression:
		p.printExpr(e.Left)
		p.buf.WriteString(" = ")
		p.printExpr(e.Right)
	case *target.SpreadElement:
		p.buf.WriteString("...")
		p.printExpr(e.Argument)
	case *target.ConditionalExpression:
		p.printExpr(e.Test)
		p.buf.WriteString(" ? ")
		p.printExpr(e.Consequent)
		p.buf.WriteString(" : ")
		p.printExpr(e.Alternate)
	case *target.BlockStatement:
		p.printBlock(e)
	default:
		p.buf.WriteString("/* unprintable node */")
	}
}

func (p *Printer) printLiteral(v interface{}) {
	switch val := v.(type) {
	case nil:
		p.buf.WriteString("null")
	case bool:
		p.buf.WriteString(strconv.FormatBool(val))
	case int64:
		p.buf.WriteString(strconv.FormatInt(val, 10))
	case float64:
		p.buf.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case string:
		p.buf.WriteString(strconv.Quote(val))
	default:
		fmt.Fprintf(&p.buf, "%v", val)
	}
}
