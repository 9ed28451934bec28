package exitcheck

import (
	"go/ast"

	"golang.org/x/tools/go/analysis"
)

// exitFuncs определяет функции, завершающие процесс в обход
// commands.Execute.
var exitFuncs = map[string]map[string]struct{}{
	"os": {
		"Exit": {},
	},
	"log": {
		"Fatal":   {},
		"Fatalf":  {},
		"Fatalln": {},
	},
}

// Analyzer обнаруживает в пакете main вызовы, завершающие процесс:
// os.Exit и log.Fatal*.
var Analyzer = &analysis.Analyzer{
	Name: "exitcheck",
	Doc:  "detects calls that terminate the process in the main package",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	expr := func(x *ast.SelectorExpr) bool {
		pkg, ok := x.X.(*ast.Ident)
		if !ok {
			return true
		}
		funcs, ok := exitFuncs[pkg.Name]
		if !ok {
			return true
		}
		if _, ok := funcs[x.Sel.Name]; ok {
			pass.Reportf(x.Pos(), "calling %s.%s in main", pkg.Name, x.Sel.Name)
			return false
		}
		return true
	}

	for _, file := range pass.Files {
		if file.Name.Name != "main" {
			continue
		}
		ast.Inspect(file, func(node ast.Node) bool {
			if x, ok := node.(*ast.SelectorExpr); ok {
				return expr(x)
			}
			return true
		})
	}

	return nil, nil
}
