package main

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// ExitMainAnalyzer сообщает о прямых вызовах os.Exit внутри функции main
// пакета main: завершение должно идти через возврат ошибки и логгер,
// иначе не выполнятся defer (Sync логгера, остановка сигналов).
var ExitMainAnalyzer = &analysis.Analyzer{
	Name:     "exitmain",
	Doc:      "reports direct calls to os.Exit in main function of package main",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      runExitMain,
}

func runExitMain(pass *analysis.Pass) (any, error) {
	if pass.Pkg.Name() != "main" {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.WithStack([]ast.Node{(*ast.CallExpr)(nil)}, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push || !insideMain(stack) {
			return true
		}
		if isOSExit(pass, n.(*ast.CallExpr)) {
			pass.Reportf(n.Pos(), "direct call to os.Exit is not allowed in main")
		}
		return true
	})

	return nil, nil
}

// insideMain проверяет, что ближайшая объемлющая функция — main.
// Вызовы внутри функциональных литералов не учитываются.
func insideMain(stack []ast.Node) bool {
	for i := len(stack) - 1; i >= 0; i-- {
		switch fn := stack[i].(type) {
		case *ast.FuncLit:
			return false
		case *ast.FuncDecl:
			return fn.Recv == nil && fn.Name.Name == "main"
		}
	}
	return false
}

func isOSExit(pass *analysis.Pass, call *ast.CallExpr) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != "Exit" {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	if !ok {
		return false
	}
	pkg, ok := pass.TypesInfo.Uses[id].(*types.PkgName)
	return ok && pkg.Imported().Path() == "os"
}
