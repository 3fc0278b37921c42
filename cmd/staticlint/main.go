// Package main реализует команду staticlint — multichecker для проверки
// кода сервиса.
//
// Использование:
//
//	go install ./cmd/staticlint
//	staticlint ./...
//
// Включённые анализаторы:
//   - printf, shadow, structtag, nilness, unusedresult из golang.org/x/tools;
//   - copylocks: FileStore и URLService содержат мьютексы и не должны копироваться;
//   - errorsas: корректность вызовов errors.As;
//   - lostcancel: потерянные cancel от context.WithTimeout/WithCancel;
//   - все SA-анализаторы staticcheck и S1000 из simple;
//   - exitmain: запрет прямого os.Exit в функции main пакета main.
package main

import (
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/copylock"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/lostcancel"
	"golang.org/x/tools/go/analysis/passes/nilness"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"golang.org/x/tools/go/analysis/passes/structtag"
	"golang.org/x/tools/go/analysis/passes/unusedresult"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
)

func analyzers() []*analysis.Analyzer {
	list := []*analysis.Analyzer{
		printf.Analyzer,
		shadow.Analyzer,
		structtag.Analyzer,
		nilness.Analyzer,
		unusedresult.Analyzer,
		copylock.Analyzer,
		errorsas.Analyzer,
		lostcancel.Analyzer,
		ExitMainAnalyzer,
	}

	for _, a := range staticcheck.Analyzers {
		if strings.HasPrefix(a.Analyzer.Name, "SA") {
			list = append(list, a.Analyzer)
		}
	}
	for _, a := range simple.Analyzers {
		if a.Analyzer.Name == "S1000" {
			list = append(list, a.Analyzer)
		}
	}

	return list
}

func main() {
	multichecker.Main(analyzers()...)
}
