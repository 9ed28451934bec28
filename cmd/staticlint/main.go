package main

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/multichecker"
	"golang.org/x/tools/go/analysis/passes/assign"
	"golang.org/x/tools/go/analysis/passes/errorsas"
	"golang.org/x/tools/go/analysis/passes/httpresponse"
	"golang.org/x/tools/go/analysis/passes/printf"
	"golang.org/x/tools/go/analysis/passes/shadow"
	"honnef.co/go/tools/analysis/lint"
	"honnef.co/go/tools/simple"
	"honnef.co/go/tools/staticcheck"
	"honnef.co/go/tools/stylecheck"

	"github.com/sergeizaitcev/metricsender/pkg/exitcheck"
)

// NOTE: комментарии пакетов и функций пишутся на русском языке,
// поэтому стилевые проверки комментариев отключены.
var excludeChecks = map[string]struct{}{
	"ST1000": {},
	"ST1020": {},
	"ST1021": {},
	"ST1022": {},
}

func main() {
	analyzers := []*analysis.Analyzer{
		exitcheck.Analyzer,
		assign.Analyzer,
		errorsas.Analyzer,
		httpresponse.Analyzer,
		printf.Analyzer,
		shadow.Analyzer,
	}

	for _, set := range [][]*lint.Analyzer{
		staticcheck.Analyzers,
		simple.Analyzers,
		stylecheck.Analyzers,
	} {
		for _, v := range set {
			if _, ok := excludeChecks[v.Analyzer.Name]; !ok {
				analyzers = append(analyzers, v.Analyzer)
			}
		}
	}

	multichecker.Main(analyzers...)
}
