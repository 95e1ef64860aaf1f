// Package sample provides the built-in dataset shown before any upload.
package sample

import (
	"embed"
	"sync"

	"go.uber.org/zap"

	"github.com/sells-group/risk-dashboard/internal/model"
	"github.com/sells-group/risk-dashboard/internal/normalize"
	"github.com/sells-group/risk-dashboard/internal/tabular"
)

//go:embed data/*.csv
var files embed.FS

var (
	once    sync.Once
	dataset model.Dataset
)

// Dataset returns a copy of the sample collections, parsed through the same
// tabular and normalize path as uploads.
func Dataset() model.Dataset {
	once.Do(func() {
		dataset = model.Dataset{
			Companies: normalize.Companies(load("data/companies.csv")),
			Portfolio: normalize.Portfolio(load("data/portfolio.csv")),
			Features:  normalize.Features(load("data/features.csv")),
		}
	})
	return dataset.Clone()
}

func load(name string) []tabular.Row {
	data, err := files.ReadFile(name)
	if err != nil {
		// Embedded at build time; a miss means the embed pattern is wrong.
		zap.L().Error("sample: read embedded file", zap.String("file", name), zap.Error(err))
		return nil
	}
	return tabular.Parse(string(data))
}
