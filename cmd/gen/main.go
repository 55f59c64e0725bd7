package main

import (
	"portal/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StudentModel{},
		model.ResetTokenModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
