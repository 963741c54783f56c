package main

import (
	"pesantren/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CourseModel{},
		model.LessonModel{},
		model.EntitlementModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
		Mode:    gen.WithDefaultQuery | gen.WithQueryInterface,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
