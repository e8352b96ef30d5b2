package main

import (
	appfx "Planzee/internal/fx"

	"go.uber.org/fx"
)

// @title			Planzee API
// @version		1.0
// @description	Gestão de portfólio de projetos com avaliação de saúde.
// @BasePath		/api
func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
