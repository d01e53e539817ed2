package main

import (
	appfx "github.com/jupiter96/tradespeoplehub-sub000/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(
		appfx.AppModule,
	).Run()
}
