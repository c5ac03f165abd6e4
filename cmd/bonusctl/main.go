// bonusctl evalúa escenarios YAML con el mismo motor de bonos de la API, sin base de datos.
package main

import (
	"os"

	"github.com/jhoicas/rs-bonus/cmd/bonusctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
