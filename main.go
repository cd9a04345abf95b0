package main

import (
	"github.com/joho/godotenv"
	neolink "github.com/kevin-david/neolink/cmd/neolink"
)

func main() {
	_ = godotenv.Load()
	neolink.Execute()
}
