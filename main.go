package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	a := newApp(os.Stdout, os.Stderr)
	err := a.rootCmd().Execute()
	a.close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cmdle: %v\n", err)
		os.Exit(1)
	}
}
