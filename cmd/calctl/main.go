package main

import "os"

// version will be set at build time
var version = "dev"

func main() {
	if err := newRootCmd(newUseCase, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
