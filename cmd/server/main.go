package main

import "os"

const exitSetupFailed = 1

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(exitSetupFailed)
	}
}
