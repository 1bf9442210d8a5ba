//go:build cli
// +build cli

package main

import (
	"storefront.GO/cmd"
	"storefront.GO/config"
)

func main() {
	config.LoadEnv()
	cmd.Execute()
}
