package main

import "github.com/SscSPs/coin_vault_app/internal/cli"

func main() {
	cli.Execute()
}
