package main

import "github.com/clash-verge-rev/clash-verge-rev-i18n-cli/internal/cmd"

func main() {
	cmd.Execute()
}
