package main

import "github.com/cmmoran/copytogen/cmd"

func main() {
	cmd.Execute()
}
