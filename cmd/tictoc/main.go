package main

import "github.com/MeKo-Tech/tictoc/cmd/tictoc/cmd"

func main() {
	cmd.Execute()
}
