package main

import "github.com/rabidaudio/cuetools/cmd"

func main() {
	cmd.Execute()
}
