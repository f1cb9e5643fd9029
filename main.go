package main

import "github.com/uiproof/uiproof/cmd"

func main() {
	cmd.Execute()
}
