package main

import "github.com/mouse-blink/jsoned/cmd"

func main() {
	cmd.Execute()
}
