package main

import "github.com/clems4ever/gcode-table/cmd"

func main() {
	cmd.Execute()
}
