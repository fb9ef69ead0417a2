package main

import "github.com/josephlewis42/sysargv/cmd"

func main() {
	cmd.Execute()
}
