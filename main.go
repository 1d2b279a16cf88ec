package main

import "github.com/noorkhafidzin/blogger2hugo/cmd"

func main() {
	cmd.Execute()
}
