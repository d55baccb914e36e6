package main

import "github.com/theirongolddev/stoki/cmd"

func main() {
	cmd.Execute()
}
