package main

import "github.com/KaramelBytes/tabstat/cmd"

func main() {
	cmd.Execute()
}
