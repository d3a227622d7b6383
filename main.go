package main

import "github.com/kebairia/addonsbackup/cmd"

func main() {
	cmd.Execute()
}
