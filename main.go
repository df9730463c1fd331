package main

import "github.com/dentalperfections/dental_backend/cmd"

func main() {
	cmd.Execute()
}
