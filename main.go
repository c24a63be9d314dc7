package main

import "github.com/fkleon/lsetwatch-csv/internal/cmd"

func main() {
	cmd.Execute()
}
