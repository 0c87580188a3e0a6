package main

import "github.com/arloliu/pec/cmd/pectuple/cmd"

func main() {
	cmd.Execute()
}
