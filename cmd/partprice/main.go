package main

import "partprice/cmd/partprice/commands"

func main() {
	commands.Execute()
}
