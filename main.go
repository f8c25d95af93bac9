package main

import "storage-template/cmd"

func main() {
	cmd.Execute()
}
