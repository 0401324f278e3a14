package main

import "wolfscheduler/cmd"

func main() {
	cmd.Execute()
}
