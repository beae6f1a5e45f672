package main

import "github.com/oshokin/pace-planner/cmd/pace-planner/cmd"

func main() {
	cmd.Execute()
}
