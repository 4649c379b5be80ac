// Command todoctl is the operator tool of the TODO list service. The image
// runs it as `todoctl wait-cache` in place of the curl loop when a shell-less
// init container is preferred.
package main

import (
	"todo-list-service/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.Version = version
	cli.Commit = commit

	cli.Execute(cli.NewRootCommand())
}
