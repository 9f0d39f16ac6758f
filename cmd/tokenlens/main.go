// cmd/tokenlens/main.go
package main

import (
	cmd "github.com/mwiater/tokenlens/internal/commands"
)

// main starts the tokenlens CLI application by delegating to the
// cobra root command defined in the tokenlens package. It does not
// take any arguments and does not return a value.
func main() {
	cmd.Execute()
}
