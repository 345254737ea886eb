// Command gauge converts and combines physical quantities.
package main

import "github.com/mesh-intelligence/gauge/internal/cli"

func main() {
	cli.Execute()
}
