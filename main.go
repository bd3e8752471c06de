// murmur - a terminal confession recorder that whispers back
package main

import (
	"github.com/manav03panchal/murmur/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		cmd.Die(err)
	}
}
