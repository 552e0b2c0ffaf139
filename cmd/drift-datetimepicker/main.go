// Command drift-datetimepicker inspects how the date/time picker resolves
// its display style and height for a given iOS version.
package main

import (
	"os"

	"github.com/go-drift/datetimepicker/cmd/drift-datetimepicker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
