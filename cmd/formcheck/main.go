// Command formcheck validates form definitions and values against the
// constraints their controls declare.
package main

import "os"

func main() {
	os.Exit(execute())
}
