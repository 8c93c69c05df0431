// ./main.go
package main

import (
	"github.com/WebVOWL/horned-owl-serializer/cmd"
)

func main() {
	cmd.Execute()
}
