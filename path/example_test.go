package path_test

import (
	"fmt"

	"lesiw.io/pathsub/path"
)

func ExampleComponents() {
	for _, c := range path.Components(`C:\Users\..\foo`) {
		fmt.Printf("%v %q\n", c.Kind, c.Name)
	}
	// Output:
	// Prefix "C:"
	// Root ""
	// Normal "Users"
	// Parent ".."
	// Normal "foo"
}

func ExampleFormat() {
	comps := path.Components("./src//main.go")
	fmt.Println(path.Format('/', comps))
	fmt.Println(path.Format('\\', comps))
	// Output:
	// ./src/main.go
	// .\src\main.go
}
