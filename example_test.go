package keetree_test

import (
	"errors"
	"fmt"

	"github.com/leizaf/keetree"
)

func ExampleTree_Lookup() {
	tree := keetree.MustNew[string]()
	tree.MustInsert("/users/me", "current user")
	tree.MustInsert("/users/:id", "user by id")
	tree.MustInsert(`/users/r{^\d+$}`, "user by number")
	tree.MustInsert("/files/*path", "file server")

	for _, path := range []string{"/users/me", "/users/42", "/users/bob", "/files/css/main.css", "/unknown"} {
		if value, ok := tree.Lookup(path); ok {
			fmt.Printf("%s => %s\n", path, value)
			continue
		}
		fmt.Printf("%s => not found\n", path)
	}

	// Output:
	// /users/me => current user
	// /users/42 => user by number
	// /users/bob => user by id
	// /files/css/main.css => file server
	// /unknown => not found
}

func ExampleTree_Insert() {
	tree := keetree.MustNew[int]()

	err := tree.Insert("/id/r{[0-9}", 1)
	fmt.Println(errors.Is(err, keetree.ErrInvalidPattern))
	fmt.Println(tree.Len())

	// Output:
	// true
	// 0
}

func ExampleNode() {
	var root keetree.Node[string]
	root.MustInsert([]string{"doc", ""}, "index")
	root.MustInsert([]string{"doc", ":page"}, "page")

	value, _ := root.At([]string{"doc", ""})
	fmt.Println(value)
	value, _ = root.At([]string{"doc", "faq.html"})
	fmt.Println(value)

	value, _ = root.Remove([]string{"doc", ":page"})
	fmt.Println(value)
	_, ok := root.At([]string{"doc", "faq.html"})
	fmt.Println(ok)

	// Output:
	// index
	// page
	// page
	// false
}
