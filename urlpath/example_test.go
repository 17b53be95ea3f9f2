package urlpath_test

import (
	"fmt"

	"github.com/jessekelly881/fpstd/urlparams"
	"github.com/jessekelly881/fpstd/urlpath"
)

func ExampleFromPathname() {
	p := urlpath.FromPathname("/foo/bar/../baz")
	fmt.Println(p)
	// Output:
	// /foo/baz
}

func ExampleFromString() {
	p := urlpath.FromString("/foo?bar=yes#baz")
	fmt.Println(p.Pathname())
	fmt.Println(p.Params())
	fmt.Println(p.Hash())
	// Output:
	// /foo
	// bar=yes
	// #baz
}

func ExamplePath_ToURL() {
	p := urlpath.FromString("/docs?page=2")

	u, err := p.ToURL("https://samhh.com").Unwrap()
	fmt.Println(u, err)

	_, err = p.ToURL("samhh.com").Unwrap()
	fmt.Println(err)
	// Output:
	// https://samhh.com/docs?page=2 <nil>
	// urlpath: base URL must be absolute: "samhh.com"
}

func ExamplePath_ModifyParams() {
	p := urlpath.FromString("/search?q=go").ModifyParams(
		func(ps urlparams.Params) urlparams.Params {
			return ps.Set("page", "2")
		})
	fmt.Println(p)
	// Output:
	// /search?q=go&page=2
}
